package models

import "time"

type TicketModel struct {
	ID         uint    `gorm:"primaryKey"`
	JobID      string  `gorm:"uniqueIndex;size:50;not null"`
	Requester  string  `gorm:"size:100;not null"`
	Branch     string  `gorm:"size:100;not null"`
	Dept       string  `gorm:"size:100;not null"`
	AssetType  string  `gorm:"size:100;not null"`
	AssetName  string  `gorm:"size:200;not null"`
	Issue      string  `gorm:"type:text;not null"`
	ImageURL   string  `gorm:"size:500"`
	Status     string  `gorm:"size:20;not null;index"`
	Technician string  `gorm:"size:100"`
	Shop       string  `gorm:"size:200"`
	Result     string  `gorm:"type:text"`
	Cost       float64 `gorm:"not null;default:0"`
	Note       string  `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Note: No foreign key constraints. Master data values are captured at
	// intake so later list edits never rewrite ticket history.
}

func (TicketModel) TableName() string {
	return "tickets"
}

// JobCounterModel holds the last issued job-ID sequence per year. The row is
// locked during ticket creation so concurrent intakes get distinct IDs.
type JobCounterModel struct {
	Year      int   `gorm:"primaryKey"`
	Seq       int64 `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (JobCounterModel) TableName() string {
	return "job_counters"
}
