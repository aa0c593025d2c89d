package models

import "time"

type MasterDataModel struct {
	ID        uint   `gorm:"primaryKey"`
	Type      string `gorm:"size:20;not null;uniqueIndex:idx_master_type_value"`
	Value     string `gorm:"size:200;not null;uniqueIndex:idx_master_type_value"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MasterDataModel) TableName() string {
	return "master_data"
}
