package models

import "time"

type SettingModel struct {
	Key       string `gorm:"primaryKey;size:100"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (SettingModel) TableName() string {
	return "settings"
}
