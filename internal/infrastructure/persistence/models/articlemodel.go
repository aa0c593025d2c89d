package models

import "time"

type ArticleModel struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:200;not null"`
	Content   string `gorm:"type:text;not null"`
	Category  string `gorm:"size:100;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ArticleModel) TableName() string {
	return "kb_articles"
}
