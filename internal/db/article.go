package db

import (
	"time"

	"gorm.io/gorm"
)

// Article 定义文章模型
type Article struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Image       string
	Author      string `gorm:"not null"`
	Category    string `gorm:"not null"`
	Date        time.Time
	Comments    int
	Content     string `gorm:"not null"`
}
