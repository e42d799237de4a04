package db

import "gorm.io/gorm"

// GalleryItem 定义作品集条目模型
type GalleryItem struct {
	gorm.Model
	Title     string `gorm:"not null"`
	Category  string `gorm:"not null"`
	Image     string
	Link      string
	BadgeName string
}
