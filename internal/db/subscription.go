package db

import "gorm.io/gorm"

// Subscription 定义邮件订阅者模型
type Subscription struct {
	gorm.Model
	Email string `gorm:"uniqueIndex;not null"`
}
