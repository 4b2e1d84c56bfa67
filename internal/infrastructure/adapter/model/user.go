package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID          string     `gorm:"primaryKey;size:36"`
	FederatedID string     `gorm:"size:255;not null;uniqueIndex"`
	Email       string     `gorm:"size:320;not null;index"`
	UserName    string     `gorm:"size:200;not null"`
	Picture     *string    `gorm:"size:2000"`
	IsActive    bool       `gorm:"not null"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false"`
	LastLoginAt time.Time  `gorm:"not null"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
