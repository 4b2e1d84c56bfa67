package model

import (
	"time"
)

// AppURL represents the database model for app urls. Each transaction has
// at most one.
type AppURL struct {
	ID            uint64     `gorm:"primaryKey;autoIncrement"`
	URL           string     `gorm:"size:2000;not null"`
	IsFinished    bool       `gorm:"not null"`
	TransactionID uint64     `gorm:"not null;uniqueIndex:idx_app_urls_transaction_id"`
	CreatedAt     time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt     *time.Time `gorm:"autoUpdateTime:false"`

	Transaction *Transaction `gorm:"foreignKey:TransactionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName specifies the table name for AppURL
func (AppURL) TableName() string {
	return "app_urls"
}

// PrimaryKey returns the generated id
func (a *AppURL) PrimaryKey() uint64 {
	return a.ID
}
