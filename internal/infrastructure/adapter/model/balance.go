package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance represents the database model for balance adjustments
type Balance struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	Account   string          `gorm:"size:100;not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Date      *string         `gorm:"size:10"`
	Time      *string         `gorm:"size:5"`
	Note      *string         `gorm:"size:500"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt *time.Time      `gorm:"autoUpdateTime:false"`
	IsActive  bool            `gorm:"not null;index"`
}

// TableName specifies the table name for Balance
func (Balance) TableName() string {
	return "balances"
}

// PrimaryKey returns the generated id
func (b *Balance) PrimaryKey() uint64 {
	return b.ID
}
