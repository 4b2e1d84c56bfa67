package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID              uint64              `gorm:"primaryKey;autoIncrement"`
	TransactionType int                 `gorm:"not null"`
	Amount          decimal.Decimal     `gorm:"type:numeric(18,2);not null"`
	Currency        *string             `gorm:"size:10"`
	Account         string              `gorm:"size:100;not null"`
	Project         *string             `gorm:"size:100"`
	Category        *string             `gorm:"size:100"`
	Subcategory     string              `gorm:"size:100;not null"`
	Name            *string             `gorm:"size:200"`
	Store           *string             `gorm:"size:200"`
	Note            *string             `gorm:"size:500"`
	Tags            *string             `gorm:"size:500"`
	Date            *string             `gorm:"size:10"`
	Time            *string             `gorm:"size:5"`
	Fee             decimal.NullDecimal `gorm:"type:numeric(18,2)"`
	FeeName         *string             `gorm:"size:100"`
	Bonus           decimal.NullDecimal `gorm:"type:numeric(18,2)"`
	BonusName       *string             `gorm:"size:100"`
	CreatedAt       time.Time           `gorm:"not null;autoCreateTime:false"`
	UpdatedAt       *time.Time          `gorm:"autoUpdateTime:false"`
	IsActive        bool                `gorm:"not null;index"`
	UserID          string              `gorm:"size:36;not null;index"`

	// Define relationships
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// PrimaryKey returns the generated id
func (t *Transaction) PrimaryKey() uint64 {
	return t.ID
}
