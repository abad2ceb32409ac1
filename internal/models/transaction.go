package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType represents the direction of a transaction.
// The amount itself is always positive; the type carries the sign.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single recorded income or expense event.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description string          `gorm:"size:200;not null" json:"description"`
	Category    *string         `gorm:"size:100" json:"category,omitempty"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeSave normalizes the date to a UTC calendar day (midnight),
// defaulting to today when unset. Same-day ordering falls back to CreatedAt.
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().UTC()
	}
	year, month, day := t.Date.UTC().Date()
	t.Date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
// We already store dates in UTC, but reading them back from some drivers
// returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}
