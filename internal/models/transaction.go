package models

import (
	"time"

	"gorm.io/gorm"
)

// RecurrencePeriod describes how often a recurring transaction repeats.
// It is stored metadata only; nothing materialises future occurrences.
type RecurrencePeriod string

const (
	RecurrenceDaily   RecurrencePeriod = "daily"
	RecurrenceWeekly  RecurrencePeriod = "weekly"
	RecurrenceMonthly RecurrencePeriod = "monthly"
	RecurrenceYearly  RecurrencePeriod = "yearly"
)

// Transaction represents a single income or expense entry.
type Transaction struct {
	Base
	UserID           string            `gorm:"type:uuid;not null;index:idx_transactions_user_date,priority:1" json:"user_id"`
	CategoryID       string            `gorm:"type:uuid;not null;index" json:"category_id"`
	Amount           int64             `gorm:"type:bigint;not null" json:"amount"`
	Description      string            `json:"description"`
	Date             time.Time         `gorm:"not null;index:idx_transactions_user_date,priority:2" json:"date"`
	IsIncome         bool              `gorm:"not null;default:false" json:"is_income"`
	IsRecurring      bool              `gorm:"not null;default:false" json:"is_recurring"`
	RecurrencePeriod *RecurrencePeriod `gorm:"size:16" json:"recurrence_period"`

	CategoryName string    `gorm:"-" json:"category_name,omitempty"`
	Category     *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// AfterFind exposes the preloaded category's name.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	if t.Category != nil {
		t.CategoryName = t.Category.Name
	}
	return nil
}
