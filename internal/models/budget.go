package models

import "gorm.io/gorm"

// Budget caps spending in one category for one calendar month.
// At most one budget exists per (user, category, month, year).
type Budget struct {
	Base
	UserID     string `gorm:"type:uuid;not null;uniqueIndex:uq_budgets_user_category_period,priority:1" json:"user_id"`
	CategoryID string `gorm:"type:uuid;not null;uniqueIndex:uq_budgets_user_category_period,priority:2" json:"category_id"`
	Amount     int64  `gorm:"type:bigint;not null" json:"amount"`
	Month      int    `gorm:"not null;uniqueIndex:uq_budgets_user_category_period,priority:3" json:"month"`
	Year       int    `gorm:"not null;uniqueIndex:uq_budgets_user_category_period,priority:4" json:"year"`

	CategoryName string    `gorm:"-" json:"category_name,omitempty"`
	Category     *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// AfterFind exposes the preloaded category's name.
func (b *Budget) AfterFind(tx *gorm.DB) error {
	if b.Category != nil {
		b.CategoryName = b.Category.Name
	}
	return nil
}
