package models

// Category groups transactions and budgets. Categories form a forest per
// user through ParentID.
type Category struct {
	Base
	UserID   string  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string  `gorm:"size:100;not null" json:"name"`
	ParentID *string `gorm:"type:uuid;index" json:"parent_id"`

	Parent *Category `gorm:"foreignKey:ParentID" json:"-"`
}
