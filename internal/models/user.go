package models

import "time"

// UserRole controls what a user may do with their own data.
type UserRole string

const (
	// UserRoleOwner has full read/write access.
	UserRoleOwner UserRole = "owner"
	// UserRoleViewer may only read.
	UserRoleViewer UserRole = "viewer"
)

// User represents the user model in the database
type User struct {
	Base
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Password         string     `gorm:"not null" json:"-"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Currency         string     `gorm:"size:3;not null;default:USD" json:"currency"`
	Timezone         string     `gorm:"size:64;not null;default:UTC" json:"timezone"`
	Role             UserRole   `gorm:"size:16;not null;default:owner" json:"role"`
	IsActive         bool       `gorm:"not null;default:true" json:"is_active"`
	RefreshTokenHash string     `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
}
