package models

import "time"

// GoalStatus is the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusAbandoned GoalStatus = "abandoned"
)

// Goal is a savings target.
type Goal struct {
	Base
	UserID        string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string     `gorm:"size:100;not null" json:"name"`
	Description   string     `json:"description"`
	TargetAmount  int64      `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount int64      `gorm:"type:bigint;not null;default:0" json:"current_amount"`
	Deadline      *time.Time `json:"deadline"`
	Status        GoalStatus `gorm:"size:16;not null;default:active" json:"status"`
}
