// Package progress computes budget, goal and monthly aggregates. Every
// function is pure; callers load the inputs.
package progress

import (
	"time"

	"finpace/internal/models"
)

// BudgetProgress is spending against one budget.
type BudgetProgress struct {
	SpentAmount     int64   `json:"spent_amount"`
	RemainingAmount int64   `json:"remaining_amount"`
	PercentageUsed  float64 `json:"percentage_used"`
}

// Budget compares spent against amount. A zero amount reports 0% used even
// when spent is non-zero.
func Budget(amount, spent int64) BudgetProgress {
	return BudgetProgress{
		SpentAmount:     spent,
		RemainingAmount: amount - spent,
		PercentageUsed:  percentage(spent, amount),
	}
}

// Goal returns current as a percentage of target, or 0 when target is 0.
func Goal(current, target int64) float64 {
	return percentage(current, target)
}

func percentage(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// GoalUpdate is a partial update; nil fields are left unchanged.
type GoalUpdate struct {
	Name          *string
	Description   *string
	TargetAmount  *int64
	CurrentAmount *int64
	Deadline      *time.Time
	ClearDeadline bool
	Status        *models.GoalStatus
}

// ApplyGoalUpdate applies u to a copy of goal. Reaching the target promotes
// the goal to completed; lowering the amount afterwards never demotes it.
func ApplyGoalUpdate(goal models.Goal, u GoalUpdate) models.Goal {
	if u.Name != nil {
		goal.Name = *u.Name
	}
	if u.Description != nil {
		goal.Description = *u.Description
	}
	if u.TargetAmount != nil {
		goal.TargetAmount = *u.TargetAmount
	}
	if u.CurrentAmount != nil {
		goal.CurrentAmount = *u.CurrentAmount
	}
	if u.ClearDeadline {
		goal.Deadline = nil
	} else if u.Deadline != nil {
		d := *u.Deadline
		goal.Deadline = &d
	}
	if u.Status != nil {
		goal.Status = *u.Status
	}

	if goal.CurrentAmount >= goal.TargetAmount && goal.Status != models.GoalStatusCompleted {
		goal.Status = models.GoalStatusCompleted
	}
	return goal
}

// MonthSummary is the income and expense total of one calendar month.
type MonthSummary struct {
	Month    int   `json:"month"`
	Income   int64 `json:"income"`
	Expenses int64 `json:"expenses"`
	Savings  int64 `json:"savings"`
}

// MonthlySummary returns exactly twelve entries, January first, for year.
// Transactions dated in other years are ignored.
func MonthlySummary(year int, transactions []models.Transaction) []MonthSummary {
	months := make([]MonthSummary, 12)
	for i := range months {
		months[i].Month = i + 1
	}

	for _, tx := range transactions {
		if tx.Date.Year() != year {
			continue
		}
		m := &months[int(tx.Date.Month())-1]
		if tx.IsIncome {
			m.Income += tx.Amount
		} else {
			m.Expenses += tx.Amount
		}
	}

	for i := range months {
		months[i].Savings = months[i].Income - months[i].Expenses
	}
	return months
}
