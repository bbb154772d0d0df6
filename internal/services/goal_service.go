package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "finpace/internal/errors"
	"finpace/internal/models"
	"finpace/internal/pagination"
	"finpace/internal/progress"
)

// goalService handles savings-goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

func newGoalView(goal models.Goal) GoalView {
	return GoalView{
		Goal:               goal,
		ProgressPercentage: progress.Goal(goal.CurrentAmount, goal.TargetAmount),
	}
}

func validateGoal(goal models.Goal) error {
	if strings.TrimSpace(goal.Name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if goal.TargetAmount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "target_amount must be greater than zero")
	}
	if goal.CurrentAmount < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "current_amount cannot be negative")
	}
	switch goal.Status {
	case models.GoalStatusActive, models.GoalStatusCompleted, models.GoalStatusAbandoned:
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid goal status")
	}
	return nil
}

// CreateGoal creates a goal. A goal created at or above its target starts
// out completed.
func (s *goalService) CreateGoal(userID string, input GoalInput) (*GoalView, error) {
	status := input.Status
	if status == "" {
		status = models.GoalStatusActive
	}

	goal := progress.ApplyGoalUpdate(models.Goal{
		UserID:        userID,
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		Deadline:      input.Deadline,
		Status:        status,
	}, progress.GoalUpdate{})

	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	if err := s.db.Create(&goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	view := newGoalView(goal)
	return &view, nil
}

// GetUserGoals lists goals ordered by deadline, goals without one last.
func (s *goalService) GetUserGoals(userID string, page pagination.PageRequest, status *models.GoalStatus) (*pagination.PageResponse[GoalView], error) {
	base := s.db.Model(&models.Goal{}).Where("user_id = ?", userID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}
	base = base.Order("CASE WHEN deadline IS NULL THEN 1 ELSE 0 END, deadline, id")

	goals, err := pagination.Find[models.Goal](base, page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	views := make([]GoalView, 0, len(goals.Data))
	for _, g := range goals.Data {
		views = append(views, newGoalView(g))
	}

	result := pagination.NewPageResponse(views, goals.Page, goals.PageSize, goals.TotalItems)
	return &result, nil
}

func (s *goalService) getGoal(userID, goalID string) (*models.Goal, error) {
	var goal models.Goal
	if err := findOwned(s.db, &goal, userID, goalID, apperrors.ErrGoalNotFound); err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetGoalByID returns a goal with its progress.
func (s *goalService) GetGoalByID(userID, goalID string) (*GoalView, error) {
	goal, err := s.getGoal(userID, goalID)
	if err != nil {
		return nil, err
	}
	view := newGoalView(*goal)
	return &view, nil
}

// UpdateGoal applies a partial update. Reaching the target completes the
// goal; it is never reopened automatically.
func (s *goalService) UpdateGoal(userID, goalID string, update progress.GoalUpdate) (*GoalView, error) {
	goal, err := s.getGoal(userID, goalID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		update.Name = &trimmed
	}

	next := progress.ApplyGoalUpdate(*goal, update)
	if err := validateGoal(next); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":           next.Name,
		"description":    next.Description,
		"target_amount":  next.TargetAmount,
		"current_amount": next.CurrentAmount,
		"deadline":       next.Deadline,
		"status":         next.Status,
	}
	if err := s.db.Model(&models.Goal{}).
		Where("id = ? AND user_id = ?", goal.ID, userID).
		Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetGoalByID(userID, goalID)
}

// DeleteGoal hard-deletes a goal.
func (s *goalService) DeleteGoal(userID, goalID string) error {
	result := s.db.Where("id = ? AND user_id = ?", goalID, userID).Delete(&models.Goal{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrGoalNotFound
	}
	return nil
}
