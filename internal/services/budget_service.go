package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "finpace/internal/errors"
	"finpace/internal/models"
	"finpace/internal/pagination"
	"finpace/internal/progress"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db              *gorm.DB
	categoryService CategoryServicer
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, categoryService CategoryServicer) BudgetServicer {
	return &budgetService{db: db, categoryService: categoryService}
}

// CreateBudget creates a monthly budget for one of the user's categories.
func (s *budgetService) CreateBudget(userID, categoryID string, amount int64, month, year int) (*models.Budget, error) {
	if err := validateBudgetFields(amount, month, year); err != nil {
		return nil, err
	}
	if _, err := s.categoryService.GetCategoryByID(userID, categoryID); err != nil {
		return nil, err
	}
	if err := s.checkDuplicate(userID, categoryID, month, year, ""); err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Month:      month,
		Year:       year,
	}

	if err := s.db.Create(budget).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Wrap(apperrors.ErrDuplicateBudget, err)
		}
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetBudgetByID(userID, budget.ID)
}

func validateBudgetFields(amount int64, month, year int) error {
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if err := validateMonth(month); err != nil {
		return err
	}
	return validateYear(year)
}

// checkDuplicate fails when another budget already covers the same category
// and period. The unique index still guards concurrent writers.
func (s *budgetService) checkDuplicate(userID, categoryID string, month, year int, excludeID string) error {
	q := s.db.Model(&models.Budget{}).
		Where("user_id = ? AND category_id = ? AND month = ? AND year = ?", userID, categoryID, month, year)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateBudget
	}
	return nil
}

// GetUserBudgets returns a paginated list of budgets for the user, latest period first.
func (s *budgetService) GetUserBudgets(userID string, page pagination.PageRequest, filter BudgetFilter) (*pagination.PageResponse[models.Budget], error) {
	base := s.db.Model(&models.Budget{}).Where("user_id = ?", userID)
	if filter.Month != nil {
		base = base.Where("month = ?", *filter.Month)
	}
	if filter.Year != nil {
		base = base.Where("year = ?", *filter.Year)
	}
	base = base.Order("year DESC, month DESC, id")

	result, err := pagination.Find[models.Budget](base, page, "Category")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := findOwned(s.db.Preload("Category"), &budget, userID, budgetID, apperrors.ErrBudgetNotFound); err != nil {
		return nil, err
	}
	return &budget, nil
}

// UpdateBudget updates an existing budget's fields. Moving a budget onto a
// period its category already has is a DUPLICATE_BUDGET conflict.
func (s *budgetService) UpdateBudget(userID, budgetID string, update BudgetUpdate) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	next := *budget
	if update.CategoryID != nil {
		next.CategoryID = *update.CategoryID
	}
	if update.Amount != nil {
		next.Amount = *update.Amount
	}
	if update.Month != nil {
		next.Month = *update.Month
	}
	if update.Year != nil {
		next.Year = *update.Year
	}

	if err := validateBudgetFields(next.Amount, next.Month, next.Year); err != nil {
		return nil, err
	}

	keyChanged := next.CategoryID != budget.CategoryID || next.Month != budget.Month || next.Year != budget.Year
	if next.CategoryID != budget.CategoryID {
		if _, err := s.categoryService.GetCategoryByID(userID, next.CategoryID); err != nil {
			return nil, err
		}
	}
	if keyChanged {
		if err := s.checkDuplicate(userID, next.CategoryID, next.Month, next.Year, budget.ID); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{
		"category_id": next.CategoryID,
		"amount":      next.Amount,
		"month":       next.Month,
		"year":        next.Year,
	}
	if err := s.db.Model(&models.Budget{}).
		Where("id = ? AND user_id = ?", budget.ID, userID).
		Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Wrap(apperrors.ErrDuplicateBudget, err)
		}
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetBudgetByID(userID, budgetID)
}

// DeleteBudget hard-deletes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	result := s.db.Where("id = ? AND user_id = ?", budgetID, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}

type categorySpend struct {
	CategoryID string
	Spent      int64
}

// GetBudgetsProgress reports spending against every budget of the given
// month. Spent is the sum of expense transactions in the budget's category
// dated within that month.
func (s *budgetService) GetBudgetsProgress(userID string, month, year int) ([]BudgetStatus, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}

	var budgets []models.Budget
	if err := s.db.Preload("Category").
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("id").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	if len(budgets) == 0 {
		return statuses, nil
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var rows []categorySpend
	err := s.db.Model(&models.Transaction{}).
		Select("category_id, COALESCE(SUM(amount), 0) AS spent").
		Where("user_id = ? AND is_income = ? AND date >= ? AND date < ?", userID, false, start, end).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	spent := make(map[string]int64, len(rows))
	for _, r := range rows {
		spent[r.CategoryID] = r.Spent
	}

	for _, b := range budgets {
		statuses = append(statuses, BudgetStatus{
			BudgetID:       b.ID,
			CategoryID:     b.CategoryID,
			CategoryName:   b.CategoryName,
			Month:          b.Month,
			Year:           b.Year,
			Amount:         b.Amount,
			BudgetProgress: progress.Budget(b.Amount, spent[b.CategoryID]),
		})
	}
	return statuses, nil
}
