package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "finpace/internal/errors"
	"finpace/internal/models"
	"finpace/internal/pagination"
	"finpace/internal/progress"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db              *gorm.DB
	categoryService CategoryServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, categoryService CategoryServicer) TransactionServicer {
	return &transactionService{
		db:              db,
		categoryService: categoryService,
	}
}

// CreateTransaction records an income or expense in one of the user's categories.
func (s *transactionService) CreateTransaction(userID string, input TransactionInput) (*models.Transaction, error) {
	if input.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if err := validateRecurrence(input.IsRecurring, input.RecurrencePeriod); err != nil {
		return nil, err
	}
	if _, err := s.categoryService.GetCategoryByID(userID, input.CategoryID); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		UserID:           userID,
		CategoryID:       input.CategoryID,
		Amount:           input.Amount,
		Description:      input.Description,
		Date:             date.UTC(),
		IsIncome:         input.IsIncome,
		IsRecurring:      input.IsRecurring,
		RecurrencePeriod: input.RecurrencePeriod,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		// The category was deleted after the ownership check.
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetTransactionByID(userID, transaction.ID)
}

// validateRecurrence requires a period exactly when the transaction recurs.
func validateRecurrence(isRecurring bool, period *models.RecurrencePeriod) error {
	if isRecurring && period == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "recurrence_period is required for recurring transactions")
	}
	if !isRecurring && period != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "recurrence_period is only allowed on recurring transactions")
	}
	return nil
}

// GetUserTransactions retrieves a paginated, filtered list of transactions, newest first.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter).Order("date DESC, id DESC")

	result, err := pagination.Find[models.Transaction](base, page, "Category")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", f.FromDate.UTC())
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", f.ToDate.UTC())
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.IsIncome != nil {
		q = q.Where("is_income = ?", *f.IsIncome)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := findOwned(s.db.Preload("Category"), &transaction, userID, transactionID, apperrors.ErrTransactionNotFound); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// UpdateTransaction applies the provided fields. Setting is_recurring to
// false also clears the recurrence period.
func (s *transactionService) UpdateTransaction(userID, transactionID string, update TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if update.CategoryID != nil && *update.CategoryID != transaction.CategoryID {
		if _, err := s.categoryService.GetCategoryByID(userID, *update.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *update.CategoryID
	}
	if update.Amount != nil {
		if *update.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		updates["amount"] = *update.Amount
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Date != nil {
		updates["date"] = update.Date.UTC()
	}
	if update.IsIncome != nil {
		updates["is_income"] = *update.IsIncome
	}

	isRecurring := transaction.IsRecurring
	period := transaction.RecurrencePeriod
	if update.IsRecurring != nil {
		isRecurring = *update.IsRecurring
		if !isRecurring {
			period = nil
		}
	}
	if update.RecurrencePeriod != nil {
		period = update.RecurrencePeriod
	}
	if err := validateRecurrence(isRecurring, period); err != nil {
		return nil, err
	}
	if update.IsRecurring != nil || update.RecurrencePeriod != nil {
		updates["is_recurring"] = isRecurring
		updates["recurrence_period"] = period
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Transaction{}).
			Where("id = ? AND user_id = ?", transaction.ID, userID).
			Updates(updates).Error; err != nil {
			if isForeignKeyViolation(err) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetTransactionByID(userID, transactionID)
}

// DeleteTransaction hard-deletes a transaction.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	result := s.db.Where("id = ? AND user_id = ?", transactionID, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// GetYearTransactions returns every transaction dated in year, oldest first.
func (s *transactionService) GetYearTransactions(userID string, year int) ([]models.Transaction, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var transactions []models.Transaction
	err := s.db.Preload("Category").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date, id").
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetMonthlySummary totals income and expenses for each month of year.
func (s *transactionService) GetMonthlySummary(userID string, year int) ([]progress.MonthSummary, error) {
	transactions, err := s.GetYearTransactions(userID, year)
	if err != nil {
		return nil, err
	}
	return progress.MonthlySummary(year, transactions), nil
}

func validateYear(year int) error {
	if year < 2000 || year > 2100 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be between 2000 and 2100")
	}
	return nil
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	return nil
}
