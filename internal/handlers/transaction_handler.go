package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finpace/internal/errors"
	"finpace/internal/export"
	"finpace/internal/models"
	"finpace/internal/pagination"
	"finpace/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	CategoryID       string                   `json:"category_id" binding:"required,uuid"`
	Amount           int64                    `json:"amount" binding:"required,gt=0"`
	Description      string                   `json:"description" binding:"max=500"`
	Date             *string                  `json:"date"`
	IsIncome         bool                     `json:"is_income"`
	IsRecurring      bool                     `json:"is_recurring"`
	RecurrencePeriod *models.RecurrencePeriod `json:"recurrence_period" binding:"omitempty,recurrence_period"`
}

// UpdateTransactionRequest represents the request payload for updating a transaction
type UpdateTransactionRequest struct {
	CategoryID       *string                  `json:"category_id" binding:"omitempty,uuid"`
	Amount           *int64                   `json:"amount" binding:"omitempty,gt=0"`
	Description      *string                  `json:"description" binding:"omitempty,max=500"`
	Date             *string                  `json:"date"`
	IsIncome         *bool                    `json:"is_income"`
	IsRecurring      *bool                    `json:"is_recurring"`
	RecurrencePeriod *models.RecurrencePeriod `json:"recurrence_period" binding:"omitempty,recurrence_period"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Create a new income or expense. Recurring transactions need a recurrence period.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.TransactionInput{
		CategoryID:       req.CategoryID,
		Amount:           req.Amount,
		Description:      req.Description,
		IsIncome:         req.IsIncome,
		IsRecurring:      req.IsRecurring,
		RecurrencePeriod: req.RecurrencePeriod,
	}
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		input.Date = parsed
	}

	transaction, err := h.transactionService.CreateTransaction(userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TRANSACTION", "transaction", transaction.ID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount, "is_income": req.IsIncome, "category_id": req.CategoryID})

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetUserTransactions handles listing the user's transactions
// @Summary     Get transactions
// @Description Get a paginated list of transactions, newest first, with optional filters
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page        query int    false "Page number (default 1)"
// @Param       page_size   query int    false "Items per page (default 20, max 100)"
// @Param       from_date   query string false "Filter by start date (RFC3339 or YYYY-MM-DD)"
// @Param       to_date     query string false "Filter by end date, inclusive (RFC3339 or YYYY-MM-DD)"
// @Param       category_id query string false "Filter by category ID"
// @Param       is_income   query bool   false "Filter by income (true) or expense (false)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetUserTransactions(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter
	var err error

	if filter.FromDate, err = queryDate(c, "from_date", false); err != nil {
		return filter, err
	}
	if filter.ToDate, err = queryDate(c, "to_date", true); err != nil {
		return filter, err
	}
	if filter.FromDate != nil && filter.ToDate != nil && filter.FromDate.After(*filter.ToDate) {
		return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "from_date must not be after to_date")
	}
	if filter.IsIncome, err = queryBool(c, "is_income"); err != nil {
		return filter, err
	}
	if v := c.Query("category_id"); v != "" {
		id, parseErr := parseID(v, "category_id")
		if parseErr != nil {
			return filter, parseErr
		}
		filter.CategoryID = &id
	}
	return filter, nil
}

// GetTransaction handles retrieving a specific transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction handles updating a transaction
// @Summary     Update transaction
// @Description Update transaction fields. Setting is_recurring to false clears the recurrence period.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Transaction changes"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction or category not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.TransactionUpdate{
		CategoryID:       req.CategoryID,
		Amount:           req.Amount,
		Description:      req.Description,
		IsIncome:         req.IsIncome,
		IsRecurring:      req.IsRecurring,
		RecurrencePeriod: req.RecurrencePeriod,
	}
	if req.Date != nil {
		parsed, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		update.Date = &parsed
	}

	transaction, err := h.transactionService.UpdateTransaction(userID, transactionID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_TRANSACTION", "transaction", transactionID, c.ClientIP(),
		map[string]interface{}{"amount": transaction.Amount, "category_id": transaction.CategoryID})

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles deleting a transaction
// @Summary     Delete transaction
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_TRANSACTION", "transaction", transactionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// GetMonthlySummary returns income, expenses and savings per month
// @Summary     Monthly summary
// @Description Get twelve monthly totals for a year (defaults to the current year)
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       year query int false "Year (2000-2100)"
// @Success     200 {object} map[string]interface{} "Year and twelve monthly entries"
// @Failure     400 {object} ErrorResponse "Invalid year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions/summary/monthly [get]
func (h *TransactionHandler) GetMonthlySummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := requiredYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.transactionService.GetMonthlySummary(userID, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"year": year, "months": summary})
}

// ExportTransactions streams a year of transactions as an xlsx workbook
// @Summary     Export transactions
// @Description Download a workbook with a Transactions sheet and a monthly Summary sheet
// @Tags        transactions
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    BearerAuth
// @Param       year query int false "Year (2000-2100)"
// @Success     200 {file} file "xlsx workbook"
// @Failure     400 {object} ErrorResponse "Invalid year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions/export [get]
func (h *TransactionHandler) ExportTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := requiredYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.GetYearTransactions(userID, year)
	if err != nil {
		respondWithError(c, err)
		return
	}
	summary, err := h.transactionService.GetMonthlySummary(userID, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	buf, err := export.TransactionsWorkbook(year, transactions, summary)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.auditService.Log(userID, "EXPORT_TRANSACTIONS", "transaction", "", c.ClientIP(),
		map[string]interface{}{"year": year, "count": len(transactions)})

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(year)))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
