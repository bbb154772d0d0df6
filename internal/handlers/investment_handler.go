package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finpace/internal/errors"
	"finpace/internal/models"
	"finpace/internal/pagination"
	"finpace/internal/services"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
	auditService      services.AuditServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer, auditService services.AuditServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService, auditService: auditService}
}

// AddInvestmentRequest represents the request payload for adding a holding.
type AddInvestmentRequest struct {
	Ticker       string           `json:"ticker" binding:"required,min=1,max=20"`
	Quantity     float64          `json:"quantity" binding:"required,gt=0"`
	AvgBuyPrice  int64            `json:"avg_buy_price" binding:"required,gt=0"`
	AssetType    models.AssetType `json:"asset_type" binding:"omitempty,asset_type"`
	PurchaseDate *string          `json:"purchase_date"`
	Notes        string           `json:"notes" binding:"max=500"`
}

// UpdateInvestmentRequest represents the request payload for updating a holding.
type UpdateInvestmentRequest struct {
	Ticker       *string           `json:"ticker" binding:"omitempty,min=1,max=20"`
	Quantity     *float64          `json:"quantity" binding:"omitempty,gt=0"`
	AvgBuyPrice  *int64            `json:"avg_buy_price" binding:"omitempty,gt=0"`
	AssetType    *models.AssetType `json:"asset_type" binding:"omitempty,asset_type"`
	PurchaseDate *string           `json:"purchase_date"`
	Notes        *string           `json:"notes" binding:"omitempty,max=500"`
}

// AddInvestment handles adding a new holding.
// @Summary     Add investment
// @Description Add a holding. The ticker is upper-cased; asset type defaults to stock.
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddInvestmentRequest true "Holding details"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) AddInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.InvestmentInput{
		Ticker:      req.Ticker,
		Quantity:    req.Quantity,
		AvgBuyPrice: req.AvgBuyPrice,
		AssetType:   req.AssetType,
		Notes:       req.Notes,
	}
	if req.PurchaseDate != nil && *req.PurchaseDate != "" {
		parsed, parseErr := parseFlexibleTime(*req.PurchaseDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		input.PurchaseDate = &parsed
	}

	investment, err := h.investmentService.AddInvestment(userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_INVESTMENT", "investment", investment.ID, c.ClientIP(),
		map[string]interface{}{"ticker": investment.Ticker, "quantity": investment.Quantity, "asset_type": investment.AssetType})

	c.JSON(http.StatusCreated, gin.H{"investment": investment})
}

// GetInvestments handles listing holdings.
// @Summary     Get investments
// @Description Get a paginated, ticker-ordered list of holdings
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       asset_type query string false "Filter by asset type (stock, etf, bond, crypto, reit)"
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Investment] "Paginated investments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /investments [get]
func (h *InvestmentHandler) GetInvestments(c *gin.Context) {
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

	var assetType *models.AssetType
	if v := c.Query("asset_type"); v != "" {
		at := models.AssetType(v)
		switch at {
		case models.AssetTypeStock, models.AssetTypeETF, models.AssetTypeBond, models.AssetTypeCrypto, models.AssetTypeREIT:
			assetType = &at
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "asset_type must be one of stock, etf, bond, crypto, reit"))
			return
		}
	}

	result, err := h.investmentService.GetUserInvestments(userID, page, assetType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetInvestment handles retrieving a specific holding.
// @Summary     Get investment by ID
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} models.Investment "Investment details"
// @Failure     400 {object} ErrorResponse "Invalid investment ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id} [get]
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.investmentService.GetInvestmentByID(userID, investmentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment": investment})
}

// UpdateInvestment handles updating a holding.
// @Summary     Update investment
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                  true "Investment ID"
// @Param       request body UpdateInvestmentRequest true "Holding changes"
// @Success     200 {object} models.Investment "Updated investment"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.InvestmentUpdate{
		Ticker:      req.Ticker,
		Quantity:    req.Quantity,
		AvgBuyPrice: req.AvgBuyPrice,
		AssetType:   req.AssetType,
		Notes:       req.Notes,
	}
	if req.PurchaseDate != nil {
		parsed, parseErr := parseFlexibleTime(*req.PurchaseDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		update.PurchaseDate = &parsed
	}

	investment, err := h.investmentService.UpdateInvestment(userID, investmentID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_INVESTMENT", "investment", investmentID, c.ClientIP(),
		map[string]interface{}{"ticker": investment.Ticker, "quantity": investment.Quantity})

	c.JSON(http.StatusOK, gin.H{"investment": investment})
}

// DeleteInvestment handles deleting a holding.
// @Summary     Delete investment
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} MessageResponse "Investment deleted"
// @Failure     400 {object} ErrorResponse "Invalid investment ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.investmentService.DeleteInvestment(userID, investmentID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_INVESTMENT", "investment", investmentID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Investment deleted successfully"})
}

// GetPortfolio handles valuing every holding at market.
// @Summary     Get portfolio
// @Description Value each holding at the current market price. Holdings whose price lookup fails are returned with an error and excluded from the totals.
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Portfolio "Portfolio valuation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/portfolio [get]
func (h *InvestmentHandler) GetPortfolio(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	portfolio, err := h.investmentService.GetPortfolio(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"portfolio": portfolio})
}
