package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "finpace/internal/errors"
	"finpace/internal/logger"
	"finpace/internal/models"
	"finpace/internal/pagination"
	"finpace/internal/pricing"
)

var hundred = decimal.NewFromInt(100)

// investmentService handles investment-related business logic.
type investmentService struct {
	db      *gorm.DB
	fetcher pricing.Fetcher
}

// NewInvestmentService creates a new InvestmentServicer that values holdings
// with fetcher.
func NewInvestmentService(db *gorm.DB, fetcher pricing.Fetcher) InvestmentServicer {
	return &investmentService{db: db, fetcher: fetcher}
}

func validateInvestment(inv models.Investment) error {
	if inv.Ticker == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "ticker is required")
	}
	if inv.Quantity <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be greater than zero")
	}
	if inv.AvgBuyPrice <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "avg_buy_price must be greater than zero")
	}
	switch inv.AssetType {
	case models.AssetTypeStock, models.AssetTypeETF, models.AssetTypeBond, models.AssetTypeCrypto, models.AssetTypeREIT:
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid asset type")
	}
	return nil
}

// AddInvestment records a new holding. Tickers are stored upper-case and the
// asset type defaults to stock.
func (s *investmentService) AddInvestment(userID string, input InvestmentInput) (*models.Investment, error) {
	assetType := input.AssetType
	if assetType == "" {
		assetType = models.AssetTypeStock
	}

	investment := &models.Investment{
		UserID:       userID,
		Ticker:       strings.ToUpper(strings.TrimSpace(input.Ticker)),
		Quantity:     input.Quantity,
		AvgBuyPrice:  input.AvgBuyPrice,
		AssetType:    assetType,
		PurchaseDate: input.PurchaseDate,
		Notes:        input.Notes,
	}
	if err := validateInvestment(*investment); err != nil {
		return nil, err
	}

	if err := s.db.Create(investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investment, nil
}

// GetUserInvestments returns a paginated list of holdings ordered by ticker.
func (s *investmentService) GetUserInvestments(userID string, page pagination.PageRequest, assetType *models.AssetType) (*pagination.PageResponse[models.Investment], error) {
	base := s.db.Model(&models.Investment{}).Where("user_id = ?", userID)
	if assetType != nil {
		base = base.Where("asset_type = ?", *assetType)
	}
	base = base.Order("ticker, id")

	result, err := pagination.Find[models.Investment](base, page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// GetInvestmentByID returns a holding if it belongs to the user.
func (s *investmentService) GetInvestmentByID(userID, investmentID string) (*models.Investment, error) {
	var investment models.Investment
	if err := findOwned(s.db, &investment, userID, investmentID, apperrors.ErrInvestmentNotFound); err != nil {
		return nil, err
	}
	return &investment, nil
}

// UpdateInvestment applies the provided fields.
func (s *investmentService) UpdateInvestment(userID, investmentID string, update InvestmentUpdate) (*models.Investment, error) {
	investment, err := s.GetInvestmentByID(userID, investmentID)
	if err != nil {
		return nil, err
	}

	next := *investment
	if update.Ticker != nil {
		next.Ticker = strings.ToUpper(strings.TrimSpace(*update.Ticker))
	}
	if update.Quantity != nil {
		next.Quantity = *update.Quantity
	}
	if update.AvgBuyPrice != nil {
		next.AvgBuyPrice = *update.AvgBuyPrice
	}
	if update.AssetType != nil {
		next.AssetType = *update.AssetType
	}
	if update.PurchaseDate != nil {
		next.PurchaseDate = update.PurchaseDate
	}
	if update.Notes != nil {
		next.Notes = *update.Notes
	}
	if err := validateInvestment(next); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"ticker":        next.Ticker,
		"quantity":      next.Quantity,
		"avg_buy_price": next.AvgBuyPrice,
		"asset_type":    next.AssetType,
		"purchase_date": next.PurchaseDate,
		"notes":         next.Notes,
	}
	if err := s.db.Model(&models.Investment{}).
		Where("id = ? AND user_id = ?", investment.ID, userID).
		Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetInvestmentByID(userID, investmentID)
}

// DeleteInvestment hard-deletes a holding.
func (s *investmentService) DeleteInvestment(userID, investmentID string) error {
	result := s.db.Where("id = ? AND user_id = ?", investmentID, userID).Delete(&models.Investment{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrInvestmentNotFound
	}
	return nil
}

// GetPortfolio values every holding of the user at current market prices.
// Prices are looked up concurrently; a failed lookup marks that holding
// unpriced and leaves it out of the totals.
func (s *investmentService) GetPortfolio(ctx context.Context, userID string) (*Portfolio, error) {
	var investments []models.Investment
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("ticker, id").
		Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	quotes := s.fetchQuotes(ctx, investments)

	portfolio := &Portfolio{
		Holdings:       make([]HoldingValuation, 0, len(investments)),
		HoldingsByType: make(map[models.AssetType]TypeSummary),
	}

	totalCost := decimal.Zero
	totalValue := decimal.Zero

	for i, inv := range investments {
		quantity := decimal.NewFromFloat(inv.Quantity)
		cost := quantity.Mul(decimal.NewFromInt(inv.AvgBuyPrice)).Round(0)

		holding := HoldingValuation{
			Investment: inv,
			CostBasis:  cost.IntPart(),
		}

		ts := portfolio.HoldingsByType[inv.AssetType]
		ts.Count++

		q := quotes[i]
		if q.err != nil {
			logger.Get().Warnw("price lookup failed",
				"ticker", inv.Ticker,
				"asset_type", inv.AssetType,
				"error", q.err,
			)
			holding.Error = q.err.Error()
			portfolio.UnpricedHoldings++
			portfolio.HoldingsByType[inv.AssetType] = ts
			portfolio.Holdings = append(portfolio.Holdings, holding)
			continue
		}

		value := quantity.Mul(decimal.NewFromInt(q.price)).Round(0)
		pl := value.Sub(cost)
		fetchedAt := q.at

		holding.CurrentPrice = q.price
		holding.MarketValue = value.IntPart()
		holding.ProfitLoss = pl.IntPart()
		holding.ProfitLossPercentage = percentOf(pl, cost)
		holding.LastUpdated = &fetchedAt

		totalCost = totalCost.Add(cost)
		totalValue = totalValue.Add(value)
		portfolio.PricedHoldings++

		ts.MarketValue += holding.MarketValue
		portfolio.HoldingsByType[inv.AssetType] = ts
		portfolio.Holdings = append(portfolio.Holdings, holding)
	}

	totalPL := totalValue.Sub(totalCost)
	portfolio.TotalCost = totalCost.IntPart()
	portfolio.TotalMarketValue = totalValue.IntPart()
	portfolio.TotalProfitLoss = totalPL.IntPart()
	portfolio.TotalProfitLossPct = percentOf(totalPL, totalCost)

	return portfolio, nil
}

// maxPriceLookups bounds concurrent requests to the price provider.
const maxPriceLookups = 4

type quote struct {
	price int64
	at    time.Time
	err   error
}

// fetchQuotes prices every investment, keeping results in input order.
// Lookup errors are recorded per holding and never cancel the others.
func (s *investmentService) fetchQuotes(ctx context.Context, investments []models.Investment) []quote {
	quotes := make([]quote, len(investments))

	var g errgroup.Group
	g.SetLimit(maxPriceLookups)
	for i, inv := range investments {
		g.Go(func() error {
			price, err := s.fetcher.FetchPrice(ctx, inv.Ticker, inv.AssetType)
			quotes[i] = quote{price: price, at: time.Now().UTC(), err: err}
			return nil
		})
	}
	_ = g.Wait()

	return quotes
}

func percentOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).Round(2).InexactFloat64()
}
