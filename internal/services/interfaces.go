package services

import (
	"context"
	"time"

	"finpace/internal/hierarchy"
	"finpace/internal/models"
	"finpace/internal/pagination"
	"finpace/internal/progress"
)

// UserUpdate holds optional profile changes. Nil fields are left unchanged.
type UserUpdate struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	Currency  *string
	Timezone  *string
	Role      *models.UserRole
	IsActive  *bool
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string, role models.UserRole) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	UpdateUser(userID string, update UserUpdate) (*models.User, error)
	DeleteUser(userID string) error
	StoreRefreshTokenHash(userID string, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// CategoryUpdate holds optional category changes. ClearParent moves the
// category to the root and wins over ParentID.
type CategoryUpdate struct {
	Name        *string
	ParentID    *string
	ClearParent bool
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string, parentID *string) (*models.Category, error)
	GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryTree(userID string) ([]*hierarchy.Node, error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID string, update CategoryUpdate) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionInput holds the fields of a new transaction.
type TransactionInput struct {
	CategoryID       string
	Amount           int64
	Description      string
	Date             time.Time
	IsIncome         bool
	IsRecurring      bool
	RecurrencePeriod *models.RecurrencePeriod
}

// TransactionUpdate holds optional transaction changes.
type TransactionUpdate struct {
	CategoryID       *string
	Amount           *int64
	Description      *string
	Date             *time.Time
	IsIncome         *bool
	IsRecurring      *bool
	RecurrencePeriod *models.RecurrencePeriod
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	CategoryID *string
	IsIncome   *bool
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, input TransactionInput) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	GetYearTransactions(userID string, year int) ([]models.Transaction, error)
	GetMonthlySummary(userID string, year int) ([]progress.MonthSummary, error)
}

// BudgetUpdate holds optional budget changes.
type BudgetUpdate struct {
	CategoryID *string
	Amount     *int64
	Month      *int
	Year       *int
}

// BudgetFilter holds optional filter parameters for listing budgets.
type BudgetFilter struct {
	Month *int
	Year  *int
}

// BudgetStatus is one budget with its spending for the budget's month.
type BudgetStatus struct {
	BudgetID     string `json:"budget_id"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	Amount       int64  `json:"amount"`
	progress.BudgetProgress
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, categoryID string, amount int64, month, year int) (*models.Budget, error)
	GetUserBudgets(userID string, page pagination.PageRequest, filter BudgetFilter) (*pagination.PageResponse[models.Budget], error)
	GetBudgetByID(userID, budgetID string) (*models.Budget, error)
	UpdateBudget(userID, budgetID string, update BudgetUpdate) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
	GetBudgetsProgress(userID string, month, year int) ([]BudgetStatus, error)
}

// GoalInput holds the fields of a new goal.
type GoalInput struct {
	Name          string
	Description   string
	TargetAmount  int64
	CurrentAmount int64
	Deadline      *time.Time
	Status        models.GoalStatus
}

// GoalView is a goal with its computed progress.
type GoalView struct {
	models.Goal
	ProgressPercentage float64 `json:"progress_percentage"`
}

// GoalServicer defines the contract for goal-related business logic.
type GoalServicer interface {
	CreateGoal(userID string, input GoalInput) (*GoalView, error)
	GetUserGoals(userID string, page pagination.PageRequest, status *models.GoalStatus) (*pagination.PageResponse[GoalView], error)
	GetGoalByID(userID, goalID string) (*GoalView, error)
	UpdateGoal(userID, goalID string, update progress.GoalUpdate) (*GoalView, error)
	DeleteGoal(userID, goalID string) error
}

// InvestmentInput holds the fields of a new holding.
type InvestmentInput struct {
	Ticker       string
	Quantity     float64
	AvgBuyPrice  int64
	AssetType    models.AssetType
	PurchaseDate *time.Time
	Notes        string
}

// InvestmentUpdate holds optional holding changes.
type InvestmentUpdate struct {
	Ticker       *string
	Quantity     *float64
	AvgBuyPrice  *int64
	AssetType    *models.AssetType
	PurchaseDate *time.Time
	Notes        *string
}

// HoldingValuation is one holding priced at market. When the price lookup
// fails the market fields are zero and Error explains why.
type HoldingValuation struct {
	models.Investment
	CostBasis            int64      `json:"cost_basis"`
	CurrentPrice         int64      `json:"current_price"`
	MarketValue          int64      `json:"market_value"`
	ProfitLoss           int64      `json:"profit_loss"`
	ProfitLossPercentage float64    `json:"profit_loss_percentage"`
	LastUpdated          *time.Time `json:"last_updated"`
	Error                string     `json:"error,omitempty"`
}

// TypeSummary contains summary data for a single asset type.
type TypeSummary struct {
	MarketValue int64 `json:"market_value"`
	Count       int   `json:"count"`
}

// Portfolio is every holding of a user valued at market. Totals cover only
// the holdings that were priced successfully.
type Portfolio struct {
	Holdings           []HoldingValuation               `json:"holdings"`
	TotalCost          int64                            `json:"total_cost"`
	TotalMarketValue   int64                            `json:"total_market_value"`
	TotalProfitLoss    int64                            `json:"total_profit_loss"`
	TotalProfitLossPct float64                          `json:"total_profit_loss_percentage"`
	HoldingsByType     map[models.AssetType]TypeSummary `json:"holdings_by_type"`
	PricedHoldings     int                              `json:"priced_holdings"`
	UnpricedHoldings   int                              `json:"unpriced_holdings"`
}

// InvestmentServicer defines the contract for investment-related business logic.
type InvestmentServicer interface {
	AddInvestment(userID string, input InvestmentInput) (*models.Investment, error)
	GetUserInvestments(userID string, page pagination.PageRequest, assetType *models.AssetType) (*pagination.PageResponse[models.Investment], error)
	GetInvestmentByID(userID, investmentID string) (*models.Investment, error)
	UpdateInvestment(userID, investmentID string, update InvestmentUpdate) (*models.Investment, error)
	DeleteInvestment(userID, investmentID string) error
	GetPortfolio(ctx context.Context, userID string) (*Portfolio, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
