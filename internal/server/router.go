// Package server wires services, handlers and middleware into the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "finpace/internal/docs" // Import swagger docs
	"finpace/internal/handlers"
	"finpace/internal/middleware"
	"finpace/internal/pricing"
	"finpace/internal/services"
)

// Services bundles every service the API depends on.
type Services struct {
	User        services.UserServicer
	Category    services.CategoryServicer
	Transaction services.TransactionServicer
	Budget      services.BudgetServicer
	Goal        services.GoalServicer
	Investment  services.InvestmentServicer
	Audit       services.AuditServicer
}

// NewServices builds the production services on top of db.
func NewServices(db *gorm.DB, fetcher pricing.Fetcher) Services {
	categoryService := services.NewCategoryService(db)
	return Services{
		User:        services.NewUserService(db),
		Category:    categoryService,
		Transaction: services.NewTransactionService(db, categoryService),
		Budget:      services.NewBudgetService(db, categoryService),
		Goal:        services.NewGoalService(db),
		Investment:  services.NewInvestmentService(db, fetcher),
		Audit:       services.NewAuditService(db),
	}
}

// NewRouter returns the gin engine serving the whole API.
func NewRouter(svc Services, corsOrigins []string) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.User, svc.Audit)
	categoryHandler := handlers.NewCategoryHandler(svc.Category, svc.Audit)
	transactionHandler := handlers.NewTransactionHandler(svc.Transaction, svc.Audit)
	budgetHandler := handlers.NewBudgetHandler(svc.Budget, svc.Audit)
	goalHandler := handlers.NewGoalHandler(svc.Goal, svc.Audit)
	investmentHandler := handlers.NewInvestmentHandler(svc.Investment, svc.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(corsOrigins))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(svc.User))
	protected.Use(middleware.RequireOwner())

	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile", authHandler.UpdateProfile)
	protected.DELETE("/profile", authHandler.DeleteProfile)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetUserCategories)
	categories.GET("/tree", categoryHandler.GetCategoryTree)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/summary/monthly", transactionHandler.GetMonthlySummary)
	transactions.GET("/export", transactionHandler.ExportTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/progress", budgetHandler.GetBudgetsProgress)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	investments := protected.Group("/investments")
	investments.POST("", investmentHandler.AddInvestment)
	investments.GET("", investmentHandler.GetInvestments)
	investments.GET("/portfolio", investmentHandler.GetPortfolio)
	investments.GET("/:id", investmentHandler.GetInvestment)
	investments.PUT("/:id", investmentHandler.UpdateInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	return router
}
