// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o internal/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/auth/register": {
			"post": {
				"description": "Register a new user with email and password",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Register a new user",
				"parameters": [
					{
						"description": "User registration data",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.RegisterRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "User registered and tokens generated"
					},
					"400": {
						"description": "Invalid input"
					},
					"409": {
						"description": "Email already registered"
					},
					"500": {
						"description": "Server error"
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"description": "Authenticate a user and get an access/refresh token pair",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Login user",
				"parameters": [
					{
						"description": "User login credentials",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "User authenticated and tokens generated"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Invalid credentials"
					},
					"403": {
						"description": "User inactive"
					},
					"500": {
						"description": "Server error"
					}
				}
			}
		},
		"/auth/refresh": {
			"post": {
				"description": "Exchange a valid refresh token for a new access/refresh token pair. The old refresh token is revoked.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Refresh tokens",
				"parameters": [
					{
						"description": "Refresh token",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.RefreshRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "New token pair"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Invalid token"
					},
					"403": {
						"description": "User inactive"
					}
				}
			}
		},
		"/profile": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Get the authenticated user's profile information",
				"produces": [
					"application/json"
				],
				"tags": [
					"user"
				],
				"summary": "Get user profile",
				"responses": {
					"200": {
						"description": "User profile"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "User not found"
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Update profile fields. Changing the password revokes outstanding refresh tokens.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"user"
				],
				"summary": "Update user profile",
				"parameters": [
					{
						"description": "Profile changes",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UpdateProfileRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Updated profile"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"409": {
						"description": "Email already registered"
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Permanently delete the authenticated user and everything they own",
				"produces": [
					"application/json"
				],
				"tags": [
					"user"
				],
				"summary": "Delete account",
				"responses": {
					"200": {
						"description": "Account deleted"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "User not found"
					}
				}
			}
		},
		"/budgets": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Create a monthly budget for a category. One budget per category and month.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"budgets"
				],
				"summary": "Create a budget",
				"parameters": [
					{
						"description": "Budget details",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CreateBudgetRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Budget created"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Category not found"
					},
					"409": {
						"description": "Duplicate budget"
					},
					"500": {
						"description": "Server error"
					}
				}
			},
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Get a paginated list of budgets, most recent period first",
				"produces": [
					"application/json"
				],
				"tags": [
					"budgets"
				],
				"summary": "Get budgets",
				"parameters": [
					{
						"description": "Filter by month (1-12)",
						"name": "month",
						"in": "query",
						"type": "integer"
					},
					{
						"description": "Filter by year",
						"name": "year",
						"in": "query",
						"type": "integer"
					},
					{
						"description": "Page number (default 1)",
						"name": "page",
						"in": "query",
						"type": "integer"
					},
					{
						"description": "Items per page (default 20, max 100)",
						"name": "page_size",
						"in": "query",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "Paginated budgets"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"500": {
						"description": "Server error"
					}
				}
			}
		},
		"/budgets/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"budgets"
				],
				"summary": "Get budget by ID",
				"parameters": [
					{
						"description": "Budget ID",
						"name": "id",
						"in": "path",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Budget details"
					},
					"400": {
						"description": "Invalid budget ID"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Budget not found"
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"budgets"
				],
				"summary": "Update budget",
				"parameters": [
					{
						"description": "Budget ID",
						"name": "id",
						"in": "path",
						"type": "string",
						"required": true
					},
					{
						"description": "Updated budget details",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UpdateBudgetRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Updated budget"
					},
					"400": {
						"description": "Invalid input or budget ID"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Budget not found"
					},
					"409": {
						"description": "Duplicate budget"
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"budgets"
				],
				"summary": "Delete budget",
				"parameters": [
					{
						"description": "Budget ID",
						"name": "id",
						"in": "path",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Budget deleted"
					},
					"400": {
						"description": "Invalid budget ID"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Budget not found"
					}
				}
			}
		},
		"/budgets/progress": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Spent, remaining and percentage used for each budget in a month. Defaults to the current month.",
				"produces": [
					"application/json"
				],
				"tags": [
					"budgets"
				],
				"summary": "Get budgets progress",
				"parameters": [
					{
						"description": "Month (1-12)",
						"name": "month",
						"in": "query",
						"type": "integer"
					},
					{
						"description": "Year (2000-2100)",
						"name": "year",
						"in": "query",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "Budget progress"
					},
					"400": {
						"description": "Invalid month or year"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			}
		},
		"/categories": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Create a new transaction category, optionally under a parent",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"categories"
				],
				"summary": "Create a category",
				"parameters": [
					{
						"description": "Category details",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CreateCategoryRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Category created"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Parent category not found"
					},
					"500": {
						"description": "Server error"
					}
				}
			},
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Get a paginated, name-ordered list of categories",
				"produces": [
					"application/json"
				],
				"tags": [
					"categories"
				],
				"summary": "Get categories",
				"parameters": [
					{
						"description": "Page number (default 1)",
						"name": "page",
						"in": "query",
						"type": "integer"
					},
					{
						"description": "Items per page (default 20, max 100)",
						"name": "page_size",
						"in": "query",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "Paginated categories"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			}
		},
		"/categories/tree": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Get all categories nested under their parents, siblings ordered by name",
				"produces": [
					"application/json"
				],
				"tags": [
					"categories"
				],
				"summary": "Get category tree",
				"responses": {
					"200": {
						"description": "Category tree"
					},
					"401": {
						"description": "Unauthorized"
					},
					"500": {
						"description": "Category hierarchy is inconsistent"
					}
				}
			}
		},
		"/categories/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"categories"
				],
				"summary": "Get category by ID",
				"parameters": [
					{
						"description": "Category ID",
						"name": "id",
						"in": "path",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Category details"
					},
					"400": {
						"description": "Invalid category ID"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Category not found"
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Rename or move a category. Moves are rejected when they would create a cycle.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"categories"
				],
				"summary": "Update category",
				"parameters": [
					{
						"description": "Category ID",
						"name": "id",
						"in": "path",
						"type": "string",
						"required": true
					},
					{
						"description": "Category changes",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UpdateCategoryRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Updated category"
					},
					"400": {
						"description": "Invalid input, self parent or cycle"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Category not found"
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Delete a category that has no children and no transactions. Its budgets are removed with it.",
				"produces": [
					"application/json"
				],
				"tags": [
					"categories"
				],
				"summary": "Delete category",
				"parameters": [
					{
						"description": "Category ID",
						"name": "id",
						"in": "path",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Category deleted"
					},
					"400": {
						"description": "Invalid category ID"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Category not found"
					},
					"409": {
						"description": "Category has children or transactions"
					}
				}
			}
		},
		"/goals": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Create a savings goal. A goal whose current amount already meets the target starts completed.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"goals"
				],
				"summary": "Create a goal",
				"parameters": [
					{
						"description": "Goal details",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CreateGoalRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Goal created"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			},
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Get a paginated list of goals ordered by deadline, goals without a deadline last",
				"produces": [
					"application/json"
				],
				"tags": [
					"goals"
				],
				"summary": "Get goals",
				"parameters": [
					{
						"description": "Filter by status (active, completed, abandoned)",
						"name": "status",
						"in": "query",
						"type": "string"
					},
					{
						"description": "Page number (default 1)",
						"name": "page",
						"in": "query",
						"type": "integer"
					},
					{
						"description": "Items per page (default 20, max 100)",
						"name": "page_size",
						"in": "query",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "Paginated goals"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			}
		},
		"/goals/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"goals"
				],
				"summary": "Get goal by ID",
				"parameters": [
					{
						"description": "Goal ID",
						"name": "id",
						"in": "path",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Goal details"
					},
					"400": {
						"description": "Invalid goal ID"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Goal not found"
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Partial update. Reaching the target marks the goal completed.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"goals"
				],
				"summary": "Update goal",
				"parameters": [
					{
						"description": "Goal ID",
						"name": "id",
						"in": "path",
						"type": "string",
						"required": true
					},
					{
						"description": "Goal changes",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UpdateGoalRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Updated goal"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Goal not found"
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"goals"
				],
				"summary": "Delete goal",
				"parameters": [
					{
						"description": "Goal ID",
						"name": "id",
						"in": "path",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Goal deleted"
					},
					"400": {
						"description": "Invalid goal ID"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Goal not found"
					}
				}
			}
		},
		"/investments": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Add a holding. The ticker is upper-cased; asset type defaults to stock.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"investments"
				],
				"summary": "Add investment",
				"parameters": [
					{
						"description": "Holding details",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.AddInvestmentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Investment created"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"500": {
						"description": "Server error"
					}
				}
			},
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Get a paginated, ticker-ordered list of holdings",
				"produces": [
					"application/json"
				],
				"tags": [
					"investments"
				],
				"summary": "Get investments",
				"parameters": [
					{
						"description": "Filter by asset type (stock, etf, bond, crypto, reit)",
						"name": "asset_type",
						"in": "query",
						"type": "string"
					},
					{
						"description": "Page number (default 1)",
						"name": "page",
						"in": "query",
						"type": "integer"
					},
					{
						"description": "Items per page (default 20, max 100)",
						"name": "page_size",
						"in": "query",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "Paginated investments"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			}
		},
		"/investments/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"investments"
				],
				"summary": "Get investment by ID",
				"parameters": [
					{
						"description": "Investment ID",
						"name": "id",
						"in": "path",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Investment details"
					},
					"400": {
						"description": "Invalid investment ID"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Investment not found"
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"investments"
				],
				"summary": "Update investment",
				"parameters": [
					{
						"description": "Investment ID",
						"name": "id",
						"in": "path",
						"type": "string",
						"required": true
					},
					{
						"description": "Holding changes",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UpdateInvestmentRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Updated investment"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Investment not found"
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"investments"
				],
				"summary": "Delete investment",
				"parameters": [
					{
						"description": "Investment ID",
						"name": "id",
						"in": "path",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Investment deleted"
					},
					"400": {
						"description": "Invalid investment ID"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Investment not found"
					}
				}
			}
		},
		"/investments/portfolio": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Value each holding at the current market price. Holdings whose price lookup fails are returned with an error and excluded from the totals.",
				"produces": [
					"application/json"
				],
				"tags": [
					"investments"
				],
				"summary": "Get portfolio",
				"responses": {
					"200": {
						"description": "Portfolio valuation"
					},
					"401": {
						"description": "Unauthorized"
					},
					"500": {
						"description": "Server error"
					}
				}
			}
		},
		"/transactions": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Create a new income or expense. Recurring transactions need a recurrence period.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"transactions"
				],
				"summary": "Create a transaction",
				"parameters": [
					{
						"description": "Transaction details",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CreateTransactionRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Transaction created"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Category not found"
					},
					"500": {
						"description": "Server error"
					}
				}
			},
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Get a paginated list of transactions, newest first, with optional filters",
				"produces": [
					"application/json"
				],
				"tags": [
					"transactions"
				],
				"summary": "Get transactions",
				"parameters": [
					{
						"description": "Page number (default 1)",
						"name": "page",
						"in": "query",
						"type": "integer"
					},
					{
						"description": "Items per page (default 20, max 100)",
						"name": "page_size",
						"in": "query",
						"type": "integer"
					},
					{
						"description": "Filter by start date (RFC3339 or YYYY-MM-DD)",
						"name": "from_date",
						"in": "query",
						"type": "string"
					},
					{
						"description": "Filter by end date, inclusive (RFC3339 or YYYY-MM-DD)",
						"name": "to_date",
						"in": "query",
						"type": "string"
					},
					{
						"description": "Filter by category ID",
						"name": "category_id",
						"in": "query",
						"type": "string"
					},
					{
						"description": "Filter by income (true) or expense (false)",
						"name": "is_income",
						"in": "query",
						"type": "boolean"
					}
				],
				"responses": {
					"200": {
						"description": "Paginated transactions"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"500": {
						"description": "Server error"
					}
				}
			}
		},
		"/transactions/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"transactions"
				],
				"summary": "Get transaction by ID",
				"parameters": [
					{
						"description": "Transaction ID",
						"name": "id",
						"in": "path",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Transaction details"
					},
					"400": {
						"description": "Invalid transaction ID"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Transaction not found"
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Update transaction fields. Setting is_recurring to false clears the recurrence period.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"transactions"
				],
				"summary": "Update transaction",
				"parameters": [
					{
						"description": "Transaction ID",
						"name": "id",
						"in": "path",
						"type": "string",
						"required": true
					},
					{
						"description": "Transaction changes",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UpdateTransactionRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Updated transaction"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Transaction or category not found"
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"transactions"
				],
				"summary": "Delete transaction",
				"parameters": [
					{
						"description": "Transaction ID",
						"name": "id",
						"in": "path",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Transaction deleted"
					},
					"400": {
						"description": "Invalid transaction ID"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Transaction not found"
					}
				}
			}
		},
		"/transactions/summary/monthly": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Get twelve monthly totals for a year (defaults to the current year)",
				"produces": [
					"application/json"
				],
				"tags": [
					"transactions"
				],
				"summary": "Monthly summary",
				"parameters": [
					{
						"description": "Year (2000-2100)",
						"name": "year",
						"in": "query",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "Year and twelve monthly entries"
					},
					"400": {
						"description": "Invalid year"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			}
		},
		"/transactions/export": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Download a workbook with a Transactions sheet and a monthly Summary sheet",
				"produces": [
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
				],
				"tags": [
					"transactions"
				],
				"summary": "Export transactions",
				"parameters": [
					{
						"description": "Year (2000-2100)",
						"name": "year",
						"in": "query",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "xlsx workbook"
					},
					"400": {
						"description": "Invalid year"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			}
		}
	},
	"definitions": {
		"handlers.RegisterRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string",
					"maxLength": 255
				},
				"password": {
					"type": "string",
					"minLength": 8,
					"maxLength": 128
				},
				"first_name": {
					"type": "string",
					"maxLength": 100
				},
				"last_name": {
					"type": "string",
					"maxLength": 100
				},
				"role": {
					"type": "string"
				}
			}
		},
		"handlers.LoginRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"handlers.RefreshRequest": {
			"type": "object",
			"required": [
				"refresh_token"
			],
			"properties": {
				"refresh_token": {
					"type": "string"
				}
			}
		},
		"handlers.UpdateProfileRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string",
					"maxLength": 255
				},
				"password": {
					"type": "string",
					"minLength": 8,
					"maxLength": 128
				},
				"first_name": {
					"type": "string",
					"maxLength": 100
				},
				"last_name": {
					"type": "string",
					"maxLength": 100
				},
				"currency": {
					"type": "string"
				},
				"timezone": {
					"type": "string"
				},
				"role": {
					"type": "string"
				}
			}
		},
		"handlers.CreateBudgetRequest": {
			"type": "object",
			"required": [
				"category_id",
				"amount",
				"month",
				"year"
			],
			"properties": {
				"category_id": {
					"type": "string"
				},
				"amount": {
					"type": "integer"
				},
				"month": {
					"type": "integer",
					"minimum": 1,
					"maximum": 12
				},
				"year": {
					"type": "integer",
					"minimum": 2000,
					"maximum": 2100
				}
			}
		},
		"handlers.UpdateBudgetRequest": {
			"type": "object",
			"properties": {
				"category_id": {
					"type": "string"
				},
				"amount": {
					"type": "integer"
				},
				"month": {
					"type": "integer",
					"minimum": 1,
					"maximum": 12
				},
				"year": {
					"type": "integer",
					"minimum": 2000,
					"maximum": 2100
				}
			}
		},
		"handlers.CreateCategoryRequest": {
			"type": "object",
			"required": [
				"name"
			],
			"properties": {
				"name": {
					"type": "string",
					"minLength": 1,
					"maxLength": 100
				},
				"parent_id": {
					"type": "string"
				}
			}
		},
		"handlers.UpdateCategoryRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"minLength": 1,
					"maxLength": 100
				},
				"parent_id": {
					"type": "string"
				},
				"clear_parent": {
					"type": "boolean"
				}
			}
		},
		"handlers.CreateGoalRequest": {
			"type": "object",
			"required": [
				"name",
				"target_amount"
			],
			"properties": {
				"name": {
					"type": "string",
					"minLength": 1,
					"maxLength": 100
				},
				"description": {
					"type": "string",
					"maxLength": 500
				},
				"target_amount": {
					"type": "integer"
				},
				"current_amount": {
					"type": "integer",
					"minimum": 0
				},
				"deadline": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"handlers.UpdateGoalRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"minLength": 1,
					"maxLength": 100
				},
				"description": {
					"type": "string",
					"maxLength": 500
				},
				"target_amount": {
					"type": "integer"
				},
				"current_amount": {
					"type": "integer",
					"minimum": 0
				},
				"deadline": {
					"type": "string"
				},
				"clear_deadline": {
					"type": "boolean"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"handlers.AddInvestmentRequest": {
			"type": "object",
			"required": [
				"ticker",
				"quantity",
				"avg_buy_price"
			],
			"properties": {
				"ticker": {
					"type": "string",
					"minLength": 1,
					"maxLength": 20
				},
				"quantity": {
					"type": "number"
				},
				"avg_buy_price": {
					"type": "integer"
				},
				"asset_type": {
					"type": "string"
				},
				"purchase_date": {
					"type": "string"
				},
				"notes": {
					"type": "string",
					"maxLength": 500
				}
			}
		},
		"handlers.UpdateInvestmentRequest": {
			"type": "object",
			"properties": {
				"ticker": {
					"type": "string",
					"minLength": 1,
					"maxLength": 20
				},
				"quantity": {
					"type": "number"
				},
				"avg_buy_price": {
					"type": "integer"
				},
				"asset_type": {
					"type": "string"
				},
				"purchase_date": {
					"type": "string"
				},
				"notes": {
					"type": "string",
					"maxLength": 500
				}
			}
		},
		"handlers.CreateTransactionRequest": {
			"type": "object",
			"required": [
				"category_id",
				"amount"
			],
			"properties": {
				"category_id": {
					"type": "string"
				},
				"amount": {
					"type": "integer"
				},
				"description": {
					"type": "string",
					"maxLength": 500
				},
				"date": {
					"type": "string"
				},
				"is_income": {
					"type": "boolean"
				},
				"is_recurring": {
					"type": "boolean"
				},
				"recurrence_period": {
					"type": "string"
				}
			}
		},
		"handlers.UpdateTransactionRequest": {
			"type": "object",
			"properties": {
				"category_id": {
					"type": "string"
				},
				"amount": {
					"type": "integer"
				},
				"description": {
					"type": "string",
					"maxLength": 500
				},
				"date": {
					"type": "string"
				},
				"is_income": {
					"type": "boolean"
				},
				"is_recurring": {
					"type": "boolean"
				},
				"recurrence_period": {
					"type": "string"
				}
			}
		},
		"handlers.ErrorDetail": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"handlers.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"$ref": "#/definitions/handlers.ErrorDetail"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and JWT token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Finpace API",
	Description:      "Finpace is a personal finance API for categories, transactions, budgets, savings goals and investment holdings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
