package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"finpace/internal/models"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an owner with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates an owner with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Currency: "USD",
		Timezone: "UTC",
		Role:     models.UserRoleOwner,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category, optionally under parentID.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string, parentID *string) *models.Category {
	t.Helper()
	return CreateTestCategoryNamed(t, db, userID, fmt.Sprintf("Test Category %d", nextID()), parentID)
}

// CreateTestCategoryNamed creates a category with the given name.
func CreateTestCategoryNamed(t *testing.T, db *gorm.DB, userID, name string, parentID *string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID:   userID,
		Name:     name,
		ParentID: parentID,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a non-recurring transaction (amount in cents).
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, categoryID string, amount int64, isIncome bool, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Date:        date.UTC(),
		IsIncome:    isIncome,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates a $100.00 budget for the given category and period.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, categoryID string, month, year int) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     10000,
		Month:      month,
		Year:       year,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestGoal creates an active goal with the given amounts.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string, target, current int64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:        userID,
		Name:          fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  target,
		CurrentAmount: current,
		Status:        models.GoalStatusActive,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestInvestment creates a holding of 10 units bought at $100.00.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID string, assetType models.AssetType) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		UserID:      userID,
		Ticker:      fmt.Sprintf("TST%d", nextID()),
		Quantity:    10,
		AvgBuyPrice: 10000,
		AssetType:   assetType,
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
