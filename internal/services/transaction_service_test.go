package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"finpace/internal/models"
	"finpace/internal/pagination"
	"finpace/internal/testutil"
)

func newTestTransactionService(db *gorm.DB) TransactionServicer {
	return NewTransactionService(db, NewCategoryService(db))
}

func TestCreateTransaction(t *testing.T) {
	t.Run("expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategoryNamed(t, db, user.ID, "Food", nil)

		tx, err := svc.CreateTransaction(user.ID, TransactionInput{
			CategoryID:  cat.ID,
			Amount:      2500,
			Description: "Lunch",
			Date:        testDate(2024, 3, 5),
		})
		testutil.AssertNoError(t, err)

		if tx.ID == "" {
			t.Fatal("expected transaction ID to be assigned")
		}
		if tx.Amount != 2500 || tx.IsIncome {
			t.Errorf("unexpected transaction: amount=%d income=%v", tx.Amount, tx.IsIncome)
		}
		if tx.CategoryName != "Food" {
			t.Errorf("expected category name Food, got %q", tx.CategoryName)
		}
	})

	t.Run("defaults_date_to_now", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, nil)

		before := time.Now().Add(-time.Minute)
		tx, err := svc.CreateTransaction(user.ID, TransactionInput{CategoryID: cat.ID, Amount: 100})
		testutil.AssertNoError(t, err)
		if tx.Date.Before(before) {
			t.Errorf("expected date defaulted to now, got %s", tx.Date)
		}
	})

	t.Run("recurring", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, nil)

		monthly := models.RecurrenceMonthly
		tx, err := svc.CreateTransaction(user.ID, TransactionInput{
			CategoryID:       cat.ID,
			Amount:           120000,
			Date:             testDate(2024, 1, 1),
			IsRecurring:      true,
			RecurrencePeriod: &monthly,
		})
		testutil.AssertNoError(t, err)
		if !tx.IsRecurring || tx.RecurrencePeriod == nil || *tx.RecurrencePeriod != monthly {
			t.Errorf("expected monthly recurrence, got %v %v", tx.IsRecurring, tx.RecurrencePeriod)
		}
	})

	t.Run("invalid_input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, nil)
		weekly := models.RecurrenceWeekly

		tests := []struct {
			name  string
			input TransactionInput
		}{
			{"zero_amount", TransactionInput{CategoryID: cat.ID, Amount: 0}},
			{"negative_amount", TransactionInput{CategoryID: cat.ID, Amount: -5}},
			{"recurring_without_period", TransactionInput{CategoryID: cat.ID, Amount: 5, IsRecurring: true}},
			{"period_without_recurring", TransactionInput{CategoryID: cat.ID, Amount: 5, RecurrencePeriod: &weekly}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.CreateTransaction(user.ID, tt.input)
				testutil.AssertAppError(t, err, "INVALID_INPUT")
			})
		}
	})

	t.Run("category_of_other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		foreign := testutil.CreateTestCategory(t, db, other.ID, nil)

		_, err := svc.CreateTransaction(user.ID, TransactionInput{CategoryID: foreign.ID, Amount: 100})
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestCreateTransaction_CategoryDeletedAfterCheck(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestTransactionService(db)
	user := testutil.CreateTestUser(t, db)
	cat := testutil.CreateTestCategory(t, db, user.ID, nil)

	deleted := false
	err := db.Callback().Create().Before("gorm:create").Register("test:delete_category", func(tx *gorm.DB) {
		if deleted || tx.Statement.Table != "transactions" {
			return
		}
		deleted = true
		if err := tx.Session(&gorm.Session{NewDB: true}).Delete(&models.Category{}, "id = ?", cat.ID).Error; err != nil {
			t.Errorf("failed to delete category: %v", err)
		}
	})
	testutil.AssertNoError(t, err)

	_, err = svc.CreateTransaction(user.ID, TransactionInput{CategoryID: cat.ID, Amount: 100, Date: testDate(2024, 1, 2)})
	testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	testutil.AssertRowCount(t, db, &models.Transaction{}, 0, "user_id = ?", user.ID)
}

func TestGetUserTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestTransactionService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	food := testutil.CreateTestCategory(t, db, user.ID, nil)
	salary := testutil.CreateTestCategory(t, db, user.ID, nil)

	jan := testutil.CreateTestTransaction(t, db, user.ID, food.ID, 100, false, testDate(2024, 1, 10))
	feb := testutil.CreateTestTransaction(t, db, user.ID, food.ID, 200, false, testDate(2024, 2, 10))
	mar := testutil.CreateTestTransaction(t, db, user.ID, salary.ID, 5000, true, testDate(2024, 3, 10))
	otherCat := testutil.CreateTestCategory(t, db, other.ID, nil)
	testutil.CreateTestTransaction(t, db, other.ID, otherCat.ID, 999, false, testDate(2024, 2, 1))

	t.Run("newest_first", func(t *testing.T) {
		page, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 3 {
			t.Fatalf("expected 3 transactions, got %d", page.TotalItems)
		}
		if page.Data[0].ID != mar.ID || page.Data[2].ID != jan.ID {
			t.Errorf("expected newest first, got %s..%s", page.Data[0].ID, page.Data[2].ID)
		}
	})

	t.Run("date_range", func(t *testing.T) {
		from := testDate(2024, 2, 1)
		to := testDate(2024, 2, 28)
		page, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{FromDate: &from, ToDate: &to})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 1 || page.Data[0].ID != feb.ID {
			t.Errorf("expected only the February transaction, got %+v", page.Data)
		}
	})

	t.Run("category_and_income", func(t *testing.T) {
		income := true
		page, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{IsIncome: &income})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 1 || page.Data[0].ID != mar.ID {
			t.Errorf("expected only income, got %+v", page.Data)
		}

		page, err = svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{CategoryID: &food.ID})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 2 {
			t.Errorf("expected 2 food transactions, got %d", page.TotalItems)
		}
	})

	t.Run("paginated", func(t *testing.T) {
		page, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{Page: 2, PageSize: 2}, TransactionFilter{})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 1 || page.TotalPages != 2 {
			t.Errorf("expected 1 item on page 2 of 2, got %d items, %d pages", len(page.Data), page.TotalPages)
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, nil)
		created := testutil.CreateTestTransaction(t, db, user.ID, cat.ID, 100, false, testDate(2024, 1, 1))

		updated, err := svc.UpdateTransaction(user.ID, created.ID, TransactionUpdate{Amount: testutil.Ptr(int64(750))})
		testutil.AssertNoError(t, err)
		if updated.Amount != 750 {
			t.Errorf("expected amount 750, got %d", updated.Amount)
		}
		if updated.Description != created.Description {
			t.Errorf("description should be unchanged")
		}
	})

	t.Run("stop_recurring_clears_period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, nil)

		yearly := models.RecurrenceYearly
		created, err := svc.CreateTransaction(user.ID, TransactionInput{
			CategoryID: cat.ID, Amount: 100, Date: testDate(2024, 1, 1),
			IsRecurring: true, RecurrencePeriod: &yearly,
		})
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateTransaction(user.ID, created.ID, TransactionUpdate{IsRecurring: testutil.Ptr(false)})
		testutil.AssertNoError(t, err)
		if updated.IsRecurring || updated.RecurrencePeriod != nil {
			t.Errorf("expected recurrence cleared, got %v %v", updated.IsRecurring, updated.RecurrencePeriod)
		}
	})

	t.Run("start_recurring_requires_period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, nil)
		created := testutil.CreateTestTransaction(t, db, user.ID, cat.ID, 100, false, testDate(2024, 1, 1))

		_, err := svc.UpdateTransaction(user.ID, created.ID, TransactionUpdate{IsRecurring: testutil.Ptr(true)})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("move_to_foreign_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, nil)
		foreign := testutil.CreateTestCategory(t, db, other.ID, nil)
		created := testutil.CreateTestTransaction(t, db, user.ID, cat.ID, 100, false, testDate(2024, 1, 1))

		_, err := svc.UpdateTransaction(user.ID, created.ID, TransactionUpdate{CategoryID: &foreign.ID})
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateTransaction(user.ID, "0190a0b0-0000-7000-8000-000000000000", TransactionUpdate{})
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestDeleteTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestTransactionService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	cat := testutil.CreateTestCategory(t, db, user.ID, nil)
	created := testutil.CreateTestTransaction(t, db, user.ID, cat.ID, 100, false, testDate(2024, 1, 1))

	testutil.AssertAppError(t, svc.DeleteTransaction(other.ID, created.ID), "TRANSACTION_NOT_FOUND")
	testutil.AssertNoError(t, svc.DeleteTransaction(user.ID, created.ID))

	_, err := svc.GetTransactionByID(user.ID, created.ID)
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
}

func TestGetMonthlySummary(t *testing.T) {
	t.Run("empty_year_has_twelve_zero_months", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		summary, err := svc.GetMonthlySummary(user.ID, 2024)
		testutil.AssertNoError(t, err)
		if len(summary) != 12 {
			t.Fatalf("expected 12 months, got %d", len(summary))
		}
		for i, m := range summary {
			if m.Month != i+1 || m.Income != 0 || m.Expenses != 0 || m.Savings != 0 {
				t.Errorf("month %d: unexpected %+v", i+1, m)
			}
		}
	})

	t.Run("sums_by_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, nil)

		testutil.CreateTestTransaction(t, db, user.ID, cat.ID, 1000, true, testDate(2024, 3, 1))
		testutil.CreateTestTransaction(t, db, user.ID, cat.ID, 400, false, testDate(2024, 3, 20))
		testutil.CreateTestTransaction(t, db, user.ID, cat.ID, 9999, false, testDate(2023, 3, 20))

		summary, err := svc.GetMonthlySummary(user.ID, 2024)
		testutil.AssertNoError(t, err)

		march := summary[2]
		if march.Income != 1000 || march.Expenses != 400 || march.Savings != 600 {
			t.Errorf("unexpected March summary: %+v", march)
		}
		if summary[1].Expenses != 0 {
			t.Errorf("February should be empty: %+v", summary[1])
		}
	})

	t.Run("invalid_year", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetMonthlySummary(user.ID, 1999)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
