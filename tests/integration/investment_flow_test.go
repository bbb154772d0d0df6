package integration

import (
	"net/http"
	"testing"
)

func TestInvestmentFlow_Portfolio(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "invest@test.com", "password123")

	// Step 1: Add a stock bought at 40.00 and a coin bought at 120.00
	rec := app.request(http.MethodPost, "/api/v1/investments",
		`{"ticker":"ACME","quantity":10,"avg_buy_price":4000,"asset_type":"stock","purchase_date":"2024-01-15"}`, token)
	expectStatus(t, rec, http.StatusCreated)
	stockID := parseJSON(t, rec)["investment"].(map[string]interface{})["id"].(string)

	rec = app.request(http.MethodPost, "/api/v1/investments",
		`{"ticker":"COIN","quantity":2,"avg_buy_price":12000,"asset_type":"crypto"}`, token)
	expectStatus(t, rec, http.StatusCreated)

	// Step 2: The static provider prices stock at 50.00 and crypto at 100.00
	rec = app.request(http.MethodGet, "/api/v1/investments/portfolio", "", token)
	expectStatus(t, rec, http.StatusOK)
	portfolio := parseJSON(t, rec)["portfolio"].(map[string]interface{})

	checks := map[string]float64{
		"total_cost":                   64000,
		"total_market_value":           70000,
		"total_profit_loss":            6000,
		"total_profit_loss_percentage": 9.38,
		"priced_holdings":              2,
		"unpriced_holdings":            0,
	}
	for key, want := range checks {
		if got := portfolio[key].(float64); got != want {
			t.Errorf("%s: expected %v, got %v", key, want, got)
		}
	}

	byType := portfolio["holdings_by_type"].(map[string]interface{})
	crypto := byType["crypto"].(map[string]interface{})
	if crypto["market_value"].(float64) != 20000 || crypto["count"].(float64) != 1 {
		t.Errorf("unexpected crypto summary: %v", crypto)
	}

	// Step 3: Update the stock position and filter by asset type
	rec = app.request(http.MethodPut, "/api/v1/investments/"+stockID, `{"quantity":20}`, token)
	expectStatus(t, rec, http.StatusOK)
	if qty := parseJSON(t, rec)["investment"].(map[string]interface{})["quantity"].(float64); qty != 20 {
		t.Errorf("expected quantity 20, got %v", qty)
	}

	rec = app.request(http.MethodGet, "/api/v1/investments?asset_type=stock", "", token)
	expectStatus(t, rec, http.StatusOK)
	if total := parseJSON(t, rec)["total_items"].(float64); total != 1 {
		t.Errorf("expected 1 stock holding, got %.0f", total)
	}

	rec = app.request(http.MethodGet, "/api/v1/investments?asset_type=nft", "", token)
	expectStatus(t, rec, http.StatusBadRequest)

	// Step 4: Delete and the portfolio shrinks
	rec = app.request(http.MethodDelete, "/api/v1/investments/"+stockID, "", token)
	expectStatus(t, rec, http.StatusOK)
	rec = app.request(http.MethodGet, "/api/v1/investments/"+stockID, "", token)
	expectStatus(t, rec, http.StatusNotFound)
	expectErrorCode(t, rec, "INVESTMENT_NOT_FOUND")

	rec = app.request(http.MethodGet, "/api/v1/investments/portfolio", "", token)
	expectStatus(t, rec, http.StatusOK)
	portfolio = parseJSON(t, rec)["portfolio"].(map[string]interface{})
	if portfolio["total_market_value"].(float64) != 20000 {
		t.Errorf("expected 20000 market value after delete, got %v", portfolio["total_market_value"])
	}
}

func TestInvestmentFlow_EmptyPortfolio(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "empty@test.com", "password123")

	rec := app.request(http.MethodGet, "/api/v1/investments/portfolio", "", token)
	expectStatus(t, rec, http.StatusOK)
	portfolio := parseJSON(t, rec)["portfolio"].(map[string]interface{})
	if portfolio["total_market_value"].(float64) != 0 || portfolio["total_profit_loss_percentage"].(float64) != 0 {
		t.Errorf("expected zero totals, got %v", portfolio)
	}
	if holdings := portfolio["holdings"].([]interface{}); len(holdings) != 0 {
		t.Errorf("expected no holdings, got %d", len(holdings))
	}
}
