package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"

	"finpace/internal/models"
)

const (
	yahooBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	yahooUA      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"
)

// yahooChartResponse is the subset of the v8 chart payload we read.
type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				Currency           string  `json:"currency"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// YahooFetcher reads regular market prices from the Yahoo Finance chart API.
type YahooFetcher struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
}

// NewYahooFetcher creates a YahooFetcher. The client's timeout bounds every lookup.
func NewYahooFetcher(httpClient *http.Client) *YahooFetcher {
	return &YahooFetcher{httpClient: httpClient, baseURL: yahooBaseURL}
}

// yahooSymbol maps a ticker to Yahoo's naming. Crypto trades as a USD pair
// unless the ticker already names one.
func yahooSymbol(ticker string, assetType models.AssetType) string {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if assetType == models.AssetTypeCrypto && !strings.Contains(ticker, "-") {
		return ticker + "-USD"
	}
	return ticker
}

// FetchPrice implements Fetcher.
func (f *YahooFetcher) FetchPrice(ctx context.Context, ticker string, assetType models.AssetType) (int64, error) {
	symbol := yahooSymbol(ticker, assetType)
	if symbol == "" {
		return 0, fmt.Errorf("empty ticker")
	}

	endpoint := f.baseURL + "/" + url.PathEscape(symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", yahooUA)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, symbol)
	}

	var chart yahooChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chart); err != nil {
		return 0, fmt.Errorf("decoding response: %w", err)
	}
	if chart.Chart.Error != nil {
		return 0, fmt.Errorf("%s: %s", symbol, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return 0, fmt.Errorf("symbol %s not found in response", symbol)
	}

	// Sub-cent quotes round to zero and cannot value a holding.
	cents := int64(math.Round(chart.Chart.Result[0].Meta.RegularMarketPrice * 100))
	if cents <= 0 {
		return 0, fmt.Errorf("zero price for %s", symbol)
	}
	return cents, nil
}
