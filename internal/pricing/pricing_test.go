package pricing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finpace/internal/models"
)

func TestStaticFetcher(t *testing.T) {
	f := StaticFetcher{}
	ctx := context.Background()

	price, err := f.FetchPrice(ctx, "BTC", models.AssetTypeCrypto)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), price)

	for _, at := range []models.AssetType{models.AssetTypeStock, models.AssetTypeETF, models.AssetTypeBond, models.AssetTypeREIT} {
		price, err := f.FetchPrice(ctx, "ANY", at)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), price, "asset type %s", at)
	}
}

func TestNew(t *testing.T) {
	f, err := New("", time.Second)
	require.NoError(t, err)
	assert.IsType(t, StaticFetcher{}, f)

	f, err = New(ProviderYahoo, time.Second)
	require.NoError(t, err)
	assert.IsType(t, &YahooFetcher{}, f)

	_, err = New("bloomberg", time.Second)
	assert.Error(t, err)
}

func chartBody(symbol string, price float64) yahooChartResponse {
	var resp yahooChartResponse
	resp.Chart.Result = make([]struct {
		Meta struct {
			Symbol             string  `json:"symbol"`
			Currency           string  `json:"currency"`
			RegularMarketPrice float64 `json:"regularMarketPrice"`
		} `json:"meta"`
	}, 1)
	resp.Chart.Result[0].Meta.Symbol = symbol
	resp.Chart.Result[0].Meta.Currency = "USD"
	resp.Chart.Result[0].Meta.RegularMarketPrice = price
	return resp
}

// newChartServer serves prices keyed by the symbol in the URL path. Unknown
// symbols get a chart error payload.
func newChartServer(t *testing.T, prices map[string]float64) (*httptest.Server, *[]string) {
	t.Helper()
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol := strings.TrimPrefix(r.URL.Path, "/")
		seen = append(seen, symbol)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")

		price, ok := prices[symbol]
		if !ok {
			_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(chartBody(symbol, price))
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestYahooFetcher_FetchPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("converts price to cents", func(t *testing.T) {
		srv, _ := newChartServer(t, map[string]float64{"AAPL": 189.987})
		f := NewYahooFetcher(srv.Client())
		f.baseURL = srv.URL

		price, err := f.FetchPrice(ctx, "aapl", models.AssetTypeStock)
		require.NoError(t, err)
		assert.Equal(t, int64(18999), price)
	})

	t.Run("crypto uses USD pair", func(t *testing.T) {
		srv, seen := newChartServer(t, map[string]float64{"BTC-USD": 65000.5})
		f := NewYahooFetcher(srv.Client())
		f.baseURL = srv.URL

		price, err := f.FetchPrice(ctx, "BTC", models.AssetTypeCrypto)
		require.NoError(t, err)
		assert.Equal(t, int64(6500050), price)
		assert.Equal(t, []string{"BTC-USD"}, *seen)
	})

	t.Run("chart error", func(t *testing.T) {
		srv, _ := newChartServer(t, nil)
		f := NewYahooFetcher(srv.Client())
		f.baseURL = srv.URL

		_, err := f.FetchPrice(ctx, "NOPE", models.AssetTypeStock)
		assert.ErrorContains(t, err, "No data found")
	})

	t.Run("zero price", func(t *testing.T) {
		srv, _ := newChartServer(t, map[string]float64{"ZERO": 0})
		f := NewYahooFetcher(srv.Client())
		f.baseURL = srv.URL

		_, err := f.FetchPrice(ctx, "ZERO", models.AssetTypeStock)
		assert.ErrorContains(t, err, "zero price")
	})

	t.Run("sub-cent price", func(t *testing.T) {
		srv, _ := newChartServer(t, map[string]float64{"SHIB-USD": 0.00001})
		f := NewYahooFetcher(srv.Client())
		f.baseURL = srv.URL

		price, err := f.FetchPrice(ctx, "SHIB", models.AssetTypeCrypto)
		assert.ErrorContains(t, err, "zero price")
		assert.Zero(t, price)
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()
		f := NewYahooFetcher(srv.Client())
		f.baseURL = srv.URL

		_, err := f.FetchPrice(ctx, "AAPL", models.AssetTypeStock)
		assert.ErrorContains(t, err, "unexpected status 429")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()
		f := NewYahooFetcher(srv.Client())
		f.baseURL = srv.URL

		_, err := f.FetchPrice(ctx, "AAPL", models.AssetTypeStock)
		assert.ErrorContains(t, err, "decoding response")
	})

	t.Run("empty ticker", func(t *testing.T) {
		f := NewYahooFetcher(http.DefaultClient)
		_, err := f.FetchPrice(ctx, "  ", models.AssetTypeStock)
		assert.Error(t, err)
	})
}
