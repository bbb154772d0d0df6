// Package pricing looks up current market prices for investment holdings.
// Prices are returned in cents per unit.
package pricing

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"finpace/internal/models"
)

// Provider names accepted by New.
const (
	ProviderStatic = "static"
	ProviderYahoo  = "yahoo"
)

// Fetcher returns the current price of one unit of ticker.
type Fetcher interface {
	FetchPrice(ctx context.Context, ticker string, assetType models.AssetType) (int64, error)
}

// New returns the Fetcher for provider. Unknown names are an error.
func New(provider string, timeout time.Duration) (Fetcher, error) {
	switch provider {
	case ProviderStatic, "":
		return StaticFetcher{}, nil
	case ProviderYahoo:
		return NewYahooFetcher(&http.Client{Timeout: timeout}), nil
	default:
		return nil, fmt.Errorf("unknown price provider %q", provider)
	}
}

// Placeholder prices used by StaticFetcher.
const (
	StaticCryptoPrice int64 = 10000
	StaticPrice       int64 = 5000
)

// StaticFetcher returns fixed prices: 100.00 for crypto and 50.00 for
// everything else. It never fails and is the default for local runs.
type StaticFetcher struct{}

// FetchPrice implements Fetcher.
func (StaticFetcher) FetchPrice(_ context.Context, _ string, assetType models.AssetType) (int64, error) {
	if assetType == models.AssetTypeCrypto {
		return StaticCryptoPrice, nil
	}
	return StaticPrice, nil
}
