package models

import "time"

// AssetType represents the type of investment asset.
type AssetType string

const (
	AssetTypeStock  AssetType = "stock"
	AssetTypeETF    AssetType = "etf"
	AssetTypeBond   AssetType = "bond"
	AssetTypeCrypto AssetType = "crypto"
	AssetTypeREIT   AssetType = "reit"
)

// Investment represents a holding of a single ticker. AvgBuyPrice is in
// cents per unit.
type Investment struct {
	Base
	UserID       string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Ticker       string     `gorm:"size:20;not null" json:"ticker"`
	Quantity     float64    `gorm:"not null" json:"quantity"`
	AvgBuyPrice  int64      `gorm:"type:bigint;not null" json:"avg_buy_price"`
	AssetType    AssetType  `gorm:"size:16;not null;default:stock" json:"asset_type"`
	PurchaseDate *time.Time `json:"purchase_date"`
	Notes        string     `json:"notes"`
}
