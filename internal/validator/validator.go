// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"finpace/internal/models"
)

// validCurrencies contains ISO 4217 currency codes.
var validCurrencies = map[string]bool{
	"AED": true, "AFN": true, "ALL": true, "AMD": true, "ANG": true,
	"AOA": true, "ARS": true, "AUD": true, "AWG": true, "AZN": true,
	"BAM": true, "BBD": true, "BDT": true, "BGN": true, "BHD": true,
	"BIF": true, "BMD": true, "BND": true, "BOB": true, "BRL": true,
	"BSD": true, "BTN": true, "BWP": true, "BYN": true, "BZD": true,
	"CAD": true, "CDF": true, "CHF": true, "CLP": true, "CNY": true,
	"COP": true, "CRC": true, "CUP": true, "CVE": true, "CZK": true,
	"DJF": true, "DKK": true, "DOP": true, "DZD": true, "EGP": true,
	"ERN": true, "ETB": true, "EUR": true, "FJD": true, "FKP": true,
	"GBP": true, "GEL": true, "GHS": true, "GIP": true, "GMD": true,
	"GNF": true, "GTQ": true, "GYD": true, "HKD": true, "HNL": true,
	"HTG": true, "HUF": true, "IDR": true, "ILS": true, "INR": true,
	"IQD": true, "IRR": true, "ISK": true, "JMD": true, "JOD": true,
	"JPY": true, "KES": true, "KGS": true, "KHR": true, "KMF": true,
	"KPW": true, "KRW": true, "KWD": true, "KYD": true, "KZT": true,
	"LAK": true, "LBP": true, "LKR": true, "LRD": true, "LSL": true,
	"LYD": true, "MAD": true, "MDL": true, "MGA": true, "MKD": true,
	"MMK": true, "MNT": true, "MOP": true, "MRU": true, "MUR": true,
	"MVR": true, "MWK": true, "MXN": true, "MYR": true, "MZN": true,
	"NAD": true, "NGN": true, "NIO": true, "NOK": true, "NPR": true,
	"NZD": true, "OMR": true, "PAB": true, "PEN": true, "PGK": true,
	"PHP": true, "PKR": true, "PLN": true, "PYG": true, "QAR": true,
	"RON": true, "RSD": true, "RUB": true, "RWF": true, "SAR": true,
	"SBD": true, "SCR": true, "SDG": true, "SEK": true, "SGD": true,
	"SHP": true, "SLE": true, "SOS": true, "SRD": true, "SSP": true,
	"STN": true, "SVC": true, "SYP": true, "SZL": true, "THB": true,
	"TJS": true, "TMT": true, "TND": true, "TOP": true, "TRY": true,
	"TTD": true, "TWD": true, "TZS": true, "UAH": true, "UGX": true,
	"USD": true, "UYU": true, "UZS": true, "VES": true, "VND": true,
	"VUV": true, "WST": true, "XAF": true, "XCD": true, "XOF": true,
	"XPF": true, "YER": true, "ZAR": true, "ZMW": true, "ZWL": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("iso4217", validateISO4217)
	_ = v.RegisterValidation("timezone", validateTimezone)
	_ = v.RegisterValidation("user_role", validateUserRole)
	_ = v.RegisterValidation("asset_type", validateAssetType)
	_ = v.RegisterValidation("goal_status", validateGoalStatus)
	_ = v.RegisterValidation("recurrence_period", validateRecurrencePeriod)
}

// IsCurrency reports whether code is a known ISO 4217 code.
func IsCurrency(code string) bool {
	return validCurrencies[code]
}

func validateISO4217(fl validator.FieldLevel) bool {
	return IsCurrency(fl.Field().String())
}

func validateTimezone(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || name == "Local" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch models.UserRole(fl.Field().String()) {
	case models.UserRoleOwner, models.UserRoleViewer:
		return true
	}
	return false
}

func validateAssetType(fl validator.FieldLevel) bool {
	switch models.AssetType(fl.Field().String()) {
	case models.AssetTypeStock, models.AssetTypeETF, models.AssetTypeBond, models.AssetTypeCrypto, models.AssetTypeREIT:
		return true
	}
	return false
}

func validateGoalStatus(fl validator.FieldLevel) bool {
	switch models.GoalStatus(fl.Field().String()) {
	case models.GoalStatusActive, models.GoalStatusCompleted, models.GoalStatusAbandoned:
		return true
	}
	return false
}

func validateRecurrencePeriod(fl validator.FieldLevel) bool {
	switch models.RecurrencePeriod(fl.Field().String()) {
	case models.RecurrenceDaily, models.RecurrenceWeekly, models.RecurrenceMonthly, models.RecurrenceYearly:
		return true
	}
	return false
}
