// Package booking derives eligibility, warnings and prices for skip options
// and tracks the single option chosen on the select-skip step.
package booking

import (
	"github.com/Veraticus/skiphire/internal/model"
	"github.com/shopspring/decimal"
)

// Warning labels, in the order they are reported.
const (
	WarningNotOnRoad    = "Not Allowed On The Road"
	WarningNoHeavyWaste = "Not Suitable for Heavy Waste"
	WarningForbidden    = "Not Available"
)

// CurrencySymbol prefixes every displayed price.
const CurrencySymbol = "£"

var hundred = decimal.NewFromInt(100)

// IsDisabled reports whether an option fails any eligibility flag.
func IsDisabled(opt model.SkipOption) bool {
	return !opt.AllowedOnRoad || !opt.AllowsHeavyWaste || opt.Forbidden
}

// Warnings lists the labels for every failing eligibility flag. The order
// is fixed: road, heavy waste, forbidden.
func Warnings(opt model.SkipOption) []string {
	var warnings []string
	if !opt.AllowedOnRoad {
		warnings = append(warnings, WarningNotOnRoad)
	}
	if !opt.AllowsHeavyWaste {
		warnings = append(warnings, WarningNoHeavyWaste)
	}
	if opt.Forbidden {
		warnings = append(warnings, WarningForbidden)
	}
	return warnings
}

// VATAmount is the tax owed on the pre-VAT price.
func VATAmount(opt model.SkipOption) decimal.Decimal {
	return opt.PriceBeforeVAT.Mul(opt.VAT.Div(hundred))
}

// TotalPrice is the VAT-inclusive price. It is exact; rounding happens in
// FormatPrice only.
func TotalPrice(opt model.SkipOption) decimal.Decimal {
	return opt.PriceBeforeVAT.Add(VATAmount(opt))
}

// FormatAmount rounds to two decimal places for display.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatPrice renders an amount with the currency symbol.
func FormatPrice(d decimal.Decimal) string {
	return CurrencySymbol + FormatAmount(d)
}
