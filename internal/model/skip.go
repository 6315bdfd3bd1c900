package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidSkipOption is returned when a fetched option breaks a value invariant.
var ErrInvalidSkipOption = errors.New("invalid skip option")

// SkipOption is one skip size offered for a location. Values are never
// modified after they have been decoded.
type SkipOption struct {
	CreatedAt        Timestamp           `json:"created_at"`
	UpdatedAt        Timestamp           `json:"updated_at"`
	PriceBeforeVAT   decimal.Decimal     `json:"price_before_vat"`
	VAT              decimal.Decimal     `json:"vat"` // percentage, 20 means 20%
	TransportCost    decimal.NullDecimal `json:"transport_cost"`
	PerTonneCost     decimal.NullDecimal `json:"per_tonne_cost"`
	Postcode         string              `json:"postcode"`
	Area             string              `json:"area"`
	ID               int                 `json:"id"`
	Size             int                 `json:"size"` // yards
	HirePeriodDays   int                 `json:"hire_period_days"`
	AllowedOnRoad    bool                `json:"allowed_on_road"`
	AllowsHeavyWaste bool                `json:"allows_heavy_waste"`
	Forbidden        bool                `json:"forbidden"`
}

// Validate checks the non-negative invariants on size, hire period, price and VAT.
func (s SkipOption) Validate() error {
	switch {
	case s.Size < 0:
		return fmt.Errorf("%w: id %d has negative size %d", ErrInvalidSkipOption, s.ID, s.Size)
	case s.HirePeriodDays < 0:
		return fmt.Errorf("%w: id %d has negative hire period %d", ErrInvalidSkipOption, s.ID, s.HirePeriodDays)
	case s.PriceBeforeVAT.IsNegative():
		return fmt.Errorf("%w: id %d has negative price %s", ErrInvalidSkipOption, s.ID, s.PriceBeforeVAT)
	case s.VAT.IsNegative():
		return fmt.Errorf("%w: id %d has negative VAT %s", ErrInvalidSkipOption, s.ID, s.VAT)
	}
	return nil
}

// Location identifies the area skips are requested for.
type Location struct {
	Postcode string
	Area     string
}

// DefaultLocation is the area the booking flow starts with.
var DefaultLocation = Location{Postcode: "NR32", Area: "Lowestoft"}

// String renders the location for logs and headings.
func (l Location) String() string {
	return fmt.Sprintf("%s, %s", l.Postcode, l.Area)
}
