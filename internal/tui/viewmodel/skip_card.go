// Package viewmodel derives plain display state for the select-skip page.
// Nothing here renders; components turn these values into strings.
package viewmodel

import (
	"fmt"

	"github.com/Veraticus/skiphire/internal/booking"
	"github.com/Veraticus/skiphire/internal/model"
)

// Button labels.
const (
	ButtonSelected    = "Skip Selected"
	ButtonUnavailable = "Not Available"
	ButtonSelect      = "Select This Skip"
)

// SkipCard is the display state of one option.
type SkipCard struct {
	Badge           string
	Title           string
	HirePeriod      string
	Total           string
	PriceDetail     string
	ButtonLabel     string
	AccessibleLabel string
	Warnings        []string
	ID              int
	Selected        bool
	Disabled        bool
	Focused         bool
}

// NewSkipCard derives the card for opt.
func NewSkipCard(opt model.SkipOption, selection booking.Selection, focused bool) SkipCard {
	disabled := booking.IsDisabled(opt)
	selected := selection.IsSelected(opt.ID)

	label := ButtonSelect
	switch {
	case selected:
		label = ButtonSelected
	case disabled:
		label = ButtonUnavailable
	}

	accessible := fmt.Sprintf("Select %d Yard Skip", opt.Size)
	if disabled {
		accessible += " (Not Available)"
	}

	return SkipCard{
		ID:         opt.ID,
		Badge:      fmt.Sprintf("%d Yards", opt.Size),
		Title:      fmt.Sprintf("%d Yard Skip", opt.Size),
		HirePeriod: HirePeriod(opt.HirePeriodDays),
		Total:      booking.FormatPrice(booking.TotalPrice(opt)),
		PriceDetail: fmt.Sprintf("Price before VAT: %s + VAT (%s%%)",
			booking.FormatPrice(opt.PriceBeforeVAT), opt.VAT.String()),
		Warnings:        booking.Warnings(opt),
		ButtonLabel:     label,
		AccessibleLabel: accessible,
		Selected:        selected,
		Disabled:        disabled,
		Focused:         focused,
	}
}

// NewSkipCards derives one card per option, focusing the one at cursor.
func NewSkipCards(options []model.SkipOption, selection booking.Selection, cursor int) []SkipCard {
	cards := make([]SkipCard, 0, len(options))
	for i, opt := range options {
		cards = append(cards, NewSkipCard(opt, selection, i == cursor))
	}
	return cards
}

// HirePeriod formats a hire length in days.
func HirePeriod(days int) string {
	return fmt.Sprintf("%d day hire period", days)
}
