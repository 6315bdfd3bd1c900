package viewmodel

import (
	"github.com/Veraticus/skiphire/internal/booking"
)

// SelectionSummary is shown in the bottom bar while an option is selected.
type SelectionSummary struct {
	Title      string
	Total      string
	HirePeriod string
}

// ActionBar is the state of the bottom bar.
type ActionBar struct {
	Summary         SelectionSummary
	HasSelection    bool
	ContinueEnabled bool
}

// NewActionBar derives the bottom bar from the current selection.
func NewActionBar(selection booking.Selection) ActionBar {
	opt, ok := selection.Selected()
	if !ok {
		return ActionBar{}
	}
	card := NewSkipCard(opt, selection, false)
	return ActionBar{
		Summary: SelectionSummary{
			Title:      card.Title,
			Total:      card.Total,
			HirePeriod: card.HirePeriod,
		},
		HasSelection:    true,
		ContinueEnabled: true,
	}
}
