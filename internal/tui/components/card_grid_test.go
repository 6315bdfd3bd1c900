package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/skiphire/internal/booking"
	"github.com/Veraticus/skiphire/internal/model"
	"github.com/Veraticus/skiphire/internal/tui/themes"
	"github.com/Veraticus/skiphire/internal/tui/viewmodel"
)

func testCards(n int) []viewmodel.SkipCard {
	options := make([]model.SkipOption, 0, n)
	for i := 0; i < n; i++ {
		options = append(options, model.SkipOption{
			ID:               i + 1,
			Size:             4 + 2*i,
			HirePeriodDays:   14,
			PriceBeforeVAT:   decimal.NewFromInt(int64(100 + 50*i)),
			VAT:              decimal.NewFromInt(20),
			AllowedOnRoad:    true,
			AllowsHeavyWaste: i%2 == 0,
		})
	}
	return viewmodel.NewSkipCards(options, booking.Selection{}, 0)
}

func TestGridColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{width: 40, want: 1},
		{width: 79, want: 1},
		{width: 80, want: 2},
		{width: 119, want: 2},
		{width: 120, want: 3},
		{width: 200, want: 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GridColumns(tt.width), "width %d", tt.width)
	}
}

func TestCardGrid_CursorBounds(t *testing.T) {
	m := NewCardGridModel(themes.Default).Resize(130, 40).SetCards(testCards(5))
	assert.Equal(t, 3, m.Columns())

	m = m.MoveCursor(-1, 0)
	assert.Equal(t, 0, m.Cursor())

	m = m.MoveCursor(0, 1)
	assert.Equal(t, 3, m.Cursor())

	// no card below
	m = m.MoveCursor(0, 1)
	assert.Equal(t, 3, m.Cursor())

	m = m.MoveCursor(5, 0)
	assert.Equal(t, 4, m.Cursor())

	m = m.SetCards(testCards(2))
	assert.Equal(t, 1, m.Cursor())
}

func TestCardGrid_ScrollsToCursor(t *testing.T) {
	m := NewCardGridModel(themes.Default).Resize(60, 12).SetCards(testCards(4))
	assert.Equal(t, 0, m.YOffset())

	m = m.SetCursor(3)
	assert.Positive(t, m.YOffset())
	assert.Contains(t, ansi.Strip(m.View()), "10 Yard Skip")

	m = m.SetCursor(0)
	assert.Equal(t, 0, m.YOffset())
}

func TestRenderSkipCard(t *testing.T) {
	cards := testCards(2)

	out := ansi.Strip(RenderSkipCard(cards[1], 50, 0, themes.Default))
	assert.Contains(t, out, "6 Yards")
	assert.Contains(t, out, "6 Yard Skip")
	assert.Contains(t, out, "£180.00")
	assert.Contains(t, out, "Price before VAT: £150.00 + VAT (20%)")
	assert.Contains(t, out, booking.WarningNoHeavyWaste)
	assert.Contains(t, out, viewmodel.ButtonUnavailable)

	padded := RenderSkipCard(cards[0], 50, 20, themes.Default)
	assert.Equal(t, 22, len(strings.Split(padded, "\n")))
}

func TestRenderSkeletonCard(t *testing.T) {
	a := RenderSkeletonCard(30, 0, themes.Default)
	assert.Contains(t, ansi.Strip(a), "▒")
	assert.Len(t, strings.Split(a, "\n"), len(skeletonBars)+2)
}

func TestRenderActionBar(t *testing.T) {
	empty := ansi.Strip(RenderActionBar(viewmodel.ActionBar{}, 100, themes.Default))
	assert.Contains(t, empty, NoSelection)
	assert.Contains(t, empty, ContinueLabel)

	bar := viewmodel.ActionBar{
		Summary:         viewmodel.SelectionSummary{Title: "8 Yard Skip", Total: "£373.20", HirePeriod: "14 day hire period"},
		HasSelection:    true,
		ContinueEnabled: true,
	}
	out := ansi.Strip(RenderActionBar(bar, 100, themes.Default))
	assert.Contains(t, out, "8 Yard Skip · £373.20 · 14 day hire period")
	assert.Contains(t, out, BackLabel)
}
