package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/skiphire/internal/tui/themes"
)

// SkeletonCount is the number of placeholder cards shown while loading.
const SkeletonCount = 9

// skeleton bar widths as a share of the card's inner width, top to bottom.
var skeletonBars = []float64{0.35, 0.7, 0.55, 0, 0.4, 0.9, 0, 0.6}

// RenderSkeletonCard renders a placeholder card. pulse alternates the shade
// so the grid appears to breathe while the options load.
func RenderSkeletonCard(width, pulse int, theme themes.Theme) string {
	inner := max(width-cardFrame, 1)

	style := theme.Skeleton
	if pulse%2 == 1 {
		style = theme.SkeletonPulse
	}

	lines := make([]string, 0, len(skeletonBars))
	for _, share := range skeletonBars {
		n := int(float64(inner) * share)
		lines = append(lines, style.Render(strings.Repeat("▒", n)))
	}

	return theme.Card.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
