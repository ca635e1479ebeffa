package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// FormatAmount renders a display-unit value with its unit name, e.g.
// "90 minutes".
func FormatAmount(value int64, unit domain.DisplayUnit) string {
	return fmt.Sprintf("%d %s", value, unit.Name())
}

// FormatHours renders a goal given in minutes as hours, e.g. "7.5h".
func FormatHours(minutes float64) string {
	h := minutes / 60
	if h == float64(int64(h)) {
		return fmt.Sprintf("%dh", int64(h))
	}
	return fmt.Sprintf("%.1fh", h)
}
