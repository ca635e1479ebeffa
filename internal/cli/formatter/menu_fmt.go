package formatter

import (
	"strings"

	"github.com/alexanderramin/tally/internal/session"
)

// FormatMenu renders a menu without its input prompt.
func FormatMenu(m session.Menu) string {
	var b strings.Builder
	if m.Title != "" {
		b.WriteString(Header(m.Title))
		b.WriteString("\n")
	}
	for _, line := range m.Lines {
		b.WriteString(StyleFg.Render(line))
		b.WriteString("\n")
	}
	if m.Status != "" {
		b.WriteString(Dim(m.Status))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatNotice renders one notice; errors are red.
func FormatNotice(n session.Notice) string {
	if n.Level == session.NoticeError {
		return StyleRed.Render(n.Text)
	}
	return StyleGreen.Render(n.Text)
}

// FormatReply renders every notice and, if present, the summary.
func FormatReply(r session.Reply, goalMinutes float64) string {
	var parts []string
	for _, n := range r.Notices {
		parts = append(parts, FormatNotice(n))
	}
	if r.Summary != nil {
		parts = append(parts, FormatSummary(*r.Summary, goalMinutes))
	}
	return strings.Join(parts, "\n")
}
