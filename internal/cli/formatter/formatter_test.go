package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/session"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/alexanderramin/tally/internal/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
		want  string
	}{
		{"empty", 0, 4, "[░░░░]   0%"},
		{"half", 0.5, 4, "[██░░]  50%"},
		{"full", 1, 4, "[████] 100%"},
		{"over clamps", 1.5, 4, "[████] 100%"},
		{"negative clamps", -1, 4, "[░░░░]   0%"},
		{"tiny width", 0.5, 1, "[█░]  50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderProgress(tt.pct, tt.width)))
		})
	}
}

func TestRenderTable(t *testing.T) {
	got := stripANSI(RenderTable([]string{"TASK", "MINUTES"}, [][]string{
		{"coding", "60"},
		{"review", "5"},
	}, 1))

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "TASK    MINUTES", lines[0])
	assert.Equal(t, "──────  ───────", lines[1])
	assert.Equal(t, "coding       60", lines[2])
	assert.Equal(t, "review        5", lines[3])

	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatAmountAndHours(t *testing.T) {
	assert.Equal(t, "90 minutes", FormatAmount(90, domain.UnitMinutes))
	assert.Equal(t, "3 seconds", FormatAmount(3, domain.UnitSeconds))
	assert.Equal(t, "8h", FormatHours(480))
	assert.Equal(t, "7.5h", FormatHours(450))
}

func TestFormatSummary(t *testing.T) {
	rs := testutil.SampleRecordSet(testutil.WithTestMode(true), testutil.WithGrain(1))
	got := stripANSI(FormatSummary(timing.Summarize(*rs), 6))

	assert.Contains(t, got, "SUMMARY")
	assert.Contains(t, got, "Total time working: 90 seconds")
	assert.Contains(t, got, "Time on breaks: 60 seconds")
	assert.Contains(t, got, "SECONDS")
	assert.Regexp(t, `A\s+60`, got)
	assert.Regexp(t, `B\s+30`, got)
	assert.Contains(t, got, "25% of 0.1h")
	assert.Less(t, strings.Index(got, "A "), strings.Index(got, "B "), "tasks keep summary order")
}

func TestFormatSummary_Empty(t *testing.T) {
	got := stripANSI(FormatSummary(timing.Summarize(domain.NewRecordSet()), 0))
	assert.Contains(t, got, "No tasks recorded yet.")
	assert.Contains(t, got, "Total time working: 0 minutes")
	assert.Contains(t, got, "Goal: not set")
}

func TestFormatMenu(t *testing.T) {
	got := stripANSI(FormatMenu(session.Menu{
		Title:  "Settings:",
		Lines:  []string{"To return to main type 'EXIT'"},
		Status: "rounding 15",
		Prompt: ": ",
	}))
	assert.Equal(t, "SETTINGS:\n─────────\nTo return to main type 'EXIT'\nrounding 15\n", got)
}

func TestFormatReply(t *testing.T) {
	sum := timing.Summarize(domain.NewRecordSet())
	got := stripANSI(FormatReply(session.Reply{
		Notices: []session.Notice{
			{Level: session.NoticeError, Text: "ERROR incorrect input"},
			{Level: session.NoticeInfo, Text: "Did you mean 'GOAL'?"},
		},
		Summary: &sum,
	}, 480))

	assert.True(t, strings.HasPrefix(got, "ERROR incorrect input\nDid you mean 'GOAL'?\n"))
	assert.Contains(t, got, "SUMMARY")
	assert.Empty(t, FormatReply(session.Reply{}, 480))
}
