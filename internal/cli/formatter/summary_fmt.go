package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/tally/internal/timing"
)

const progressWidth = 20

// FormatSummary renders the work/break totals, the per-task breakdown and
// progress towards the daily goal.
func FormatSummary(s timing.Summary, goalMinutes float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", Bold("Total time working:"), FormatAmount(s.TotalWork, s.Unit))

	if len(s.Tasks) == 0 {
		b.WriteString(Dim("No tasks recorded yet.") + "\n")
	} else {
		rows := make([][]string, 0, len(s.Tasks))
		for _, t := range s.Tasks {
			rows = append(rows, []string{t.Name, strconv.FormatInt(t.Value, 10)})
		}
		b.WriteString("\n")
		b.WriteString(RenderTable([]string{"TASK", strings.ToUpper(s.Unit.Name())}, rows, 1))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s %s\n", Bold("Time on breaks:"), FormatAmount(s.TotalBreak, s.Unit))

	if goalMinutes > 0 {
		fmt.Fprintf(&b, "%s %s of %s",
			Bold("Goal:"), RenderProgress(timing.GoalProgress(s, goalMinutes), progressWidth), FormatHours(goalMinutes))
	} else {
		b.WriteString(Bold("Goal: ") + Dim("not set"))
	}

	return RenderBox("Summary", b.String())
}
