package timing

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/tally/internal/domain"
)

// Interval is the span between two consecutive events, attributed to the
// earlier event's label.
type Interval struct {
	Label   domain.Label
	Start   int64
	Seconds int64
}

// Raw holds unrounded totals in seconds.
type Raw struct {
	TotalWork  int64
	Intervals  []Interval // task intervals only; breaks are folded into TotalBreak
	TotalBreak int64
}

// AppendEvent returns a copy of rs with label recorded at ts. An existing
// event at the same second is overwritten.
func AppendEvent(rs domain.RecordSet, label domain.Label, ts int64) domain.RecordSet {
	out := rs.Clone()
	out.Events[ts] = label
	return out
}

// Intervals returns one interval per consecutive pair of events, in
// timestamp order, breaks included.
func Intervals(events map[int64]domain.Label) []Interval {
	ts := domain.SortedTimestamps(events)
	if len(ts) < 2 {
		return nil
	}
	out := make([]Interval, 0, len(ts)-1)
	for i := 0; i+1 < len(ts); i++ {
		out = append(out, Interval{
			Label:   events[ts[i]],
			Start:   ts[i],
			Seconds: ts[i+1] - ts[i],
		})
	}
	return out
}

// ComputeRawTimings splits the log into task intervals and break time.
// Total work is the full span minus breaks, so a log that starts or ends
// on a break still reports only working time.
func ComputeRawTimings(events map[int64]domain.Label) Raw {
	all := Intervals(events)
	if len(all) == 0 {
		return Raw{}
	}

	var raw Raw
	var span int64
	for _, iv := range all {
		span += iv.Seconds
		if iv.Label.IsBreak() {
			raw.TotalBreak += iv.Seconds
			continue
		}
		raw.Intervals = append(raw.Intervals, iv)
	}
	raw.TotalWork = span - raw.TotalBreak
	return raw
}

// RoundToGrain floors value to a multiple of grain, truncating toward zero.
// grain must be positive; anything else is a programming error.
func RoundToGrain(value, grain int64) int64 {
	if grain <= 0 {
		panic(fmt.Sprintf("timing: rounding grain must be positive, got %d", grain))
	}
	return (value / grain) * grain
}

// OpenInterval reports the activity started by the most recent event.
func OpenInterval(events map[int64]domain.Label) (domain.Label, int64, bool) {
	if len(events) == 0 {
		return domain.Label{}, 0, false
	}
	var last int64
	first := true
	for ts := range events {
		if first || ts > last {
			last = ts
			first = false
		}
	}
	return events[last], last, true
}

// TaskTotal is one row of the per-task breakdown, in display units.
type TaskTotal struct {
	Name  string
	Value int64
}

// Summary is what the user sees: totals converted to display units and
// floored to the rounding grain.
type Summary struct {
	Unit        domain.DisplayUnit
	TotalWork   int64
	Tasks       []TaskTotal
	TotalBreak  int64
	WorkSeconds int64
}

// Summarize converts a record set into display totals.
//
// Seconds are divided by the unit factor before rounding. Tasks are summed
// by name, rounded, and sorted by value descending; ties keep the order in
// which the task first appeared. Each displayed task value is clamped to
// what is left of TotalWork so rounding never lets the rows add up to more
// than the total.
func Summarize(rs domain.RecordSet) Summary {
	raw := ComputeRawTimings(rs.Events)
	unit := rs.Unit()
	factor := unit.Factor()
	grain := int64(rs.RoundingGrain)

	s := Summary{
		Unit:        unit,
		TotalWork:   RoundToGrain(raw.TotalWork/factor, grain),
		TotalBreak:  RoundToGrain(raw.TotalBreak/factor, grain),
		WorkSeconds: raw.TotalWork,
	}

	var order []string
	sums := make(map[string]int64)
	for _, iv := range raw.Intervals {
		name := iv.Label.TaskName()
		if _, seen := sums[name]; !seen {
			order = append(order, name)
		}
		sums[name] += iv.Seconds
	}

	tasks := make([]TaskTotal, 0, len(order))
	for _, name := range order {
		tasks = append(tasks, TaskTotal{Name: name, Value: RoundToGrain(sums[name]/factor, grain)})
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Value > tasks[j].Value
	})

	budget := s.TotalWork
	for i := range tasks {
		v := min(budget, tasks[i].Value)
		tasks[i].Value = v
		budget -= v
	}
	s.Tasks = tasks
	return s
}

// TaskNames lists the tasks present in the breakdown.
func (s Summary) TaskNames() []string {
	names := make([]string, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		names = append(names, t.Name)
	}
	return names
}

// GoalProgress is the fraction of the goal covered by raw work time,
// clamped to [0, 1]. A non-positive goal yields 0.
func GoalProgress(s Summary, goalMinutes float64) float64 {
	if goalMinutes <= 0 {
		return 0
	}
	p := float64(s.WorkSeconds) / (goalMinutes * 60)
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}
