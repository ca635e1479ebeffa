package domain

import "sort"

const (
	DefaultRoundingGrain = 15
	DefaultGoalMinutes   = 480.0
)

// RecordSet is the persisted unit of tracking state: display settings
// plus the event log keyed by epoch second.
type RecordSet struct {
	RoundingGrain int
	GoalMinutes   float64
	TestMode      bool
	Events        map[int64]Label
}

// NewRecordSet returns a record set with default settings and no events.
func NewRecordSet() RecordSet {
	return RecordSet{
		RoundingGrain: DefaultRoundingGrain,
		GoalMinutes:   DefaultGoalMinutes,
		TestMode:      false,
		Events:        map[int64]Label{},
	}
}

// Clone returns a deep copy so callers can mutate without aliasing.
func (r RecordSet) Clone() RecordSet {
	out := r
	out.Events = make(map[int64]Label, len(r.Events))
	for ts, l := range r.Events {
		out.Events[ts] = l
	}
	return out
}

// WithoutEvents returns a copy that keeps the settings and drops the log.
func (r RecordSet) WithoutEvents() RecordSet {
	out := r
	out.Events = map[int64]Label{}
	return out
}

// Unit returns the display unit selected by TestMode.
func (r RecordSet) Unit() DisplayUnit {
	if r.TestMode {
		return UnitSeconds
	}
	return UnitMinutes
}

// Timestamps returns event timestamps in ascending order.
func (r RecordSet) Timestamps() []int64 {
	return SortedTimestamps(r.Events)
}

// SortedTimestamps returns the keys of events in ascending order.
func SortedTimestamps(events map[int64]Label) []int64 {
	keys := make([]int64, 0, len(events))
	for ts := range events {
		keys = append(keys, ts)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// DisplayUnit selects how raw seconds are presented.
type DisplayUnit int

const (
	UnitMinutes DisplayUnit = iota
	UnitSeconds
)

// Factor is the divisor applied to raw seconds.
func (u DisplayUnit) Factor() int64 {
	if u == UnitSeconds {
		return 1
	}
	return 60
}

func (u DisplayUnit) Name() string {
	if u == UnitSeconds {
		return "seconds"
	}
	return "minutes"
}
