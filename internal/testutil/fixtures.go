package testutil

import (
	"github.com/alexanderramin/tally/internal/domain"
)

// RecordOption customizes a record set built by NewTestRecordSet.
type RecordOption func(*domain.RecordSet)

func WithTask(ts int64, name string) RecordOption {
	return func(rs *domain.RecordSet) {
		rs.Events[ts] = domain.Task(name)
	}
}

func WithBreak(ts int64) RecordOption {
	return func(rs *domain.RecordSet) {
		rs.Events[ts] = domain.Break()
	}
}

func WithGrain(grain int) RecordOption {
	return func(rs *domain.RecordSet) {
		rs.RoundingGrain = grain
	}
}

func WithGoalMinutes(m float64) RecordOption {
	return func(rs *domain.RecordSet) {
		rs.GoalMinutes = m
	}
}

func WithTestMode(on bool) RecordOption {
	return func(rs *domain.RecordSet) {
		rs.TestMode = on
	}
}

// NewTestRecordSet returns a default record set with opts applied.
func NewTestRecordSet(opts ...RecordOption) *domain.RecordSet {
	rs := domain.NewRecordSet()
	for _, opt := range opts {
		opt(&rs)
	}
	return &rs
}

// SampleRecordSet is the four-event log used across packages:
// A for 60s, a 60s break, then B for 30s.
func SampleRecordSet(opts ...RecordOption) *domain.RecordSet {
	base := []RecordOption{
		WithTask(100, "A"),
		WithBreak(160),
		WithTask(220, "B"),
		WithTask(250, "B"),
	}
	return NewTestRecordSet(append(base, opts...)...)
}
