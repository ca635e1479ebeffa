package service

import (
	"context"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
)

// RecordService owns loading and persisting the record set.
type RecordService interface {
	// LoadOrInit returns the saved record set. When nothing is saved, or the
	// saved data has the wrong shape, it saves and returns defaults instead.
	LoadOrInit(ctx context.Context) (domain.RecordSet, error)
	// Save persists rs wholesale.
	Save(ctx context.Context, rs domain.RecordSet) error
	// Record appends label at the given time and persists the result. On a
	// save failure the returned set is the unmodified input.
	Record(ctx context.Context, rs domain.RecordSet, label domain.Label, at time.Time) (domain.RecordSet, error)
}
