package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/timing"
)

type recordService struct {
	store    repository.RecordStore
	observer UseCaseObserver
}

func NewRecordService(store repository.RecordStore, observers ...UseCaseObserver) RecordService {
	return &recordService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *recordService) LoadOrInit(ctx context.Context) (domain.RecordSet, error) {
	var out domain.RecordSet
	fields := map[string]any{}
	err := observe(ctx, s.observer, "records.load", fields, func() error {
		loaded, err := s.store.Load(ctx)
		if err == nil {
			if loaded.Events == nil {
				loaded.Events = map[int64]domain.Label{}
			}
			out = *loaded
			fields["events"] = len(out.Events)
			return nil
		}
		if !errors.Is(err, repository.ErrNotFound) && !errors.Is(err, repository.ErrSchemaMismatch) {
			return fmt.Errorf("loading records: %w", err)
		}

		fields["reinitialized"] = true
		fields["reason"] = err.Error()
		fresh := domain.NewRecordSet()
		if err := s.store.Save(ctx, &fresh); err != nil {
			return fmt.Errorf("saving fresh records: %w", err)
		}
		out = fresh
		return nil
	})
	return out, err
}

func (s *recordService) Save(ctx context.Context, rs domain.RecordSet) error {
	fields := map[string]any{"events": len(rs.Events)}
	return observe(ctx, s.observer, "records.save", fields, func() error {
		if err := s.store.Save(ctx, &rs); err != nil {
			return fmt.Errorf("saving records: %w", err)
		}
		return nil
	})
}

func (s *recordService) Record(ctx context.Context, rs domain.RecordSet, label domain.Label, at time.Time) (domain.RecordSet, error) {
	ts := at.Unix()
	next := timing.AppendEvent(rs, label, ts)
	fields := map[string]any{"ts": ts, "kind": string(label.Kind())}
	err := observe(ctx, s.observer, "records.record", fields, func() error {
		if err := s.store.Save(ctx, &next); err != nil {
			return fmt.Errorf("saving records: %w", err)
		}
		return nil
	})
	if err != nil {
		return rs, err
	}
	return next, nil
}
