package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/domain"
)

const settingsRowID = "default"

// SQLiteRecordRepo reads and writes the record tables through a DBTX.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo(conn db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: conn}
}

func (r *SQLiteRecordRepo) Load(ctx context.Context) (*domain.RecordSet, error) {
	query := `SELECT rounding_grain, goal_minutes, test_mode FROM record_settings WHERE id = ?`
	var testMode int
	rs := domain.NewRecordSet()
	err := r.db.QueryRowContext(ctx, query, settingsRowID).Scan(&rs.RoundingGrain, &rs.GoalMinutes, &testMode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("record settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning record settings: %w", err)
	}
	rs.TestMode = intToBool(testMode)
	if err := validateSettings(&rs); err != nil {
		return nil, err
	}

	events, err := r.listEvents(ctx)
	if err != nil {
		return nil, err
	}
	rs.Events = events
	return &rs, nil
}

func (r *SQLiteRecordRepo) listEvents(ctx context.Context) (map[int64]domain.Label, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT ts, kind, task FROM record_events ORDER BY ts`)
	if err != nil {
		return nil, fmt.Errorf("listing record events: %w", err)
	}
	defer rows.Close()

	events := make(map[int64]domain.Label)
	for rows.Next() {
		var ts int64
		var kind, task string
		if err := rows.Scan(&ts, &kind, &task); err != nil {
			return nil, fmt.Errorf("scanning record event: %w", err)
		}
		label, err := domain.ParseLabel(kind, task)
		if err != nil {
			return nil, fmt.Errorf("event at %d: %v: %w", ts, err, ErrSchemaMismatch)
		}
		events[ts] = label
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating record events: %w", err)
	}
	return events, nil
}

// Replace overwrites settings and events with rs.
// Run it inside a transaction so a failure leaves the old copy.
func (r *SQLiteRecordRepo) Replace(ctx context.Context, rs *domain.RecordSet) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO record_settings (id, rounding_grain, goal_minutes, test_mode, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		settingsRowID,
		rs.RoundingGrain,
		rs.GoalMinutes,
		boolToInt(rs.TestMode),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting record settings: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM record_events`); err != nil {
		return fmt.Errorf("clearing record events: %w", err)
	}

	for _, ts := range rs.Timestamps() {
		label := rs.Events[ts]
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO record_events (ts, kind, task) VALUES (?, ?, ?)`,
			ts, string(label.Kind()), label.TaskName(),
		); err != nil {
			return fmt.Errorf("inserting record event %d: %w", ts, err)
		}
	}
	return nil
}

// SQLiteRecordStore is the RecordStore backed by a SQLite database.
type SQLiteRecordStore struct {
	uow db.UnitOfWork
}

func NewSQLiteRecordStore(uow db.UnitOfWork) *SQLiteRecordStore {
	return &SQLiteRecordStore{uow: uow}
}

// Load reads settings and events inside one transaction so a concurrent
// Save is seen either entirely or not at all.
func (s *SQLiteRecordStore) Load(ctx context.Context) (*domain.RecordSet, error) {
	var rs *domain.RecordSet
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		rs, err = NewSQLiteRecordRepo(tx).Load(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rs, nil
}

func (s *SQLiteRecordStore) Save(ctx context.Context, rs *domain.RecordSet) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteRecordRepo(tx).Replace(ctx, rs)
	})
}
