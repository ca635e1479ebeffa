package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/tally/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

// readTask reads the task stored at ts.
func readTask(uow *db.SQLiteUnitOfWork, ts int64) (string, bool) {
	var task string
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT task FROM record_events WHERE ts = ?`, ts)
		if err := row.Scan(&task); err != nil {
			return nil
		}
		found = true
		return nil
	})
	return task, found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO record_events (ts, kind, task) VALUES (?, 'task', ?)`, 1, "write")
		return err
	})
	require.NoError(t, err)

	task, found := readTask(uow, 1)
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "write", task)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO record_events (ts, kind, task) VALUES (?, 'task', ?)`, 2, "read")
		if err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := readTask(uow, 2)
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestDB(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, `INSERT INTO record_events (ts, kind, task) VALUES (?, 'task', ?)`, 3, "x")
			panic("boom")
		})
	})

	_, found := readTask(uow, 3)
	assert.False(t, found, "row should not exist after panic rollback")
}
