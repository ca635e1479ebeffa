package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tally/internal/config"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/service"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testApp wires an App over an in-memory SQLite store with a clock that
// advances one minute per reading.
func testApp(t *testing.T) (*App, repository.RecordStore, *bytes.Buffer) {
	t.Helper()
	database := testutil.NewTestDB(t)
	store := repository.NewSQLiteRecordStore(testutil.NewTestUoW(database))

	now := time.Unix(1_700_000_000, 0)
	out := &bytes.Buffer{}
	app := &App{
		Records: service.NewRecordService(store),
		UIMode:  config.UIModeLine,
		Now: func() time.Time {
			cur := now
			now = now.Add(time.Minute)
			return cur
		},
		Out: out,
	}
	return app, store, out
}

func seed(t *testing.T, store repository.RecordStore, rs *domain.RecordSet) {
	t.Helper()
	require.NoError(t, store.Save(context.Background(), rs))
}

func loadStored(t *testing.T, store repository.RecordStore) *domain.RecordSet {
	t.Helper()
	rs, err := store.Load(context.Background())
	require.NoError(t, err)
	return rs
}
