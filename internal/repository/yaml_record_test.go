package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLRecordStore_MissingFile_NotFound(t *testing.T) {
	store := NewYAMLRecordStore(filepath.Join(t.TempDir(), "records.yaml"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestYAMLRecordStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "records.yaml")
	store := NewYAMLRecordStore(path)
	ctx := context.Background()

	rs := testutil.SampleRecordSet(testutil.WithTestMode(true), testutil.WithGrain(1))
	require.NoError(t, store.Save(ctx, rs))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, *rs, *loaded)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must be renamed away")
}

func TestEncodeYAML_Layout(t *testing.T) {
	rs := testutil.NewTestRecordSet(testutil.WithTask(200, "write"), testutil.WithBreak(100))

	out, err := EncodeYAML(rs)
	require.NoError(t, err)

	want := `version: 1
rounding_grain: 15
goal_minutes: 480
test_mode: false
events:
    - ts: 100
      kind: break
    - ts: 200
      kind: task
      task: write
`
	assert.Equal(t, want, string(out))
}

func TestDecodeYAML_Mismatches(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"not yaml", "{{{"},
		{"wrong version", "version: 7\nrounding_grain: 15\n"},
		{"unknown field", "version: 1\nrounding_grain: 15\nround_min: 15\n"},
		{"zero grain", "version: 1\nrounding_grain: 0\n"},
		{"bad kind", "version: 1\nrounding_grain: 15\nevents:\n  - ts: 1\n    kind: lunch\n"},
		{"wrong type", "version: 1\nrounding_grain: lots\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeYAML([]byte(tt.raw))
			assert.ErrorIs(t, err, ErrSchemaMismatch)
		})
	}
}

func TestDecodeYAML_Valid(t *testing.T) {
	raw := "version: 1\nrounding_grain: 10\ngoal_minutes: 60\ntest_mode: true\nevents:\n  - ts: 5\n    kind: task\n    task: a\n  - ts: 9\n    kind: break\n"
	rs, err := DecodeYAML([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, 10, rs.RoundingGrain)
	assert.Equal(t, 60.0, rs.GoalMinutes)
	assert.True(t, rs.TestMode)
	assert.Equal(t, map[int64]domain.Label{5: domain.Task("a"), 9: domain.Break()}, rs.Events)
}
