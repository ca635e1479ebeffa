package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/session"
	"github.com/alexanderramin/tally/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trackerDriver wraps teatest.Driver with access to the tracker's state.
type trackerDriver struct {
	*teatest.Driver
	store repository.RecordStore
}

func newTrackerDriver(t *testing.T, historyPath string) *trackerDriver {
	t.Helper()
	app, store, _ := testApp(t)
	st, err := app.loadState(context.Background())
	require.NoError(t, err)

	m := newTrackerModel(context.Background(), app.controller(), st, historyPath)
	d := teatest.New(t, m, teatest.WithSize(100, 40))
	d.DrainInit()
	return &trackerDriver{Driver: d, store: store}
}

func (d *trackerDriver) state() session.State {
	return d.Model.(trackerModel).state
}

func TestTracker_WelcomeView(t *testing.T) {
	d := newTrackerDriver(t, "")
	assert.Contains(t, d.View(), "WELCOME TO TIME TRACKING.")
	assert.Contains(t, d.View(), "type 'SETTINGS'")
}

func TestTracker_RecordsTasks(t *testing.T) {
	d := newTrackerDriver(t, "")

	d.Submit("coding")
	assert.Equal(t, session.Working, d.state().Screen)
	assert.Contains(t, d.View(), "current: coding")

	d.Submit("break")
	d.Submit("exit")
	assert.Equal(t, session.Welcome, d.state().Screen)

	stored := loadStored(t, d.store)
	assert.Len(t, stored.Events, 3)
	assert.Equal(t, domain.Task("coding"), stored.Events[1_700_000_000])
}

func TestTracker_ShowsErrors(t *testing.T) {
	d := newTrackerDriver(t, "")

	d.PressEnter()
	assert.Contains(t, d.View(), "ERROR: no text received")

	d.Submit("settings")
	d.Submit("gaol")
	assert.Contains(t, d.View(), "Did you mean 'GOAL'?")

	d.Submit("goal")
	d.Submit("-3")
	assert.Equal(t, session.PromptGoal, d.state().Pending)
	assert.Contains(t, d.View(), "Incorrect input please type in a number")
}

func TestTracker_QuitEndsProgram(t *testing.T) {
	d := newTrackerDriver(t, "")
	d.Submit("quit")
	assert.True(t, d.Quitting)
	assert.True(t, d.state().Done())
	assert.Contains(t, d.View(), "Goodbye.")
}

func TestTracker_CtrlCQuits(t *testing.T) {
	d := newTrackerDriver(t, "")
	d.Submit("settings")
	d.Submit("round")
	d.Press(tea.KeyCtrlC)
	assert.True(t, d.Quitting)
	assert.Equal(t, session.PromptNone, d.state().Pending)
}

func TestTracker_History(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte("review\n"), 0o644))

	d := newTrackerDriver(t, path)
	d.Submit("coding")

	d.Press(tea.KeyUp)
	assert.Equal(t, "coding", d.Model.(trackerModel).input.Value())
	d.Press(tea.KeyUp)
	assert.Equal(t, "review", d.Model.(trackerModel).input.Value())
	d.Press(tea.KeyUp)
	assert.Equal(t, "review", d.Model.(trackerModel).input.Value(), "stops at oldest")
	d.Press(tea.KeyDown)
	d.Press(tea.KeyDown)
	assert.Empty(t, d.Model.(trackerModel).input.Value())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "review\ncoding\n", string(data))
}
