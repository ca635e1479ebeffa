package session

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedTerminal feeds canned lines and records what was shown.
type scriptedTerminal struct {
	lines   []string
	err     error
	menus   []Menu
	replies []Reply
}

func (s *scriptedTerminal) ShowMenu(m Menu) { s.menus = append(s.menus, m) }

func (s *scriptedTerminal) ShowReply(_ State, r Reply) { s.replies = append(s.replies, r) }

func (s *scriptedTerminal) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func TestRun_FullSession(t *testing.T) {
	c, rec := newTestController()
	term := &scriptedTerminal{lines: []string{
		"settings", "round", "5", "exit",
		"coding", "break", "review", "exit",
		"summary", "quit",
	}}

	st, err := c.Run(context.Background(), Start(*testutil.NewTestRecordSet()), term)
	require.NoError(t, err)
	assert.True(t, st.Done())

	assert.Equal(t, 5, st.Records.RoundingGrain)
	assert.Equal(t, map[int64]domain.Label{
		1000: domain.Task("coding"),
		1060: domain.Break(),
		1120: domain.Task("review"),
		1180: domain.Break(),
	}, st.Records.Events)
	require.NotNil(t, rec.saved)
	assert.Equal(t, st.Records, *rec.saved)

	assert.Len(t, term.menus, 10)
	require.NotNil(t, term.replies[8].Summary, "summary reply")
	assert.Equal(t, []string{"coding", "review"}, term.replies[8].Summary.TaskNames())
}

func TestRun_EOFClosesSession(t *testing.T) {
	c, _ := newTestController()
	term := &scriptedTerminal{lines: []string{"settings", "goal"}}

	st, err := c.Run(context.Background(), Start(*testutil.NewTestRecordSet()), term)
	require.NoError(t, err)
	assert.Equal(t, Closed, st.Screen)
	assert.Equal(t, PromptNone, st.Pending)
}

func TestRun_ReadErrorSurfaces(t *testing.T) {
	c, _ := newTestController()
	term := &scriptedTerminal{err: errors.New("tty gone")}

	st, err := c.Run(context.Background(), Start(*testutil.NewTestRecordSet()), term)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
	assert.Equal(t, Welcome, st.Screen)
}

func TestRun_CancelledContext(t *testing.T) {
	c, _ := newTestController()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Run(ctx, Start(*testutil.NewTestRecordSet()), &scriptedTerminal{})
	assert.ErrorIs(t, err, context.Canceled)
}
