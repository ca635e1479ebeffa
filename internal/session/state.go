package session

import (
	"fmt"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/timing"
)

// Screen is one node of the menu state machine.
type Screen int

const (
	Welcome Screen = iota
	Settings
	Working
	Closed
)

func (s Screen) String() string {
	switch s {
	case Welcome:
		return "welcome"
	case Settings:
		return "settings"
	case Working:
		return "working"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Prompt is a settings value the user has been asked for and not yet
// supplied. It only occurs on the Settings screen.
type Prompt int

const (
	PromptNone Prompt = iota
	PromptTestMode
	PromptRounding
	PromptGoal
)

// State is the whole controller state. Transitions take a State and
// return the next one; nothing else holds the record set.
type State struct {
	Screen  Screen
	Pending Prompt
	Records domain.RecordSet
}

// Start returns the initial state for a loaded record set.
func Start(rs domain.RecordSet) State {
	return State{Screen: Welcome, Records: rs}
}

// Done reports whether the terminal screen has been reached.
func (s State) Done() bool { return s.Screen == Closed }

type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeError
)

type Notice struct {
	Level NoticeLevel
	Text  string
}

// Reply is what a transition wants shown to the user.
type Reply struct {
	Notices []Notice
	Summary *timing.Summary
}

func infoReply(format string, args ...any) Reply {
	return Reply{Notices: []Notice{{Level: NoticeInfo, Text: fmt.Sprintf(format, args...)}}}
}

func errorReply(format string, args ...any) Reply {
	return Reply{Notices: []Notice{{Level: NoticeError, Text: fmt.Sprintf(format, args...)}}}
}

// HasError reports whether any notice is an error.
func (r Reply) HasError() bool {
	for _, n := range r.Notices {
		if n.Level == NoticeError {
			return true
		}
	}
	return false
}
