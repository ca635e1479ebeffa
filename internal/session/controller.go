package session

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/timing"
)

// Recorder persists record sets. service.RecordService satisfies it.
type Recorder interface {
	Save(ctx context.Context, rs domain.RecordSet) error
	Record(ctx context.Context, rs domain.RecordSet, label domain.Label, at time.Time) (domain.RecordSet, error)
}

// Controller maps (state, input line) to the next state. It holds no
// state of its own beyond its collaborators.
type Controller struct {
	recorder Recorder
	now      func() time.Time
}

func NewController(recorder Recorder, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{recorder: recorder, now: now}
}

// Normalize lowercases and trims a line of input.
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Transition applies one line of input. A mutation is committed only
// after it has been persisted; on a save failure the returned state is
// st unchanged and the reply carries the error.
func (c *Controller) Transition(ctx context.Context, st State, input string) (State, Reply) {
	in := Normalize(input)

	if st.Pending != PromptNone {
		return c.answer(ctx, st, in)
	}

	switch st.Screen {
	case Welcome:
		return c.welcome(ctx, st, in)
	case Settings:
		return c.settings(st, in)
	case Working:
		return c.working(ctx, st, in)
	case Closed:
		return st, Reply{}
	default:
		return st, errorReply("ERROR: unknown screen %s", st.Screen)
	}
}

func (c *Controller) welcome(ctx context.Context, st State, in string) (State, Reply) {
	switch in {
	case "":
		return st, errorReply("ERROR: no text received")
	case "reset":
		cleared := st.Records.WithoutEvents()
		if err := c.recorder.Save(ctx, cleared); err != nil {
			return st, saveFailed(err)
		}
		st.Records = cleared
		return st, infoReply("Tracking data cleared.")
	case "quit":
		st.Screen = Closed
		return st, Reply{}
	case "settings":
		st.Screen = Settings
		return st, Reply{}
	case "summary":
		sum := timing.Summarize(st.Records)
		return st, Reply{Summary: &sum}
	default:
		return c.record(ctx, st, domain.LabelFromInput(in), Working)
	}
}

func (c *Controller) settings(st State, in string) (State, Reply) {
	switch in {
	case "test":
		st.Pending = PromptTestMode
	case "exit":
		st.Screen = Welcome
	case "quit":
		st.Screen = Closed
	case "round":
		st.Pending = PromptRounding
	case "goal":
		st.Pending = PromptGoal
	default:
		reply := errorReply("ERROR incorrect input")
		if hint, ok := suggest(in, settingsCommands); ok {
			reply.Notices = append(reply.Notices, Notice{Level: NoticeInfo, Text: "Did you mean '" + strings.ToUpper(hint) + "'?"})
		}
		return st, reply
	}
	return st, Reply{}
}

func (c *Controller) working(ctx context.Context, st State, in string) (State, Reply) {
	switch in {
	case "":
		return st, errorReply("ERROR: no text received")
	case "exit":
		return c.record(ctx, st, domain.Break(), Welcome)
	case "quit":
		st.Screen = Closed
		return st, Reply{}
	default:
		return c.record(ctx, st, domain.LabelFromInput(in), Working)
	}
}

func (c *Controller) record(ctx context.Context, st State, label domain.Label, next Screen) (State, Reply) {
	rs, err := c.recorder.Record(ctx, st.Records, label, c.now())
	if err != nil {
		return st, saveFailed(err)
	}
	st.Records = rs
	st.Screen = next
	return st, Reply{}
}

// answer handles input while a settings value prompt is pending. Invalid
// values keep the prompt pending so the user is asked again.
func (c *Controller) answer(ctx context.Context, st State, in string) (State, Reply) {
	updated := st.Records.Clone()

	switch st.Pending {
	case PromptTestMode:
		v, ok := parseBool(in)
		if !ok {
			return st, errorReply("Incorrect input please enter 'true' or 'false'")
		}
		updated.TestMode = v
	case PromptRounding:
		v, ok := parseNumber(in)
		if !ok || v < 1 || v > math.MaxInt32 {
			return st, errorReply("Incorrect input please type in a positive number")
		}
		updated.RoundingGrain = int(v)
	case PromptGoal:
		v, ok := parseNumber(in)
		if !ok || v < 0 {
			return st, errorReply("Incorrect input please type in a number")
		}
		updated.GoalMinutes = 60 * v
	default:
		st.Pending = PromptNone
		return st, Reply{}
	}

	st.Pending = PromptNone
	if err := c.recorder.Save(ctx, updated); err != nil {
		return st, saveFailed(err)
	}
	st.Records = updated
	return st, Reply{}
}

func saveFailed(err error) Reply {
	return errorReply("ERROR: could not save: %v", err)
}

var boolWords = map[string]bool{
	"true":  true,
	"yes":   true,
	"false": false,
	"no":    false,
}

func parseBool(in string) (bool, bool) {
	v, ok := boolWords[in]
	return v, ok
}

func parseNumber(in string) (float64, bool) {
	v, err := strconv.ParseFloat(in, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
