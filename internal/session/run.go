package session

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Terminal is the line-based prompt/response surface the loop talks to.
type Terminal interface {
	ShowMenu(m Menu)
	ShowReply(st State, r Reply)
	// ReadLine blocks for one line. io.EOF ends the session.
	ReadLine() (string, error)
}

// Run drives the state machine until the Closed screen. Running out of
// input closes the session the same way "quit" does.
func (c *Controller) Run(ctx context.Context, st State, term Terminal) (State, error) {
	for !st.Done() {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		term.ShowMenu(MenuFor(st))

		line, err := term.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				st.Pending = PromptNone
				st.Screen = Closed
				return st, nil
			}
			return st, fmt.Errorf("reading input: %w", err)
		}

		var reply Reply
		st, reply = c.Transition(ctx, st, line)
		term.ShowReply(st, reply)
	}
	return st, nil
}
