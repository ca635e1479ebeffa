package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/session"
)

// lineConsole is the plain-text Terminal used when no TUI is wanted.
type lineConsole struct {
	in  *lineReader
	out io.Writer
}

func (c *lineConsole) ShowMenu(m session.Menu) {
	fmt.Fprint(c.out, formatter.FormatMenu(m))
	fmt.Fprint(c.out, m.Prompt)
}

func (c *lineConsole) ShowReply(st session.State, r session.Reply) {
	if out := formatter.FormatReply(r, st.Records.GoalMinutes); out != "" {
		fmt.Fprintln(c.out, out)
	}
	fmt.Fprintln(c.out)
}

func (c *lineConsole) ReadLine() (string, error) {
	return c.in.ReadLine()
}

// RunConsole loads the records and runs the line-based loop until the
// user quits or input ends.
func (a *App) RunConsole(ctx context.Context, in io.Reader, out io.Writer) error {
	st, err := a.loadState(ctx)
	if err != nil {
		return err
	}
	term := &lineConsole{in: newLineReader(in), out: out}
	if _, err := a.controller().Run(ctx, st, term); err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.Dim("Goodbye."))
	return nil
}
