package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/tally/internal/config"
	"github.com/alexanderramin/tally/internal/service"
	"github.com/alexanderramin/tally/internal/session"
	"github.com/spf13/cobra"
)

// App holds the collaborators used by CLI commands.
type App struct {
	Records service.RecordService

	// UIMode is one of config.UIModeLine, UIModeTUI or UIModeAuto.
	UIMode string
	// IsInteractive reports whether stdin is a terminal; consulted in auto mode.
	IsInteractive func() bool
	// HistoryPath is where the TUI keeps entered lines. Empty disables history.
	HistoryPath string

	// Now defaults to time.Now.
	Now func() time.Time
	In  io.Reader
	Out io.Writer
}

func (a *App) controller() *session.Controller {
	return session.NewController(a.Records, a.Now)
}

func (a *App) input() io.Reader {
	if a.In != nil {
		return a.In
	}
	return os.Stdin
}

func (a *App) output() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stdout
}

func (a *App) useTUI() bool {
	switch a.UIMode {
	case config.UIModeTUI:
		return true
	case config.UIModeAuto:
		return a.IsInteractive != nil && a.IsInteractive()
	default:
		return false
	}
}

// NewRootCmd creates the top-level "tally" command. Without a subcommand
// it runs the interactive tracker.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tally",
		Short:         "Personal time tracker",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.useTUI() {
				return app.RunTUI(cmd.Context())
			}
			return app.RunConsole(cmd.Context(), app.input(), app.output())
		},
	}

	root.AddCommand(
		newSummaryCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)
	return root
}

// loadState reads the record set and wraps it in the initial state.
func (a *App) loadState(ctx context.Context) (session.State, error) {
	rs, err := a.Records.LoadOrInit(ctx)
	if err != nil {
		return session.State{}, err
	}
	return session.Start(rs), nil
}
