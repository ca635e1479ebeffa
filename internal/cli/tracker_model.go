package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/session"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// trackerModel is the bubbletea front-end. It feeds each submitted line
// through the same controller the line console uses.
type trackerModel struct {
	ctx   context.Context
	ctrl  *session.Controller
	state session.State

	input textinput.Model
	width int

	// rendered reply to the previous line
	last string

	historyPath string
	history     []string
	historyIdx  int
}

func newTrackerModel(ctx context.Context, ctrl *session.Controller, st session.State, historyPath string) trackerModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 200

	hist := loadHistory(historyPath)
	return trackerModel{
		ctx:         ctx,
		ctrl:        ctrl,
		state:       st,
		input:       ti,
		historyPath: historyPath,
		history:     hist,
		historyIdx:  len(hist),
	}
}

func (m trackerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m trackerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			m.state.Pending = session.PromptNone
			m.state.Screen = session.Closed
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyUp:
			m.recall(-1)
			return m, nil
		case tea.KeyDown:
			m.recall(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m trackerModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	if strings.TrimSpace(line) != "" {
		appendHistory(m.historyPath, line)
		m.history = append(m.history, strings.TrimSpace(line))
	}
	m.historyIdx = len(m.history)

	var reply session.Reply
	m.state, reply = m.ctrl.Transition(m.ctx, m.state, line)
	m.last = formatter.FormatReply(reply, m.state.Records.GoalMinutes)

	if m.state.Done() {
		return m, tea.Quit
	}
	return m, nil
}

// recall moves through history; stepping past the newest entry clears
// the input.
func (m *trackerModel) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	m.historyIdx = min(max(m.historyIdx+step, 0), len(m.history))
	if m.historyIdx == len(m.history) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.history[m.historyIdx])
	m.input.CursorEnd()
}

func (m trackerModel) View() string {
	if m.state.Done() {
		return formatter.Dim("Goodbye.") + "\n"
	}

	menu := session.MenuFor(m.state)
	var b strings.Builder
	b.WriteString(formatter.FormatMenu(menu))
	if m.last != "" {
		b.WriteString("\n" + m.last + "\n")
	}
	b.WriteString("\n")
	b.WriteString(formatter.StyleBlue.Render(strings.TrimRight(menu.Prompt, " ")) + " ")
	b.WriteString(m.input.View())
	return b.String()
}

// RunTUI loads the records and runs the bubbletea front-end.
func (a *App) RunTUI(ctx context.Context) error {
	st, err := a.loadState(ctx)
	if err != nil {
		return err
	}
	m := newTrackerModel(ctx, a.controller(), st, a.HistoryPath)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(a.input()),
		tea.WithOutput(a.output()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
