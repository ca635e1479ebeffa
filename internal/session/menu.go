package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/timing"
)

// Menu describes what to show before reading the next line.
type Menu struct {
	Title  string
	Lines  []string
	Status string
	Prompt string
}

// MenuFor builds the menu for st. It only reads st.
func MenuFor(st State) Menu {
	if st.Pending != PromptNone {
		return Menu{Title: "Settings", Prompt: promptText(st.Pending)}
	}

	switch st.Screen {
	case Welcome:
		return Menu{
			Title: "Welcome to Time Tracking.",
			Lines: []string{
				"To reset data type 'RESET'",
				"To go to the settings menu type 'SETTINGS'",
				"To get summary of current statistics type 'SUMMARY'",
				"To close application from any screen type 'QUIT'",
				"To start working on tasks type a name for the task",
			},
			Prompt: ": ",
		}
	case Settings:
		return Menu{
			Title: "Settings:",
			Lines: []string{
				"To return to main type 'EXIT'",
				"To update rounding value type 'ROUND'",
				"To update goal time for work type 'GOAL'",
				"To turn on or off testing mode type 'TEST'",
			},
			Status: settingsStatus(st),
			Prompt: ": ",
		}
	case Working:
		return Menu{
			Title: "Tracking",
			Lines: []string{
				"To stop tracking time type 'EXIT'",
				"To start a break type 'BREAK'",
				"To start on a new task type name of task",
			},
			Status: workingStatus(st),
			Prompt: ": ",
		}
	default:
		return Menu{}
	}
}

func promptText(p Prompt) string {
	switch p {
	case PromptTestMode:
		return "Do you want to set testing to true or false? "
	case PromptRounding:
		return "Input rounding number (min): "
	case PromptGoal:
		return "Input goal time (hours): "
	default:
		return ": "
	}
}

func settingsStatus(st State) string {
	rs := st.Records
	return fmt.Sprintf("rounding %d, goal %.1f hours, test mode %t", rs.RoundingGrain, rs.GoalMinutes/60, rs.TestMode)
}

func workingStatus(st State) string {
	sum := timing.Summarize(st.Records)
	unit := sum.Unit.Name()
	tasks := strings.Join(sum.TaskNames(), ", ")
	if tasks == "" {
		tasks = "none yet"
	}
	status := fmt.Sprintf("tracking time %d %s spent on tasks: %s & %d %s on breaks",
		sum.TotalWork, unit, tasks, sum.TotalBreak, unit)

	if label, start, ok := timing.OpenInterval(st.Records.Events); ok {
		status += fmt.Sprintf("\ncurrent: %s (since %s)", label, time.Unix(start, 0).Format("15:04"))
	}
	return status
}
