package domain

import (
	"fmt"
	"strings"
)

// LabelKind distinguishes a task interval from a break interval.
type LabelKind string

const (
	KindTask  LabelKind = "task"
	KindBreak LabelKind = "break"
)

// BreakKeyword is the word that starts a break at the prompt and the
// legacy on-disk spelling of a break label.
const BreakKeyword = "BREAK"

// Label names the activity that starts at an event's timestamp.
// The zero value is not a valid label; use Task or Break.
type Label struct {
	kind LabelKind
	task string
}

// Task returns a label for the named task.
func Task(name string) Label {
	return Label{kind: KindTask, task: name}
}

// Break returns the break label.
func Break() Label {
	return Label{kind: KindBreak}
}

func (l Label) Kind() LabelKind { return l.kind }

func (l Label) IsBreak() bool { return l.kind == KindBreak }

// TaskName returns the task name, or "" for a break.
func (l Label) TaskName() string { return l.task }

func (l Label) String() string {
	if l.IsBreak() {
		return BreakKeyword
	}
	return l.task
}

// ParseLabel rebuilds a label from its stored kind and task name.
func ParseLabel(kind, task string) (Label, error) {
	switch LabelKind(kind) {
	case KindTask:
		return Task(task), nil
	case KindBreak:
		return Break(), nil
	default:
		return Label{}, fmt.Errorf("unknown label kind %q", kind)
	}
}

// LabelFromInput maps typed text to a label. The break keyword is matched
// case-insensitively; anything else names a task.
func LabelFromInput(text string) Label {
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, BreakKeyword) {
		return Break()
	}
	return Task(text)
}
