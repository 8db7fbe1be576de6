// Package task defines the task variants the tracker manages.
package task

import (
	"fmt"
	"strings"
	"time"
)

// DisplayDateLayout is how dates are rendered to the user.
const DisplayDateLayout = "Jan 02 2006"

// InputDateLayout is the ISO calendar date accepted from commands and storage.
const InputDateLayout = "2006-01-02"

// Kind identifies a task variant. The value doubles as the storage type tag.
type Kind string

const (
	KindTodo     Kind = "T"
	KindDeadline Kind = "D"
	KindEvent    Kind = "E"
)

// Name returns the command word for the kind.
func (k Kind) Name() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	}
	return string(k)
}

// Dated reports whether the kind carries a calendar date.
func (k Kind) Dated() bool {
	return k == KindDeadline || k == KindEvent
}

// Task is a single tracked item. Date is the zero value for plain todos.
type Task struct {
	Kind        Kind
	Description string
	Done        bool
	Date        time.Time
}

// NewTodo builds a plain task.
func NewTodo(description string) (Task, error) {
	return newTask(KindTodo, description, time.Time{})
}

// NewDeadline builds a deadline task due on the given date.
func NewDeadline(description string, due time.Time) (Task, error) {
	return newTask(KindDeadline, description, due)
}

// NewEvent builds an event task happening on the given date.
func NewEvent(description string, date time.Time) (Task, error) {
	return newTask(KindEvent, description, date)
}

func newTask(kind Kind, description string, date time.Time) (Task, error) {
	if strings.TrimSpace(description) == "" {
		return Task{}, fmt.Errorf("%s task has empty description", kind.Name())
	}
	return Task{Kind: kind, Description: description, Date: date}, nil
}

// MarkDone flips the done flag. Tasks are never updated any other way.
func (t *Task) MarkDone() {
	t.Done = true
}

// String renders the user-facing form, e.g. "[D][X] submit report (by: Mar 01 2024)".
func (t Task) String() string {
	mark := " "
	if t.Done {
		mark = "X"
	}
	switch t.Kind {
	case KindDeadline:
		return fmt.Sprintf("[%s][%s] %s (by: %s)", t.Kind, mark, t.Description, t.Date.Format(DisplayDateLayout))
	case KindEvent:
		return fmt.Sprintf("[%s][%s] %s (at: %s)", t.Kind, mark, t.Description, t.Date.Format(DisplayDateLayout))
	default:
		return fmt.Sprintf("[%s][%s] %s", t.Kind, mark, t.Description)
	}
}

// Equal compares all fields. Dates compare by instant.
func (t Task) Equal(other Task) bool {
	return t.Kind == other.Kind &&
		t.Description == other.Description &&
		t.Done == other.Done &&
		t.Date.Equal(other.Date)
}
