// Package tasklist holds the in-memory ordered task collection and the
// operations the command grammar drives.
package tasklist

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/markuz5116/tracker-go/internal/parser"
	"github.com/markuz5116/tracker-go/internal/task"
)

// ErrEmptyList means delete was attempted with no tasks in the list.
var ErrEmptyList = errors.New("cannot delete from an empty task list")

// IndexRangeError means a command index resolved outside the list bounds.
type IndexRangeError struct {
	Index int // 0-based
	Size  int
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("index %d out of range, have %d tasks", e.Index+1, e.Size)
}

// List is the ordered task collection. Insertion order is display and index
// order; indices are 1-based at the command boundary, 0-based internally.
type List struct {
	tasks []task.Task
}

// New builds a list seeded with tasks, typically from a storage load.
func New(tasks []task.Task) *List {
	return &List{tasks: tasks}
}

// Size returns the number of tasks.
func (l *List) Size() int {
	return len(l.tasks)
}

// Tasks returns a copy of the collection in order.
func (l *List) Tasks() []task.Task {
	out := make([]task.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Get returns the task at the 0-based index.
func (l *List) Get(i int) (task.Task, error) {
	if i < 0 || i >= len(l.tasks) {
		return task.Task{}, &IndexRangeError{Index: i, Size: len(l.tasks)}
	}
	return l.tasks[i], nil
}

// Add interprets a raw add command and appends the resulting task. Parser
// failures leave the list unchanged.
func (l *List) Add(line string) (task.Task, error) {
	kind, err := parser.ClassifyAdd(line)
	if err != nil {
		return task.Task{}, err
	}

	var t task.Task
	switch kind {
	case task.KindTodo:
		t, err = buildTodo(line)
	case task.KindDeadline, task.KindEvent:
		t, err = buildDated(line, kind)
	}
	if err != nil {
		return task.Task{}, err
	}

	l.tasks = append(l.tasks, t)
	return t, nil
}

// MarkDone interprets a raw done command and flips the done flag on the
// addressed task.
func (l *List) MarkDone(line string) (task.Task, error) {
	i, err := parser.Index(line, parser.DoneIndexOffset)
	if err != nil {
		return task.Task{}, err
	}
	if i < 0 || i >= len(l.tasks) {
		return task.Task{}, &IndexRangeError{Index: i, Size: len(l.tasks)}
	}
	l.tasks[i].MarkDone()
	return l.tasks[i], nil
}

// Delete interprets a raw delete command, removes the addressed task, and
// returns it together with the new list size. An empty list fails before the
// index is even parsed.
func (l *List) Delete(line string) (task.Task, int, error) {
	if len(l.tasks) == 0 {
		return task.Task{}, 0, ErrEmptyList
	}
	i, err := parser.Index(line, parser.DeleteIndexOffset)
	if err != nil {
		return task.Task{}, 0, err
	}
	if i < 0 || i >= len(l.tasks) {
		return task.Task{}, 0, &IndexRangeError{Index: i, Size: len(l.tasks)}
	}
	removed := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return removed, len(l.tasks), nil
}

// Lines renders the numbered 1-based listing, one task per line.
func (l *List) Lines() []string {
	out := make([]string, len(l.tasks))
	for i, t := range l.tasks {
		out[i] = fmt.Sprintf("%d.%s", i+1, t)
	}
	return out
}

// String renders the listing as a single block.
func (l *List) String() string {
	return strings.Join(l.Lines(), "\n")
}

func buildTodo(line string) (task.Task, error) {
	desc, err := parser.TodoDescription(line)
	if err != nil {
		return task.Task{}, err
	}
	return task.NewTodo(desc)
}

func buildDated(line string, kind task.Kind) (task.Task, error) {
	desc, err := parser.DatedDescription(line, kind)
	if err != nil {
		return task.Task{}, err
	}
	var date time.Time
	if date, err = parser.DatedDate(line, kind); err != nil {
		return task.Task{}, err
	}
	if kind == task.KindDeadline {
		return task.NewDeadline(desc, date)
	}
	return task.NewEvent(desc, date)
}
