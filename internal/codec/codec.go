// Package codec maps tasks to and from the line-oriented save format.
//
// Each task is one line of " | "-separated fields:
//
//	type-tag | done-flag | description | date
//
// where type-tag is T, D or E, done-flag is 0 or 1, and the date field is
// present only for deadline and event tasks, rendered as YYYY-MM-DD.
package codec

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/markuz5116/tracker-go/internal/task"
)

// Separator is the literal field delimiter in the save format.
const Separator = " | "

const (
	fieldKind = iota
	fieldDone
	fieldDescription
	fieldDate
)

const (
	doneFlag    = "1"
	notDoneFlag = "0"
)

// ErrCorruptedStorage is the sentinel wrapped by every decode failure.
var ErrCorruptedStorage = errors.New("corrupted storage")

// CorruptError describes a save line that does not conform to the format.
// Line is 1-based; zero means the line number is unknown.
type CorruptError struct {
	Line   int
	Reason string
}

func (e *CorruptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("corrupted storage at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("corrupted storage: %s", e.Reason)
}

// Unwrap returns ErrCorruptedStorage so callers can errors.Is against it.
func (e *CorruptError) Unwrap() error {
	return ErrCorruptedStorage
}

// Encode renders a single task as one save line.
func Encode(t task.Task) string {
	flag := notDoneFlag
	if t.Done {
		flag = doneFlag
	}
	fields := []string{string(t.Kind), flag, t.Description}
	if t.Kind.Dated() {
		fields = append(fields, t.Date.Format(task.InputDateLayout))
	}
	return strings.Join(fields, Separator)
}

// EncodeAll renders the whole list in order, one line per task. The result
// replaces the entire save file on every write.
func EncodeAll(tasks []task.Task) string {
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(Encode(t))
		b.WriteString("\n")
	}
	return b.String()
}

// DecodeLine parses one save line back into a task.
func DecodeLine(line string) (task.Task, error) {
	fields := strings.Split(line, Separator)

	kind, err := decodeKind(fields)
	if err != nil {
		return task.Task{}, err
	}
	done, err := decodeDone(fields)
	if err != nil {
		return task.Task{}, err
	}
	desc, err := decodeDescription(fields)
	if err != nil {
		return task.Task{}, err
	}

	var t task.Task
	switch kind {
	case task.KindTodo:
		t, err = task.NewTodo(desc)
	case task.KindDeadline:
		var date time.Time
		if date, err = decodeDate(fields); err == nil {
			t, err = task.NewDeadline(desc, date)
		}
	case task.KindEvent:
		var date time.Time
		if date, err = decodeDate(fields); err == nil {
			t, err = task.NewEvent(desc, date)
		}
	}
	if err != nil {
		return task.Task{}, err
	}
	t.Done = done
	return t, nil
}

// DecodeAll parses every save line. A single malformed line fails the whole
// batch; callers fall back to an empty list and surface the error.
func DecodeAll(lines []string) ([]task.Task, error) {
	tasks := make([]task.Task, 0, len(lines))
	for i, line := range lines {
		t, err := DecodeLine(line)
		if err != nil {
			var ce *CorruptError
			if errors.As(err, &ce) {
				ce.Line = i + 1
				return nil, ce
			}
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func decodeKind(fields []string) (task.Kind, error) {
	if len(fields) <= fieldKind {
		return "", &CorruptError{Reason: "missing type tag"}
	}
	switch tag := fields[fieldKind]; tag {
	case string(task.KindTodo):
		return task.KindTodo, nil
	case string(task.KindDeadline):
		return task.KindDeadline, nil
	case string(task.KindEvent):
		return task.KindEvent, nil
	default:
		return "", &CorruptError{Reason: fmt.Sprintf("unknown type tag %q", tag)}
	}
}

func decodeDone(fields []string) (bool, error) {
	if len(fields) <= fieldDone {
		return false, &CorruptError{Reason: "missing done flag"}
	}
	switch fields[fieldDone] {
	case doneFlag:
		return true, nil
	case notDoneFlag:
		return false, nil
	default:
		return false, &CorruptError{Reason: fmt.Sprintf("bad done flag %q", fields[fieldDone])}
	}
}

func decodeDescription(fields []string) (string, error) {
	if len(fields) <= fieldDescription {
		return "", &CorruptError{Reason: "missing description"}
	}
	desc := fields[fieldDescription]
	if strings.TrimSpace(desc) == "" {
		return "", &CorruptError{Reason: "blank description"}
	}
	return desc, nil
}

func decodeDate(fields []string) (time.Time, error) {
	if len(fields) <= fieldDate {
		return time.Time{}, &CorruptError{Reason: "missing date"}
	}
	d, err := time.Parse(task.InputDateLayout, fields[fieldDate])
	if err != nil {
		return time.Time{}, &CorruptError{Reason: fmt.Sprintf("bad date %q", fields[fieldDate])}
	}
	return d, nil
}
