// Package parser turns raw command lines into structured commands and
// validated arguments.
package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/markuz5116/tracker-go/internal/task"
)

// Command is the top-level command classification.
type Command int

const (
	CommandAdd Command = iota
	CommandDone
	CommandList
	CommandDelete
	CommandBye
)

// Command words and derived offsets. The grammar is a rigid
// "verb + fixed marker + content" form, so fixed-width offsets are
// enough; no tokenizer is needed.
const (
	doneWord     = "done"
	listWord     = "list"
	deleteWord   = "delete"
	byeWord      = "bye"
	todoWord     = "todo"
	deadlineWord = "deadline"
	eventWord    = "event"

	// DoneIndexOffset is where the index argument starts in "done N".
	DoneIndexOffset = len(doneWord) + 1
	// DeleteIndexOffset is where the index argument starts in "delete N".
	DeleteIndexOffset = len(deleteWord) + 1

	todoOffset     = len(todoWord) + 1
	deadlineOffset = len(deadlineWord) + 1
	eventOffset    = len(eventWord) + 1

	// dateMarkerLen covers the literal "by " / "at " marker after the slash.
	dateMarkerLen = 3

	dateSeparator  = "/"
	todoMinTokens  = 2
	datedMinTokens = 4
)

// Classify determines the command kind by literal prefix. Anything that
// matches no known prefix is treated as an add command; unknown-command
// detection then happens in ClassifyAdd.
func Classify(line string) Command {
	switch {
	case strings.TrimSpace(line) == byeWord:
		return CommandBye
	case strings.HasPrefix(line, doneWord):
		return CommandDone
	case strings.HasPrefix(line, listWord):
		return CommandList
	case strings.HasPrefix(line, deleteWord):
		return CommandDelete
	default:
		return CommandAdd
	}
}

// ClassifyAdd determines which task variant an add command creates.
func ClassifyAdd(line string) (task.Kind, error) {
	switch {
	case strings.HasPrefix(line, todoWord):
		return task.KindTodo, nil
	case strings.HasPrefix(line, deadlineWord):
		return task.KindDeadline, nil
	case strings.HasPrefix(line, eventWord):
		return task.KindEvent, nil
	default:
		return "", ErrUnknownArguments
	}
}

// Index strips prefixLen bytes from the line and parses the remainder as a
// 1-based index, returning it 0-based.
func Index(line string, prefixLen int) (int, error) {
	if len(line) < prefixLen {
		return 0, &IndexFormatError{Input: line}
	}
	arg := strings.TrimSpace(line[prefixLen:])
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &IndexFormatError{Input: arg, Err: err}
	}
	return n - 1, nil
}

// TodoDescription extracts the description from a "todo <desc>" line.
func TodoDescription(line string) (string, error) {
	if len(strings.Split(line, " ")) < todoMinTokens {
		return "", &NoDescriptionError{Command: todoWord}
	}
	desc := strings.TrimSpace(line[todoOffset:])
	if desc == "" {
		return "", &NoDescriptionError{Command: todoWord}
	}
	return desc, nil
}

// DatedDescription extracts the description from a deadline or event line,
// the part between the command word and the "/by" or "/at" marker.
func DatedDescription(line string, kind task.Kind) (string, error) {
	if len(strings.Split(line, " ")) < datedMinTokens {
		return "", &NoDescriptionError{Command: kind.Name()}
	}
	rest := line[kindOffset(kind):]
	fields := strings.Split(rest, dateSeparator)
	desc := strings.TrimSpace(fields[0])
	if desc == "" {
		return "", &NoDescriptionError{Command: kind.Name()}
	}
	return desc, nil
}

// DatedDate extracts and parses the date from a deadline or event line,
// the part after the "/by " or "/at " marker.
func DatedDate(line string, kind task.Kind) (time.Time, error) {
	off := kindOffset(kind)
	if len(line) < off {
		return time.Time{}, &DateError{Input: line}
	}
	fields := strings.Split(line[off:], dateSeparator)
	if len(fields) < 2 || len(fields[1]) < dateMarkerLen {
		return time.Time{}, &DateError{Input: line}
	}
	raw := strings.TrimSpace(fields[1][dateMarkerLen:])
	d, err := time.Parse(task.InputDateLayout, raw)
	if err != nil {
		return time.Time{}, &DateError{Input: raw, Err: err}
	}
	return d, nil
}

func kindOffset(kind task.Kind) int {
	switch kind {
	case task.KindDeadline:
		return deadlineOffset
	case task.KindEvent:
		return eventOffset
	default:
		return todoOffset
	}
}
