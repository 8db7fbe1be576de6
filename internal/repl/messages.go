package repl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/markuz5116/tracker-go/internal/codec"
	"github.com/markuz5116/tracker-go/internal/parser"
	"github.com/markuz5116/tracker-go/internal/task"
	"github.com/markuz5116/tracker-go/internal/tasklist"
)

const (
	indent  = "\t"
	divider = "________________________________________________________________"
)

func greeting() string {
	return strings.Join([]string{
		"Hello! I'm Tracker",
		"What can I do for you?",
	}, "\n")
}

func farewell() string {
	return "Bye. Hope to see you again soon!"
}

func addMessage(t task.Task, size int) string {
	return fmt.Sprintf("Got it. I've added this task:\n%s %s\nNow you have %d tasks in the list.",
		indent, t, size)
}

func doneMessage(t task.Task) string {
	return fmt.Sprintf("Nice! I've marked this task as done:\n%s %s", indent, t)
}

func deleteMessage(t task.Task, size int) string {
	return fmt.Sprintf("Noted. I've removed this task:\n%s %s\nNow you have %d tasks in the list.",
		indent, t, size)
}

func listMessage(lines []string) string {
	var b strings.Builder
	b.WriteString("Here are the tasks in your list:")
	for _, line := range lines {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

// errorMessage maps every recoverable command error to its user-facing text.
func errorMessage(err error, size int) string {
	var noDesc *parser.NoDescriptionError
	var dateErr *parser.DateError
	var idxFormat *parser.IndexFormatError
	var idxRange *tasklist.IndexRangeError

	switch {
	case errors.As(err, &noDesc):
		return fmt.Sprintf("The description of a %s cannot be empty.", noDesc.Command)
	case errors.As(err, &dateErr):
		return "Date is not input correctly. Ensure input date is: YYYY-MM-DD."
	case errors.As(err, &idxFormat):
		return "Please enter an integer as argument."
	case errors.As(err, &idxRange):
		return fmt.Sprintf("Please enter an integer within your tasks size: %d", size)
	case errors.Is(err, tasklist.ErrEmptyList):
		return "You cannot delete from an empty task list."
	case errors.Is(err, codec.ErrCorruptedStorage):
		return "Your save file is corrupted and could not be loaded. Starting with an empty list."
	case errors.Is(err, parser.ErrUnknownArguments):
		return "I'm sorry, but I don't know what that means."
	default:
		return err.Error()
	}
}

// block renders a reply between divider lines, every line indented.
func block(msg string) string {
	var b strings.Builder
	b.WriteString(indent + divider + "\n")
	for _, line := range strings.Split(msg, "\n") {
		b.WriteString(indent + line + "\n")
	}
	b.WriteString(indent + divider + "\n")
	return b.String()
}
