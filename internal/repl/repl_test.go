package repl

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/markuz5116/tracker-go/internal/storage"
	"github.com/markuz5116/tracker-go/internal/tasklist"
)

func newTestSession(t *testing.T, input string) (*Session, *bytes.Buffer, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "data", "save.txt"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	var out bytes.Buffer
	logger := log.NewWithOptions(io.Discard, log.Options{})
	s := New(tasklist.New(nil), store, logger, nil, strings.NewReader(input), &out)
	return s, &out, store
}

func TestSessionScenario(t *testing.T) {
	input := strings.Join([]string{
		"todo buy milk",
		"done 1",
		"list",
		"deadline submit report /by 2024-03-01",
		"delete 1",
		"list",
		"bye",
	}, "\n") + "\n"

	s, out, store := newTestSession(t, input)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"Hello! I'm Tracker",
		"Got it. I've added this task:",
		"[T][ ] buy milk",
		"Nice! I've marked this task as done:",
		"[T][X] buy milk",
		"submit report (by: Mar 01 2024)",
		"Noted. I've removed this task:",
		"1.[D][ ] submit report (by: Mar 01 2024)",
		"Bye. Hope to see you again soon!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}

	// The save file reflects the final state.
	tasks, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Description != "submit report" {
		t.Errorf("persisted tasks: got %+v", tasks)
	}
}

func TestSessionErrorsAreRecoverable(t *testing.T) {
	input := strings.Join([]string{
		"todo",
		"deadline report /by 2024/03/01",
		"blah",
		"done 5",
		"done x",
		"delete 1",
		"todo buy milk",
		"bye",
	}, "\n") + "\n"

	s, out, _ := newTestSession(t, input)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"The description of a todo cannot be empty.",
		"Date is not input correctly. Ensure input date is: YYYY-MM-DD.",
		"I'm sorry, but I don't know what that means.",
		"Please enter an integer within your tasks size: 0",
		"Please enter an integer as argument.",
		"You cannot delete from an empty task list.",
		// The loop kept going: the last add succeeded.
		"Got it. I've added this task:",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if s.list.Size() != 1 {
		t.Errorf("list size: got %d, want 1", s.list.Size())
	}
}

func TestSessionEOFEndsRun(t *testing.T) {
	s, _, _ := newTestSession(t, "todo buy milk\n")
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed on EOF: %v", err)
	}
}

func TestSessionUnknownCommandLeavesListUnchanged(t *testing.T) {
	s, _, store := newTestSession(t, "blah\nbye\n")
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if s.list.Size() != 0 {
		t.Errorf("list size: got %d, want 0", s.list.Size())
	}
	tasks, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("save file should be empty, got %+v", tasks)
	}
}
