package parser

import (
	"errors"
	"testing"
	"time"

	"github.com/markuz5116/tracker-go/internal/task"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"list", CommandList},
		{"done 1", CommandDone},
		{"delete 2", CommandDelete},
		{"bye", CommandBye},
		{"todo buy milk", CommandAdd},
		{"deadline x /by 2024-03-01", CommandAdd},
		{"event x /at 2024-03-01", CommandAdd},
		// Unrecognized input classifies as an add command.
		{"blah", CommandAdd},
		{"", CommandAdd},
	}
	for _, tt := range tests {
		if got := Classify(tt.line); got != tt.want {
			t.Errorf("Classify(%q): got %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestClassifyAdd(t *testing.T) {
	tests := []struct {
		line    string
		want    task.Kind
		wantErr bool
	}{
		{line: "todo buy milk", want: task.KindTodo},
		{line: "deadline x /by 2024-03-01", want: task.KindDeadline},
		{line: "event x /at 2024-03-01", want: task.KindEvent},
		{line: "blah", wantErr: true},
		{line: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ClassifyAdd(tt.line)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownArguments) {
				t.Errorf("ClassifyAdd(%q): got err %v, want ErrUnknownArguments", tt.line, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ClassifyAdd(%q): unexpected error %v", tt.line, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ClassifyAdd(%q): got %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		prefixLen int
		want      int
		wantErr   bool
	}{
		{name: "done 1", line: "done 1", prefixLen: DoneIndexOffset, want: 0},
		{name: "delete 12", line: "delete 12", prefixLen: DeleteIndexOffset, want: 11},
		{name: "not a number", line: "done two", prefixLen: DoneIndexOffset, wantErr: true},
		{name: "missing argument", line: "done", prefixLen: DoneIndexOffset, wantErr: true},
		{name: "trailing junk", line: "delete 1x", prefixLen: DeleteIndexOffset, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Index(tt.line, tt.prefixLen)
			if tt.wantErr {
				var fe *IndexFormatError
				if !errors.As(err, &fe) {
					t.Fatalf("Index(%q): got err %v, want IndexFormatError", tt.line, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Index(%q): unexpected error %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("Index(%q): got %d, want %d", tt.line, got, tt.want)
			}
		})
	}
}

func TestTodoDescription(t *testing.T) {
	got, err := TodoDescription("todo buy milk")
	if err != nil {
		t.Fatalf("TodoDescription failed: %v", err)
	}
	if got != "buy milk" {
		t.Errorf("got %q, want %q", got, "buy milk")
	}
}

func TestTodoDescriptionMissing(t *testing.T) {
	for _, line := range []string{"todo", "todo ", "todo   "} {
		_, err := TodoDescription(line)
		var nd *NoDescriptionError
		if !errors.As(err, &nd) {
			t.Fatalf("TodoDescription(%q): got err %v, want NoDescriptionError", line, err)
		}
		if nd.Command != "todo" {
			t.Errorf("Command: got %q, want %q", nd.Command, "todo")
		}
	}
}

func TestDatedDescription(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		kind    task.Kind
		want    string
		wantErr bool
	}{
		{
			name: "deadline",
			line: "deadline submit report /by 2024-03-01",
			kind: task.KindDeadline,
			want: "submit report",
		},
		{
			name: "event",
			line: "event team standup /at 2026-01-02",
			kind: task.KindEvent,
			want: "team standup",
		},
		{
			name:    "too few tokens",
			line:    "deadline x",
			kind:    task.KindDeadline,
			wantErr: true,
		},
		{
			name:    "bare command",
			line:    "event",
			kind:    task.KindEvent,
			wantErr: true,
		},
		{
			name:    "blank description",
			line:    "deadline  /by 2024-03-01",
			kind:    task.KindDeadline,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DatedDescription(tt.line, tt.kind)
			if tt.wantErr {
				var nd *NoDescriptionError
				if !errors.As(err, &nd) {
					t.Fatalf("got err %v, want NoDescriptionError", err)
				}
				if nd.Command != tt.kind.Name() {
					t.Errorf("Command: got %q, want %q", nd.Command, tt.kind.Name())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDatedDate(t *testing.T) {
	want, _ := time.Parse(task.InputDateLayout, "2024-03-01")
	got, err := DatedDate("deadline submit report /by 2024-03-01", task.KindDeadline)
	if err != nil {
		t.Fatalf("DatedDate failed: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDatedDateErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind task.Kind
	}{
		{name: "slash date", line: "deadline report /by 2024/03/01", kind: task.KindDeadline},
		{name: "not a date", line: "event party /at tomorrow", kind: task.KindEvent},
		{name: "no separator", line: "deadline report by 2024-03-01", kind: task.KindDeadline},
		{name: "empty date", line: "deadline report /by ", kind: task.KindDeadline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DatedDate(tt.line, tt.kind)
			var de *DateError
			if !errors.As(err, &de) {
				t.Fatalf("got err %v, want DateError", err)
			}
		})
	}
}
