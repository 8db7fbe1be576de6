// Package snapshot exports and imports the task list as a JSON document.
//
// The snapshot is an interchange and backup surface next to the line-oriented
// save file; imports are validated against an embedded JSON Schema before any
// task is constructed, and any violation rejects the whole document.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/markuz5116/tracker-go/internal/task"
)

// SchemaVersion is the current snapshot document version.
const SchemaVersion = 1

// schema is the embedded JSON Schema imports are validated against.
const schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["schema_version", "tasks"],
  "properties": {
    "schema_version": {"const": 1},
    "exported_at": {"type": "string"},
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["kind", "description", "done"],
        "properties": {
          "kind": {"enum": ["T", "D", "E"]},
          "description": {"type": "string", "minLength": 1},
          "done": {"type": "boolean"},
          "date": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"}
        },
        "if": {"properties": {"kind": {"enum": ["D", "E"]}}},
        "then": {"required": ["date"]}
      }
    }
  }
}`

// Document is the on-disk snapshot layout.
type Document struct {
	SchemaVersion int        `json:"schema_version"`
	ExportedAt    time.Time  `json:"exported_at"`
	Tasks         []TaskJSON `json:"tasks"`
}

// TaskJSON is one task in the snapshot.
type TaskJSON struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
	Date        string `json:"date,omitempty"`
}

// Export writes the task list as a snapshot document to path.
func Export(tasks []task.Task, path string) error {
	doc := Document{
		SchemaVersion: SchemaVersion,
		ExportedAt:    time.Now().UTC(),
		Tasks:         make([]TaskJSON, 0, len(tasks)),
	}
	for _, t := range tasks {
		tj := TaskJSON{
			Kind:        string(t.Kind),
			Description: t.Description,
			Done:        t.Done,
		}
		if t.Kind.Dated() {
			tj.Date = t.Date.Format(task.InputDateLayout)
		}
		doc.Tasks = append(doc.Tasks, tj)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

// Import reads a snapshot document, validates it against the schema, and
// rebuilds the task list.
func Import(path string) ([]task.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	if err := validate(data); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}

	tasks := make([]task.Task, 0, len(doc.Tasks))
	for i, tj := range doc.Tasks {
		t, err := buildTask(tj)
		if err != nil {
			return nil, fmt.Errorf("snapshot task %d: %w", i+1, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func validate(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("snapshot.json", strings.NewReader(schema)); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile("snapshot.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var obj interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("not valid JSON: %w", err)
	}
	if err := compiled.Validate(obj); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

func buildTask(tj TaskJSON) (task.Task, error) {
	var t task.Task
	var err error
	switch task.Kind(tj.Kind) {
	case task.KindTodo:
		t, err = task.NewTodo(tj.Description)
	case task.KindDeadline, task.KindEvent:
		var date time.Time
		date, err = time.Parse(task.InputDateLayout, tj.Date)
		if err != nil {
			return task.Task{}, fmt.Errorf("bad date %q: %w", tj.Date, err)
		}
		if task.Kind(tj.Kind) == task.KindDeadline {
			t, err = task.NewDeadline(tj.Description, date)
		} else {
			t, err = task.NewEvent(tj.Description, date)
		}
	default:
		return task.Task{}, fmt.Errorf("unknown kind %q", tj.Kind)
	}
	if err != nil {
		return task.Task{}, err
	}
	t.Done = tj.Done
	return t, nil
}
