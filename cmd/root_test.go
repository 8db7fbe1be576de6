package cmd

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markuz5116/tracker-go/internal/snapshot"
	"github.com/markuz5116/tracker-go/internal/storage"
	"github.com/markuz5116/tracker-go/internal/task"
)

func setTestEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TRACKER_DATA", filepath.Join(dir, "data", "save.txt"))
	t.Setenv("TRACKER_EXPORT", filepath.Join(dir, "data", "tasks.json"))
	return dir
}

func TestRunVersion(t *testing.T) {
	setTestEnv(t)
	if err := Run(context.Background(), []string{"version"}); err != nil {
		t.Fatalf("version failed: %v", err)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	setTestEnv(t)
	err := Run(context.Background(), []string{"bogus"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("got err %v, want unknown command", err)
	}
}

func TestRunListEmpty(t *testing.T) {
	setTestEnv(t)
	if err := Run(context.Background(), []string{"list"}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
}

func TestRunDoctor(t *testing.T) {
	setTestEnv(t)
	if err := Run(context.Background(), []string{"doctor"}); err != nil {
		t.Fatalf("doctor failed: %v", err)
	}
}

func TestRunExportImport(t *testing.T) {
	dir := setTestEnv(t)

	savePath := filepath.Join(dir, "data", "save.txt")
	store, err := storage.Open(savePath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	todo, err := task.NewTodo("buy milk")
	if err != nil {
		t.Fatalf("NewTodo failed: %v", err)
	}
	if err := store.Save([]task.Task{todo}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	exportPath := filepath.Join(dir, "data", "tasks.json")
	if err := Run(context.Background(), []string{"export"}); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	tasks, err := snapshot.Import(exportPath)
	if err != nil {
		t.Fatalf("Import of exported snapshot failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Description != "buy milk" {
		t.Errorf("exported tasks: got %+v", tasks)
	}

	// Wipe the save file, then import the snapshot back.
	if err := store.Save(nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := Run(context.Background(), []string{"import"}); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	restored, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(restored) != 1 || !restored[0].Equal(todo) {
		t.Errorf("restored tasks: got %+v", restored)
	}
}

func TestRunExportWithPathArgument(t *testing.T) {
	dir := setTestEnv(t)
	other := filepath.Join(dir, "elsewhere.json")
	if err := Run(context.Background(), []string{"export", other}); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if _, err := snapshot.Import(other); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
}
