// Package cmd implements the CLI command structure for tracker.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/markuz5116/tracker-go/internal/codec"
	"github.com/markuz5116/tracker-go/internal/config"
	"github.com/markuz5116/tracker-go/internal/logging"
	"github.com/markuz5116/tracker-go/internal/repl"
	"github.com/markuz5116/tracker-go/internal/snapshot"
	"github.com/markuz5116/tracker-go/internal/storage"
	"github.com/markuz5116/tracker-go/internal/tasklist"
	"github.com/markuz5116/tracker-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the tracker CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tracker", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Determine the subcommand; no args or a leading flag means repl.
	subcommand := "repl"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "repl":
		return replCommand(ctx, cfg, remainingArgs)
	case "list", "ls":
		return listCommand(cfg, remainingArgs)
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "export":
		return exportCommand(cfg, remainingArgs)
	case "import":
		return importCommand(cfg, remainingArgs)
	case "doctor":
		return doctorCommand(cfg, remainingArgs)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// replCommand runs the interactive session.
func replCommand(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	logger := newLogger(cfg)

	store, list, err := openList(cfg, logger)
	if err != nil {
		return err
	}

	var transcript *logging.Transcript
	if cfg.Transcript {
		transcript, err = logging.NewTranscript(filepath.Dir(cfg.DataFile))
		if err != nil {
			logger.Warn("could not open transcript", "err", err)
		} else {
			defer transcript.Close()
			logger.Debug("transcript enabled", "path", transcript.Path)
		}
	}

	session := repl.New(list, store, logger, transcript, os.Stdin, os.Stdout)
	return session.Run(ctx)
}

// listCommand prints the current listing once and exits.
func listCommand(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	_, list, err := openList(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	if list.Size() == 0 {
		fmt.Println("No tasks in the list.")
		return nil
	}
	for _, line := range list.Lines() {
		fmt.Println(line)
	}
	return nil
}

// tuiCommand launches the terminal board.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	store, err := storage.Open(cfg.DataFile)
	if err != nil {
		return err
	}
	return ui.RunTUI(ctx, store)
}

// exportCommand writes the JSON snapshot.
func exportCommand(cfg *config.Config, args []string) error {
	path := cfg.ExportFile
	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	if len(args) == 1 {
		path = args[0]
	}

	_, list, err := openList(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	if err := snapshot.Export(list.Tasks(), path); err != nil {
		return err
	}
	fmt.Printf("Exported %d tasks to %s\n", list.Size(), path)
	return nil
}

// importCommand rebuilds the save file from a JSON snapshot.
func importCommand(cfg *config.Config, args []string) error {
	path := cfg.ExportFile
	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	if len(args) == 1 {
		path = args[0]
	}

	tasks, err := snapshot.Import(path)
	if err != nil {
		return err
	}
	store, err := storage.Open(cfg.DataFile)
	if err != nil {
		return err
	}
	if err := store.Save(tasks); err != nil {
		return err
	}
	fmt.Printf("Imported %d tasks from %s\n", len(tasks), path)
	return nil
}

// doctorCommand checks the environment the tracker depends on.
func doctorCommand(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	fmt.Println("Tracker Doctor")
	fmt.Println("==============")
	fmt.Println()

	allOK := true

	dataDir := filepath.Dir(cfg.DataFile)
	fmt.Printf("Data dir: %s\n", dataDir)
	if err := checkWritable(dataDir); err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		allOK = false
	} else {
		fmt.Println("  OK")
	}
	fmt.Println()

	fmt.Printf("Save file: %s\n", cfg.DataFile)
	store, err := storage.Open(cfg.DataFile)
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		allOK = false
	} else if tasks, err := store.Load(); err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		allOK = false
	} else {
		fmt.Printf("  OK (%d tasks)\n", len(tasks))
	}
	fmt.Println()

	fmt.Printf("Log level: %s\n", cfg.LogLevel)
	fmt.Printf("Log format: %s\n", cfg.LogFormat)
	fmt.Println()

	if !allOK {
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func versionCommand() error {
	fmt.Printf("tracker %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
	return nil
}

// newLogger builds the console logger from config. Warnings go to stderr so
// task output on stdout stays clean.
func newLogger(cfg *config.Config) *log.Logger {
	opts := logging.DefaultConsoleOptions()
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	opts.Formatter = logging.ParseFormat(cfg.LogFormat)
	opts.ReportTimestamp = cfg.LogTimestamps
	opts.NoColor = cfg.NoColor
	return logging.NewConsole(os.Stderr, opts)
}

// openList opens the store and loads the task list. A corrupt or unreadable
// save file is surfaced as a warning and the session starts empty.
func openList(cfg *config.Config, logger *log.Logger) (*storage.Store, *tasklist.List, error) {
	store, err := storage.Open(cfg.DataFile)
	if err != nil {
		return nil, nil, err
	}
	tasks, err := store.Load()
	if err != nil {
		if errors.Is(err, codec.ErrCorruptedStorage) {
			logger.Warn("save file is corrupted, starting with an empty list", "err", err)
		} else {
			logger.Warn("could not read save file, starting with an empty list", "err", err)
		}
		tasks = nil
	}
	return store, tasklist.New(tasks), nil
}

func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Tracker - A file-backed personal task tracker")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tracker [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  repl           Start the interactive session (default command)")
	fmt.Fprintln(w, "  list           Print the task listing once")
	fmt.Fprintln(w, "  tui            Launch the terminal board")
	fmt.Fprintln(w, "  export [file]  Write the task list as a JSON snapshot")
	fmt.Fprintln(w, "  import [file]  Replace the save file from a JSON snapshot")
	fmt.Fprintln(w, "  doctor         Check data dir, save file, and config")
	fmt.Fprintln(w, "  version        Show version information")
	fmt.Fprintln(w, "  help           Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Session commands (inside repl):")
	fmt.Fprintln(w, "  list                               Print all tasks")
	fmt.Fprintln(w, "  todo <desc>                        Add a plain task")
	fmt.Fprintln(w, "  deadline <desc> /by YYYY-MM-DD     Add a deadline task")
	fmt.Fprintln(w, "  event <desc> /at YYYY-MM-DD        Add an event task")
	fmt.Fprintln(w, "  done <n>                           Mark task n complete")
	fmt.Fprintln(w, "  delete <n>                         Remove task n")
	fmt.Fprintln(w, "  bye                                End the session")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
