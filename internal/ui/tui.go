// Package ui provides an optional terminal interface over the save file.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/markuz5116/tracker-go/internal/storage"
	"github.com/markuz5116/tracker-go/internal/task"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Underline(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// RunTUI starts the read-only task board over the given store.
func RunTUI(ctx context.Context, store *storage.Store) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	model := newBoardModel(store)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type boardModel struct {
	store        *storage.Store
	tasks        []task.Task
	loadErr      error
	showHelp     bool
	tickInterval time.Duration
}

type tickMsg time.Time

func newBoardModel(store *storage.Store) *boardModel {
	return &boardModel{
		store:        store,
		tickInterval: time.Second,
	}
}

func (m *boardModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}
	return m, nil
}

func (m *boardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tracker") + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString(errorStyle.Render("Error loading save file:") + "\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b)
		return b.String()
	}

	writeCounts(&b, m.tasks)
	writeListing(&b, m.tasks)
	writeNext(&b, m.tasks)
	b.WriteString(dimStyle.Render("Save file: "+m.store.Path()) + "\n\n")
	writeFooter(&b)
	return b.String()
}

func (m *boardModel) refresh() {
	tasks, err := m.store.Load()
	if err != nil {
		m.loadErr = err
		m.tasks = nil
		return
	}
	m.loadErr = nil
	m.tasks = tasks
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func writeCounts(b *strings.Builder, tasks []task.Task) {
	done := 0
	for _, t := range tasks {
		if t.Done {
			done++
		}
	}
	b.WriteString(fmt.Sprintf("  Total: %d  Done: %d  Pending: %d\n\n",
		len(tasks), done, len(tasks)-done))
}

func writeListing(b *strings.Builder, tasks []task.Task) {
	b.WriteString(headerStyle.Render("Tasks") + "\n\n")
	if len(tasks) == 0 {
		b.WriteString("  Nothing in the list.\n\n")
		return
	}
	for i, t := range tasks {
		b.WriteString(fmt.Sprintf("  %d.%s\n", i+1, t))
	}
	b.WriteString("\n")
}

func writeNext(b *strings.Builder, tasks []task.Task) {
	for i, t := range tasks {
		if !t.Done {
			b.WriteString(fmt.Sprintf("Next up: %d.%s\n\n", i+1, t))
			return
		}
	}
	if len(tasks) > 0 {
		b.WriteString("All tasks done.\n\n")
	}
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  r, F5        Refresh\n")
	b.WriteString("  h, ?         Toggle this help screen\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString(dimStyle.Render("Press h for help | q to quit"))
	b.WriteString("\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
