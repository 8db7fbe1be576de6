// Package repl runs the interactive command session.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/markuz5116/tracker-go/internal/logging"
	"github.com/markuz5116/tracker-go/internal/parser"
	"github.com/markuz5116/tracker-go/internal/storage"
	"github.com/markuz5116/tracker-go/internal/tasklist"
)

// Session drives the read-evaluate loop over a task list. Commands are
// processed one at a time; every mutating command rewrites the whole save
// file before the next line is read.
type Session struct {
	list       *tasklist.List
	store      *storage.Store
	logger     *log.Logger
	transcript *logging.Transcript
	in         io.Reader
	out        io.Writer
}

// New builds a session. The transcript may be nil.
func New(list *tasklist.List, store *storage.Store, logger *log.Logger, transcript *logging.Transcript, in io.Reader, out io.Writer) *Session {
	return &Session{
		list:       list,
		store:      store,
		logger:     logger,
		transcript: transcript,
		in:         in,
		out:        out,
	}
}

// Run reads commands until "bye", EOF, or context cancellation. Command
// errors are reported and the loop continues; only I/O on the session's own
// reader/writer ends it.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprint(s.out, block(greeting()))

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := scanner.Text()
		if parser.Classify(line) == parser.CommandBye {
			fmt.Fprint(s.out, block(farewell()))
			return nil
		}
		msg, err := s.handle(line)
		s.record(line, msg, err)
		if err != nil {
			msg = errorMessage(err, s.list.Size())
		}
		fmt.Fprint(s.out, block(msg))
	}
	return scanner.Err()
}

// handle executes one command and returns the success message.
func (s *Session) handle(line string) (string, error) {
	switch parser.Classify(line) {
	case parser.CommandList:
		return listMessage(s.list.Lines()), nil
	case parser.CommandDone:
		t, err := s.list.MarkDone(line)
		if err != nil {
			return "", err
		}
		s.persist()
		return doneMessage(t), nil
	case parser.CommandDelete:
		t, size, err := s.list.Delete(line)
		if err != nil {
			return "", err
		}
		s.persist()
		return deleteMessage(t, size), nil
	default:
		t, err := s.list.Add(line)
		if err != nil {
			return "", err
		}
		s.persist()
		return addMessage(t, s.list.Size()), nil
	}
}

// persist rewrites the save file. Write failures are warnings, not session
// enders; the in-memory list stays authoritative.
func (s *Session) persist() {
	if err := s.store.Save(s.list.Tasks()); err != nil {
		s.logger.Warn("could not update save file", "err", err)
	}
}

func (s *Session) record(command, result string, err error) {
	entry := logging.TranscriptEntry{Command: command, OK: err == nil, Result: result}
	if err != nil {
		entry.Error = err.Error()
	}
	if recErr := s.transcript.Record(entry); recErr != nil {
		s.logger.Warn("could not write transcript", "err", recErr)
	}
}
