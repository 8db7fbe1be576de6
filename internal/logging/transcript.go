package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TranscriptEntry is one command/outcome pair in a session transcript.
type TranscriptEntry struct {
	Time    time.Time `json:"time"`
	Command string    `json:"command"`
	OK      bool      `json:"ok"`
	Result  string    `json:"result,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// Transcript writes a JSONL record of every command in a session to its own
// file under the given directory.
type Transcript struct {
	Path string
	file *os.File
	enc  *json.Encoder
}

// NewTranscript creates a per-session transcript file named by start time.
func NewTranscript(dir string) (*Transcript, error) {
	if dir == "" {
		return nil, fmt.Errorf("transcript dir is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create transcript dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("session-%s.jsonl", time.Now().Format("20060102-150405")))
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create transcript file: %w", err)
	}
	return &Transcript{Path: path, file: file, enc: json.NewEncoder(file)}, nil
}

// Record appends one entry. The entry time is set here if unset.
func (t *Transcript) Record(entry TranscriptEntry) error {
	if t == nil || t.enc == nil {
		return nil
	}
	if entry.Time.IsZero() {
		entry.Time = time.Now().UTC()
	}
	return t.enc.Encode(entry)
}

// Close closes the transcript file.
func (t *Transcript) Close() error {
	if t == nil || t.file == nil {
		return nil
	}
	return t.file.Close()
}
