// Package mirror maintains the flat-file backup of every ingested callback.
// The file is write-only from the rest of the system's perspective and is
// never pruned when records are deleted from the store.
package mirror

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// Entry is one backed-up callback: the inbound body as received, plus the
// server-assigned ingestion time.
type Entry struct {
	ReceivedAt string         `json:"received_at"`
	CustomerID string         `json:"customerID"`
	ScanID     string         `json:"scanID"`
	Status     string         `json:"status,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Timestamp  string         `json:"timestamp,omitempty"`
}

// Log is the append-only backup artifact. Each append rewrites the whole
// file, so the read-modify-write cycle must stay behind a single mutex;
// uncoordinated writers would lose entries.
type Log struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Log {
	return &Log{path: path}
}

// Append adds one entry to the backup file. A missing file is treated as an
// empty log.
func (l *Log) Append(entry Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.read()
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode mirror log: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("write mirror log: %w", err)
	}
	return nil
}

func (l *Log) read() ([]Entry, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read mirror log: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode mirror log: %w", err)
	}
	return entries, nil
}
