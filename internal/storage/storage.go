// Package storage persists the last normalized fetch as a JSON snapshot.
//
// The snapshot powers offline mode and the new-event diff of the check
// command. Only the fetched collection is stored; filter state is transient
// by design and never written.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kulevich/minsk-afisha/internal/event"
)

// Snapshot is one persisted fetch result.
type Snapshot struct {
	FetchedAt string        `json:"fetched_at"`
	Events    []event.Event `json:"events"`
}

// Storage manages snapshot files under a data directory.
type Storage struct {
	dataDir string
}

// New creates a Storage, expanding a leading ~ and creating the directory.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

func (s *Storage) snapshotPath() string {
	return filepath.Join(s.dataDir, "snapshot.json")
}

// LoadSnapshot reads the previous snapshot. A missing file yields an empty
// snapshot, not an error.
func (s *Storage) LoadSnapshot() (*Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Snapshot{}, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &snapshot, nil
}

// SaveSnapshot writes the current collection, stamped with now.
func (s *Storage) SaveSnapshot(events []event.Event, now time.Time) error {
	snapshot := Snapshot{
		FetchedAt: now.UTC().Format(time.RFC3339),
		Events:    events,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(s.snapshotPath(), data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
