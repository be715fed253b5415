package dotdir

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	lastRecordFile = "last_record.json"
)

// Record kinds tracked by the last-record state.
const (
	RecordKindGuide = "guide"
	RecordKindGrade = "grade"
)

// LastRecord represents the persisted pointer to the most recently created
// record. CLI commands like "studyforge guides show" with no argument use it
// to refer to the latest guide or grade.
type LastRecord struct {
	// Kind is "guide" or "grade".
	Kind string `json:"kind"`

	// ID is the record id.
	ID string `json:"id"`

	// CreatedAt is when the record was created.
	CreatedAt time.Time `json:"created_at"`
}

// LoadLastRecord loads the last-record state from a target
// .studyforge/last_record.json. Returns nil, nil if no state exists.
// If overrideDir is non-empty, it is used instead of the default location.
func (m *Manager) LoadLastRecord(overrideDir string) (*LastRecord, error) {
	dir, err := m.Target(overrideDir)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, lastRecordFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading last-record state: %w", err)
	}

	record := &LastRecord{}
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parsing last-record state: %w", err)
	}

	return record, nil
}

// SaveLastRecord persists the last-record state to a target
// .studyforge/last_record.json.
func (m *Manager) SaveLastRecord(record *LastRecord, overrideDir string) error {
	if record == nil {
		return errors.New("cannot save nil last-record state")
	}

	dir, err := m.Target(overrideDir)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling last-record state: %w", err)
	}

	path := filepath.Join(dir, lastRecordFile)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing last-record state: %w", err)
	}

	return nil
}

// ClearLastRecord removes the last-record state file.
// Returns nil if the file doesn't exist (already cleared).
func (m *Manager) ClearLastRecord(overrideDir string) error {
	dir, err := m.Target(overrideDir)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, lastRecordFile)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("removing last-record state: %w", err)
	}

	return nil
}
