// Package statefile persists the briefing history state as a single
// JSON document in the user's config directory. The controller is the
// only writer; writes are whole-file overwrites after every mutation.
package statefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nhle/daybrief/internal/model"
)

// Store reads and writes the briefing state document at a fixed path.
type Store struct {
	path string
}

// New creates a store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the platform-standard state file location,
// ~/.config/daybrief/state.json or the OS equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(dir, "daybrief", "state.json"), nil
}

// Load reads the persisted state. An absent or corrupt file yields the
// default state; the state machine always starts well-formed.
func (s *Store) Load() model.BriefingState {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return model.DefaultBriefingState()
	}

	var state model.BriefingState
	if err := json.Unmarshal(data, &state); err != nil {
		return model.DefaultBriefingState()
	}

	if state.Active != model.ActivePrevious && state.Active != model.ActiveCurrent {
		return model.DefaultBriefingState()
	}

	return state
}

// Save overwrites the state file with the given state, creating parent
// directories on first use.
func (s *Store) Save(state model.BriefingState) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating state directory %s: %w", dir, err)
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("serializing state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing state file %s: %w", s.path, err)
	}

	return nil
}
