package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/boardbank/banker/internal/log"
	"github.com/boardbank/banker/internal/model"
)

// Snapshot is the persisted form of a store. Transaction and session
// timestamps serialize as RFC 3339 strings and re-hydrate to time.Time on
// load. CurrentSessionID is "" when unset; a JSON null on input decodes to
// the same, and canonical output never emits null.
type Snapshot struct {
	Sessions         []*model.Session `json:"sessions"`
	CurrentSessionID string           `json:"currentSessionId"`
}

// Snapshot captures the store's state for persistence.
func (s *Store) Snapshot() Snapshot {
	sessions := s.sessions
	if sessions == nil {
		sessions = []*model.Session{}
	}
	return Snapshot{Sessions: sessions, CurrentSessionID: s.currentID}
}

// FromSnapshot builds a store from persisted state. Nil session entries
// (a JSON null in the sessions array) are dropped, and a current-session
// reference that no longer resolves is cleared so the invariant holds.
func FromSnapshot(snap Snapshot) *Store {
	s := &Store{currentID: snap.CurrentSessionID}
	for _, sess := range snap.Sessions {
		if sess != nil {
			s.sessions = append(s.sessions, sess)
		}
	}
	for _, sess := range s.sessions {
		if sess.ID == s.currentID {
			return s
		}
	}
	s.currentID = ""
	return s
}

// Load reads a snapshot file. A missing file yields an empty store; a
// corrupt one fails closed to an empty store with a warning rather than
// surfacing a parse error.
func Load(path string, logger *log.Logger) *Store {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New()
	}
	if err != nil {
		logger.Warn("snapshot unreadable, starting empty", log.FieldPath, path, log.FieldError, err.Error())
		return New()
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Warn("snapshot corrupt, starting empty", log.FieldPath, path, log.FieldError, err.Error())
		return New()
	}
	return FromSnapshot(snap)
}

// Save writes the snapshot file, creating parent directories as needed.
func (s *Store) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating snapshot dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
