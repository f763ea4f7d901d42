package history

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/rokhoon/geo-briefing/internal/model/briefing"
	"github.com/rokhoon/geo-briefing/internal/model/competitor"
	"github.com/rokhoon/geo-briefing/internal/model/persona"
)

// MaxEntries bounds the history ring; the oldest run is evicted when a
// fifteenth would be stored.
const MaxEntries = 14

var ErrNotFound = errors.New("history entry not found")

// kst is the fixed report timezone. Timestamps are always UTC+9 regardless
// of the host clock's zone.
var kst = time.FixedZone("KST", 9*60*60)

// Store keeps the newest-first briefing archive in a single JSON file.
// Missing or corrupt files read as empty history.
type Store struct {
	path string
	now  func() time.Time
}

// NewStore returns a Store backed by history.json under dataDir.
func NewStore(dataDir string) *Store {
	return &Store{
		path: filepath.Join(dataDir, "history.json"),
		now:  time.Now,
	}
}

// Load returns all archived runs, newest first.
func (s *Store) Load() []briefing.Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var entries []briefing.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}
	return entries
}

// Append archives a completed run at the front of the ring, stamping it
// with the current KST time and truncating to MaxEntries. Evicted runs are
// gone for good.
func (s *Store) Append(results []briefing.Result, personas []persona.Persona, competitors []competitor.Competitor) (briefing.Entry, error) {
	entry := briefing.Entry{
		ID:          uuid.NewString(),
		Timestamp:   s.now().In(kst).Format("2006-01-02 15:04:05"),
		Results:     results,
		Personas:    personas,
		Competitors: competitors,
	}

	entries := append([]briefing.Entry{entry}, s.Load()...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return briefing.Entry{}, err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return briefing.Entry{}, err
	}
	return entry, nil
}

// Get returns the archived run at index, 0 being the most recent.
func (s *Store) Get(index int) (briefing.Entry, error) {
	entries := s.Load()
	if index < 0 || index >= len(entries) {
		return briefing.Entry{}, ErrNotFound
	}
	return entries[index], nil
}
