package competitor

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

var (
	ErrDuplicateName = errors.New("competitor name already exists")
	ErrIndexInvalid  = errors.New("competitor index out of range")
)

// Store persists competitors as a JSON array. Missing or corrupt files read
// as empty.
type Store struct {
	path string
}

// NewStore returns a Store backed by competitors.json under dataDir.
func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, "competitors.json")}
}

// Load returns all competitors in store order.
func (s *Store) Load() []Competitor {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var competitors []Competitor
	if err := json.Unmarshal(data, &competitors); err != nil {
		return nil
	}
	return competitors
}

// Save replaces the whole competitor list.
func (s *Store) Save(competitors []Competitor) error {
	data, err := json.MarshalIndent(competitors, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Add registers a brand with its keyword list. Brand names must be unique.
func (s *Store) Add(name string, keywords []string) error {
	competitors := s.Load()
	for _, c := range competitors {
		if c.Name == name {
			return ErrDuplicateName
		}
	}
	return s.Save(append(competitors, Competitor{Name: name, Keywords: keywords}))
}

// Update replaces the name and keyword list of the competitor at index.
func (s *Store) Update(index int, name string, keywords []string) error {
	competitors := s.Load()
	if index < 0 || index >= len(competitors) {
		return ErrIndexInvalid
	}
	for i, c := range competitors {
		if i != index && c.Name == name {
			return ErrDuplicateName
		}
	}
	competitors[index] = Competitor{Name: name, Keywords: keywords}
	return s.Save(competitors)
}

// Delete removes the competitor at index.
func (s *Store) Delete(index int) error {
	competitors := s.Load()
	if index < 0 || index >= len(competitors) {
		return ErrIndexInvalid
	}
	return s.Save(append(competitors[:index], competitors[index+1:]...))
}
