package question

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

var (
	ErrDuplicate    = errors.New("question already exists")
	ErrIndexInvalid = errors.New("question index out of range")
)

// Store persists the ordered briefing question list as a JSON array of
// strings. The file is read fully on every access; a missing or corrupt
// file is treated as an empty list.
type Store struct {
	path string
}

// NewStore returns a Store backed by questions.json under dataDir.
func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, "questions.json")}
}

// Load returns all questions in execution order.
func (s *Store) Load() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var questions []string
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil
	}
	return questions
}

// Save replaces the whole question list. Used by edits and by history
// restore.
func (s *Store) Save(questions []string) error {
	data, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Add appends a question, rejecting exact duplicates.
func (s *Store) Add(text string) error {
	questions := s.Load()
	for _, q := range questions {
		if q == text {
			return ErrDuplicate
		}
	}
	return s.Save(append(questions, text))
}

// Update rewrites the question at index in place.
func (s *Store) Update(index int, text string) error {
	questions := s.Load()
	if index < 0 || index >= len(questions) {
		return ErrIndexInvalid
	}
	questions[index] = text
	return s.Save(questions)
}

// Delete removes the question at index.
func (s *Store) Delete(index int) error {
	questions := s.Load()
	if index < 0 || index >= len(questions) {
		return ErrIndexInvalid
	}
	return s.Save(append(questions[:index], questions[index+1:]...))
}
