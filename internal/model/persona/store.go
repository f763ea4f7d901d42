package persona

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

var (
	ErrLimitReached = errors.New("persona limit reached")
	ErrIndexInvalid = errors.New("persona index out of range")
)

// Store persists personas as a JSON array, at most MaxPersonas entries.
// Missing or corrupt files read as empty.
type Store struct {
	path string
}

// NewStore returns a Store backed by personas.json under dataDir.
func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, "personas.json")}
}

// Load returns all personas in store order.
func (s *Store) Load() []Persona {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var personas []Persona
	if err := json.Unmarshal(data, &personas); err != nil {
		return nil
	}
	return personas
}

// Save replaces the whole persona list.
func (s *Store) Save(personas []Persona) error {
	data, err := json.MarshalIndent(personas, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Add appends an inactive persona, refusing once MaxPersonas exist. Storage
// is untouched on refusal.
func (s *Store) Add(name, prompt string) error {
	personas := s.Load()
	if len(personas) >= MaxPersonas {
		return ErrLimitReached
	}
	return s.Save(append(personas, Persona{Name: name, Prompt: prompt}))
}

// Delete removes the persona at index.
func (s *Store) Delete(index int) error {
	personas := s.Load()
	if index < 0 || index >= len(personas) {
		return ErrIndexInvalid
	}
	return s.Save(append(personas[:index], personas[index+1:]...))
}

// SetActive toggles whether the persona at index participates in briefing
// prompts.
func (s *Store) SetActive(index int, active bool) error {
	personas := s.Load()
	if index < 0 || index >= len(personas) {
		return ErrIndexInvalid
	}
	personas[index].Active = active
	return s.Save(personas)
}

// Active returns the active personas in store order.
func (s *Store) Active() []Persona {
	var active []Persona
	for _, p := range s.Load() {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

// ActivePrompts returns just the prompt text of active personas, in store
// order, for provider context assembly.
func (s *Store) ActivePrompts() []string {
	var prompts []string
	for _, p := range s.Load() {
		if p.Active {
			prompts = append(prompts, p.Prompt)
		}
	}
	return prompts
}
