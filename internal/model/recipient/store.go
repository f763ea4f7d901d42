package recipient

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

var (
	ErrDuplicateEmail = errors.New("recipient email already exists")
	ErrIndexInvalid   = errors.New("recipient index out of range")
)

// Recipient is one email report destination.
type Recipient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UnmarshalJSON accepts both the canonical object shape and the legacy
// bare-string shape left behind by early deployments, where the file held a
// plain array of email addresses.
func (r *Recipient) UnmarshalJSON(data []byte) error {
	var email string
	if err := json.Unmarshal(data, &email); err == nil {
		r.Name = "No Name"
		r.Email = email
		return nil
	}

	type canonical Recipient
	var c canonical
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	*r = Recipient(c)
	return nil
}

// Store persists recipients as a JSON array. Legacy bare-string entries are
// migrated on load; writes always use the canonical object shape.
type Store struct {
	path string
}

// NewStore returns a Store backed by recipients.json under dataDir.
func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, "recipients.json")}
}

// Load returns all recipients in registration order.
func (s *Store) Load() []Recipient {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var recipients []Recipient
	if err := json.Unmarshal(data, &recipients); err != nil {
		return nil
	}
	return recipients
}

// Save replaces the whole recipient list.
func (s *Store) Save(recipients []Recipient) error {
	data, err := json.MarshalIndent(recipients, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Add registers a recipient. Emails must be unique; names may repeat.
func (s *Store) Add(name, email string) error {
	recipients := s.Load()
	for _, r := range recipients {
		if r.Email == email {
			return ErrDuplicateEmail
		}
	}
	return s.Save(append(recipients, Recipient{Name: name, Email: email}))
}

// Delete removes the recipient at index.
func (s *Store) Delete(index int) error {
	recipients := s.Load()
	if index < 0 || index >= len(recipients) {
		return ErrIndexInvalid
	}
	return s.Save(append(recipients[:index], recipients[index+1:]...))
}
