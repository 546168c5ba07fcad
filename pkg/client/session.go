package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

type User struct {
	Id          int64  `json:"id"`
	Cpf         string `json:"cpf"`
	Nome        string `json:"nome"`
	IsAdm       bool   `json:"isAdm"`
	IsUser      bool   `json:"isUser"`
	IsExterno   bool   `json:"isExterno"`
	NivelAcesso string `json:"nivel_acesso"`
}

// Session holds the logged-in user and persists it to a JSON file.
type Session struct {
	path string

	mu   sync.RWMutex
	user *User
}

func NewSession(path string) *Session {
	return &Session{path: path}
}

// DefaultSessionPath is the session file under the user config directory.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "reciclame", "session.json"), nil
}

// Load restores the user from disk. An absent or unreadable file leaves the session
// empty, and a corrupt file is removed.
func (s *Session) Load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.set(nil)
		return nil
	}
	if err != nil {
		return err
	}

	var u User
	if err := json.Unmarshal(raw, &u); err != nil || u.Cpf == "" {
		return s.Clear()
	}
	s.set(&u)

	return nil
}

func (s *Session) Save(u *User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return err
	}
	s.set(u)

	return nil
}

func (s *Session) Clear() error {
	s.set(nil)
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// User returns a copy of the logged-in user, or nil.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) LoggedIn() bool {
	return s.User() != nil
}

func (s *Session) set(u *User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}
