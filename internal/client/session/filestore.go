package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileTokenStore persists the bearer token as a single file so the session
// survives process restarts. The token is cached in memory after the first
// read.
type FileTokenStore struct {
	mu    sync.Mutex
	path  string
	token string
	read  bool
}

// DefaultTokenFile returns the token location under the user's home
// directory.
func DefaultTokenFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".talentum", "token"), nil
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Token returns the persisted token, or "" when none is stored.
func (s *FileTokenStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.read {
		data, err := os.ReadFile(s.path)
		if err == nil {
			s.token = strings.TrimSpace(string(data))
		}
		s.read = true
	}
	return s.token
}

// Save writes the token to disk, creating the parent directory if needed.
func (s *FileTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return err
	}
	s.token = token
	s.read = true
	return nil
}

// Clear removes the persisted token. Clearing an absent token is not an
// error.
func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.read = true
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
