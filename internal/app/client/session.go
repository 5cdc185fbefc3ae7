package client

import (
	"fmt"
	"os"
	"path/filepath"
	gosync "sync"

	"golang.org/x/exp/slog"
)

// SessionStore is the single process-wide slot for the credential token.
// It hydrates from the token file at construction and writes through to it
// on every change, so the session survives a restart.
type SessionStore struct {
	path string
	log  *slog.Logger

	mu    gosync.RWMutex
	token string
}

func NewSessionStore(path string, log *slog.Logger) *SessionStore {
	s := &SessionStore{
		path: path,
		log:  log,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("failed to read token file", "path", path, "error", err)
		}
		return s
	}

	s.token = string(data)
	log.Debug("session token loaded from file", "path", path)
	return s
}

// Token returns the current token, or the empty string when no session exists.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken stores the token and persists it with owner-only permissions.
func (s *SessionStore) SetToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	return nil
}

// Clear forgets the token and removes the file. Clearing an absent session
// is not an error.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}

	return nil
}
