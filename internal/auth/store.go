package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	sessionFilePerms = 0o600
	sessionDirPerms  = 0o700
)

// Store persists a session as JSON in a file only the owner can read.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the saved session, or the anonymous one when nothing is saved.
func (s *Store) Load() (Session, error) {
	info, err := os.Lstat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Anonymous(), nil
	} else if err != nil {
		return Anonymous(), fmt.Errorf("checking session path: %w", err)
	}
	if info.IsDir() {
		return Anonymous(), fmt.Errorf("expected file, got directory at %q", s.path)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return Anonymous(), fmt.Errorf("reading session: %w", err)
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return Anonymous(), fmt.Errorf("decoding session: %w", err)
	}
	return session, nil
}

// Save replaces the saved session atomically.
func (s *Store) Save(session Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, sessionDirPerms); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("creating session file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := tmp.Chmod(sessionFilePerms); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("setting session file permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing session file: %w", err)
	}
	return nil
}

// Clear forgets the saved session.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
