// Package credentials persists the API token between command invocations.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotFound indicates no credential has been saved yet.
var ErrNotFound = errors.New("no saved credential")

// tokenFileMode keeps the token readable by the owning user only.
const tokenFileMode = 0o600

// Store loads and saves the API token. Commands receive a Store rather than a
// file path so tests can substitute an in-memory implementation.
type Store interface {
	// Load returns the saved token. It returns ErrNotFound when nothing has
	// been saved or the saved value is blank.
	Load() (string, error)
	// Save overwrites any previously saved token.
	Save(token string) error
}

// FileStore keeps the token in a single flat file.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the token file, trimming surrounding whitespace.
func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read credential file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

// Save writes the token with owner-only permissions, creating parent
// directories as needed.
func (s *FileStore) Save(token string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create credential directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(token), tokenFileMode); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	return nil
}

// MemoryStore keeps the token in memory. It exists for tests.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	saved bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWithToken creates an in-memory store preloaded with a token.
func NewMemoryStoreWithToken(token string) *MemoryStore {
	return &MemoryStore{token: token, saved: true}
}

// Load returns the stored token or ErrNotFound.
func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.saved || strings.TrimSpace(s.token) == "" {
		return "", ErrNotFound
	}
	return strings.TrimSpace(s.token), nil
}

// Save replaces the stored token.
func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.saved = true
	return nil
}
