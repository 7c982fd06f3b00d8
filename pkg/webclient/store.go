package webclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Keys the site keeps its credentials under.
const (
	TokenKey = "autoHubToken"
	UserKey  = "autoHubUser"
)

// User is the profile returned by /login and cached next to the token.
type User struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// DisplayName is what the account menu shows.
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	name, _, _ := strings.Cut(u.Email, "@")
	return name
}

// CredentialStore persists the token and user between runs.
type CredentialStore interface {
	// Load returns "", nil when nothing is stored.
	Load() (token string, user *User, err error)
	Save(token string, user *User) error
	Clear() error
}

// MemoryStore keeps credentials for the life of the process.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	user  *User
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load() (string, *User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || s.user == nil {
		return "", nil, nil
	}
	u := *s.user
	return s.token, &u, nil
}

func (s *MemoryStore) Save(token string, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if user != nil {
		u := *user
		s.user = &u
	}
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user = "", nil
	return nil
}

// FileStore keeps credentials in a JSON file shaped like the browser's local
// storage: {"autoHubToken": "...", "autoHubUser": "{...}"}.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultStorePath is ~/.autohub/credentials.json.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "autohub-credentials.json"
	}
	return filepath.Join(home, ".autohub", "credentials.json")
}

func (s *FileStore) Load() (string, *User, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, err
	}

	var items map[string]string
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("[Client] Error parsing saved credentials, clearing: %v", err)
		return "", nil, s.Clear()
	}

	token, savedUser := items[TokenKey], items[UserKey]
	if token == "" || savedUser == "" {
		return "", nil, nil
	}

	var user User
	if err := json.Unmarshal([]byte(savedUser), &user); err != nil {
		log.Printf("[Client] Error parsing saved user data, clearing: %v", err)
		return "", nil, s.Clear()
	}
	return token, &user, nil
}

func (s *FileStore) Save(token string, user *User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(map[string]string{
		TokenKey: token,
		UserKey:  string(userJSON),
	}, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
