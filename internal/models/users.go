package models

import (
	"errors"
	"sync"
	"time"

	"forum/internal/display"
	"forum/internal/sanitize"
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore holds every registered user, keyed by escaped username.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]User)}
}

// Register creates a new account. The username is escaped before it becomes
// the storage key, so it is display-safe everywhere it is read back. The
// password is stored as supplied.
func (s *UserStore) Register(username, password string) (User, error) {
	name := sanitize.Escape(username)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[name]; ok {
		return User{}, ErrDuplicateUsername
	}
	u := User{
		Username:    name,
		Password:    password,
		Alias:       name,
		Role:        RoleUser,
		AvatarColor: display.AvatarColor(name),
		Joined:      time.Now(),
	}
	s.users[name] = u
	return u, nil
}

// Authenticate looks up the same escaped key Register stored under and
// requires an exact password match.
func (s *UserStore) Authenticate(username, password string) (User, error) {
	name := sanitize.Escape(username)
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[name]
	if !ok || u.Password != password {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

// SetAlias overwrites the display alias verbatim. Aliases are the one input
// channel stored without escaping.
func (s *UserStore) SetAlias(username, alias string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return ErrUserNotFound
	}
	u.Alias = alias
	s.users[username] = u
	return nil
}

func (s *UserStore) Get(username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// put writes a fully-formed record directly, bypassing registration rules.
// Used by seeding.
func (s *UserStore) put(u User) {
	s.mu.Lock()
	s.users[u.Username] = u
	s.mu.Unlock()
}
