// Package auth holds the demo credential store and session registry. It is
// intentionally simple: SHA-256 digests in memory, no persistence. The rest
// of the application only ever sees an authenticated identity, never a
// plaintext credential.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrBlankCredentials   = errors.New("username and password must not be empty")
	ErrPasswordPolicy     = errors.New("password must be at least 6 characters")
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
)

const minPasswordLen = 6

// Session identifies an authenticated user for the lifetime of a token.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

type user struct {
	digest  string
	isAdmin bool
}

// Store maps usernames to hashed credentials and tracks live sessions.
type Store struct {
	mu       sync.RWMutex
	users    map[string]user
	sessions map[string]Session
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:    make(map[string]user),
		sessions: make(map[string]Session),
	}
}

// NewStoreWithDefaults creates a store seeded with the demo accounts:
// admin/admin123 (admin role) and user/user123.
func NewStoreWithDefaults() *Store {
	s := NewStore()
	s.seed("admin", "admin123", true)
	s.seed("user", "user123", false)
	return s
}

func (s *Store) seed(username, password string, isAdmin bool) {
	s.users[username] = user{digest: hashPassword(password), isAdmin: isAdmin}
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new non-admin account.
func (s *Store) Register(username, password string) error {
	if username == "" || password == "" {
		return ErrBlankCredentials
	}
	if len(password) < minPasswordLen {
		return ErrPasswordPolicy
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		return ErrUserExists
	}
	s.users[username] = user{digest: hashPassword(password)}
	return nil
}

// Authenticate checks the credential and opens a new session on success.
func (s *Store) Authenticate(username, password string) (Session, error) {
	if username == "" || password == "" {
		return Session{}, ErrBlankCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok || u.digest != hashPassword(password) {
		return Session{}, ErrInvalidCredentials
	}

	session := Session{
		Token:    uuid.New().String(),
		Username: username,
		IsAdmin:  u.isAdmin,
	}
	s.sessions[session.Token] = session
	return session, nil
}

// Resolve returns the session for a token, if the session is live.
func (s *Store) Resolve(token string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	return session, ok
}

// Logout ends the session for the token.
func (s *Store) Logout(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, token)
	return nil
}
