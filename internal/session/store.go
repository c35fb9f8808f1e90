// Package session holds the admin session: the bearer token and the user
// record it belongs to. Both are written through to disk on every change so
// a later invocation restores the session without a network call.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/bgv/portfolio-console/internal/types"
)

// The two persisted keys of the session.
const (
	tokenFile = "auth_token"
	userFile  = "auth_user.json"
)

// AuthClient performs the login call. *api.Client satisfies it; tests
// substitute fakes.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (*types.LoginResult, error)
}

// LoginStatus is the outcome of a login attempt.
type LoginStatus struct {
	Success bool
	Message string
}

// Store is the single writer of session state. All mutations persist
// immediately; clearing a field deletes its file rather than writing an
// empty placeholder.
type Store struct {
	mu     sync.Mutex
	dir    string
	token  string
	user   *types.User
	logger zerolog.Logger
}

// Open creates a store rooted at dir and restores any persisted session.
// The directory is created if missing.
func Open(dir string, logger zerolog.Logger) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("session directory is empty")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session directory %s: %w", dir, err)
	}

	s := &Store{dir: dir, logger: logger}
	if err := s.restore(); err != nil {
		return nil, err
	}
	return s, nil
}

// restore loads the persisted token and user, tolerating absence of either.
func (s *Store) restore() error {
	raw, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	switch {
	case err == nil:
		s.token = strings.TrimSpace(string(raw))
	case os.IsNotExist(err):
		// no session persisted
	default:
		return fmt.Errorf("failed to read session token: %w", err)
	}

	rawUser, err := os.ReadFile(filepath.Join(s.dir, userFile))
	switch {
	case err == nil:
		var u types.User
		if err := json.Unmarshal(rawUser, &u); err != nil {
			return fmt.Errorf("failed to parse persisted user record: %w", err)
		}
		s.user = &u
	case os.IsNotExist(err):
		// no user persisted
	default:
		return fmt.Errorf("failed to read persisted user record: %w", err)
	}

	return nil
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the current user record, or nil when logged out.
func (s *Store) User() *types.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated is derived state: true exactly when a token is present.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Login performs one login call through the given client. On success the
// token and user are stored and persisted; on failure the store is left
// untouched.
func (s *Store) Login(ctx context.Context, client AuthClient, username, password string) LoginStatus {
	result, err := client.Login(ctx, username, password)
	if err != nil {
		s.logger.Debug().Err(err).Str("username", username).Msg("login failed")
		return LoginStatus{Success: false, Message: loginFailureMessage(err)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = result.Token
	user := result.User
	s.user = &user
	if err := s.persist(); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session")
	}

	message := result.Message
	if message == "" {
		message = "login successful"
	}
	return LoginStatus{Success: true, Message: message}
}

// Logout clears the token and user synchronously and removes both persisted
// files.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear()
}

// Evict implements api.TokenSource: a 401 from any authenticated request
// forces a logout regardless of which request triggered it.
func (s *Store) Evict() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" && s.user == nil {
		return
	}
	s.logger.Warn().Msg("session rejected by server, clearing stored credentials")
	s.clear()
}

// TokenExpiry reads the expiry claim out of the stored JWT without
// verifying it. Display-only: it never feeds IsAuthenticated.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// persist writes both session files. Caller holds the lock.
func (s *Store) persist() error {
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(s.token), 0o600); err != nil {
		return fmt.Errorf("failed to write session token: %w", err)
	}
	payload, err := json.Marshal(s.user)
	if err != nil {
		return fmt.Errorf("failed to encode user record: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFile), payload, 0o600); err != nil {
		return fmt.Errorf("failed to write user record: %w", err)
	}
	return nil
}

// clear drops in-memory state and deletes the persisted files. Caller holds
// the lock.
func (s *Store) clear() {
	s.token = ""
	s.user = nil
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Error().Err(err).Str("file", name).Msg("failed to remove session file")
		}
	}
}

// loginFailureMessage keeps server-provided messages and maps everything
// else through the standard taxonomy.
func loginFailureMessage(err error) string {
	var apiErr interface{ UserMessage() string }
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return "login failed"
}
