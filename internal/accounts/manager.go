// Package accounts implements user registration, authentication, and the
// single current-session pointer on top of the key-value store.
package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/wealthwise/internal/common"
	"github.com/dmitrijs2005/wealthwise/internal/kv"
	"github.com/dmitrijs2005/wealthwise/internal/logging"
)

const userKeyPrefix = "user:"

// User is a registered account. Records are stored at "user:{email}" and
// never mutated after creation. The password is stored only as a bcrypt
// hash; the hash carries its own salt.
type User struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

func userKey(email string) string {
	return userKeyPrefix + email
}

// Manager provides signup, login, logout, and current-session lookup.
type Manager struct {
	store      kv.Store
	log        logging.Logger
	secret     []byte
	sessionTTL time.Duration
}

func NewManager(store kv.Store, log logging.Logger, secret []byte, sessionTTL time.Duration) *Manager {
	return &Manager{store: store, log: log, secret: secret, sessionTTL: sessionTTL}
}

// Signup creates a new account and makes it the current session.
//
// Returns common.ErrValidation if any field is blank or the passwords do not
// match, and common.ErrDuplicateAccount if an account already exists for the
// email. An existing record is never overwritten.
func (m *Manager) Signup(ctx context.Context, email, password, confirm string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" || strings.TrimSpace(confirm) == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}
	if password != confirm {
		return nil, fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}

	_, err := m.store.Get(ctx, userKey(email))
	if err == nil {
		return nil, common.ErrDuplicateAccount
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("account lookup error: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("password hash error: %w", err)
	}

	user := &User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("user encode error: %w", err)
	}
	if err := m.store.Set(ctx, userKey(email), string(data)); err != nil {
		return nil, fmt.Errorf("user save error: %w", err)
	}

	if err := m.setSession(ctx, email); err != nil {
		return nil, err
	}

	m.log.Info(ctx, "account created", "email", email)
	return user, nil
}

// Login authenticates an existing account and makes it the current session.
//
// Returns common.ErrNotFound when no account exists for the email and
// common.ErrAuthentication when the password does not match.
func (m *Manager) Login(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	user, err := m.getUser(ctx, email)
	if err != nil {
		return nil, err
	}

	// bcrypt comparison is constant-time for matching-cost hashes.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrAuthentication
	}

	if err := m.setSession(ctx, email); err != nil {
		return nil, err
	}

	m.log.Info(ctx, "login successful", "email", email)
	return user, nil
}

// Logout clears the current session pointer. It always succeeds: a missing
// pointer or a failing delete is logged, not reported.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Delete(ctx, sessionKey); err != nil {
		m.log.Warn(ctx, "session pointer delete failed", "error", err)
	}
}

// CurrentSession returns the user referenced by the stored session pointer,
// or (nil, nil) when there is no session. A corrupt, expired, or dangling
// pointer is treated as "not logged in", never as an error.
func (m *Manager) CurrentSession(ctx context.Context) (*User, error) {
	token, err := m.store.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("session lookup error: %w", err)
	}

	email, err := sessionEmail(token, m.secret)
	if err != nil {
		m.log.Warn(ctx, "discarding unusable session pointer", "error", err)
		return nil, nil
	}

	user, err := m.getUser(ctx, email)
	if err != nil {
		m.log.Warn(ctx, "session pointer references unusable account", "email", email, "error", err)
		return nil, nil
	}
	return user, nil
}

func (m *Manager) getUser(ctx context.Context, email string) (*User, error) {
	data, err := m.store.Get(ctx, userKey(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("account lookup error: %w", err)
	}

	user := &User{}
	if err := json.Unmarshal([]byte(data), user); err != nil {
		return nil, fmt.Errorf("%w: corrupt account record", common.ErrInternal)
	}
	return user, nil
}

func (m *Manager) setSession(ctx context.Context, email string) error {
	token, err := newSessionToken(email, m.secret, m.sessionTTL)
	if err != nil {
		return fmt.Errorf("session token error: %w", err)
	}
	if err := m.store.Set(ctx, sessionKey, token); err != nil {
		return fmt.Errorf("session save error: %w", err)
	}
	return nil
}
