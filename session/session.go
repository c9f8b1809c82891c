// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/danielhkuo/quickly-ask/auth"
	"github.com/danielhkuo/quickly-ask/models"
	"github.com/danielhkuo/quickly-ask/store"
)

// Users looks identities up by username (at login) and by id (per request).
// Lookups of unknown users return an error matching store.ErrNotFound.
type Users interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
}

// Manager owns the process-wide session table. Safe for concurrent use.
type Manager struct {
	users  Users
	secret string
	ttl    time.Duration
	table  *cache.Cache
}

// DefaultTTL replaces a non-positive TTL. go-cache reads zero as "never expire".
const DefaultTTL = 12 * time.Hour

func NewManager(users Users, secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	cleanup := ttl
	if cleanup > 10*time.Minute {
		cleanup = 10 * time.Minute
	}
	return &Manager{
		users:  users,
		secret: secret,
		ttl:    ttl,
		table:  cache.New(ttl, cleanup),
	}
}

// Login verifies the credentials and establishes a session for the user.
// Returns auth.ErrInvalidCredentials without saying which half was wrong.
func (m *Manager) Login(ctx context.Context, username, password string) (*models.Session, error) {
	user, err := m.users.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		auth.BurnPasswordCheck(password)
		return nil, auth.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, err
	}

	return m.establish(user)
}

func (m *Manager) establish(id models.Identity) (*models.Session, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sess := &models.Session{
		Token:     token,
		UserID:    id.IdentityID(),
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if u, ok := id.(*models.User); ok {
		sess.Username = u.Username
	}

	m.table.Set(token, sess, cache.DefaultExpiration)
	return sess, nil
}

// Logout invalidates the session. Unknown tokens are ignored.
func (m *Manager) Logout(token string) {
	m.table.Delete(token)
}

// Lookup returns the live session for token
func (m *Manager) Lookup(token string) (*models.Session, bool) {
	if token == "" {
		return nil, false
	}
	v, ok := m.table.Get(token)
	if !ok {
		return nil, false
	}
	return v.(*models.Session), true
}

// RequireAuthenticated resolves token to the user it was issued for.
// Returns auth.ErrUnauthenticated if the session is missing, expired, or
// its user no longer exists.
func (m *Manager) RequireAuthenticated(ctx context.Context, token string) (*models.User, error) {
	sess, ok := m.Lookup(token)
	if !ok {
		return nil, auth.ErrUnauthenticated
	}

	user, err := m.users.FindUserByID(ctx, sess.UserID)
	if errors.Is(err, store.ErrNotFound) {
		m.Logout(token)
		return nil, auth.ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return user, nil
}

// Count returns the number of sessions in the table, including expired
// ones the janitor has not swept yet.
func (m *Manager) Count() int {
	return m.table.ItemCount()
}
