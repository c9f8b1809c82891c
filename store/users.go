// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"time"

	"github.com/danielhkuo/quickly-ask/models"
)

const userColumns = `id, username, password_hash, created_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// FindUserByUsername looks up a user by exact username match
func (s *Store) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := scanUser(s.queryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE username = ?
	`, username))
	if err != nil {
		return nil, wrapErr("find user by username", err)
	}
	return u, nil
}

func (s *Store) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := scanUser(s.queryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = ?
	`, id))
	if err != nil {
		return nil, wrapErr("find user by id", err)
	}
	return u, nil
}

// EnsureUser creates the user unless the username is already taken.
// Reports whether a row was inserted.
func (s *Store) EnsureUser(ctx context.Context, username, passwordHash string) (bool, error) {
	res, err := s.exec(ctx, `
		INSERT INTO users (username, password_hash, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (username) DO NOTHING
	`, username, passwordHash, time.Now().UTC())
	if err != nil {
		return false, wrapErr("ensure user", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, wrapErr("ensure user", err)
	}
	return n == 1, nil
}

// SetUserPassword replaces the user's password hash, creating the user if absent
func (s *Store) SetUserPassword(ctx context.Context, username, passwordHash string) error {
	_, err := s.exec(ctx, `
		INSERT INTO users (username, password_hash, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (username) DO UPDATE SET password_hash = excluded.password_hash
	`, username, passwordHash, time.Now().UTC())
	if err != nil {
		return wrapErr("set user password", err)
	}
	return nil
}
