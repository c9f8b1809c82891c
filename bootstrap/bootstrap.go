// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package bootstrap creates the schema and the default administrator.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/quickly-ask/auth"
	"github.com/danielhkuo/quickly-ask/db"
	"github.com/danielhkuo/quickly-ask/store"
)

const (
	AdminUsername        = "admin"
	DefaultAdminPassword = "changeme"
)

// EnsureInitialized creates any missing tables and the admin user.
// Idempotent; reports whether the admin user was created by this call.
func EnsureInitialized(ctx context.Context, conn *sql.DB, dialect db.Dialect) (bool, error) {
	if err := db.CreateSchema(ctx, conn, dialect); err != nil {
		return false, err
	}

	hash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return false, err
	}

	created, err := store.New(conn, dialect).EnsureUser(ctx, AdminUsername, hash)
	if err != nil {
		return false, fmt.Errorf("failed to create admin user: %w", err)
	}

	if created {
		slog.Warn("admin user created with default password; change it",
			"username", AdminUsername, "password", DefaultAdminPassword)
	}

	return created, nil
}

// ResetAdminCredential sets the admin password back to the default,
// creating the schema and the user if needed.
func ResetAdminCredential(ctx context.Context, conn *sql.DB, dialect db.Dialect) error {
	if err := db.CreateSchema(ctx, conn, dialect); err != nil {
		return err
	}

	hash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return err
	}

	if err := store.New(conn, dialect).SetUserPassword(ctx, AdminUsername, hash); err != nil {
		return fmt.Errorf("failed to reset admin credential: %w", err)
	}

	slog.Warn("admin credential reset to default", "username", AdminUsername)
	return nil
}
