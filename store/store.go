// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store issues create/read/update operations for users, posts and
// questions against the relational store.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/quickly-ask/db"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrUninitialized means the schema has not been created yet
	ErrUninitialized = errors.New("store not initialized")
)

// DBTX is the subset of database/sql used by the store.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db      DBTX
	dialect db.Dialect
}

func New(conn DBTX, dialect db.Dialect) *Store {
	return &Store{db: conn, dialect: dialect}
}

func (s *Store) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.dialect.Rebind(query), args...)
}

func (s *Store) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, s.dialect.Rebind(query), args...)
}

func (s *Store) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return s.db.QueryRowContext(ctx, s.dialect.Rebind(query), args...)
}

// wrapErr annotates err with op. A missing table additionally matches
// ErrUninitialized and a missing row matches ErrNotFound.
func wrapErr(op string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case db.IsUndefinedTable(err):
		return fmt.Errorf("%s: %w: %w", op, ErrUninitialized, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
