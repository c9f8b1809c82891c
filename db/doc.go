// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the store and manages its schema.

# Dialects

Two backends are supported, selected by DATABASE_TYPE:

  - sqlite: modernc.org/sqlite, a file path DSN (default)
  - postgres: github.com/lib/pq, a connection URL

Queries are written with '?' placeholders; Dialect.Rebind converts them for
PostgreSQL.

# Schema Creation

CreateSchema applies the embedded goose migrations for the dialect:

	if err := db.CreateSchema(ctx, conn, db.DialectSQLite); err != nil {
		return err
	}

Safe to call multiple times - applied versions are recorded in
goose_db_version.

# Tables

  - users: id, username (unique), password_hash, created_at
  - posts: id, title, body, created_at
  - questions: id, body, answer (nullable), created_at, answered_at (nullable)

There are no foreign keys between tables.
*/
package db
