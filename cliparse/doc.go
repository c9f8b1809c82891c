// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p            Server port
	-d            Database URL or SQLite path
	-t            Database type (sqlite, postgres)
	-secret       Cookie signing key
	-setup-token  Token for the setup endpoints
	-session-ttl  Session lifetime
	-log-format   text or json

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SECRET_KEY    → -secret
	SETUP_TOKEN   → -setup-token
	SESSION_TTL   → -session-ttl
	LOG_FORMAT    → -log-format

CLI flags take precedence over environment variables.

# Commands

The first positional argument is the command: serve (default), init-db or
reset-admin. Anything else is an error.
*/
package cliparse
