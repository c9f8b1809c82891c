// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every response carries an X-Request-ID.

# Authentication

RequireAuth sends visitors without a valid session to /login:

	mux.HandleFunc("GET /dashboard", middleware.RequireAuth(sessions, handler))

The user is available to the handler through CurrentUser(r.Context()).

# Setup Guard

RequireSetupAccess admits loopback callers and requests carrying
?token=<SETUP_TOKEN>. Requests with proxy headers never count as loopback.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for logging only.
*/
package middleware
