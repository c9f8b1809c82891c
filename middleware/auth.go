// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/danielhkuo/quickly-ask/auth"
	"github.com/danielhkuo/quickly-ask/models"
)

// LoginPath is where unauthenticated administrators are sent
const LoginPath = "/login"

// Authenticator resolves the request's session to a user
type Authenticator interface {
	Token(r *http.Request) string
	RequireAuthenticated(ctx context.Context, token string) (*models.User, error)
}

type contextKey int

const userKey contextKey = iota

// WithUser returns a copy of ctx carrying the authenticated user
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// CurrentUser returns the user placed on the context by RequireAuth, or nil
func CurrentUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// RequireAuth redirects to the login page unless the request carries a
// valid session. The user is available to next through CurrentUser.
func RequireAuth(a Authenticator, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		NoStore(w)

		user, err := a.RequireAuthenticated(r.Context(), a.Token(r))
		if errors.Is(err, auth.ErrUnauthenticated) {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}
		if err != nil {
			slog.Error("failed to authenticate request", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		next(w, r.WithContext(WithUser(r.Context(), user)))
	}
}

// RequireSetupAccess guards the bootstrap endpoints. A request passes if it
// presents the configured setup token as ?token=, or if it comes straight
// from a loopback address without proxy headers. An empty setupToken
// leaves loopback as the only way in.
func RequireSetupAccess(setupToken string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		NoStore(w)

		if !SetupAllowed(r, setupToken) {
			slog.Warn("setup endpoint refused",
				"path", r.URL.Path,
				"remote", GetClientIP(r),
			)
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next(w, r)
	}
}

func SetupAllowed(r *http.Request, setupToken string) bool {
	if setupToken != "" && auth.ConstantTimeEqual(r.URL.Query().Get("token"), setupToken) {
		return true
	}

	// A proxy on the same host makes every peer look local
	if r.Header.Get("X-Forwarded-For") != "" || r.Header.Get("X-Real-IP") != "" {
		return false
	}

	ip := net.ParseIP(remoteHost(r))
	return ip != nil && ip.IsLoopback()
}
