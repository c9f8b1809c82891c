// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-ask/db"
	"github.com/danielhkuo/quickly-ask/session"
	"github.com/danielhkuo/quickly-ask/testutil"
)

func newTestEnv(t *testing.T, conn *sql.DB) *Env {
	t.Helper()
	env, err := NewEnv(conn, db.DialectSQLite, testutil.GetTestConfig())
	require.NoError(t, err)
	return env
}

// call runs a handler method directly, bypassing the router
func call(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// adminCookies logs in through the session manager and returns the cookie
// a browser would hold
func adminCookies(t *testing.T, env *Env) []*http.Cookie {
	t.Helper()
	sess, err := env.Sessions.Login(t.Context(), "admin", "changeme")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	env.Sessions.SetCookie(w, sess)
	c := findCookie(w.Result().Cookies(), session.CookieName)
	require.NotNil(t, c)
	return []*http.Cookie{c}
}
