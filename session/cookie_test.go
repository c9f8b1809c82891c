// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithCookies replays the cookies a recorder set
func requestWithCookies(w *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSessionCookie_RoundTrip(t *testing.T) {
	users := newFakeUsers(t, map[string]string{"admin": "changeme"})
	m := NewManager(users, "secret", time.Hour)

	sess, err := m.Login(context.Background(), "admin", "changeme")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.SetCookie(w, sess)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotEqual(t, sess.Token, cookies[0].Value, "cookie must carry a signature")

	assert.Equal(t, sess.Token, m.Token(requestWithCookies(w)))
}

func TestSessionCookie_Tampered(t *testing.T) {
	users := newFakeUsers(t, map[string]string{"admin": "changeme"})
	m := NewManager(users, "secret", time.Hour)

	sess, err := m.Login(context.Background(), "admin", "changeme")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: sess.Token + ".forged"})
	assert.Empty(t, m.Token(req))

	// Signed under another secret
	other := NewManager(users, "other-secret", time.Hour)
	w := httptest.NewRecorder()
	other.SetCookie(w, sess)
	assert.Empty(t, m.Token(requestWithCookies(w)))

	// No cookie at all
	assert.Empty(t, m.Token(httptest.NewRequest("GET", "/", nil)))
}

func TestClearCookie(t *testing.T) {
	m := NewManager(newFakeUsers(t, nil), "secret", time.Hour)

	w := httptest.NewRecorder()
	m.ClearCookie(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestFlash(t *testing.T) {
	m := NewManager(newFakeUsers(t, nil), "secret", time.Hour)

	w := httptest.NewRecorder()
	m.SetFlash(w, "Question submitted!")

	req := requestWithCookies(w)
	w2 := httptest.NewRecorder()
	assert.Equal(t, "Question submitted!", m.PopFlash(w2, req))

	// Popping clears the cookie
	cleared := w2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Less(t, cleared[0].MaxAge, 0)

	// No flash pending
	assert.Empty(t, m.PopFlash(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil)))
}

func TestFlash_Forged(t *testing.T) {
	m := NewManager(newFakeUsers(t, nil), "secret", time.Hour)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: FlashCookieName, Value: "aGk.bogus"})
	assert.Empty(t, m.PopFlash(httptest.NewRecorder(), req))
}
