// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"encoding/base64"
	"net/http"

	"github.com/danielhkuo/quickly-ask/auth"
	"github.com/danielhkuo/quickly-ask/models"
)

const (
	CookieName      = "quickly_ask_session"
	FlashCookieName = "quickly_ask_flash"
)

// SetCookie hands the signed session token to the client
func (m *Manager) SetCookie(w http.ResponseWriter, sess *models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    auth.Sign(sess.Token, m.secret),
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token extracts the session token from the request.
// Missing or badly signed cookies yield "".
func (m *Manager) Token(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	token, err := auth.Unsign(c.Value, m.secret)
	if err != nil {
		return ""
	}
	return token
}

// SetFlash stores a one-shot message shown on the next rendered page
func (m *Manager) SetFlash(w http.ResponseWriter, msg string) {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(msg))
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    auth.Sign(encoded, m.secret),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending flash message, if any, and clears it
func (m *Manager) PopFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(FlashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	encoded, err := auth.Unsign(c.Value, m.secret)
	if err != nil {
		return ""
	}
	msg, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}
	return string(msg)
}
