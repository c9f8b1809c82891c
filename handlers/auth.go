// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-ask/auth"
	"github.com/danielhkuo/quickly-ask/models"
	"github.com/danielhkuo/quickly-ask/views"
)

// BadCredentialsMessage never says which half of the login was wrong
const BadCredentialsMessage = "Bad credentials"

type AuthHandler struct {
	env *Env
}

func NewAuthHandler(env *Env) *AuthHandler {
	return &AuthHandler{env: env}
}

// LoginForm handles GET /login
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.env.render(w, r, http.StatusOK, views.PageLogin, &views.Data{Title: "Log in"})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	form := models.LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	sess, err := h.env.Sessions.Login(r.Context(), form.Username, form.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		slog.Info("login failed", "username", form.Username)
		h.env.render(w, r, http.StatusOK, views.PageLogin, &views.Data{
			Title:     "Log in",
			FormError: BadCredentialsMessage,
			FormData:  map[string]string{"username": form.Username},
		})
		return
	}
	if err != nil {
		serverError(w, "failed to log in", err)
		return
	}

	// Drop whatever session the client held before
	if old := h.env.Sessions.Token(r); old != "" {
		h.env.Sessions.Logout(old)
	}

	h.env.Sessions.SetCookie(w, sess)
	slog.Info("login succeeded", "username", sess.Username, "user_id", sess.UserID)

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.env.Sessions.Logout(h.env.Sessions.Token(r))
	h.env.Sessions.ClearCookie(w)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
