// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-ask/cliparse"
	"github.com/danielhkuo/quickly-ask/db"
	"github.com/danielhkuo/quickly-ask/middleware"
	"github.com/danielhkuo/quickly-ask/models"
	"github.com/danielhkuo/quickly-ask/session"
	"github.com/danielhkuo/quickly-ask/store"
	"github.com/danielhkuo/quickly-ask/views"
)

// Env carries the collaborators every handler needs. It is built once in
// main and passed explicitly to each handler constructor.
type Env struct {
	DB       *sql.DB
	Dialect  db.Dialect
	Store    *store.Store
	Sessions *session.Manager
	Views    *views.Renderer
	Cfg      cliparse.Config
}

func NewEnv(conn *sql.DB, dialect db.Dialect, cfg cliparse.Config) (*Env, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, err
	}

	st := store.New(conn, dialect)
	return &Env{
		DB:       conn,
		Dialect:  dialect,
		Store:    st,
		Sessions: session.NewManager(st, cfg.SecretKey, cfg.SessionTTL),
		Views:    renderer,
		Cfg:      cfg,
	}, nil
}

// currentUser returns the logged-in user if there is one. Public pages use
// it for navigation only, so lookup failures just mean "anonymous".
func (e *Env) currentUser(r *http.Request) *models.User {
	if user := middleware.CurrentUser(r.Context()); user != nil {
		return user
	}
	token := e.Sessions.Token(r)
	if token == "" {
		return nil
	}
	user, err := e.Sessions.RequireAuthenticated(r.Context(), token)
	if err != nil {
		return nil
	}
	return user
}

// render fills in the per-request page data and writes the page
func (e *Env) render(w http.ResponseWriter, r *http.Request, status int, page string, data *views.Data) {
	if data == nil {
		data = &views.Data{}
	}
	if data.CurrentUser == nil {
		data.CurrentUser = e.currentUser(r)
	}
	data.Flash = e.Sessions.PopFlash(w, r)

	if err := e.Views.Render(w, status, page, data); err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func serverError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
