// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"

	"github.com/danielhkuo/quickly-ask/bootstrap"
)

// SetupHandler exposes the bootstrap operations over HTTP. Routes must be
// wrapped in middleware.RequireSetupAccess.
type SetupHandler struct {
	env *Env
}

func NewSetupHandler(env *Env) *SetupHandler {
	return &SetupHandler{env: env}
}

// InitDB handles GET /init-db
func (h *SetupHandler) InitDB(w http.ResponseWriter, r *http.Request) {
	created, err := bootstrap.EnsureInitialized(r.Context(), h.env.DB, h.env.Dialect)
	if err != nil {
		serverError(w, "failed to initialize database", err)
		return
	}

	msg := "Database initialized. Admin user already exists."
	if created {
		msg = fmt.Sprintf("Database initialized. Admin user '%s' created with password '%s'.",
			bootstrap.AdminUsername, bootstrap.DefaultAdminPassword)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(msg))
}

// ResetAdmin handles GET /reset-admin
func (h *SetupHandler) ResetAdmin(w http.ResponseWriter, r *http.Request) {
	if err := bootstrap.ResetAdminCredential(r.Context(), h.env.DB, h.env.Dialect); err != nil {
		serverError(w, "failed to reset admin credential", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Admin password reset. Log in as '%s' with password '%s'.",
		bootstrap.AdminUsername, bootstrap.DefaultAdminPassword)
}
