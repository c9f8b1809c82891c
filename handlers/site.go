// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-ask/store"
	"github.com/danielhkuo/quickly-ask/views"
)

const UninitializedNotice = "⚠️ Database not initialized. Visit /init-db first."

type SiteHandler struct {
	env *Env
}

func NewSiteHandler(env *Env) *SiteHandler {
	return &SiteHandler{env: env}
}

// Index handles GET /
// Public listing of posts and questions. A store without schema yields a
// notice instead of an error; every other store failure is a 500.
func (h *SiteHandler) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.env.Store.ListPosts(r.Context())
	if errors.Is(err, store.ErrUninitialized) {
		h.uninitialized(w)
		return
	}
	if err != nil {
		serverError(w, "failed to list posts", err)
		return
	}

	questions, err := h.env.Store.ListQuestions(r.Context())
	if errors.Is(err, store.ErrUninitialized) {
		h.uninitialized(w)
		return
	}
	if err != nil {
		serverError(w, "failed to list questions", err)
		return
	}

	h.env.render(w, r, http.StatusOK, views.PageIndex, &views.Data{
		Title:     "Blog",
		Posts:     posts,
		Questions: questions,
	})
}

func (h *SiteHandler) uninitialized(w http.ResponseWriter) {
	slog.Warn("index requested before the store was initialized")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(UninitializedNotice))
}
