// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-ask/models"
	"github.com/danielhkuo/quickly-ask/views"
)

type PostHandler struct {
	env *Env
}

func NewPostHandler(env *Env) *PostHandler {
	return &PostHandler{env: env}
}

// NewPostForm handles GET /new_post
func (h *PostHandler) NewPostForm(w http.ResponseWriter, r *http.Request) {
	h.env.render(w, r, http.StatusOK, views.PageNewPost, &views.Data{Title: "New post"})
}

// CreatePost handles POST /new_post
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	form := models.PostForm{
		Title: r.PostFormValue("title"),
		Body:  r.PostFormValue("body"),
	}

	// Validate input
	if strings.TrimSpace(form.Title) == "" || strings.TrimSpace(form.Body) == "" {
		h.env.render(w, r, http.StatusBadRequest, views.PageNewPost, &views.Data{
			Title:     "New post",
			FormError: "Title and body are required",
			FormData:  map[string]string{"title": form.Title, "body": form.Body},
		})
		return
	}

	post, err := h.env.Store.CreatePost(r.Context(), form.Title, form.Body)
	if err != nil {
		serverError(w, "failed to create post", err)
		return
	}

	slog.Info("post created", "post_id", post.ID)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
