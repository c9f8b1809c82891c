// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-ask/models"
	"github.com/danielhkuo/quickly-ask/store"
	"github.com/danielhkuo/quickly-ask/views"
)

const QuestionSubmittedMessage = "Question submitted!"

type QuestionHandler struct {
	env *Env
}

func NewQuestionHandler(env *Env) *QuestionHandler {
	return &QuestionHandler{env: env}
}

// Ask handles POST /ask
func (h *QuestionHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	// Only a missing field is rejected; an empty question is stored as-is
	if _, present := r.PostForm["question"]; !present {
		http.Error(w, "question is required", http.StatusBadRequest)
		return
	}
	body := r.PostFormValue("question")

	q, err := h.env.Store.CreateQuestion(r.Context(), body)
	if err != nil {
		serverError(w, "failed to create question", err)
		return
	}

	slog.Info("question submitted", "question_id", q.ID)

	h.env.Sessions.SetFlash(w, QuestionSubmittedMessage)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Dashboard handles GET /dashboard
// Lists every question, most recent first
func (h *QuestionHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	questions, err := h.env.Store.ListQuestionsNewestFirst(r.Context())
	if err != nil {
		serverError(w, "failed to list questions", err)
		return
	}

	h.env.render(w, r, http.StatusOK, views.PageDashboard, &views.Data{
		Title:     "Dashboard",
		Questions: questions,
	})
}

// AnswerForm handles GET /answer/{id}
func (h *QuestionHandler) AnswerForm(w http.ResponseWriter, r *http.Request) {
	q, ok := h.loadQuestion(w, r)
	if !ok {
		return
	}

	h.env.render(w, r, http.StatusOK, views.PageAnswer, &views.Data{
		Title:    "Answer question",
		Question: q,
	})
}

// Answer handles POST /answer/{id}
// Re-answering overwrites the previous answer.
func (h *QuestionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	q, ok := h.loadQuestion(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	if _, present := r.PostForm["answer"]; !present {
		http.Error(w, "answer is required", http.StatusBadRequest)
		return
	}
	form := models.AnswerForm{Answer: r.PostFormValue("answer")}

	_, err := h.env.Store.AnswerQuestion(r.Context(), q.ID, form.Answer)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		serverError(w, "failed to answer question", err)
		return
	}

	slog.Info("question answered", "question_id", q.ID, "reanswered", q.Answered())

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// loadQuestion resolves the {id} path value, writing a 404 when the id is
// malformed or unknown.
func (h *QuestionHandler) loadQuestion(w http.ResponseWriter, r *http.Request) (*models.Question, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return nil, false
	}

	q, err := h.env.Store.GetQuestion(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		serverError(w, "failed to load question", err)
		return nil, false
	}

	return q, true
}
