// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/visibility"
)

// PollsHandler serves the public pages: listing, detail, results and voting
type PollsHandler struct {
	store *db.Store
	cfg   cliparse.Config
	now   func() time.Time
}

func NewPollsHandler(conn *sql.DB, cfg cliparse.Config) *PollsHandler {
	return &PollsHandler{
		store: db.NewStore(conn, cfg.DatabaseType),
		cfg:   cfg,
		now:   time.Now,
	}
}

// WithClock replaces the handler's clock; tests use it to pin "now"
func (h *PollsHandler) WithClock(now func() time.Time) *PollsHandler {
	h.now = now
	return h
}

type indexPage struct {
	LatestQuestionList []models.Question
	Now                time.Time
}

type detailPage struct {
	Question     models.Question
	Choices      []models.Choice
	ErrorMessage string
	Now          time.Time
}

// Index handles GET /polls/
func (h *PollsHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	questions, err := h.store.AllQuestions(r.Context())
	if err != nil {
		slog.Error("failed to load questions", "error", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	renderPage(w, http.StatusOK, "index", indexPage{
		LatestQuestionList: visibility.ListPublished(questions, now),
		Now:                now,
	})
}

// Detail handles GET /polls/{id}/
func (h *PollsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	q, ok := h.resolve(w, r, now, visibility.ModeDetail)
	if !ok {
		return
	}

	h.renderDetail(w, r, http.StatusOK, q, now, "")
}

// resolve looks up the {id} question and applies the visibility rule.
// On failure the response has been written and ok is false.
func (h *PollsHandler) resolve(w http.ResponseWriter, r *http.Request, now time.Time, mode visibility.Mode) (models.Question, bool) {
	id := r.PathValue("id")

	found, err := h.store.QuestionByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to load question", "question_id", id, "error", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return models.Question{}, false
	}

	q, err := visibility.ResolveQuestion(found, now, mode)
	if err != nil {
		slog.Debug("question not visible", "question_id", id, "page", mode.String(), "error", err)
		renderNotFound(w)
		return models.Question{}, false
	}

	return q, true
}

func (h *PollsHandler) renderDetail(w http.ResponseWriter, r *http.Request, status int, q models.Question, now time.Time, errorMessage string) {
	choices, err := h.store.Choices(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to load choices", "question_id", q.ID, "error", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	renderPage(w, status, "detail", detailPage{
		Question:     q,
		Choices:      choices,
		ErrorMessage: errorMessage,
		Now:          now,
	})
}
