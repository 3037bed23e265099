// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/visibility"
)

// AdminHandler serves the JSON admin API. Routes are expected to be wrapped
// in middleware.RequireAdminKey.
type AdminHandler struct {
	store *db.Store
	cfg   cliparse.Config
	now   func() time.Time
}

func NewAdminHandler(conn *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{
		store: db.NewStore(conn, cfg.DatabaseType),
		cfg:   cfg,
		now:   time.Now,
	}
}

func (h *AdminHandler) WithClock(now func() time.Time) *AdminHandler {
	h.now = now
	return h
}

// CreateQuestion handles POST /admin/questions
func (h *AdminHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text is required")
		return
	}

	pubDate := h.now()
	if req.PubDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.PubDate)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "pub_date must be RFC 3339")
			return
		}
		pubDate = parsed
	}

	q, err := h.store.CreateQuestion(r.Context(), text, pubDate)
	if err != nil {
		slog.Error("failed to create question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", q.ID, "pub_date", q.PubDate)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuestionResponse{
		QuestionID: q.ID,
		PubDate:    q.PubDate,
	})
}

// AddChoice handles POST /admin/questions/{id}/choices
func (h *AdminHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	var req models.AddChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choice_text is required")
		return
	}

	c, err := h.store.AddChoice(r.Context(), questionID, text)
	if errors.Is(err, db.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to add choice", "question_id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add choice")
		return
	}

	slog.Info("choice added", "question_id", questionID, "choice_id", c.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddChoiceResponse{
		ChoiceID: c.ID,
	})
}

// ListQuestions handles GET /admin/questions
// Unlike the public listing this includes future and choiceless questions.
func (h *AdminHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	questions, err := h.store.AllQuestions(r.Context())
	if err != nil {
		slog.Error("failed to load questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].PubDate.After(questions[j].PubDate)
	})

	list := models.AdminQuestionList{Questions: make([]models.AdminQuestion, len(questions))}
	for i, q := range questions {
		list.Questions[i] = models.AdminQuestion{
			Question:             q,
			WasPublishedRecently: visibility.IsRecentlyPublished(q.PubDate, now),
		}
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}
