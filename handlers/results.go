// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/visibility"
)

type resultsPage struct {
	Question models.Question
	Tally    Tally
}

// Results handles GET /polls/{id}/results/
// Same visibility rule as the detail page: future questions are 404
func (h *PollsHandler) Results(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	q, ok := h.resolve(w, r, now, visibility.ModeResults)
	if !ok {
		return
	}

	choices, err := h.store.Choices(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to load choices", "question_id", q.ID, "error", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	renderPage(w, http.StatusOK, "results", resultsPage{
		Question: q,
		Tally:    TallyChoices(choices),
	})
}
