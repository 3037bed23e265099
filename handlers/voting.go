// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/polls/auth"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/visibility"
)

const noChoiceMessage = "You didn't select a choice."

// Vote handles POST /polls/{id}/vote/
// Redirects to the results page on success. A missing or foreign choice
// re-renders the detail page with an error.
func (h *PollsHandler) Vote(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	q, ok := h.resolve(w, r, now, visibility.ModeDetail)
	if !ok {
		return
	}

	choiceID := r.PostFormValue("choice")
	if choiceID == "" {
		h.renderDetail(w, r, http.StatusBadRequest, q, now, noChoiceMessage)
		return
	}

	err := h.store.Vote(r.Context(), q.ID, choiceID)
	if errors.Is(err, db.ErrChoiceNotFound) {
		h.renderDetail(w, r, http.StatusBadRequest, q, now, noChoiceMessage)
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "question_id", q.ID, "error", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	slog.Info("vote recorded",
		"question_id", q.ID,
		"choice_id", choiceID,
		"voter", auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt),
	)

	// 303: the browser follows up with a GET
	http.Redirect(w, r, "/polls/"+q.ID+"/results/", http.StatusSeeOther)
}
