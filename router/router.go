// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/handlers"
	"github.com/danielhkuo/polls/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	return newRouter(
		handlers.NewPollsHandler(db, cfg),
		handlers.NewAdminHandler(db, cfg),
		cfg,
	)
}

func newRouter(polls *handlers.PollsHandler, admin *handlers.AdminHandler, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public pages
	mux.HandleFunc("GET /polls/{$}", middleware.WithLogging(polls.Index))
	mux.HandleFunc("GET /polls/{id}/{$}", middleware.WithLogging(polls.Detail))
	mux.HandleFunc("GET /polls/{id}/results/{$}", middleware.WithLogging(polls.Results))
	mux.HandleFunc("POST /polls/{id}/vote/{$}", middleware.WithLogging(polls.Vote))

	// Admin API (requires X-Admin-Key)
	requireAdmin := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdminKey(cfg.AdminKey, next))
	}
	mux.HandleFunc("POST /admin/questions", requireAdmin(admin.CreateQuestion))
	mux.HandleFunc("GET /admin/questions", requireAdmin(admin.ListQuestions))
	mux.HandleFunc("POST /admin/questions/{id}/choices", requireAdmin(admin.AddChoice))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/polls/", http.StatusFound)
	})

	return mux
}
