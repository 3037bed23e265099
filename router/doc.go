// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls site.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Public pages (HTML):

	GET  /polls/               - Latest published questions
	GET  /polls/{id}/          - Question and voting form
	GET  /polls/{id}/results/  - Vote tally
	POST /polls/{id}/vote/     - Record a vote (form field "choice")

Admin API (JSON, requires X-Admin-Key):

	POST /admin/questions               - Create question
	GET  /admin/questions               - List every question
	POST /admin/questions/{id}/choices  - Add choice

GET / redirects to /polls/. Any other path is 404.
*/
package router
