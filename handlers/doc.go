// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the polls site.

# Handler Types

  - PollsHandler: public HTML pages (listing, detail, results) and voting
  - AdminHandler: JSON API for creating questions and choices

Handlers are created via constructor functions that accept *sql.DB and Config:

	pollsHandler := handlers.NewPollsHandler(db, cfg)

Each request reads the clock once and passes that instant to package
visibility. WithClock pins the clock in tests.

# Public Pages

	GET  /polls/               → Index (published questions with choices, newest first)
	GET  /polls/{id}/          → Detail (voting form)
	GET  /polls/{id}/results/  → Results (votes, shares and ranks)
	POST /polls/{id}/vote/     → Vote (303 to results)

Detail, results and vote respond 404 for unknown questions and for questions
published in the future. An empty listing shows "No question added yet."
Voting without a valid choice re-renders the detail page with
"You didn't select a choice." and status 400.

Pages are html/template files embedded from templates/. Relative times are
rendered with go-humanize against the request's "now".

# Admin API

	POST /admin/questions               → CreateQuestion (pub_date defaults to now)
	POST /admin/questions/{id}/choices  → AddChoice
	GET  /admin/questions               → ListQuestions (all, with was_published_recently)

Admin routes require the X-Admin-Key header.

# Results

TallyChoices orders choices by votes and assigns competition ranks
(1, 2, 2, 4). Shares are fractions of the total and are all zero before the
first vote.
*/
package handlers
