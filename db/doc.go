// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database, creates the schema, and provides the Store.

# Connecting

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

"postgres" uses lib/pq; "sqlite" uses the pure-Go modernc.org/sqlite driver
with foreign keys enabled and a single connection.

# Schema Creation

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: id, question_text, pub_date
  - choice: id, question_id, choice_text, votes (never negative)

	question 1──* choice

Deleting a question deletes its choices.

# Store

	store := db.NewStore(conn, cfg.DatabaseType)
	questions, err := store.AllQuestions(ctx)

AllQuestions and QuestionByID return questions with their choice counts and
publication dates in UTC. They apply no visibility rules; callers filter with
package visibility. QuestionByID returns nil, nil when no row matches.

Vote increments in SQL and returns ErrChoiceNotFound when the choice doesn't
belong to the question. AddChoice returns ErrQuestionNotFound for unknown
questions.
*/
package db
