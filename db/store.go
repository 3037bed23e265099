// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/models"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrChoiceNotFound   = errors.New("choice not found")
)

var placeholder = regexp.MustCompile(`\$\d+`)

// Store reads and writes questions and choices. Queries are written with
// postgres placeholders and rebound for sqlite.
type Store struct {
	db     *sql.DB
	dbType string
}

func NewStore(db *sql.DB, dbType string) *Store {
	return &Store{db: db, dbType: dbType}
}

// rebind rewrites $N placeholders to ? for sqlite. Every query in this file
// uses each placeholder once, in ascending order.
func (s *Store) rebind(query string) string {
	if s.dbType != cliparse.DatabaseSQLite {
		return query
	}
	return placeholder.ReplaceAllString(query, "?")
}

// AllQuestions returns every question with its choice count, in no particular order
func (s *Store) AllQuestions(ctx context.Context) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT q.id, q.question_text, q.pub_date,
		       (SELECT COUNT(*) FROM choice c WHERE c.question_id = q.id)
		FROM question q
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.PubDate, &q.ChoiceCount); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.PubDate = q.PubDate.UTC()
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}

	return questions, nil
}

// QuestionByID returns the question with its choice count, or nil if there is none
func (s *Store) QuestionByID(ctx context.Context, id string) (*models.Question, error) {
	var q models.Question
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT q.id, q.question_text, q.pub_date,
		       (SELECT COUNT(*) FROM choice c WHERE c.question_id = q.id)
		FROM question q
		WHERE q.id = $1
	`), id).Scan(&q.ID, &q.Text, &q.PubDate, &q.ChoiceCount)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query question %s: %w", id, err)
	}

	q.PubDate = q.PubDate.UTC()
	return &q, nil
}

// Choices returns a question's choices ordered by text
func (s *Store) Choices(ctx context.Context, questionID string) ([]models.Choice, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY choice_text, id
	`), questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.Text, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read choices: %w", err)
	}

	return choices, nil
}

// CreateQuestion inserts a question and returns it
func (s *Store) CreateQuestion(ctx context.Context, text string, pubDate time.Time) (models.Question, error) {
	q := models.Question{
		ID:      uuid.NewString(),
		Text:    text,
		PubDate: pubDate.UTC(),
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO question (id, question_text, pub_date)
		VALUES ($1, $2, $3)
	`), q.ID, q.Text, q.PubDate)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to insert question: %w", err)
	}

	return q, nil
}

// AddChoice inserts a choice with zero votes
func (s *Store) AddChoice(ctx context.Context, questionID, text string) (models.Choice, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT 1 FROM question WHERE id = $1
	`), questionID).Scan(&exists)
	if err == sql.ErrNoRows {
		return models.Choice{}, ErrQuestionNotFound
	}
	if err != nil {
		return models.Choice{}, fmt.Errorf("failed to query question %s: %w", questionID, err)
	}

	c := models.Choice{
		ID:         uuid.NewString(),
		QuestionID: questionID,
		Text:       text,
	}

	_, err = s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO choice (id, question_id, choice_text, votes)
		VALUES ($1, $2, $3, 0)
	`), c.ID, c.QuestionID, c.Text)
	if err != nil {
		return models.Choice{}, fmt.Errorf("failed to insert choice: %w", err)
	}

	return c, nil
}

// Vote adds one vote to a choice belonging to the question
func (s *Store) Vote(ctx context.Context, questionID, choiceID string) error {
	res, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE choice SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`), choiceID, questionID)
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}
	if n == 0 {
		return ErrChoiceNotFound
	}

	return nil
}
