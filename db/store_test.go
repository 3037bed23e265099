// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/polls/cliparse"
)

// setupTestStore creates an in-memory sqlite database with the full schema
func setupTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()

	conn, err := Open(cliparse.DatabaseSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return NewStore(conn, cliparse.DatabaseSQLite), conn
}

func TestCreateSchema_Idempotent(t *testing.T) {
	_, conn := setupTestStore(t)

	if err := CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		t.Errorf("second CreateSchema() failed: %v", err)
	}
}

func TestCreateSchema_UnknownType(t *testing.T) {
	_, conn := setupTestStore(t)

	if err := CreateSchema(conn, "mysql"); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestOpen_UnknownType(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestRebind(t *testing.T) {
	sqlite := NewStore(nil, cliparse.DatabaseSQLite)
	pg := NewStore(nil, cliparse.DatabasePostgres)

	query := "UPDATE choice SET votes = votes + 1 WHERE id = $1 AND question_id = $2"

	if got := sqlite.rebind(query); got != "UPDATE choice SET votes = votes + 1 WHERE id = ? AND question_id = ?" {
		t.Errorf("sqlite rebind = %q", got)
	}
	if got := pg.rebind(query); got != query {
		t.Errorf("postgres rebind changed query: %q", got)
	}
}

func TestCreateAndFetchQuestion(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	pub := time.Date(2025, 6, 1, 9, 30, 0, 0, time.FixedZone("EST", -5*60*60))
	created, err := store.CreateQuestion(ctx, "What's new?", pub)
	if err != nil {
		t.Fatalf("CreateQuestion() error = %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected non-empty question ID")
	}

	got, err := store.QuestionByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("QuestionByID() error = %v", err)
	}
	if got == nil {
		t.Fatal("expected question, got nil")
	}
	if got.Text != "What's new?" {
		t.Errorf("expected text 'What's new?', got %q", got.Text)
	}
	if !got.PubDate.Equal(pub) {
		t.Errorf("expected pub date %v, got %v", pub, got.PubDate)
	}
	if got.PubDate.Location() != time.UTC {
		t.Errorf("expected pub date in UTC, got %v", got.PubDate.Location())
	}
	if got.ChoiceCount != 0 {
		t.Errorf("expected 0 choices, got %d", got.ChoiceCount)
	}
}

func TestQuestionByID_Missing(t *testing.T) {
	store, _ := setupTestStore(t)

	got, err := store.QuestionByID(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("QuestionByID() error = %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing question, got %+v", got)
	}
}

func TestAllQuestions_ChoiceCounts(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()
	now := time.Now()

	q1, _ := store.CreateQuestion(ctx, "Two choices?", now)
	q2, _ := store.CreateQuestion(ctx, "No choices?", now)
	for _, text := range []string{"yes", "no"} {
		if _, err := store.AddChoice(ctx, q1.ID, text); err != nil {
			t.Fatalf("AddChoice() error = %v", err)
		}
	}

	questions, err := store.AllQuestions(ctx)
	if err != nil {
		t.Fatalf("AllQuestions() error = %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	counts := map[string]int{}
	for _, q := range questions {
		counts[q.ID] = q.ChoiceCount
	}
	if counts[q1.ID] != 2 {
		t.Errorf("expected 2 choices for q1, got %d", counts[q1.ID])
	}
	if counts[q2.ID] != 0 {
		t.Errorf("expected 0 choices for q2, got %d", counts[q2.ID])
	}
}

func TestAllQuestions_Empty(t *testing.T) {
	store, _ := setupTestStore(t)

	questions, err := store.AllQuestions(context.Background())
	if err != nil {
		t.Fatalf("AllQuestions() error = %v", err)
	}
	if questions == nil || len(questions) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", questions)
	}
}

func TestAddChoice_UnknownQuestion(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.AddChoice(context.Background(), "no-such-id", "choice")
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestChoices_Ordered(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	q, _ := store.CreateQuestion(ctx, "Pick one", time.Now())
	for _, text := range []string{"cherry", "apple", "banana"} {
		if _, err := store.AddChoice(ctx, q.ID, text); err != nil {
			t.Fatalf("AddChoice() error = %v", err)
		}
	}

	choices, err := store.Choices(ctx, q.ID)
	if err != nil {
		t.Fatalf("Choices() error = %v", err)
	}

	want := []string{"apple", "banana", "cherry"}
	if len(choices) != len(want) {
		t.Fatalf("expected %d choices, got %d", len(want), len(choices))
	}
	for i, c := range choices {
		if c.Text != want[i] {
			t.Errorf("choice %d: expected %q, got %q", i, want[i], c.Text)
		}
		if c.Votes != 0 {
			t.Errorf("choice %q: expected 0 votes, got %d", c.Text, c.Votes)
		}
		if c.QuestionID != q.ID {
			t.Errorf("choice %q: wrong question id %q", c.Text, c.QuestionID)
		}
	}
}

func TestVote(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	q, _ := store.CreateQuestion(ctx, "Pick one", time.Now())
	other, _ := store.CreateQuestion(ctx, "Another", time.Now())
	c, _ := store.AddChoice(ctx, q.ID, "only")
	foreign, _ := store.AddChoice(ctx, other.ID, "foreign")

	for i := 0; i < 3; i++ {
		if err := store.Vote(ctx, q.ID, c.ID); err != nil {
			t.Fatalf("Vote() error = %v", err)
		}
	}

	if err := store.Vote(ctx, q.ID, foreign.ID); !errors.Is(err, ErrChoiceNotFound) {
		t.Errorf("expected ErrChoiceNotFound for choice of another question, got %v", err)
	}
	if err := store.Vote(ctx, q.ID, "no-such-choice"); !errors.Is(err, ErrChoiceNotFound) {
		t.Errorf("expected ErrChoiceNotFound for unknown choice, got %v", err)
	}

	choices, _ := store.Choices(ctx, q.ID)
	if choices[0].Votes != 3 {
		t.Errorf("expected 3 votes, got %d", choices[0].Votes)
	}
}

func TestVote_Concurrent(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	q, _ := store.CreateQuestion(ctx, "Pick one", time.Now())
	c, _ := store.AddChoice(ctx, q.ID, "only")

	const voters = 20
	var wg sync.WaitGroup
	errs := make(chan error, voters)
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.Vote(ctx, q.ID, c.ID)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("Vote() error = %v", err)
		}
	}

	choices, _ := store.Choices(ctx, q.ID)
	if choices[0].Votes != voters {
		t.Errorf("expected %d votes, got %d", voters, choices[0].Votes)
	}
}

func TestDeleteQuestionCascadesToChoices(t *testing.T) {
	store, conn := setupTestStore(t)
	ctx := context.Background()

	q, _ := store.CreateQuestion(ctx, "Short lived", time.Now())
	store.AddChoice(ctx, q.ID, "a")

	if _, err := conn.Exec("DELETE FROM question WHERE id = ?", q.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM choice").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("expected choices to be deleted with question, got %d", n)
	}
}
