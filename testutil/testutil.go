// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
)

const (
	TestAdminKey   = "test-admin-key"
	TestIPHashSalt = "test-ip-salt"
)

// Now is the fixed instant tests pin handler clocks to
var Now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// Clock returns Now; pass it to WithClock
func Clock() time.Time {
	return Now
}

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.DatabaseSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: cliparse.DatabaseSQLite,
		AdminKey:     TestAdminKey,
		IPHashSalt:   TestIPHashSalt,
	}
}

// CreateTestQuestion creates a question published days from Now (negative is the past)
func CreateTestQuestion(t *testing.T, conn *sql.DB, text string, days int) models.Question {
	t.Helper()

	store := db.NewStore(conn, cliparse.DatabaseSQLite)
	q, err := store.CreateQuestion(context.Background(), text, Now.AddDate(0, 0, days))
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return q
}

// AddTestChoices adds choices with zero votes and returns them in the given order
func AddTestChoices(t *testing.T, conn *sql.DB, questionID string, texts ...string) []models.Choice {
	t.Helper()

	store := db.NewStore(conn, cliparse.DatabaseSQLite)
	choices := make([]models.Choice, 0, len(texts))
	for _, text := range texts {
		c, err := store.AddChoice(context.Background(), questionID, text)
		if err != nil {
			t.Fatalf("Failed to create test choice: %v", err)
		}
		choices = append(choices, c)
	}

	return choices
}

// SetTestVotes overwrites a choice's vote count
func SetTestVotes(t *testing.T, conn *sql.DB, choiceID string, votes int) {
	t.Helper()

	_, err := conn.Exec(`UPDATE choice SET votes = ? WHERE id = ?`, votes, choiceID)
	if err != nil {
		t.Fatalf("Failed to set test votes: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a form-encoded POST request
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertContains checks that the response body contains text
func AssertContains(t *testing.T, w *httptest.ResponseRecorder, text string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), text) {
		t.Errorf("Expected body to contain %q. Body: %s", text, w.Body.String())
	}
}

// AssertNotContains checks that the response body doesn't contain text
func AssertNotContains(t *testing.T, w *httptest.ResponseRecorder, text string) {
	t.Helper()
	if strings.Contains(w.Body.String(), text) {
		t.Errorf("Expected body not to contain %q. Body: %s", text, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
