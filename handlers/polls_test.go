// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/polls/testutil"
)

func newTestPollsHandler(t *testing.T) (*PollsHandler, *sql.DB) {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })

	h := NewPollsHandler(conn, testutil.GetTestConfig()).WithClock(testutil.Clock)
	return h, conn
}

// serve routes through a mux so r.PathValue works like in production
func serve(h *PollsHandler, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /polls/{$}", h.Index)
	mux.HandleFunc("GET /polls/{id}/{$}", h.Detail)
	mux.HandleFunc("GET /polls/{id}/results/{$}", h.Results)
	mux.HandleFunc("POST /polls/{id}/vote/{$}", h.Vote)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

// assertOrder checks that each text appears in the body, in order
func assertOrder(t *testing.T, body string, texts ...string) {
	t.Helper()
	last := -1
	for n, text := range texts {
		i := strings.Index(body, text)
		if i < 0 {
			t.Errorf("Expected body to contain %q", text)
			return
		}
		if i < last {
			t.Errorf("Expected %q to appear after %q", text, texts[n-1])
		}
		last = i
	}
}

func TestIndex(t *testing.T) {
	type fixture struct {
		text    string
		days    int
		choices int
	}

	tests := []struct {
		name      string
		questions []fixture
		visible   []string
		hidden    []string
		empty     bool
	}{
		{
			name:  "no questions",
			empty: true,
		},
		{
			name:      "past question with choices",
			questions: []fixture{{"Past question?", -30, 2}},
			visible:   []string{"Past question?"},
		},
		{
			name:      "future question with choices",
			questions: []fixture{{"Future question?", 1, 2}},
			hidden:    []string{"Future question?"},
			empty:     true,
		},
		{
			name: "future and past question with choices",
			questions: []fixture{
				{"Future question?", 15, 2},
				{"Past question?", -15, 2},
			},
			visible: []string{"Past question?"},
			hidden:  []string{"Future question?"},
		},
		{
			name: "two past questions newest first",
			questions: []fixture{
				{"Past question 1?", -2, 2},
				{"Past question 2?", -15, 2},
			},
			visible: []string{"Past question 1?", "Past question 2?"},
		},
		{
			name: "questions with no choices",
			questions: []fixture{
				{"Question 1 With no choices?", -5, 0},
				{"Question 2 With no choices?", -5, 0},
			},
			hidden: []string{"Question 1 With no choices?", "Question 2 With no choices?"},
			empty:  true,
		},
		{
			name: "question with choices and other with no",
			questions: []fixture{
				{"Question 1 With choices?", -5, 2},
				{"Question 2 With no choices?", -5, 0},
			},
			visible: []string{"Question 1 With choices?"},
			hidden:  []string{"Question 2 With no choices?"},
		},
		{
			name:      "question published now",
			questions: []fixture{{"Brand new?", 0, 1}},
			visible:   []string{"Brand new?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, conn := newTestPollsHandler(t)

			for _, f := range tt.questions {
				q := testutil.CreateTestQuestion(t, conn, f.text, f.days)
				for i := 0; i < f.choices; i++ {
					testutil.AddTestChoices(t, conn, q.ID, "choice_"+string(rune('a'+i)))
				}
			}

			w := serve(h, httptest.NewRequest("GET", "/polls/", nil))

			testutil.AssertStatus(t, w, http.StatusOK)
			if tt.empty {
				testutil.AssertContains(t, w, "No question added yet")
			} else {
				testutil.AssertNotContains(t, w, "No question added yet")
			}
			for _, text := range tt.hidden {
				testutil.AssertNotContains(t, w, text)
			}
			if len(tt.visible) > 0 {
				assertOrder(t, w.Body.String(), tt.visible...)
			}
		})
	}
}

func TestIndex_RecentBadge(t *testing.T) {
	h, conn := newTestPollsHandler(t)

	q := testutil.CreateTestQuestion(t, conn, "Today?", 0)
	testutil.AddTestChoices(t, conn, q.ID, "yes")

	w := serve(h, httptest.NewRequest("GET", "/polls/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "<strong>new</strong>")
	testutil.AssertContains(t, w, "published now")
}

func TestIndex_LinksToDetail(t *testing.T) {
	h, conn := newTestPollsHandler(t)

	q := testutil.CreateTestQuestion(t, conn, "Linked?", -3)
	testutil.AddTestChoices(t, conn, q.ID, "yes")

	w := serve(h, httptest.NewRequest("GET", "/polls/", nil))

	testutil.AssertContains(t, w, `href="/polls/`+q.ID+`/"`)
	testutil.AssertContains(t, w, "published 3 days ago")
	testutil.AssertNotContains(t, w, "<strong>new</strong>")
}

func TestDetail(t *testing.T) {
	tests := []struct {
		name       string
		days       int
		wantStatus int
	}{
		{"future question", 2, http.StatusNotFound},
		{"past question", -2, http.StatusOK},
		{"question published now", 0, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, conn := newTestPollsHandler(t)
			q := testutil.CreateTestQuestion(t, conn, "Some_question?", tt.days)

			w := serve(h, httptest.NewRequest("GET", "/polls/"+q.ID+"/", nil))

			testutil.AssertStatus(t, w, tt.wantStatus)
			if tt.wantStatus == http.StatusOK {
				testutil.AssertContains(t, w, q.Text)
			} else {
				testutil.AssertNotContains(t, w, q.Text)
			}
		})
	}
}

func TestDetail_UnknownQuestion(t *testing.T) {
	h, _ := newTestPollsHandler(t)

	w := serve(h, httptest.NewRequest("GET", "/polls/does-not-exist/", nil))

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestDetail_ShowsChoicesForm(t *testing.T) {
	h, conn := newTestPollsHandler(t)
	q := testutil.CreateTestQuestion(t, conn, "Favourite colour?", -1)
	choices := testutil.AddTestChoices(t, conn, q.ID, "Red", "Blue")

	w := serve(h, httptest.NewRequest("GET", "/polls/"+q.ID+"/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, `action="/polls/`+q.ID+`/vote/"`)
	for _, c := range choices {
		testutil.AssertContains(t, w, `value="`+c.ID+`"`)
		testutil.AssertContains(t, w, c.Text)
	}
}

func TestDetail_NoChoices(t *testing.T) {
	h, conn := newTestPollsHandler(t)
	q := testutil.CreateTestQuestion(t, conn, "Lonely?", -1)

	w := serve(h, httptest.NewRequest("GET", "/polls/"+q.ID+"/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "This question has no choices yet.")
	testutil.AssertNotContains(t, w, "<form")
}

func TestDetail_EscapesText(t *testing.T) {
	h, conn := newTestPollsHandler(t)
	q := testutil.CreateTestQuestion(t, conn, "<script>alert(1)</script>", -1)

	w := serve(h, httptest.NewRequest("GET", "/polls/"+q.ID+"/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertNotContains(t, w, "<script>")
	testutil.AssertContains(t, w, "&lt;script&gt;")
}
