// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package visibility

import (
	"errors"
	"sort"
	"time"

	"github.com/danielhkuo/polls/models"
)

// RecentWindow is how far back a question still counts as recently published
const RecentWindow = 24 * time.Hour

var ErrNotFound = errors.New("question not found")

// Mode identifies which page is resolving a question
type Mode int

const (
	ModeDetail Mode = iota
	ModeResults
)

func (m Mode) String() string {
	switch m {
	case ModeDetail:
		return "detail"
	case ModeResults:
		return "results"
	default:
		return "unknown"
	}
}

// IsRecentlyPublished reports whether pubDate falls in (now-24h, now].
// Exactly 24h ago is not recent.
func IsRecentlyPublished(pubDate, now time.Time) bool {
	return pubDate.After(now.Add(-RecentWindow)) && !pubDate.After(now)
}

// ListPublished returns the questions that belong in the public listing:
// published at or before now with at least one choice, newest first.
// The input slice is not modified.
func ListPublished(questions []models.Question, now time.Time) []models.Question {
	published := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if q.PubDate.After(now) || q.ChoiceCount < 1 {
			continue
		}
		published = append(published, q)
	}

	sort.SliceStable(published, func(i, j int) bool {
		return published[i].PubDate.After(published[j].PubDate)
	})

	return published
}

// ResolveQuestion applies the direct-lookup rule used by the detail and
// results pages. A nil question or one published after now is ErrNotFound.
func ResolveQuestion(q *models.Question, now time.Time, mode Mode) (models.Question, error) {
	if q == nil || q.PubDate.After(now) {
		return models.Question{}, ErrNotFound
	}
	return *q, nil
}
