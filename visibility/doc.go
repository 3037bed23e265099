// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package visibility decides which questions the public site may show.

Every function takes the current time as a parameter; nothing here reads the
clock. Handlers compute now once per request and pass it down.

# Recency

	visibility.IsRecentlyPublished(q.PubDate, now)

True for 0 <= now-pubDate < 24h. A question published exactly 24 hours ago,
or at any instant after now, is not recent.

# Listing

	latest := visibility.ListPublished(questions, now)

Keeps questions published at or before now that have at least one choice,
sorted by publication date descending. Equal dates keep their input order.
Vote counts never affect the result.

# Direct Lookup

	q, err := visibility.ResolveQuestion(found, now, visibility.ModeDetail)
	if errors.Is(err, visibility.ErrNotFound) {
		// 404
	}

found is whatever the store returned, nil when no row matched. Questions
published after now are hidden from detail and results pages, whether or not
they have choices.
*/
package visibility
