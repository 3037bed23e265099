// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"sort"

	"github.com/danielhkuo/polls/models"
)

// ChoiceResult is one row of the results page
type ChoiceResult struct {
	Choice models.Choice
	Share  float64 // fraction of all votes, 0 when nobody has voted
	Rank   int     // 1-indexed; equal vote counts share a rank
}

type Tally struct {
	Results    []ChoiceResult
	TotalVotes int
}

// TallyChoices orders choices by votes, most first, and computes shares and ranks.
// Choices with equal votes keep their incoming order.
func TallyChoices(choices []models.Choice) Tally {
	total := 0
	for _, c := range choices {
		total += c.Votes
	}

	results := make([]ChoiceResult, len(choices))
	for i, c := range choices {
		results[i] = ChoiceResult{Choice: c, Share: share(c.Votes, total)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Choice.Votes > results[j].Choice.Votes
	})

	// Standard competition ranking: 1, 2, 2, 4
	for i := range results {
		if i > 0 && results[i].Choice.Votes == results[i-1].Choice.Votes {
			results[i].Rank = results[i-1].Rank
		} else {
			results[i].Rank = i + 1
		}
	}

	return Tally{Results: results, TotalVotes: total}
}

func share(votes, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(votes) / float64(total)
}
