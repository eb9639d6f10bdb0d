package feed

import (
	"sort"
	"time"

	"playto/internal/models"
)

// DefaultWeights is the karma value of a like per target kind: a like on a
// post rewards the post's author five points, a like on a comment rewards
// the comment's author one.
var DefaultWeights = map[models.LikeTarget]int{
	models.LikeTargetPost:    5,
	models.LikeTargetComment: 1,
}

const (
	// DefaultWindow is the trailing interval leaderboards cover.
	DefaultWindow = 24 * time.Hour
	// DefaultTopK is the number of leaderboard entries returned by default.
	DefaultTopK = 5
)

// Entry is one leaderboard row: a user and the karma their content earned
// inside the active window. Entries are recomputed per query, never stored.
type Entry struct {
	UserID uint
	Karma  int
}

// ComputeLeaderboard folds like awards into per-author karma totals and
// returns the topK highest earners in descending karma order. Awards
// outside the half-open window [since, until) contribute nothing, as do
// awards with an unrecognized target kind. Ties keep the relative order in
// which the tied authors first earned karma: the sort is stable and no
// secondary key is applied.
func ComputeLeaderboard(awards []models.LikeAward, since, until time.Time, topK int) []Entry {
	totals := make(map[uint]int, len(awards))
	order := make([]uint, 0, len(awards))

	for _, a := range awards {
		if a.CreatedAt.Before(since) || !a.CreatedAt.Before(until) {
			continue
		}
		weight, ok := DefaultWeights[a.TargetType]
		if !ok {
			continue
		}
		if _, seen := totals[a.AuthorID]; !seen {
			order = append(order, a.AuthorID)
		}
		totals[a.AuthorID] += weight
	}

	entries := make([]Entry, 0, len(order))
	for _, id := range order {
		entries = append(entries, Entry{UserID: id, Karma: totals[id]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Karma > entries[j].Karma
	})

	if topK >= 0 && len(entries) > topK {
		entries = entries[:topK]
	}
	return entries
}
