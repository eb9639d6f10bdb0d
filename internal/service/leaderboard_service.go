package service

import (
	"context"
	"log/slog"
	"time"

	"playto/internal/feed"
	"playto/internal/middleware"
	"playto/internal/observability"
	"playto/internal/repository"

	"github.com/prometheus/client_golang/prometheus"
)

// LeaderboardEntry is one row of the served leaderboard, ordered by karma
// descending.
type LeaderboardEntry struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Karma    int    `json:"karma"`
}

type LeaderboardService struct {
	likeRepo repository.LikeRepository
	userRepo repository.UserRepository
	window   time.Duration
	topK     int

	// now is injectable so tests can pin the window.
	now func() time.Time
}

func NewLeaderboardService(
	likeRepo repository.LikeRepository,
	userRepo repository.UserRepository,
	window time.Duration,
	topK int,
) *LeaderboardService {
	if window <= 0 {
		window = feed.DefaultWindow
	}
	if topK <= 0 {
		topK = feed.DefaultTopK
	}
	return &LeaderboardService{
		likeRepo: likeRepo,
		userRepo: userRepo,
		window:   window,
		topK:     topK,
		now:      time.Now,
	}
}

// GetLeaderboard computes the top karma earners over the trailing window.
// Entries whose user row no longer resolves are dropped rather than served
// with a placeholder name.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	timer := prometheus.NewTimer(observability.LeaderboardDuration)
	defer timer.ObserveDuration()

	until := s.now()
	since := until.Add(-s.window)

	awards, err := s.likeRepo.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}

	entries := feed.ComputeLeaderboard(awards, since, until, s.topK)

	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.UserID)
	}
	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		user, ok := users[e.UserID]
		if !ok {
			middleware.Logger.WarnContext(ctx, "Dropped leaderboard entry for missing user",
				slog.Uint64("user_id", uint64(e.UserID)),
			)
			continue
		}
		out = append(out, LeaderboardEntry{
			UserID:   e.UserID,
			Username: user.Username,
			Karma:    e.Karma,
		})
	}
	return out, nil
}
