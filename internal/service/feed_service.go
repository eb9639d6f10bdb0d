package service

import (
	"context"
	"log/slog"

	"playto/internal/feed"
	"playto/internal/middleware"
	"playto/internal/observability"
	"playto/internal/repository"

	"github.com/prometheus/client_golang/prometheus"
)

type FeedService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

func NewFeedService(postRepo repository.PostRepository, commentRepo repository.CommentRepository) *FeedService {
	return &FeedService{postRepo: postRepo, commentRepo: commentRepo}
}

// GetFeed assembles the full feed: every post newest-first, each carrying
// its nested comment tree and like counts. Comments whose parent no longer
// resolves are dropped from the payload and surfaced via metrics and logs.
func (s *FeedService) GetFeed(ctx context.Context) ([]feed.PostPayload, error) {
	timer := prometheus.NewTimer(observability.FeedAssemblyDuration)
	defer timer.ObserveDuration()

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	payload := feed.AssembleFeed(posts, feed.GroupCommentsByPost(comments))

	kept := 0
	for _, p := range payload {
		kept += feed.CountPayloadComments(p.Comments)
	}
	if dropped := len(comments) - kept; dropped > 0 {
		observability.OrphanCommentsDropped.Add(float64(dropped))
		middleware.Logger.WarnContext(ctx, "Dropped orphan comments from feed",
			slog.Int("count", dropped),
		)
	}

	return payload, nil
}
