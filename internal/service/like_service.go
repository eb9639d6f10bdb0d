package service

import (
	"context"
	"errors"

	"playto/internal/models"
	"playto/internal/observability"
	"playto/internal/repository"

	"gorm.io/gorm"
)

// LikeStatus reports the outcome of a like registration.
type LikeStatus string

const (
	// StatusLiked means a new like row was created.
	StatusLiked LikeStatus = "liked"
	// StatusAlreadyLiked means the (user, target) pair was already liked;
	// the request is acknowledged without changing anything.
	StatusAlreadyLiked LikeStatus = "already_liked"
)

type LikeService struct {
	likeRepo    repository.LikeRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

type RegisterLikeInput struct {
	UserID     uint
	TargetType models.LikeTarget
	TargetID   uint
}

func NewLikeService(
	likeRepo repository.LikeRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// RegisterLike records that a user liked a post or comment. Repeat likes of
// the same target by the same user are idempotent: the first call creates
// the like, every later call reports StatusAlreadyLiked. Users may like
// their own content.
func (s *LikeService) RegisterLike(ctx context.Context, in RegisterLikeInput) (LikeStatus, error) {
	if !in.TargetType.Valid() {
		return "", models.NewValidationError("target_type must be 'post' or 'comment'")
	}
	if in.TargetID == 0 {
		return "", models.NewValidationError("target_id is required")
	}

	var postID, commentID *uint
	switch in.TargetType {
	case models.LikeTargetPost:
		if _, err := s.postRepo.GetByID(ctx, in.TargetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", models.NewNotFoundError("Post", in.TargetID)
			}
			return "", err
		}
		postID = &in.TargetID
	case models.LikeTargetComment:
		if _, err := s.commentRepo.GetByID(ctx, in.TargetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", models.NewNotFoundError("Comment", in.TargetID)
			}
			return "", err
		}
		commentID = &in.TargetID
	}

	created, err := s.likeRepo.InsertIfAbsent(ctx, in.UserID, postID, commentID)
	if err != nil {
		return "", err
	}

	status := StatusAlreadyLiked
	if created {
		status = StatusLiked
	}
	observability.LikesRegistered.WithLabelValues(string(in.TargetType), string(status)).Inc()
	return status, nil
}
