package repository

import (
	"context"
	"time"

	"playto/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	// InsertIfAbsent atomically creates a like for (userID, target) unless
	// one already exists. It reports created=true when a row was inserted
	// and created=false when the unique constraint already held, so two
	// concurrent callers racing on the same pair resolve to exactly one
	// winner without either seeing an error.
	InsertIfAbsent(ctx context.Context, userID uint, postID, commentID *uint) (created bool, err error)
	// ListSince returns every like created at or after since, joined to
	// the author of its target. Likes whose target row no longer resolves
	// are excluded.
	ListSince(ctx context.Context, since time.Time) ([]models.LikeAward, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) InsertIfAbsent(ctx context.Context, userID uint, postID, commentID *uint) (bool, error) {
	like := models.Like{UserID: userID, PostID: postID, CommentID: commentID}
	// ON CONFLICT DO NOTHING makes the duplicate case ordinary control
	// flow: the insert and the constraint check are a single atomic
	// statement, and RowsAffected tells the two outcomes apart.
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *likeRepository) ListSince(ctx context.Context, since time.Time) ([]models.LikeAward, error) {
	var awards []models.LikeAward
	err := r.db.WithContext(ctx).Raw(`
		SELECT likes.id AS like_id,
		       CASE WHEN likes.post_id IS NOT NULL THEN 'post' ELSE 'comment' END AS target_type,
		       COALESCE(posts.user_id, comments.user_id) AS author_id,
		       likes.created_at
		FROM likes
		LEFT JOIN posts ON posts.id = likes.post_id
		LEFT JOIN comments ON comments.id = likes.comment_id
		WHERE likes.created_at >= ?
		  AND COALESCE(posts.user_id, comments.user_id) IS NOT NULL
		ORDER BY likes.created_at ASC, likes.id ASC`, since).
		Scan(&awards).Error
	return awards, err
}
