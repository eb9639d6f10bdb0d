package models

import (
	"time"
)

// LikeTarget names the kind of entity a like applies to.
type LikeTarget string

const (
	LikeTargetPost    LikeTarget = "post"
	LikeTargetComment LikeTarget = "comment"
)

// Valid reports whether t is one of the two recognized target kinds.
func (t LikeTarget) Valid() bool {
	return t == LikeTargetPost || t == LikeTargetComment
}

// Like records that a user liked exactly one target: a post or a comment.
// The two composite unique indexes enforce at most one like per (user, target)
// pair; NULL target columns never participate in the opposite index.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post;uniqueIndex:idx_like_user_comment" json:"user_id"`
	PostID    *uint     `gorm:"uniqueIndex:idx_like_user_post" json:"post_id"`
	CommentID *uint     `gorm:"uniqueIndex:idx_like_user_comment" json:"comment_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	User    User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post    *Post    `gorm:"foreignKey:PostID" json:"post,omitempty"`
	Comment *Comment `gorm:"foreignKey:CommentID" json:"comment,omitempty"`
}

// Target returns the kind of entity this like applies to.
func (l *Like) Target() LikeTarget {
	if l.PostID != nil {
		return LikeTargetPost
	}
	return LikeTargetComment
}

// LikeAward is a query projection: a like joined to the author of its
// target. It is the input row shape for leaderboard aggregation and is
// never persisted.
type LikeAward struct {
	LikeID     uint       `json:"like_id"`
	TargetType LikeTarget `json:"target_type"`
	AuthorID   uint       `json:"author_id"`
	CreatedAt  time.Time  `json:"created_at"`
}
