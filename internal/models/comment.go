package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a post. Comments form a forest per post:
// ParentID is nil for top-level comments and otherwise points at another
// comment on the same post.
type Comment struct {
	ID       uint  `gorm:"primaryKey" json:"id"`
	PostID   uint  `gorm:"not null;index" json:"post_id"`
	Post     Post  `gorm:"foreignKey:PostID" json:"post,omitempty"`
	UserID   uint  `gorm:"not null;index" json:"user_id"`
	User     User  `gorm:"foreignKey:UserID" json:"user"`
	ParentID *uint `gorm:"index" json:"parent_id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	// LikeCount is not persisted; computed at query time
	LikeCount int            `gorm:"->" json:"like_count"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
