package seed

import (
	"fmt"
	"log"
	"time"

	"playto/internal/models"

	"gorm.io/gorm"
)

// Options controls the size and shape of the generated social mesh.
type Options struct {
	Users              int
	Posts              int
	MaxCommentsPerPost int
	// ReplyChance is the probability (0..1) that a comment replies to an
	// earlier comment on the same post instead of starting a new thread.
	ReplyChance float64
	// LikesPerUser is how many like attempts each user makes; duplicates
	// collapse into the existing like.
	LikesPerUser int
	// StaleLikeChance is the probability a like lands outside the trailing
	// 24h leaderboard window, so seeded data exercises window filtering.
	StaleLikeChance float64
}

// DefaultOptions is a small mesh suitable for local development.
func DefaultOptions() Options {
	return Options{
		Users:              8,
		Posts:              20,
		MaxCommentsPerPost: 6,
		ReplyChance:        0.5,
		LikesPerUser:       15,
		StaleLikeChance:    0.3,
	}
}

// Run populates the database with a randomized social mesh: users, posts,
// threaded comments and likes spread around the leaderboard window edge.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return fmt.Errorf("seed requires at least one user")
	}

	posts := make([]*models.Post, 0, opts.Posts)
	comments := make([]*models.Comment, 0)
	for i := 0; i < opts.Posts; i++ {
		author := users[f.rng.Intn(len(users))]
		post, err := f.CreatePost(author, 72*time.Hour)
		if err != nil {
			return fmt.Errorf("seed post: %w", err)
		}
		posts = append(posts, post)

		var postComments []*models.Comment
		for j := 0; j < f.rng.Intn(opts.MaxCommentsPerPost+1); j++ {
			commenter := users[f.rng.Intn(len(users))]
			var parent *models.Comment
			if len(postComments) > 0 && f.rng.Float64() < opts.ReplyChance {
				parent = postComments[f.rng.Intn(len(postComments))]
			}
			comment, err := f.CreateComment(commenter, post, parent)
			if err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
			postComments = append(postComments, comment)
		}
		comments = append(comments, postComments...)
	}

	for _, user := range users {
		for i := 0; i < opts.LikesPerUser; i++ {
			at := time.Now().Add(-time.Duration(f.rng.Intn(20)) * time.Hour)
			if f.rng.Float64() < opts.StaleLikeChance {
				// Outside the trailing 24h window.
				at = time.Now().Add(-time.Duration(f.rng.Intn(48)+25) * time.Hour)
			}

			likeComment := len(comments) > 0 && f.rng.Float64() < 0.5
			var err error
			if likeComment {
				target := comments[f.rng.Intn(len(comments))]
				err = f.CreateLike(user, nil, &target.ID, at)
			} else {
				target := posts[f.rng.Intn(len(posts))]
				err = f.CreateLike(user, &target.ID, nil, at)
			}
			if err != nil {
				return fmt.Errorf("seed like: %w", err)
			}
		}
	}

	log.Printf("Seeded %d users, %d posts, %d comments", len(users), len(posts), len(comments))
	return nil
}
