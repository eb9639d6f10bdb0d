package feed

import (
	"time"

	"playto/internal/models"
)

// AuthorPayload identifies the author of a post or comment.
type AuthorPayload struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// CommentPayload is one serialized comment node including its nested replies.
type CommentPayload struct {
	ID        uint             `json:"id"`
	Author    AuthorPayload    `json:"author"`
	Content   string           `json:"content"`
	CreatedAt time.Time        `json:"created_at"`
	ParentID  *uint            `json:"parent,omitempty"`
	LikeCount int              `json:"like_count"`
	Replies   []CommentPayload `json:"replies"`
}

// PostPayload is one feed entry with its full comment forest attached.
type PostPayload struct {
	ID        uint             `json:"id"`
	Author    AuthorPayload    `json:"author"`
	Content   string           `json:"content"`
	CreatedAt time.Time        `json:"created_at"`
	LikeCount int              `json:"like_count"`
	Comments  []CommentPayload `json:"comments"`
}

// AssembleFeed builds the final feed payload: one entry per post in input
// order (callers pass posts newest-first), each with its comment group
// converted to a tree and serialized depth-first. Posts and comments carry
// the like counts annotated on the input rows by the store layer.
func AssembleFeed(posts []*models.Post, commentsByPost map[uint][]*models.Comment) []PostPayload {
	out := make([]PostPayload, 0, len(posts))
	for _, p := range posts {
		tree := BuildCommentTree(commentsByPost[p.ID])
		out = append(out, PostPayload{
			ID:        p.ID,
			Author:    AuthorPayload{ID: p.UserID, Username: p.User.Username},
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
			LikeCount: p.LikeCount,
			Comments:  serializeTree(tree),
		})
	}
	return out
}

// serializeTree renders a comment forest depth-first, preserving sibling order.
func serializeTree(nodes []*CommentNode) []CommentPayload {
	out := make([]CommentPayload, 0, len(nodes))
	for _, n := range nodes {
		c := n.Comment
		out = append(out, CommentPayload{
			ID:        c.ID,
			Author:    AuthorPayload{ID: c.UserID, Username: c.User.Username},
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			ParentID:  c.ParentID,
			LikeCount: c.LikeCount,
			Replies:   serializeTree(n.Replies),
		})
	}
	return out
}

// AssembleComments builds and serializes the comment forest of a single
// post. Input order fixes sibling order, so callers pass comments sorted
// by creation time ascending.
func AssembleComments(comments []*models.Comment) []CommentPayload {
	return serializeTree(BuildCommentTree(comments))
}

// CountPayloadComments returns the number of comments reachable from the
// serialized forest, nested replies included.
func CountPayloadComments(comments []CommentPayload) int {
	n := 0
	for _, c := range comments {
		n += 1 + CountPayloadComments(c.Replies)
	}
	return n
}

// GroupCommentsByPost splits a global oldest-first comment list into
// per-post groups, preserving relative order within each group.
func GroupCommentsByPost(comments []*models.Comment) map[uint][]*models.Comment {
	grouped := make(map[uint][]*models.Comment)
	for _, c := range comments {
		grouped[c.PostID] = append(grouped[c.PostID], c)
	}
	return grouped
}
