// Package feed is the aggregation core of the Playto backend. It turns
// flat storage rows (posts, threaded comments, likes) into nested comment
// trees, assembled feed payloads and time-windowed karma leaderboards.
// Everything in this package is a pure function over already-fetched rows;
// no I/O or locking happens here.
package feed

import "playto/internal/models"

// CommentNode is a comment plus its ordered replies. Nodes are built fresh
// per request by BuildCommentTree and discarded after serialization; they
// are never persisted.
type CommentNode struct {
	Comment *models.Comment
	Replies []*CommentNode
}

// BuildCommentTree converts the flat comment list of a single post into an
// ordered forest of reply trees. Sibling order follows input order, so
// callers pass comments sorted by creation time ascending. Runs in one
// pass to index plus one pass to attach; linear in the comment count.
//
// A comment whose parent id is not present in the input set (the parent
// was deleted) is dropped rather than promoted to a root or treated as an
// error. Its own descendants become unreachable and are dropped with it.
func BuildCommentTree(comments []*models.Comment) []*CommentNode {
	index := make(map[uint]*CommentNode, len(comments))
	for _, c := range comments {
		index[c.ID] = &CommentNode{Comment: c}
	}

	roots := make([]*CommentNode, 0)
	for _, c := range comments {
		node := index[c.ID]
		if c.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := index[*c.ParentID]
		if !ok {
			// Orphan: parent is no longer part of this post's comment set.
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}
	return roots
}

// CountNodes returns the number of comments reachable from the forest.
// The difference between the input length and this count is the number of
// comments dropped by the orphan policy.
func CountNodes(roots []*CommentNode) int {
	n := 0
	for _, r := range roots {
		n += 1 + CountNodes(r.Replies)
	}
	return n
}
