package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"playto/internal/config"
	"playto/internal/featureflags"
	"playto/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type testMocks struct {
	users    *MockUserRepository
	posts    *MockPostRepository
	comments *MockCommentRepository
	likes    *MockLikeRepository
}

// newTestServer wires a Server over fresh repository mocks, skipping the
// database and Redis entirely.
func newTestServer() (*Server, *testMocks) {
	mocks := &testMocks{
		users:    new(MockUserRepository),
		posts:    new(MockPostRepository),
		comments: new(MockCommentRepository),
		likes:    new(MockLikeRepository),
	}

	cfg := &config.Config{
		JWTSecret:              "test-secret-used-only-in-handler-tests",
		LeaderboardWindowHours: 24,
		LeaderboardSize:        5,
	}

	s := &Server{
		config:       cfg,
		userRepo:     mocks.users,
		postRepo:     mocks.posts,
		commentRepo:  mocks.comments,
		likeRepo:     mocks.likes,
		featureFlags: featureflags.NewManager(cfg.FeatureFlags),
	}
	s.postService = service.NewPostService(mocks.posts)
	s.commentService = service.NewCommentService(mocks.comments, mocks.posts)
	s.likeService = service.NewLikeService(mocks.likes, mocks.posts, mocks.comments)
	s.feedService = service.NewFeedService(mocks.posts, mocks.comments)
	s.leaderboardService = service.NewLeaderboardService(mocks.likes, mocks.users, 24*time.Hour, 5)

	return s, mocks
}

// asUser injects a fixed authenticated user, standing in for AuthRequired.
func asUser(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}
