package server

import (
	"net/http"
	"testing"

	"playto/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreatePost(t *testing.T) {
	s, mocks := newTestServer()
	app := fiber.New()
	app.Post("/posts", asUser(1), s.CreatePost)

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{"content": "Hello feed"},
			mockSetup: func() {
				mocks.posts.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
				mocks.posts.On("GetByID", mock.Anything, mock.Anything).
					Return(&models.Post{ID: 1, UserID: 1, Content: "Hello feed"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing Content",
			body:           map[string]string{"content": ""},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/posts", tt.body))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
	mocks.posts.AssertExpectations(t)
}

func TestGetFeed(t *testing.T) {
	s, mocks := newTestServer()
	app := fiber.New()
	app.Get("/posts", s.GetFeed)

	mocks.posts.On("List", mock.Anything).Return([]*models.Post{
		{ID: 2, UserID: 1, User: models.User{ID: 1, Username: "alice"}, Content: "newer"},
		{ID: 1, UserID: 2, User: models.User{ID: 2, Username: "bob"}, Content: "older"},
	}, nil).Once()
	parentID := uint(10)
	mocks.comments.On("ListAll", mock.Anything).Return([]*models.Comment{
		{ID: 10, PostID: 1, UserID: 1, User: models.User{Username: "alice"}, Content: "top"},
		{ID: 11, PostID: 1, UserID: 2, User: models.User{Username: "bob"}, ParentID: &parentID, Content: "reply"},
	}, nil).Once()

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/posts", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var feed []struct {
		ID       uint `json:"id"`
		Comments []struct {
			ID      uint `json:"id"`
			Replies []struct {
				ID uint `json:"id"`
			} `json:"replies"`
		} `json:"comments"`
	}
	decodeBody(t, resp, &feed)

	require.Len(t, feed, 2)
	assert.Equal(t, uint(2), feed[0].ID)
	assert.Empty(t, feed[0].Comments)
	require.Len(t, feed[1].Comments, 1)
	require.Len(t, feed[1].Comments[0].Replies, 1)
	assert.Equal(t, uint(11), feed[1].Comments[0].Replies[0].ID)
	mocks.posts.AssertExpectations(t)
}

func TestGetPost(t *testing.T) {
	s, mocks := newTestServer()
	app := fiber.New()
	app.Get("/posts/:id", s.GetPost)

	t.Run("Invalid ID", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodGet, "/posts/abc", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Not Found", func(t *testing.T) {
		mocks.posts.On("GetByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound).Once()

		resp, err := app.Test(jsonRequest(t, http.MethodGet, "/posts/99", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Success", func(t *testing.T) {
		mocks.posts.On("GetByID", mock.Anything, uint(1)).
			Return(&models.Post{ID: 1, Content: "found", LikeCount: 2}, nil).Once()

		resp, err := app.Test(jsonRequest(t, http.MethodGet, "/posts/1", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var post models.Post
		decodeBody(t, resp, &post)
		assert.Equal(t, "found", post.Content)
		assert.Equal(t, 2, post.LikeCount)
	})
	mocks.posts.AssertExpectations(t)
}
