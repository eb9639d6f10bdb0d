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

func TestRegisterLike(t *testing.T) {
	t.Run("First Like Returns 201", func(t *testing.T) {
		s, mocks := newTestServer()
		app := fiber.New()
		app.Post("/like", asUser(1), s.RegisterLike)

		mocks.posts.On("GetByID", mock.Anything, uint(10)).
			Return(&models.Post{ID: 10, UserID: 2}, nil).Once()
		mocks.likes.On("InsertIfAbsent", mock.Anything, uint(1), mock.Anything, mock.Anything).
			Return(true, nil).Once()

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/like",
			map[string]any{"target_type": "post", "target_id": 10}))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "liked", body["status"])
	})

	t.Run("Repeat Like Returns 200", func(t *testing.T) {
		s, mocks := newTestServer()
		app := fiber.New()
		app.Post("/like", asUser(1), s.RegisterLike)

		mocks.posts.On("GetByID", mock.Anything, uint(10)).
			Return(&models.Post{ID: 10, UserID: 2}, nil).Once()
		mocks.likes.On("InsertIfAbsent", mock.Anything, uint(1), mock.Anything, mock.Anything).
			Return(false, nil).Once()

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/like",
			map[string]any{"target_type": "post", "target_id": 10}))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "already_liked", body["status"])
	})

	t.Run("Unknown Target Type", func(t *testing.T) {
		s, _ := newTestServer()
		app := fiber.New()
		app.Post("/like", asUser(1), s.RegisterLike)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/like",
			map[string]any{"target_type": "sticker", "target_id": 10}))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Comment Target Not Found", func(t *testing.T) {
		s, mocks := newTestServer()
		app := fiber.New()
		app.Post("/like", asUser(1), s.RegisterLike)

		mocks.comments.On("GetByID", mock.Anything, uint(77)).
			Return(nil, gorm.ErrRecordNotFound).Once()

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/like",
			map[string]any{"target_type": "comment", "target_id": 77}))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
