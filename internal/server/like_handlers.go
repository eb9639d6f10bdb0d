package server

import (
	"time"

	"playto/internal/models"
	"playto/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RegisterLike handles POST /api/like. The first like of a target returns
// 201 with status "liked"; repeating it returns 200 with status
// "already_liked" and changes nothing.
func (s *Server) RegisterLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		TargetType string `json:"target_type"`
		TargetID   uint   `json:"target_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	status, err := s.likeService.RegisterLike(c.Context(), service.RegisterLikeInput{
		UserID:     userID,
		TargetType: models.LikeTarget(req.TargetType),
		TargetID:   req.TargetID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	if status == service.StatusLiked {
		s.publishBroadcastEvent(EventLikeCreated, map[string]interface{}{
			"target_type": req.TargetType,
			"target_id":   req.TargetID,
			"user_id":     userID,
			"created_at":  time.Now().UTC().Format(time.RFC3339Nano),
		})
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": status})
	}
	return c.JSON(fiber.Map{"status": status})
}
