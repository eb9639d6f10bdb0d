package server

import (
	"playto/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetLeaderboard handles GET /api/leaderboard: the top karma earners over
// the trailing window. The route can be dark-launched via the
// "leaderboard" feature flag; when the flag is absent it is always on.
func (s *Server) GetLeaderboard(c *fiber.Ctx) error {
	if s.featureFlags.Configured("leaderboard") {
		userID, _ := s.optionalUserID(c)
		if !s.featureFlags.Enabled("leaderboard", userID) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Resource", "leaderboard"))
		}
	}

	entries, err := s.leaderboardService.GetLeaderboard(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"leaderboard": entries})
}
