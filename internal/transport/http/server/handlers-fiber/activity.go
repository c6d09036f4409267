package handlers_fiber

import (
	"net/http"

	"team-membership-service/internal/api"
	"team-membership-service/internal/mapper"
	"team-membership-service/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetTeamActivity returns the newest audit entries for a team.
func (h *Handler) GetTeamActivity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")

	entries, err := h.uc.ActivityForTeam(c.Context(), middleware.ActorFrom(c), c.Params("teamID"), limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Activity []api.ActivityEntry `json:"activity"`
	}{Activity: mapper.ToAPIActivityList(entries)})
}
