package handlers_fiber

import (
	"net/http"

	"team-membership-service/internal/api"
	"team-membership-service/internal/mapper"
	"team-membership-service/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostTeam creates a team owned by the current user.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body api.CreateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	team, err := h.uc.CreateTeam(c.Context(), middleware.ActorFrom(c), mapper.FromAPITeamDraft(body))
	if err != nil {
		h.log.Infow("create team failed", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Team api.Team `json:"team"`
	}{Team: mapper.ToAPITeam(*team)})
}

// GetTeams returns the current user's teams, newest first.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.uc.TeamsForUser(c.Context(), middleware.ActorFrom(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Teams []api.Team `json:"teams"`
	}{Teams: mapper.ToAPITeamList(teams)})
}

// GetTeam returns one team visible to the current user.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	team, err := h.uc.Team(c.Context(), middleware.ActorFrom(c), c.Params("teamID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// PatchTeam merges team and settings updates.
func (h *Handler) PatchTeam(c *fiber.Ctx) error {
	var body api.UpdateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	team, err := h.uc.UpdateTeam(c.Context(), middleware.ActorFrom(c), c.Params("teamID"), mapper.FromAPITeamPatch(body))
	if err != nil {
		h.log.Infow("update team failed", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// DeleteTeam removes a team.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	if err := h.uc.DeleteTeam(c.Context(), middleware.ActorFrom(c), c.Params("teamID")); err != nil {
		h.log.Infow("delete team failed", "error", err.Error())
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
