package handlers_fiber

import (
	"net/http"

	"team-membership-service/internal/api"
	"team-membership-service/internal/entities"
	"team-membership-service/internal/mapper"
	"team-membership-service/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetMembers returns the team roster with profile display fields.
func (h *Handler) GetMembers(c *fiber.Ctx) error {
	members, err := h.uc.Members(c.Context(), middleware.ActorFrom(c), c.Params("teamID"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Members []api.Member `json:"members"`
	}{Members: mapper.ToAPIMemberList(members)})
}

// PostMember adds a membership directly, bypassing the invitation flow.
func (h *Handler) PostMember(c *fiber.Ctx) error {
	var body api.AddMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	member, err := h.uc.AddMember(c.Context(), middleware.ActorFrom(c),
		c.Params("teamID"), body.UserID, entities.TeamRole(body.Role))
	if err != nil {
		h.log.Infow("add member failed", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Member api.TeamMember `json:"member"`
	}{Member: mapper.ToAPITeamMember(*member)})
}

// PatchMemberRole changes a member's role.
func (h *Handler) PatchMemberRole(c *fiber.Ctx) error {
	var body api.UpdateMemberRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	member, err := h.uc.UpdateMemberRole(c.Context(), middleware.ActorFrom(c),
		c.Params("teamID"), c.Params("userID"), entities.TeamRole(body.Role))
	if err != nil {
		h.log.Infow("update member role failed", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Member api.TeamMember `json:"member"`
	}{Member: mapper.ToAPITeamMember(*member)})
}

// DeleteMember removes a member from the team.
func (h *Handler) DeleteMember(c *fiber.Ctx) error {
	err := h.uc.RemoveMember(c.Context(), middleware.ActorFrom(c), c.Params("teamID"), c.Params("userID"))
	if err != nil {
		h.log.Infow("remove member failed", "error", err.Error())
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
