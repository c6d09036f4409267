package handlers_fiber

import (
	"net/http"

	"team-membership-service/internal/api"
	"team-membership-service/internal/entities"
	"team-membership-service/internal/mapper"
	"team-membership-service/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostInvitation invites an email to the team.
func (h *Handler) PostInvitation(c *fiber.Ctx) error {
	var body api.InviteRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	inv, err := h.uc.Invite(c.Context(), middleware.ActorFrom(c),
		c.Params("teamID"), body.Email, entities.TeamRole(body.Role))
	if err != nil {
		h.log.Infow("invite failed", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Invitation api.Invitation `json:"invitation"`
	}{Invitation: mapper.ToAPIInvitation(*inv)})
}

// GetTeamInvitations lists pending invitations for a team.
func (h *Handler) GetTeamInvitations(c *fiber.Ctx) error {
	invs, err := h.uc.PendingForTeam(c.Context(), middleware.ActorFrom(c), c.Params("teamID"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Invitations []api.Invitation `json:"invitations"`
	}{Invitations: mapper.ToAPIInvitationList(invs)})
}

// GetMyInvitations lists pending invitations addressed to the current user's email.
func (h *Handler) GetMyInvitations(c *fiber.Ctx) error {
	invs, err := h.uc.PendingForUser(c.Context(), middleware.ActorFrom(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Invitations []api.Invitation `json:"invitations"`
	}{Invitations: mapper.ToAPIInvitationList(invs)})
}

// PostAcceptInvitation materializes the invitation into a membership.
func (h *Handler) PostAcceptInvitation(c *fiber.Ctx) error {
	member, err := h.uc.Accept(c.Context(), middleware.ActorFrom(c), c.Params("invitationID"))
	if err != nil {
		h.log.Infow("accept invitation failed", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Member api.TeamMember `json:"member"`
	}{Member: mapper.ToAPITeamMember(*member)})
}

// PostDeclineInvitation removes the invitation without side effects.
func (h *Handler) PostDeclineInvitation(c *fiber.Ctx) error {
	if err := h.uc.Decline(c.Context(), middleware.ActorFrom(c), c.Params("invitationID")); err != nil {
		h.log.Infow("decline invitation failed", "error", err.Error())
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
