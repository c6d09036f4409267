// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"team-membership-service/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler implements the HTTP API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// RegisterRoutes attaches all API routes to the fiber app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Post("/teams", h.PostTeam)
	app.Get("/teams", h.GetTeams)
	app.Get("/teams/:teamID", h.GetTeam)
	app.Patch("/teams/:teamID", h.PatchTeam)
	app.Delete("/teams/:teamID", h.DeleteTeam)

	app.Get("/teams/:teamID/members", h.GetMembers)
	app.Post("/teams/:teamID/members", h.PostMember)
	app.Patch("/teams/:teamID/members/:userID", h.PatchMemberRole)
	app.Delete("/teams/:teamID/members/:userID", h.DeleteMember)

	app.Post("/teams/:teamID/invitations", h.PostInvitation)
	app.Get("/teams/:teamID/invitations", h.GetTeamInvitations)
	app.Get("/invitations", h.GetMyInvitations)
	app.Post("/invitations/:invitationID/accept", h.PostAcceptInvitation)
	app.Post("/invitations/:invitationID/decline", h.PostDeclineInvitation)

	app.Get("/teams/:teamID/activity", h.GetTeamActivity)
}
