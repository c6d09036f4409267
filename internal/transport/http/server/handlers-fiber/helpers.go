package handlers_fiber

import (
	"errors"
	"net/http"

	"team-membership-service/internal/api"
	"team-membership-service/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrNotAuthenticated):
		status = http.StatusUnauthorized
		code = api.NOTAUTHENTICATED
		msg = "authentication required"
	case errors.Is(err, entities.ErrPermissionDenied):
		status = http.StatusForbidden
		code = api.PERMISSIONDENIED
		msg = "operation not allowed for role"
	case errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrMemberNotFound),
		errors.Is(err, entities.ErrInvitationNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrDuplicateMember):
		status = http.StatusConflict
		code = api.MEMBEREXISTS
		msg = "user already belongs to the team"
	case errors.Is(err, entities.ErrAlreadyMember):
		status = http.StatusConflict
		code = api.ALREADYMEMBER
		msg = "email already belongs to a team member"
	case errors.Is(err, entities.ErrInvitationAccepted):
		status = http.StatusConflict
		code = api.ALREADYACCEPTED
		msg = "invitation was already accepted"
	case errors.Is(err, entities.ErrLastOwner):
		status = http.StatusConflict
		code = api.LASTOWNER
		msg = "team must keep an owner"
	case errors.Is(err, entities.ErrInvitationExpired):
		status = http.StatusGone
		code = api.EXPIRED
		msg = "invitation expired"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}
