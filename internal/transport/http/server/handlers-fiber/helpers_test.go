package handlers_fiber

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"team-membership-service/internal/api"
	"team-membership-service/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func errorStatus(t *testing.T, err error) (int, api.ErrorResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, err)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, respErr := app.Test(req)
	require.NoError(t, respErr)
	defer resp.Body.Close()

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestWriteErrorNotAuthenticated(t *testing.T) {
	status, body := errorStatus(t, entities.ErrNotAuthenticated)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, api.NOTAUTHENTICATED, body.Error.Code)
}

func TestWriteErrorPermissionDenied(t *testing.T) {
	status, body := errorStatus(t, entities.ErrPermissionDenied)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, api.PERMISSIONDENIED, body.Error.Code)
}

func TestWriteErrorNotFoundMessage(t *testing.T) {
	status, body := errorStatus(t, entities.ErrTeamNotFound)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, api.NOTFOUND, body.Error.Code)
	require.Equal(t, "resource not found", body.Error.Message)
}

func TestWriteErrorDuplicateMember(t *testing.T) {
	status, body := errorStatus(t, entities.ErrDuplicateMember)
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, api.MEMBEREXISTS, body.Error.Code)
}

func TestWriteErrorLastOwner(t *testing.T) {
	status, body := errorStatus(t, entities.ErrLastOwner)
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, api.LASTOWNER, body.Error.Code)
}

func TestWriteErrorExpiredInvitation(t *testing.T) {
	status, body := errorStatus(t, entities.ErrInvitationExpired)
	require.Equal(t, http.StatusGone, status)
	require.Equal(t, api.EXPIRED, body.Error.Code)
}
