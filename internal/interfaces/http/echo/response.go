package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/cermati/iamx-redash/internal/application/account"
	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

type apiResponse struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(c echo.Context, code int, errCode, message string) error {
	return c.JSON(code, apiResponse{Error: &errorBody{Code: errCode, Message: message}})
}

// mapDomainError translates the connector error taxonomy onto HTTP statuses
// for the workflow engine.
func mapDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmailRequired),
		errors.Is(err, domain.ErrInvalidEmail):
		return writeError(c, http.StatusBadRequest, "invalid_context", "user email is missing or malformed")
	case errors.Is(err, domain.ErrNameRequired):
		return writeError(c, http.StatusBadRequest, "name_required", "name is required when creating a new account")
	case errors.Is(err, app.ErrInvalidStatus):
		return writeError(c, http.StatusBadRequest, "invalid_status", "status must be one of active, disabled, pending")
	case errors.Is(err, domain.ErrAlreadyInGroup):
		return writeError(c, http.StatusConflict, "already_in_group", "user already holds the requested group membership")
	case errors.Is(err, domain.ErrUnreconciled):
		return writeError(c, http.StatusInternalServerError, "unreconciled_account", "account exists upstream but no status lookup found it")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return writeError(c, http.StatusBadGateway, "redash_auth_failed", "connector credentials were rejected by redash")
	case errors.Is(err, app.ErrSnapshotUnavailable):
		return writeError(c, http.StatusServiceUnavailable, "snapshot_unavailable", "no snapshot store is configured")
	}

	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		return writeError(c, http.StatusBadGateway, "upstream_error", upstream.Error())
	}

	return writeError(c, http.StatusInternalServerError, "internal_error", "request failed")
}
