package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/cermati/iamx-redash/internal/application/account"
)

type GroupHandler struct {
	listGroups app.ListAvailableGroups
}

func NewGroupHandler(listGroups app.ListAvailableGroups) *GroupHandler {
	return &GroupHandler{listGroups: listGroups}
}

func (h *GroupHandler) ListAvailable(c echo.Context) error {
	out, err := h.listGroups.Execute(c.Request().Context(), app.ListAvailableGroupsInput{
		PlatformOwner: c.QueryParam("platform_owner"),
	})
	if err != nil {
		return mapDomainError(c, err)
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
