package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cermati/iamx-redash/internal/connector"
)

type MetadataHandler struct{}

func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

func (h *MetadataHandler) Describe(c echo.Context) error {
	return c.JSON(http.StatusOK, apiResponse{Data: connector.ModuleMetadata()})
}
