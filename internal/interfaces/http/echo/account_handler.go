package echo

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	app "github.com/cermati/iamx-redash/internal/application/account"
)

// Context shapes mirror the workflow engine's mutating and read-only
// contexts; validation here stands in for the engine-side schema check.
type contextGroup struct {
	ID   int    `json:"group_id" validate:"required"`
	Name string `json:"group_name"`
}

type mutatingContextUser struct {
	Email string        `json:"email" validate:"required,email"`
	Name  string        `json:"name"`
	Group *contextGroup `json:"group"`
}

type mutatingContext struct {
	User mutatingContextUser `json:"user"`
}

type AccountHandler struct {
	provision app.ProvisionAccount
	revoke    app.RevokeAccount
	show      app.ShowAccounts
	validate  *validator.Validate
}

func NewAccountHandler(provision app.ProvisionAccount, revoke app.RevokeAccount, show app.ShowAccounts) *AccountHandler {
	return &AccountHandler{
		provision: provision,
		revoke:    revoke,
		show:      show,
		validate:  validator.New(),
	}
}

func (h *AccountHandler) Provision(c echo.Context) error {
	var body mutatingContext
	if err := c.Bind(&body); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_context", "request body must be a mutating workflow context")
	}
	if err := h.validate.Struct(body); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_context", err.Error())
	}

	in := app.ProvisionAccountInput{
		Email: body.User.Email,
		Name:  body.User.Name,
	}
	if body.User.Group != nil {
		in.Group = &app.ProvisionGroupInput{ID: body.User.Group.ID, Name: body.User.Group.Name}
	}

	out, err := h.provision.Execute(c.Request().Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *AccountHandler) Revoke(c echo.Context) error {
	var body mutatingContext
	if err := c.Bind(&body); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_context", "request body must be a mutating workflow context")
	}
	if err := h.validate.Struct(body); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_context", err.Error())
	}

	out, err := h.revoke.Execute(c.Request().Context(), app.RevokeAccountInput{Email: body.User.Email})
	if err != nil {
		return mapDomainError(c, err)
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *AccountHandler) Show(c echo.Context) error {
	in, err := queryOptionsFromRequest(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_query", err.Error())
	}

	out, err := h.show.Execute(c.Request().Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func queryOptionsFromRequest(c echo.Context) (app.ShowAccountsInput, error) {
	in := app.ShowAccountsInput{
		Email:  c.QueryParam("email"),
		Status: c.QueryParam("status"),
		Order:  c.QueryParam("order"),
	}

	var err error
	if in.Page, err = intQueryParam(c, "page"); err != nil {
		return app.ShowAccountsInput{}, err
	}
	if in.PageSize, err = intQueryParam(c, "page_size"); err != nil {
		return app.ShowAccountsInput{}, err
	}

	return in, nil
}

func intQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return value, nil
}
