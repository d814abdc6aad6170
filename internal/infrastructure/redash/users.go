package redash

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

// userPayload deliberately omits the credentials object Redash attaches to
// user records, so credential material never leaves this package.
type userPayload struct {
	ID                  int            `json:"id"`
	Email               string         `json:"email"`
	Name                string         `json:"name"`
	IsDisabled          bool           `json:"is_disabled"`
	IsInvitationPending bool           `json:"is_invitation_pending"`
	Groups              []groupPayload `json:"groups"`
}

type groupPayload struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type pagePayload struct {
	Count    int           `json:"count"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Results  []userPayload `json:"results"`
}

func (p userPayload) toDomain() domain.User {
	groups := make([]domain.Group, 0, len(p.Groups))
	for _, g := range p.Groups {
		groups = append(groups, domain.Group{ID: g.ID, Name: g.Name})
	}

	return domain.User{
		ID:                  p.ID,
		Email:               p.Email,
		Name:                p.Name,
		IsDisabled:          p.IsDisabled,
		IsInvitationPending: p.IsInvitationPending,
		Groups:              groups,
	}
}

// ListUsers queries GET /api/users. The three lifecycle states map onto
// Redash's listing flags: pending=true, disabled=true, or pending=false for
// the active listing.
func (c *Client) ListUsers(ctx context.Context, q domain.ListQuery) (domain.Page, error) {
	q = q.Normalized()

	query := url.Values{
		"q":         {q.Email},
		"page":      {strconv.Itoa(q.Page)},
		"page_size": {strconv.Itoa(q.PageSize)},
		"order":     {q.Order},
	}
	switch q.Status {
	case domain.StatusPending:
		query.Set("pending", "true")
	case domain.StatusDisabled:
		query.Set("disabled", "true")
	default:
		query.Set("pending", "false")
	}

	var payload pagePayload
	if err := c.doJSON(ctx, "list users", http.MethodGet, "/api/users", query, nil, &payload); err != nil {
		return domain.Page{}, err
	}

	results := make([]domain.User, 0, len(payload.Results))
	for _, u := range payload.Results {
		results = append(results, u.toDomain())
	}

	return domain.Page{
		Results:  results,
		Page:     payload.Page,
		PageSize: payload.PageSize,
		Count:    payload.Count,
	}, nil
}

// CreateUser posts a new account. Redash reports an email collision with a
// message; that wording is translated into ErrEmailTaken here so the
// reconciler never string-matches upstream text.
func (c *Client) CreateUser(ctx context.Context, email, name string) (domain.User, error) {
	payload := map[string]string{"email": email, "name": name}

	var created userPayload
	err := c.doJSON(ctx, "create user", http.MethodPost, "/api/users", nil, payload, &created)
	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusBadRequest &&
			strings.Contains(strings.ToLower(upstream.Err.Error()), "already taken") {
			return domain.User{}, fmt.Errorf("create %s: %w", email, domain.ErrEmailTaken)
		}
		return domain.User{}, err
	}

	return created.toDomain(), nil
}

// EnableUser re-enables a disabled account. Redash keys the call on the user
// id, so the email is first resolved through the disabled listing.
func (c *Client) EnableUser(ctx context.Context, email string) (domain.User, error) {
	found, err := c.findUser(ctx, email, domain.StatusDisabled, domain.ErrDisabledUserNotFound)
	if err != nil {
		return domain.User{}, err
	}

	var enabled userPayload
	path := fmt.Sprintf("/api/users/%d/disable", found.ID)
	if err := c.doJSON(ctx, "enable user", http.MethodDelete, path, nil, nil, &enabled); err != nil {
		return domain.User{}, err
	}
	return enabled.toDomain(), nil
}

func (c *Client) DisableUser(ctx context.Context, email string) (domain.User, error) {
	found, err := c.findUser(ctx, email, domain.StatusActive, domain.ErrActiveUserNotFound)
	if err != nil {
		return domain.User{}, err
	}

	var disabled userPayload
	path := fmt.Sprintf("/api/users/%d/disable", found.ID)
	if err := c.doJSON(ctx, "disable user", http.MethodPost, path, nil, nil, &disabled); err != nil {
		return domain.User{}, err
	}
	return disabled.toDomain(), nil
}

func (c *Client) ResendInvitation(ctx context.Context, email string) (domain.User, error) {
	found, err := c.findUser(ctx, email, domain.StatusPending, domain.ErrPendingUserNotFound)
	if err != nil {
		return domain.User{}, err
	}

	var invited userPayload
	path := fmt.Sprintf("/api/users/%d/invite", found.ID)
	if err := c.doJSON(ctx, "resend invitation", http.MethodPost, path, nil, nil, &invited); err != nil {
		return domain.User{}, err
	}
	return invited.toDomain(), nil
}

// DeletePendingUser hard-deletes an account that never accepted its
// invitation. Accounts past the pending state cannot be deleted; callers own
// the fallback behavior.
func (c *Client) DeletePendingUser(ctx context.Context, email string) (domain.User, error) {
	found, err := c.findUser(ctx, email, domain.StatusPending, domain.ErrPendingUserNotFound)
	if err != nil {
		return domain.User{}, err
	}

	var deleted userPayload
	path := fmt.Sprintf("/api/users/%d", found.ID)
	if err := c.doJSON(ctx, "delete pending user", http.MethodDelete, path, nil, nil, &deleted); err != nil {
		return domain.User{}, err
	}
	if deleted.ID == 0 {
		// Redash answers the delete with an empty body on some versions.
		return *found, nil
	}
	return deleted.toDomain(), nil
}

func (c *Client) findUser(ctx context.Context, email string, status domain.UserStatus, notFound error) (*domain.User, error) {
	page, err := c.ListUsers(ctx, domain.ListQuery{Email: email, Status: status})
	if err != nil {
		return nil, err
	}
	found := page.FindByEmail(email)
	if found == nil {
		return nil, fmt.Errorf("%s: %w", email, notFound)
	}
	return found, nil
}
