package redash

import (
	"context"
	"fmt"
	"net/http"

	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

func (c *Client) ListGroups(ctx context.Context) ([]domain.Group, error) {
	var payload []groupPayload
	if err := c.doJSON(ctx, "list groups", http.MethodGet, "/api/groups", nil, nil, &payload); err != nil {
		return nil, err
	}

	groups := make([]domain.Group, 0, len(payload))
	for _, g := range payload {
		groups = append(groups, domain.Group{ID: g.ID, Name: g.Name})
	}
	return groups, nil
}

// AddUserToGroup adds one membership; existing memberships are untouched.
func (c *Client) AddUserToGroup(ctx context.Context, userID, groupID int) (domain.User, error) {
	payload := map[string]int{"user_id": userID}

	var member userPayload
	path := fmt.Sprintf("/api/groups/%d/members", groupID)
	if err := c.doJSON(ctx, "add user to group", http.MethodPost, path, nil, payload, &member); err != nil {
		return domain.User{}, err
	}
	return member.toDomain(), nil
}
