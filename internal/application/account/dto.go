package account

import (
	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

type GroupOutput struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type AccountOutput struct {
	ID                  int           `json:"id"`
	Email               string        `json:"email"`
	Name                string        `json:"name"`
	IsDisabled          bool          `json:"is_disabled"`
	IsInvitationPending bool          `json:"is_invitation_pending"`
	Groups              []GroupOutput `json:"groups"`
}

type PageOutput struct {
	Results    []AccountOutput `json:"results"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	Count      int             `json:"count"`
	TotalPages int             `json:"total_pages"`
}

func AccountFromUser(u domain.User) AccountOutput {
	groups := make([]GroupOutput, 0, len(u.Groups))
	for _, g := range u.Groups {
		groups = append(groups, GroupOutput{ID: g.ID, Name: g.Name})
	}

	return AccountOutput{
		ID:                  u.ID,
		Email:               u.Email,
		Name:                u.Name,
		IsDisabled:          u.IsDisabled,
		IsInvitationPending: u.IsInvitationPending,
		Groups:              groups,
	}
}

func pageFromDomain(p domain.Page) PageOutput {
	results := make([]AccountOutput, 0, len(p.Results))
	for _, u := range p.Results {
		results = append(results, AccountFromUser(u))
	}

	return PageOutput{
		Results:    results,
		Page:       p.Page,
		PageSize:   p.PageSize,
		Count:      p.Count,
		TotalPages: p.TotalPages(),
	}
}
