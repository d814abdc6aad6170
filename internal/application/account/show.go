package account

import (
	"context"
	"fmt"

	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

type ShowAccountsInput struct {
	Email    string
	Status   string
	Page     int
	PageSize int
	Order    string
}

func (in ShowAccountsInput) toQuery() (domain.ListQuery, error) {
	status := domain.UserStatus(in.Status)
	if in.Status != "" && !status.Valid() {
		return domain.ListQuery{}, fmt.Errorf("%w: %q", ErrInvalidStatus, in.Status)
	}

	return domain.ListQuery{
		Email:    in.Email,
		Status:   status,
		Page:     in.Page,
		PageSize: in.PageSize,
		Order:    in.Order,
	}.Normalized(), nil
}

type ShowAccounts interface {
	Execute(ctx context.Context, in ShowAccountsInput) (PageOutput, error)
}

type showAccounts struct {
	directory domain.Directory
}

func NewShowAccounts(directory domain.Directory) ShowAccounts {
	return &showAccounts{directory: directory}
}

func (uc *showAccounts) Execute(ctx context.Context, in ShowAccountsInput) (PageOutput, error) {
	query, err := in.toQuery()
	if err != nil {
		return PageOutput{}, err
	}

	page, err := uc.directory.ListUsers(ctx, query)
	if err != nil {
		return PageOutput{}, err
	}

	return pageFromDomain(page), nil
}
