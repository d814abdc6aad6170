package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

type ProvisionGroupInput struct {
	ID   int
	Name string
}

type ProvisionAccountInput struct {
	Email string
	Name  string
	Group *ProvisionGroupInput
}

type ProvisionAccount interface {
	Execute(ctx context.Context, in ProvisionAccountInput) (AccountOutput, error)
}

type provisionAccount struct {
	directory domain.Directory
	audit     domain.AuditRecorder
}

func NewProvisionAccount(directory domain.Directory, audit domain.AuditRecorder) ProvisionAccount {
	return &provisionAccount{directory: directory, audit: audit}
}

// Execute drives the remote account to the requested end state. Redash has
// no upsert, so a taken email starts a status-ordered reconciliation chain:
// disabled, then pending, then active. The ordering is strict because a
// missed re-enable is worse than a redundant lookup.
func (uc *provisionAccount) Execute(ctx context.Context, in ProvisionAccountInput) (AccountOutput, error) {
	req := domain.ProvisionRequest{
		Email: strings.TrimSpace(in.Email),
		Name:  strings.TrimSpace(in.Name),
	}
	if in.Group != nil {
		req.Group = &domain.Group{ID: in.Group.ID, Name: in.Group.Name}
	}
	if err := req.Validate(); err != nil {
		return AccountOutput{}, err
	}

	// Creation needs a name; without one the request can only target an
	// account that already exists in some status.
	if req.Name != "" {
		created, err := uc.directory.CreateUser(ctx, req.Email, req.Name)
		if err == nil {
			if req.Group != nil {
				created, err = uc.directory.AddUserToGroup(ctx, created.ID, req.Group.ID)
				if err != nil {
					return AccountOutput{}, err
				}
			}
			recordAudit(ctx, uc.audit, "provision", req.Email, "created", "")
			return AccountFromUser(created), nil
		}
		if !errors.Is(err, domain.ErrEmailTaken) {
			return AccountOutput{}, err
		}
	}

	return uc.reconcileExisting(ctx, req)
}

func (uc *provisionAccount) reconcileExisting(ctx context.Context, req domain.ProvisionRequest) (AccountOutput, error) {
	disabled, err := uc.findByStatus(ctx, req.Email, domain.StatusDisabled)
	if err != nil {
		return AccountOutput{}, err
	}
	if disabled != nil {
		enabled, err := uc.directory.EnableUser(ctx, req.Email)
		if err != nil {
			return AccountOutput{}, err
		}
		if disabled.IsInvitationPending {
			invited, err := uc.directory.ResendInvitation(ctx, req.Email)
			if err != nil {
				return AccountOutput{}, err
			}
			recordAudit(ctx, uc.audit, "provision", req.Email, "enabled", "invitation resent")
			return AccountFromUser(invited), nil
		}
		recordAudit(ctx, uc.audit, "provision", req.Email, "enabled", "")
		return AccountFromUser(enabled), nil
	}

	pending, err := uc.findByStatus(ctx, req.Email, domain.StatusPending)
	if err != nil {
		return AccountOutput{}, err
	}
	if pending != nil {
		invited, err := uc.directory.ResendInvitation(ctx, req.Email)
		if err != nil {
			return AccountOutput{}, err
		}
		recordAudit(ctx, uc.audit, "provision", req.Email, "invitation resent", "")
		return AccountFromUser(invited), nil
	}

	active, err := uc.findByStatus(ctx, req.Email, domain.StatusActive)
	if err != nil {
		return AccountOutput{}, err
	}
	if active != nil {
		if req.Group == nil {
			recordAudit(ctx, uc.audit, "provision", req.Email, "already active", "")
			return AccountFromUser(*active), nil
		}
		if active.InGroup(req.Group.ID) {
			return AccountOutput{}, fmt.Errorf("%w: %s", domain.ErrAlreadyInGroup, req.Group.Name)
		}
		updated, err := uc.directory.AddUserToGroup(ctx, active.ID, req.Group.ID)
		if err != nil {
			return AccountOutput{}, err
		}
		recordAudit(ctx, uc.audit, "provision", req.Email, "group added", req.Group.Name)
		return AccountFromUser(updated), nil
	}

	if req.Name == "" {
		return AccountOutput{}, domain.ErrNameRequired
	}

	// Creation reported the email as taken, yet no status lookup found the
	// user. Surface it loudly instead of returning an ambiguous success.
	return AccountOutput{}, fmt.Errorf("provision %s: %w", req.Email, domain.ErrUnreconciled)
}

func (uc *provisionAccount) findByStatus(ctx context.Context, email string, status domain.UserStatus) (*domain.User, error) {
	page, err := uc.directory.ListUsers(ctx, domain.ListQuery{Email: email, Status: status}.Normalized())
	if err != nil {
		return nil, err
	}
	return page.FindByEmail(email), nil
}
