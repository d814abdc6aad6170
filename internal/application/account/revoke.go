package account

import (
	"context"
	"errors"
	"strings"

	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

type RevokeAccountInput struct {
	Email string
}

type RevokeAccount interface {
	Execute(ctx context.Context, in RevokeAccountInput) (AccountOutput, error)
}

type revokeAccount struct {
	directory domain.Directory
	audit     domain.AuditRecorder
}

func NewRevokeAccount(directory domain.Directory, audit domain.AuditRecorder) RevokeAccount {
	return &revokeAccount{directory: directory, audit: audit}
}

// Execute revokes access idempotently: disable the active user, or delete
// the account while it is still pending, or report the already-revoked form.
// Only the documented not-found conditions trigger the fallback chain;
// upstream failures propagate unchanged.
func (uc *revokeAccount) Execute(ctx context.Context, in RevokeAccountInput) (AccountOutput, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return AccountOutput{}, domain.ErrEmailRequired
	}

	disabled, err := uc.directory.DisableUser(ctx, email)
	if err == nil {
		recordAudit(ctx, uc.audit, "revoke", email, "disabled", "")
		return AccountFromUser(disabled), nil
	}
	if !errors.Is(err, domain.ErrActiveUserNotFound) {
		return AccountOutput{}, err
	}

	deleted, err := uc.directory.DeletePendingUser(ctx, email)
	if err == nil {
		recordAudit(ctx, uc.audit, "revoke", email, "pending deleted", "")
		return AccountFromUser(deleted), nil
	}
	if !errors.Is(err, domain.ErrPendingUserNotFound) {
		return AccountOutput{}, err
	}

	// Neither active nor pending: the account is already in its terminal
	// revoked form, or it never existed. Report whatever disabled record
	// remains, falling back to a synthetic disabled representation so a
	// repeated revoke never raises.
	page, err := uc.directory.ListUsers(ctx, domain.ListQuery{Email: email, Status: domain.StatusDisabled}.Normalized())
	if err != nil {
		return AccountOutput{}, err
	}
	if found := page.FindByEmail(email); found != nil {
		recordAudit(ctx, uc.audit, "revoke", email, "already revoked", "")
		return AccountFromUser(*found), nil
	}

	recordAudit(ctx, uc.audit, "revoke", email, "absent", "")
	return AccountFromUser(domain.User{Email: email, IsDisabled: true}), nil
}
