package account_test

import (
	"context"
	"errors"
	"testing"

	app "github.com/cermati/iamx-redash/internal/application/account"
	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

func TestShowAccountsAppliesDefaults(t *testing.T) {
	t.Parallel()

	directory := &fakeDirectory{active: activeUsers(3)}
	uc := app.NewShowAccounts(directory)

	out, err := uc.Execute(context.Background(), app.ShowAccountsInput{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.Results) != 3 || out.Page != 1 || out.PageSize != 20 {
		t.Fatalf("unexpected page: %+v", out)
	}
	if out.TotalPages != 1 {
		t.Fatalf("expected 1 total page, got %d", out.TotalPages)
	}

	q := directory.listCalls[0]
	if q.Status != domain.StatusActive || q.Page != 1 || q.PageSize != 20 || q.Order != "created_at" {
		t.Fatalf("defaults not applied to query: %+v", q)
	}
}

func TestShowAccountsFiltersByEmailAndStatus(t *testing.T) {
	t.Parallel()

	directory := &fakeDirectory{
		pending: []domain.User{
			{ID: 1, Email: "alice@example.com", IsInvitationPending: true},
			{ID: 2, Email: "bob@example.com", IsInvitationPending: true},
		},
	}
	uc := app.NewShowAccounts(directory)

	out, err := uc.Execute(context.Background(), app.ShowAccountsInput{Email: "alice@", Status: "pending"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.Results) != 1 || out.Results[0].Email != "alice@example.com" {
		t.Fatalf("unexpected results: %+v", out.Results)
	}
}

func TestShowAccountsRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	uc := app.NewShowAccounts(&fakeDirectory{})

	_, err := uc.Execute(context.Background(), app.ShowAccountsInput{Status: "deleted"})
	if !errors.Is(err, app.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
