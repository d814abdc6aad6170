package account_test

import (
	"context"
	"testing"

	app "github.com/cermati/iamx-redash/internal/application/account"
	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

func TestListAvailableGroupsRestrictedOwner(t *testing.T) {
	t.Parallel()

	directory := &fakeDirectory{groups: []domain.Group{{ID: 1, Name: "admin"}}}
	uc := app.NewListAvailableGroups(directory, app.GroupCatalogConfig{
		FullCatalogOwners: []string{"cermati"},
	})

	out, err := uc.Execute(context.Background(), app.ListAvailableGroupsInput{PlatformOwner: "partner.example.com"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.Groups) != 1 || out.Groups[0].Name != "default" {
		t.Fatalf("expected only the default group, got %+v", out.Groups)
	}
}

func TestListAvailableGroupsFullCatalog(t *testing.T) {
	t.Parallel()

	directory := &fakeDirectory{groups: []domain.Group{
		{ID: 1, Name: "admin"},
		{ID: 2, Name: "default"},
		{ID: 3, Name: "analysts"},
		{ID: 4, Name: "finance"},
	}}
	uc := app.NewListAvailableGroups(directory, app.GroupCatalogConfig{
		Excluded:          []string{"admin", "default"},
		FullCatalogOwners: []string{"cermati"},
	})

	out, err := uc.Execute(context.Background(), app.ListAvailableGroupsInput{PlatformOwner: "data@cermati.com"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %+v", out.Groups)
	}
	for _, g := range out.Groups {
		if g.Name == "admin" || g.Name == "default" {
			t.Fatalf("excluded group leaked: %s", g.Name)
		}
	}
}
