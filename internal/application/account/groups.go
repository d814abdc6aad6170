package account

import (
	"context"
	"strings"

	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

// GroupCatalogConfig controls which groups a workflow may assign. Owners
// outside the full-catalog list only ever see the default group; reserved
// groups are filtered out of the catalog for everyone.
type GroupCatalogConfig struct {
	DefaultGroup      string
	Excluded          []string
	FullCatalogOwners []string
}

type ListAvailableGroupsInput struct {
	PlatformOwner string
}

type ListAvailableGroupsOutput struct {
	Groups []GroupOutput `json:"groups"`
}

type ListAvailableGroups interface {
	Execute(ctx context.Context, in ListAvailableGroupsInput) (ListAvailableGroupsOutput, error)
}

type listAvailableGroups struct {
	directory domain.Directory
	cfg       GroupCatalogConfig
}

func NewListAvailableGroups(directory domain.Directory, cfg GroupCatalogConfig) ListAvailableGroups {
	if cfg.DefaultGroup == "" {
		cfg.DefaultGroup = "default"
	}
	return &listAvailableGroups{directory: directory, cfg: cfg}
}

func (uc *listAvailableGroups) Execute(ctx context.Context, in ListAvailableGroupsInput) (ListAvailableGroupsOutput, error) {
	if !uc.ownerSeesFullCatalog(in.PlatformOwner) {
		return ListAvailableGroupsOutput{Groups: []GroupOutput{{Name: uc.cfg.DefaultGroup}}}, nil
	}

	groups, err := uc.directory.ListGroups(ctx)
	if err != nil {
		return ListAvailableGroupsOutput{}, err
	}

	available := make([]GroupOutput, 0, len(groups))
	for _, g := range groups {
		if uc.excluded(g.Name) {
			continue
		}
		available = append(available, GroupOutput{ID: g.ID, Name: g.Name})
	}

	return ListAvailableGroupsOutput{Groups: available}, nil
}

func (uc *listAvailableGroups) ownerSeesFullCatalog(owner string) bool {
	for _, allowed := range uc.cfg.FullCatalogOwners {
		if allowed != "" && strings.Contains(owner, allowed) {
			return true
		}
	}
	return false
}

func (uc *listAvailableGroups) excluded(name string) bool {
	for _, blocked := range uc.cfg.Excluded {
		if name == blocked {
			return true
		}
	}
	return false
}
