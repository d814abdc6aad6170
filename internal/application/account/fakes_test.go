package account_test

import (
	"context"
	"errors"
	"strings"

	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

type groupCall struct {
	UserID  int
	GroupID int
}

// fakeDirectory serves canned users per status and records every mutating
// call so tests can assert on exactly which requests were issued.
type fakeDirectory struct {
	disabled []domain.User
	pending  []domain.User
	active   []domain.User
	groups   []domain.Group

	createErr error
	listErr   error
	groupsErr error

	createCalls []string
	enableCalls []string
	resendCalls []string
	disableCalls []string
	deleteCalls  []string
	addGroupCalls []groupCall
	listCalls    []domain.ListQuery

	nextID int
}

func (f *fakeDirectory) byStatus(status domain.UserStatus) []domain.User {
	switch status {
	case domain.StatusDisabled:
		return f.disabled
	case domain.StatusPending:
		return f.pending
	default:
		return f.active
	}
}

func (f *fakeDirectory) ListUsers(ctx context.Context, q domain.ListQuery) (domain.Page, error) {
	f.listCalls = append(f.listCalls, q)
	if f.listErr != nil {
		return domain.Page{}, f.listErr
	}

	matched := make([]domain.User, 0)
	for _, u := range f.byStatus(q.Status) {
		if q.Email == "" || strings.Contains(u.Email, q.Email) {
			matched = append(matched, u)
		}
	}

	// Slice out the requested page the way the remote API would.
	count := len(matched)
	start := (q.Page - 1) * q.PageSize
	if start > count {
		start = count
	}
	end := start + q.PageSize
	if end > count {
		end = count
	}

	return domain.Page{
		Results:  matched[start:end],
		Page:     q.Page,
		PageSize: q.PageSize,
		Count:    count,
	}, nil
}

func (f *fakeDirectory) CreateUser(ctx context.Context, email, name string) (domain.User, error) {
	f.createCalls = append(f.createCalls, email)
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}

	f.nextID++
	created := domain.User{ID: 100 + f.nextID, Email: email, Name: name, IsInvitationPending: true}
	f.pending = append(f.pending, created)
	return created, nil
}

func (f *fakeDirectory) EnableUser(ctx context.Context, email string) (domain.User, error) {
	f.enableCalls = append(f.enableCalls, email)
	for _, u := range f.disabled {
		if u.Email == email {
			u.IsDisabled = false
			return u, nil
		}
	}
	return domain.User{}, domain.ErrDisabledUserNotFound
}

func (f *fakeDirectory) DisableUser(ctx context.Context, email string) (domain.User, error) {
	f.disableCalls = append(f.disableCalls, email)
	for _, u := range f.active {
		if u.Email == email {
			u.IsDisabled = true
			return u, nil
		}
	}
	return domain.User{}, domain.ErrActiveUserNotFound
}

func (f *fakeDirectory) ResendInvitation(ctx context.Context, email string) (domain.User, error) {
	f.resendCalls = append(f.resendCalls, email)
	for _, u := range f.find(email) {
		u.IsInvitationPending = true
		return u, nil
	}
	return domain.User{}, domain.ErrPendingUserNotFound
}

func (f *fakeDirectory) DeletePendingUser(ctx context.Context, email string) (domain.User, error) {
	f.deleteCalls = append(f.deleteCalls, email)
	for i, u := range f.pending {
		if u.Email == email {
			f.pending = append(f.pending[:i], f.pending[i+1:]...)
			return u, nil
		}
	}
	return domain.User{}, domain.ErrPendingUserNotFound
}

func (f *fakeDirectory) AddUserToGroup(ctx context.Context, userID, groupID int) (domain.User, error) {
	f.addGroupCalls = append(f.addGroupCalls, groupCall{UserID: userID, GroupID: groupID})
	for _, u := range f.all() {
		if u.ID == userID {
			u.Groups = append(u.Groups, domain.Group{ID: groupID})
			return u, nil
		}
	}
	return domain.User{}, errors.New("unknown user id")
}

func (f *fakeDirectory) ListGroups(ctx context.Context) ([]domain.Group, error) {
	if f.groupsErr != nil {
		return nil, f.groupsErr
	}
	return f.groups, nil
}

func (f *fakeDirectory) all() []domain.User {
	all := make([]domain.User, 0, len(f.disabled)+len(f.pending)+len(f.active))
	all = append(all, f.disabled...)
	all = append(all, f.pending...)
	all = append(all, f.active...)
	return all
}

func (f *fakeDirectory) find(email string) []domain.User {
	found := make([]domain.User, 0, 1)
	for _, u := range f.all() {
		if u.Email == email {
			found = append(found, u)
		}
	}
	return found
}

// fakeAuditRecorder collects events; failures are injectable.
type fakeAuditRecorder struct {
	events []domain.AuditEvent
	err    error
}

func (f *fakeAuditRecorder) Record(ctx context.Context, event domain.AuditEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}
