package account

import (
	"net/mail"
	"strings"
)

// Group is a Redash group membership. Users carry the memberships Redash
// reports on the user payload; adding a membership never removes others.
type Group struct {
	ID   int
	Name string
}

// User is an account record as reported by the Redash user API. Email is the
// identity key and is kept exactly as stored upstream.
type User struct {
	ID                  int
	Email               string
	Name                string
	IsDisabled          bool
	IsInvitationPending bool
	Groups              []Group
}

// InGroup reports whether the user already holds a membership in the group.
func (u User) InGroup(groupID int) bool {
	for _, g := range u.Groups {
		if g.ID == groupID {
			return true
		}
	}
	return false
}

// ProvisionRequest is the desired end state for a provisioning call. Name is
// only required when the account does not exist yet; Group is optional.
type ProvisionRequest struct {
	Email string
	Name  string
	Group *Group
}

func (r ProvisionRequest) Validate() error {
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return ErrEmailRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
