package account

// UserStatus is the lifecycle state a directory listing can be filtered by.
// It is derived by querying Redash with the matching flag, never stored.
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusDisabled UserStatus = "disabled"
	StatusPending  UserStatus = "pending"
)

func (s UserStatus) Valid() bool {
	switch s {
	case StatusActive, StatusDisabled, StatusPending:
		return true
	}
	return false
}
