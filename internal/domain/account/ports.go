package account

import (
	"context"
	"time"
)

// Directory is the capability surface the reconciler consumes from the
// remote Redash client. Implementations resolve emails to user ids and
// enforce request timeouts; failures other than the documented sentinels
// surface as *UpstreamError.
type Directory interface {
	ListUsers(ctx context.Context, q ListQuery) (Page, error)
	CreateUser(ctx context.Context, email, name string) (User, error)
	EnableUser(ctx context.Context, email string) (User, error)
	DisableUser(ctx context.Context, email string) (User, error)
	ResendInvitation(ctx context.Context, email string) (User, error)
	DeletePendingUser(ctx context.Context, email string) (User, error)
	AddUserToGroup(ctx context.Context, userID, groupID int) (User, error)
	ListGroups(ctx context.Context) ([]Group, error)
}

// AuditEvent is one record of a mutating lifecycle operation.
type AuditEvent struct {
	Operation   string
	TargetEmail string
	Outcome     string
	Detail      string
	OccurredAt  time.Time
}

type AuditRecorder interface {
	Record(ctx context.Context, event AuditEvent) error
}

// SnapshotStore bulk-persists directory pages under a snapshot id.
type SnapshotStore interface {
	InsertUsers(ctx context.Context, snapshotID string, status UserStatus, users []User) (int64, error)
}
