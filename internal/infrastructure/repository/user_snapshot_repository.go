package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

// UserSnapshotRepository bulk-persists directory pages with COPY; each page
// of a snapshot walk lands in one round trip.
type UserSnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewUserSnapshotRepository(pool *pgxpool.Pool) *UserSnapshotRepository {
	return &UserSnapshotRepository{pool: pool}
}

func (r *UserSnapshotRepository) InsertUsers(ctx context.Context, snapshotID string, status domain.UserStatus, users []domain.User) (int64, error) {
	if len(users) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(users))
	for _, u := range users {
		groups, err := json.Marshal(u.Groups)
		if err != nil {
			return 0, fmt.Errorf("encode groups for %s: %w", u.Email, err)
		}
		rows = append(rows, []any{
			snapshotID,
			string(status),
			int64(u.ID),
			u.Email,
			u.Name,
			u.IsDisabled,
			u.IsInvitationPending,
			string(groups),
		})
	}

	inserted, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"user_snapshots"},
		[]string{"snapshot_id", "status", "remote_id", "email", "name", "is_disabled", "is_invitation_pending", "groups"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copy user snapshots: %w", err)
	}

	return inserted, nil
}
