package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

type SnapshotDirectoryInput struct {
	Status   string
	PageSize int
}

type SnapshotDirectoryOutput struct {
	SnapshotID string `json:"snapshot_id"`
	UserCount  int64  `json:"user_count"`
	PageCount  int    `json:"page_count"`
}

type SnapshotDirectory interface {
	Execute(ctx context.Context, in SnapshotDirectoryInput) (SnapshotDirectoryOutput, error)
}

type snapshotDirectory struct {
	batch FetchAccountBatch
	store domain.SnapshotStore
}

func NewSnapshotDirectory(batch FetchAccountBatch, store domain.SnapshotStore) SnapshotDirectory {
	return &snapshotDirectory{batch: batch, store: store}
}

// Execute walks the batch iterator from the first page and bulk-copies every
// user record into the local snapshot store. The walk inherits the
// iterator's consistency caveat: concurrent directory changes can shift
// records between pages.
func (uc *snapshotDirectory) Execute(ctx context.Context, in SnapshotDirectoryInput) (SnapshotDirectoryOutput, error) {
	if uc.store == nil {
		return SnapshotDirectoryOutput{}, ErrSnapshotUnavailable
	}

	status := domain.UserStatus(in.Status)
	if in.Status == "" {
		status = domain.StatusActive
	}

	it, err := uc.batch.Execute(ctx, ShowAccountsInput{
		Status:   string(status),
		PageSize: in.PageSize,
	})
	if err != nil {
		return SnapshotDirectoryOutput{}, err
	}

	snapshotID := uuid.NewString()
	out := SnapshotDirectoryOutput{SnapshotID: snapshotID}

	for it != nil {
		if len(it.Results) > 0 {
			inserted, err := uc.store.InsertUsers(ctx, snapshotID, status, it.Results)
			if err != nil {
				return SnapshotDirectoryOutput{}, err
			}
			out.UserCount += inserted
		}
		out.PageCount++

		if it, err = it.Next(ctx); err != nil {
			return SnapshotDirectoryOutput{}, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshotID,
		"status":      status,
		"users":       out.UserCount,
		"pages":       out.PageCount,
	}).Info("directory snapshot completed")

	return out, nil
}
