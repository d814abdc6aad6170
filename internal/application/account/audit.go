package account

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

// NopAuditRecorder satisfies the audit port when no database is configured.
type NopAuditRecorder struct{}

func (NopAuditRecorder) Record(ctx context.Context, event domain.AuditEvent) error {
	return nil
}

// recordAudit logs and moves on when the audit write fails: a lifecycle
// operation that already succeeded upstream is not rolled back over a local
// bookkeeping failure.
func recordAudit(ctx context.Context, recorder domain.AuditRecorder, operation, email, outcome, detail string) {
	event := domain.AuditEvent{
		Operation:   operation,
		TargetEmail: email,
		Outcome:     outcome,
		Detail:      detail,
		OccurredAt:  time.Now().UTC(),
	}

	if err := recorder.Record(ctx, event); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"operation": operation,
			"email":     email,
			"outcome":   outcome,
		}).Warn("failed to record audit event")
	}
}
