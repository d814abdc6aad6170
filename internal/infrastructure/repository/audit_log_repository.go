package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/cermati/iamx-redash/internal/domain/account"
	"github.com/cermati/iamx-redash/internal/infrastructure/db/models"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Record(ctx context.Context, event domain.AuditEvent) error {
	row := models.AuditEvent{
		ID:          uuid.NewString(),
		Operation:   event.Operation,
		TargetEmail: event.TargetEmail,
		Outcome:     event.Outcome,
		Detail:      event.Detail,
		OccurredAt:  event.OccurredAt,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create audit event: %w", err)
	}

	return nil
}
