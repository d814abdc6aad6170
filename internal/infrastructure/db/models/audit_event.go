package models

import "time"

type AuditEvent struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Operation   string    `gorm:"type:text;not null"`
	TargetEmail string    `gorm:"size:320;not null;index"`
	Outcome     string    `gorm:"type:text;not null"`
	Detail      string    `gorm:"type:text"`
	OccurredAt  time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
