package domain

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID           uuid.UUID  `json:"id" db:"audit_id"`
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`
	Action       string     `json:"action" db:"action"`
	TargetUserID *uuid.UUID `json:"target_user_id,omitempty" db:"target_user_id"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

const (
	AuditApproveMembership = "APPROVE_MEMBERSHIP"
	AuditRejectMembership  = "REJECT_MEMBERSHIP"
)
