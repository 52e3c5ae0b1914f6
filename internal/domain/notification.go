package domain

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID        `json:"id" db:"notification_id"`
	GroupID   uuid.UUID        `json:"group_id" db:"group_id"`
	Type      NotificationType `json:"type" db:"type"`
	CreatedBy *uuid.UUID       `json:"created_by,omitempty" db:"created_by"`
	Message   string           `json:"message" db:"message"`

	// Sender fields are a point-in-time snapshot captured when the
	// notification is created; they may diverge from the live user record.
	SenderName    *string `json:"sender_name,omitempty" db:"sender_name"`
	SenderSurname *string `json:"sender_surname,omitempty" db:"sender_surname"`
	SenderPhoto   *string `json:"sender_photo,omitempty" db:"sender_photo"`

	IsRead    bool       `json:"is_read" db:"is_read"`
	ReadAt    *time.Time `json:"read_at,omitempty" db:"read_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotifMembershipRequest NotificationType = "membership_request"
	NotifMentionComment    NotificationType = "mention_comment"
	NotifGeneric           NotificationType = "generic"
)

// IsApprovalRequest reports whether the notification is resolved through the
// approval workflow. Approval requests are action-only and never navigable.
func (n *Notification) IsApprovalRequest() bool {
	return n.Type == NotifMembershipRequest
}
