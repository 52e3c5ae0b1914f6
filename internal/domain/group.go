package domain

import (
	"time"

	"github.com/google/uuid"
)

// Group is read-only to this service: the pro-mode flag is flipped by an
// external administrative process after the subscription payment clears.
type Group struct {
	ID            uuid.UUID `json:"id" db:"group_id"`
	Name          string    `json:"name" db:"name"`
	ProModeActive bool      `json:"pro_mode_active" db:"pro_mode_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
