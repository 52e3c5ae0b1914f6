package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `json:"id" db:"user_id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Name         string     `json:"name" db:"name"`
	Surname      string     `json:"surname" db:"surname"`
	PhotoURL     *string    `json:"photo_url,omitempty" db:"photo_url"`
	Approved     bool       `json:"approved" db:"approved"`
	IsLeader     bool       `json:"is_leader" db:"is_leader"`
	GroupID      uuid.UUID  `json:"group_id" db:"group_id"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time `json:"-" db:"deleted_at"`
}

type RegisterInput struct {
	Email    string    `json:"email" validate:"required,email"`
	Password string    `json:"password" validate:"required,min=8"`
	Name     string    `json:"name" validate:"required,min=2"`
	Surname  string    `json:"surname"`
	GroupID  uuid.UUID `json:"group_id" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
