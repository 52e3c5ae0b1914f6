package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID  `json:"id" db:"comment_id"`
	GroupID   uuid.UUID  `json:"group_id" db:"group_id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	Content   string     `json:"content" db:"content"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`

	Author *CommentAuthor `json:"author,omitempty"`
}

type CommentAuthor struct {
	ID       uuid.UUID `json:"id" db:"user_id"`
	Name     string    `json:"name" db:"author_name"`
	Surname  string    `json:"surname" db:"author_surname"`
	PhotoURL *string   `json:"photo_url" db:"author_photo_url"`
}

type CreateCommentInput struct {
	Content  string      `json:"content" validate:"required,min=1,max=2000"`
	Mentions []uuid.UUID `json:"mentions,omitempty"`
}
