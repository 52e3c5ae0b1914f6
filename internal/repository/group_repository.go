package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"celula-igreja/internal/domain"
)

// GroupRepository is read-only: groups are created and their pro-mode flag
// maintained by an external administrative process.
type GroupRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	List(ctx context.Context) ([]domain.Group, error)
}

type groupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	var group domain.Group
	query := `SELECT * FROM groups WHERE group_id = $1`

	err := r.db.GetContext(ctx, &group, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) List(ctx context.Context) ([]domain.Group, error) {
	var groups []domain.Group
	query := `SELECT * FROM groups ORDER BY name`

	err := r.db.SelectContext(ctx, &groups, query)
	if err != nil {
		return nil, err
	}
	return groups, nil
}
