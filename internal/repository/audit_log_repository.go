package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"celula-igreja/internal/domain"
)

type AuditLogRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
	ListRecent(ctx context.Context, limit int) ([]domain.AuditLog, error)
}

type auditLogRepository struct {
	db *sqlx.DB
}

func NewAuditLogRepository(db *sqlx.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	query := `
		INSERT INTO audit_logs (audit_id, user_id, action, target_user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		entry.ID, entry.UserID, entry.Action, entry.TargetUserID,
	).Scan(&entry.CreatedAt)
}

func (r *auditLogRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var entries []domain.AuditLog
	query := `SELECT * FROM audit_logs ORDER BY created_at DESC LIMIT $1`

	err := r.db.SelectContext(ctx, &entries, query, limit)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
