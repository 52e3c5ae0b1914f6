package audit

import (
	"context"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/repository"
)

type Service interface {
	RecentActivities(ctx context.Context, limit int) ([]domain.AuditLog, error)
}

type service struct {
	auditRepo repository.AuditLogRepository
}

func NewService(auditRepo repository.AuditLogRepository) Service {
	return &service{auditRepo: auditRepo}
}

func (s *service) RecentActivities(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	return s.auditRepo.ListRecent(ctx, limit)
}
