package group

import (
	"context"

	"github.com/google/uuid"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/repository"
)

type Service interface {
	List(ctx context.Context) ([]domain.Group, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)
}

type service struct {
	groupRepo repository.GroupRepository
}

func NewService(groupRepo repository.GroupRepository) Service {
	return &service{groupRepo: groupRepo}
}

func (s *service) List(ctx context.Context) ([]domain.Group, error) {
	return s.groupRepo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	return s.groupRepo.GetByID(ctx, id)
}
