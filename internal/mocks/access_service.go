package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"celula-igreja/internal/domain"
)

type AccessService struct {
	mock.Mock
}

func (m *AccessService) Authorize(ctx context.Context, userID uuid.UUID) (*domain.User, *domain.Group, domain.AccessDecision, error) {
	args := m.Called(ctx, userID)

	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	var group *domain.Group
	if args.Get(1) != nil {
		group = args.Get(1).(*domain.Group)
	}
	return user, group, args.Get(2).(domain.AccessDecision), args.Error(3)
}
