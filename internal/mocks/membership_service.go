package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MembershipService struct {
	mock.Mock
}

func (m *MembershipService) Approve(ctx context.Context, actorID, memberID uuid.UUID) error {
	args := m.Called(ctx, actorID, memberID)
	return args.Error(0)
}

func (m *MembershipService) Reject(ctx context.Context, actorID, memberID uuid.UUID) error {
	args := m.Called(ctx, actorID, memberID)
	return args.Error(0)
}
