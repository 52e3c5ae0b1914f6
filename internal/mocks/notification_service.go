package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"celula-igreja/internal/domain"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.Notification, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *NotificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NotificationService) CountUnread(ctx context.Context, groupID uuid.UUID) (int64, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationService) NotifyMembershipRequest(ctx context.Context, requester *domain.User) error {
	args := m.Called(ctx, requester)
	return args.Error(0)
}

func (m *NotificationService) NotifyMention(ctx context.Context, author *domain.User) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}
