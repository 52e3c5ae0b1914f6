package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendMembershipApproved(ctx context.Context, toEmail, name, groupName string) error {
	args := m.Called(ctx, toEmail, name, groupName)
	return args.Error(0)
}

func (m *EmailService) SendMembershipRejected(ctx context.Context, toEmail, name, groupName string) error {
	args := m.Called(ctx, toEmail, name, groupName)
	return args.Error(0)
}
