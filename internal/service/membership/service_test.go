package membership_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/mocks"
	"celula-igreja/internal/service/membership"
)

func TestMembershipService_Approve(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	memberID := uuid.New()
	groupID := uuid.New()
	member := &domain.User{ID: memberID, GroupID: groupID, Name: "João", Email: "joao@example.com"}

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockGroupRepo := new(mocks.GroupRepository)
		mockAuditRepo := new(mocks.AuditLogRepository)
		mockRoster := new(mocks.RosterService)
		svc := membership.NewService(mockUserRepo, mockGroupRepo, mockAuditRepo, mockRoster, nil)

		mockUserRepo.On("GetByID", ctx, memberID).Return(member, nil).Once()
		mockUserRepo.On("Approve", ctx, memberID).Return(nil).Once()
		mockRoster.On("Invalidate", ctx, groupID).Return(nil).Once()
		mockAuditRepo.On("Create", ctx, mock.MatchedBy(func(entry *domain.AuditLog) bool {
			return entry.UserID == actorID &&
				entry.Action == domain.AuditApproveMembership &&
				entry.TargetUserID != nil && *entry.TargetUserID == memberID
		})).Return(nil).Once()

		err := svc.Approve(ctx, actorID, memberID)

		require.NoError(t, err)
		mockUserRepo.AssertExpectations(t)
		mockRoster.AssertExpectations(t)
		mockAuditRepo.AssertExpectations(t)
	})

	t.Run("Member Not Found", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockRoster := new(mocks.RosterService)
		svc := membership.NewService(mockUserRepo, new(mocks.GroupRepository), new(mocks.AuditLogRepository), mockRoster, nil)

		mockUserRepo.On("GetByID", ctx, memberID).Return(nil, nil).Once()

		err := svc.Approve(ctx, actorID, memberID)

		assert.ErrorIs(t, err, membership.ErrMemberNotFound)
		mockUserRepo.AssertNotCalled(t, "Approve", ctx, memberID)
		mockRoster.AssertNotCalled(t, "Invalidate", ctx, groupID)
	})

	t.Run("Mutation Failure Skips Followups", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockAuditRepo := new(mocks.AuditLogRepository)
		mockRoster := new(mocks.RosterService)
		svc := membership.NewService(mockUserRepo, new(mocks.GroupRepository), mockAuditRepo, mockRoster, nil)

		mockUserRepo.On("GetByID", ctx, memberID).Return(member, nil).Once()
		mockUserRepo.On("Approve", ctx, memberID).Return(errors.New("db down")).Once()

		err := svc.Approve(ctx, actorID, memberID)

		assert.Error(t, err)
		mockRoster.AssertNotCalled(t, "Invalidate", ctx, groupID)
		mockAuditRepo.AssertNotCalled(t, "Create")
	})
}

func TestMembershipService_Reject(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	memberID := uuid.New()
	groupID := uuid.New()
	member := &domain.User{ID: memberID, GroupID: groupID, Name: "Ana", Email: "ana@example.com"}

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockAuditRepo := new(mocks.AuditLogRepository)
		mockRoster := new(mocks.RosterService)
		svc := membership.NewService(mockUserRepo, new(mocks.GroupRepository), mockAuditRepo, mockRoster, nil)

		mockUserRepo.On("GetByID", ctx, memberID).Return(member, nil).Once()
		mockUserRepo.On("Reject", ctx, memberID).Return(nil).Once()
		mockRoster.On("Invalidate", ctx, groupID).Return(nil).Once()
		mockAuditRepo.On("Create", ctx, mock.MatchedBy(func(entry *domain.AuditLog) bool {
			return entry.Action == domain.AuditRejectMembership
		})).Return(nil).Once()

		err := svc.Reject(ctx, actorID, memberID)

		require.NoError(t, err)
		mockUserRepo.AssertExpectations(t)
		mockAuditRepo.AssertExpectations(t)
	})

	t.Run("Member Not Found", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := membership.NewService(mockUserRepo, new(mocks.GroupRepository), new(mocks.AuditLogRepository), new(mocks.RosterService), nil)

		mockUserRepo.On("GetByID", ctx, memberID).Return(nil, nil).Once()

		err := svc.Reject(ctx, actorID, memberID)

		assert.ErrorIs(t, err, membership.ErrMemberNotFound)
		mockUserRepo.AssertNotCalled(t, "Reject", ctx, memberID)
	})
}
