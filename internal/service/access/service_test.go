package access_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/mocks"
	"celula-igreja/internal/service/access"
)

func TestAccessService_Authorize(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	groupID := uuid.New()

	t.Run("Granted", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockGroupRepo := new(mocks.GroupRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		svc := access.NewService(mockUserRepo, mockGroupRepo, mockSessionRepo)

		mockUserRepo.On("GetByID", ctx, userID).
			Return(&domain.User{ID: userID, GroupID: groupID, Approved: true}, nil).Once()
		mockGroupRepo.On("GetByID", ctx, groupID).
			Return(&domain.Group{ID: groupID, ProModeActive: true}, nil).Once()

		user, group, decision, err := svc.Authorize(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, groupID, group.ID)
		assert.True(t, decision.Granted)
		mockSessionRepo.AssertNotCalled(t, "RevokeAllForUser")
		mockUserRepo.AssertExpectations(t)
		mockGroupRepo.AssertExpectations(t)
	})

	t.Run("Missing Profile Revokes Sessions", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockGroupRepo := new(mocks.GroupRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		svc := access.NewService(mockUserRepo, mockGroupRepo, mockSessionRepo)

		mockUserRepo.On("GetByID", ctx, userID).Return(nil, nil).Once()
		mockSessionRepo.On("RevokeAllForUser", ctx, userID).Return(nil).Once()

		user, group, _, err := svc.Authorize(ctx, userID)

		assert.ErrorIs(t, err, access.ErrProfileNotFound)
		assert.Nil(t, user)
		assert.Nil(t, group)
		mockSessionRepo.AssertExpectations(t)
	})

	t.Run("Missing Group Revokes Sessions", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockGroupRepo := new(mocks.GroupRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		svc := access.NewService(mockUserRepo, mockGroupRepo, mockSessionRepo)

		mockUserRepo.On("GetByID", ctx, userID).
			Return(&domain.User{ID: userID, GroupID: groupID, Approved: true}, nil).Once()
		mockGroupRepo.On("GetByID", ctx, groupID).Return(nil, nil).Once()
		mockSessionRepo.On("RevokeAllForUser", ctx, userID).Return(nil).Once()

		_, _, _, err := svc.Authorize(ctx, userID)

		assert.ErrorIs(t, err, access.ErrGroupNotFound)
		mockSessionRepo.AssertExpectations(t)
	})

	t.Run("Denied Member Still Resolves", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockGroupRepo := new(mocks.GroupRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		svc := access.NewService(mockUserRepo, mockGroupRepo, mockSessionRepo)

		mockUserRepo.On("GetByID", ctx, userID).
			Return(&domain.User{ID: userID, GroupID: groupID, Approved: false}, nil).Once()
		mockGroupRepo.On("GetByID", ctx, groupID).
			Return(&domain.Group{ID: groupID, ProModeActive: true}, nil).Once()

		_, _, decision, err := svc.Authorize(ctx, userID)

		require.NoError(t, err)
		assert.False(t, decision.Granted)
		assert.Equal(t, access.ReasonPendingApproval, decision.Reason)
		mockSessionRepo.AssertNotCalled(t, "RevokeAllForUser")
	})
}
