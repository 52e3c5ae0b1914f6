package notification_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/mocks"
	"celula-igreja/internal/service/notification"
)

func TestStore_Load(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	feed := []domain.Notification{
		{ID: uuid.New(), GroupID: groupID, Type: domain.NotifMembershipRequest},
		{ID: uuid.New(), GroupID: groupID, Type: domain.NotifGeneric},
	}

	t.Run("Fetches Once", func(t *testing.T) {
		mockSvc := new(mocks.NotificationService)
		mockSvc.On("ListByGroup", ctx, groupID).Return(feed, nil).Once()
		store := notification.NewStore(mockSvc, groupID)

		first, err := store.Load(ctx)
		require.NoError(t, err)
		second, err := store.Load(ctx)
		require.NoError(t, err)

		assert.Equal(t, feed, first)
		assert.Equal(t, feed, second)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Preserves Delivery Order", func(t *testing.T) {
		mockSvc := new(mocks.NotificationService)
		mockSvc.On("ListByGroup", ctx, groupID).Return(feed, nil).Once()
		store := notification.NewStore(mockSvc, groupID)

		got, err := store.Load(ctx)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, feed[0].ID, got[0].ID)
		assert.Equal(t, feed[1].ID, got[1].ID)
	})

	t.Run("Fetch Error Leaves Store Unloaded", func(t *testing.T) {
		mockSvc := new(mocks.NotificationService)
		mockSvc.On("ListByGroup", ctx, groupID).Return(nil, errors.New("db down")).Once()
		mockSvc.On("ListByGroup", ctx, groupID).Return(feed, nil).Once()
		store := notification.NewStore(mockSvc, groupID)

		_, err := store.Load(ctx)
		assert.Error(t, err)

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		mockSvc.AssertExpectations(t)
	})
}

func TestStore_Get(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	notifID := uuid.New()

	mockSvc := new(mocks.NotificationService)
	mockSvc.On("ListByGroup", ctx, groupID).
		Return([]domain.Notification{{ID: notifID, GroupID: groupID}}, nil).Once()
	store := notification.NewStore(mockSvc, groupID)

	_, ok := store.Get(notifID)
	assert.False(t, ok, "nothing cached before first load")

	_, err := store.Load(ctx)
	require.NoError(t, err)

	n, ok := store.Get(notifID)
	require.True(t, ok)
	assert.Equal(t, notifID, n.ID)

	// Get hands out a copy; mutating it must not leak into the cache.
	n.IsRead = true
	cached, _ := store.Get(notifID)
	assert.False(t, cached.IsRead)
}

func TestStore_MarkRead(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	notifID := uuid.New()

	t.Run("Second Call Issues No Write", func(t *testing.T) {
		mockSvc := new(mocks.NotificationService)
		mockSvc.On("ListByGroup", ctx, groupID).
			Return([]domain.Notification{{ID: notifID, GroupID: groupID}}, nil).Once()
		mockSvc.On("MarkRead", ctx, notifID).Return(nil).Once()
		store := notification.NewStore(mockSvc, groupID)

		_, err := store.Load(ctx)
		require.NoError(t, err)

		require.NoError(t, store.MarkRead(ctx, notifID))
		require.NoError(t, store.MarkRead(ctx, notifID))

		n, ok := store.Get(notifID)
		require.True(t, ok)
		assert.True(t, n.IsRead)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Already Read In Feed Issues No Write", func(t *testing.T) {
		mockSvc := new(mocks.NotificationService)
		mockSvc.On("ListByGroup", ctx, groupID).
			Return([]domain.Notification{{ID: notifID, GroupID: groupID, IsRead: true}}, nil).Once()
		store := notification.NewStore(mockSvc, groupID)

		_, err := store.Load(ctx)
		require.NoError(t, err)

		require.NoError(t, store.MarkRead(ctx, notifID))
		mockSvc.AssertNotCalled(t, "MarkRead", ctx, notifID)
	})

	t.Run("Write Failure Keeps Cache Unread", func(t *testing.T) {
		mockSvc := new(mocks.NotificationService)
		mockSvc.On("ListByGroup", ctx, groupID).
			Return([]domain.Notification{{ID: notifID, GroupID: groupID}}, nil).Once()
		mockSvc.On("MarkRead", ctx, notifID).Return(errors.New("db down")).Once()
		mockSvc.On("MarkRead", ctx, notifID).Return(nil).Once()
		store := notification.NewStore(mockSvc, groupID)

		_, err := store.Load(ctx)
		require.NoError(t, err)

		assert.Error(t, store.MarkRead(ctx, notifID))
		n, _ := store.Get(notifID)
		assert.False(t, n.IsRead)

		// The failed attempt did not consume the idempotency guard.
		require.NoError(t, store.MarkRead(ctx, notifID))
		n, _ = store.Get(notifID)
		assert.True(t, n.IsRead)
		mockSvc.AssertExpectations(t)
	})
}
