package roster_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/mocks"
	"celula-igreja/internal/service/roster"
)

func TestRosterService_Snapshot(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	members := []domain.User{
		{ID: uuid.New(), GroupID: groupID, Name: "Ana"},
		{ID: uuid.New(), GroupID: groupID, Name: "Pedro"},
	}

	t.Run("Falls Through To Repository Without Redis", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := roster.NewService(mockUserRepo, nil, 5*time.Minute)

		mockUserRepo.On("ListByGroup", ctx, groupID).Return(members, nil).Once()

		users, err := svc.Snapshot(ctx, groupID)

		require.NoError(t, err)
		assert.Equal(t, members, users)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Repository Error", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := roster.NewService(mockUserRepo, nil, 5*time.Minute)

		mockUserRepo.On("ListByGroup", ctx, groupID).Return(nil, errors.New("db down")).Once()

		users, err := svc.Snapshot(ctx, groupID)

		assert.Error(t, err)
		assert.Nil(t, users)
	})
}

func TestRosterService_Invalidate(t *testing.T) {
	svc := roster.NewService(new(mocks.UserRepository), nil, 5*time.Minute)

	// Without a cache there is nothing to drop.
	assert.NoError(t, svc.Invalidate(context.Background(), uuid.New()))
}
