package comment_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/mocks"
	"celula-igreja/internal/service/comment"
)

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	author := &domain.User{ID: uuid.New(), GroupID: groupID, Name: "Carlos", Surname: "Lima"}

	t.Run("Without Mentions", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := comment.NewService(mockRepo, mockNotifSvc)

		input := domain.CreateCommentInput{Content: "Bem-vindos ao grupo!"}
		mockRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.GroupID == groupID && c.UserID == author.ID && c.Content == input.Content
		})).Return(nil).Once()

		c, err := svc.Create(ctx, author, input)

		require.NoError(t, err)
		require.NotNil(t, c.Author)
		assert.Equal(t, "Carlos", c.Author.Name)
		mockNotifSvc.AssertNotCalled(t, "NotifyMention")
		mockRepo.AssertExpectations(t)
	})

	t.Run("With Mentions", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := comment.NewService(mockRepo, mockNotifSvc)

		input := domain.CreateCommentInput{
			Content:  "Vamos orar por isso, @maria",
			Mentions: []uuid.UUID{uuid.New()},
		}
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Comment")).Return(nil).Once()
		mockNotifSvc.On("NotifyMention", ctx, author).Return(nil).Once()

		_, err := svc.Create(ctx, author, input)

		require.NoError(t, err)
		mockNotifSvc.AssertExpectations(t)
	})
}

func TestCommentService_ListByGroup(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	params := domain.PaginationParams{Page: 1, PageSize: 10}

	mockRepo := new(mocks.CommentRepository)
	svc := comment.NewService(mockRepo, new(mocks.NotificationService))

	comments := []domain.Comment{
		{ID: uuid.New(), GroupID: groupID, Content: "Primeiro"},
		{ID: uuid.New(), GroupID: groupID, Content: "Segundo"},
	}
	mockRepo.On("ListByGroup", ctx, groupID, params).Return(comments, int64(12), nil).Once()

	resp, err := svc.ListByGroup(ctx, groupID, params)

	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(12), resp.TotalItems)
	assert.Equal(t, 2, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.False(t, resp.HasPrev)
}
