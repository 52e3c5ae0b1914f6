package comment

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/repository"
	"celula-igreja/internal/service/notification"
)

type Service interface {
	Create(ctx context.Context, author *domain.User, input domain.CreateCommentInput) (*domain.Comment, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Comment], error)
}

type service struct {
	commentRepo repository.CommentRepository
	notifSvc    notification.Service
}

func NewService(commentRepo repository.CommentRepository, notifSvc notification.Service) Service {
	return &service{
		commentRepo: commentRepo,
		notifSvc:    notifSvc,
	}
}

// Create stores the comment on the author's group wall. A comment that
// mentions other members posts a mention notification to the group feed.
func (s *service) Create(ctx context.Context, author *domain.User, input domain.CreateCommentInput) (*domain.Comment, error) {
	comment := &domain.Comment{
		ID:      uuid.New(),
		GroupID: author.GroupID,
		UserID:  author.ID,
		Content: input.Content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if len(input.Mentions) > 0 {
		if err := s.notifSvc.NotifyMention(ctx, author); err != nil {
			log.Printf("Failed to create mention notification for comment %s: %v", comment.ID, err)
		}
	}

	comment.Author = &domain.CommentAuthor{
		ID:       author.ID,
		Name:     author.Name,
		Surname:  author.Surname,
		PhotoURL: author.PhotoURL,
	}
	return comment, nil
}

func (s *service) ListByGroup(ctx context.Context, groupID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Comment], error) {
	comments, total, err := s.commentRepo.ListByGroup(ctx, groupID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Comment]{}, err
	}

	return domain.NewPaginatedResponse(comments, params.Page, params.PageSize, total), nil
}
