package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/repository"
)

type Service interface {
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	CountUnread(ctx context.Context, groupID uuid.UUID) (int64, error)

	NotifyMembershipRequest(ctx context.Context, requester *domain.User) error
	NotifyMention(ctx context.Context, author *domain.User) error
}

type service struct {
	notifRepo repository.NotificationRepository
}

func NewService(notifRepo repository.NotificationRepository) Service {
	return &service{notifRepo: notifRepo}
}

func (s *service) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.Notification, error) {
	return s.notifRepo.ListByGroup(ctx, groupID)
}

func (s *service) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.notifRepo.MarkRead(ctx, id)
}

func (s *service) CountUnread(ctx context.Context, groupID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, groupID)
}

// NotifyMembershipRequest records the pending-membership event on the group
// feed. The sender fields are copied from the requester as they are right
// now; identity resolution prefers the live roster record later.
func (s *service) NotifyMembershipRequest(ctx context.Context, requester *domain.User) error {
	requesterID := requester.ID
	notif := &domain.Notification{
		ID:            uuid.New(),
		GroupID:       requester.GroupID,
		Type:          domain.NotifMembershipRequest,
		CreatedBy:     &requesterID,
		Message:       fmt.Sprintf("%s solicitou entrada no grupo", fullName(requester)),
		SenderName:    &requester.Name,
		SenderSurname: &requester.Surname,
		SenderPhoto:   requester.PhotoURL,
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return fmt.Errorf("failed to create membership request notification: %w", err)
	}
	return nil
}

func (s *service) NotifyMention(ctx context.Context, author *domain.User) error {
	authorID := author.ID
	notif := &domain.Notification{
		ID:            uuid.New(),
		GroupID:       author.GroupID,
		Type:          domain.NotifMentionComment,
		CreatedBy:     &authorID,
		Message:       fmt.Sprintf("%s mencionou você em um comentário", fullName(author)),
		SenderName:    &author.Name,
		SenderSurname: &author.Surname,
		SenderPhoto:   author.PhotoURL,
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return fmt.Errorf("failed to create mention notification: %w", err)
	}
	return nil
}

func fullName(u *domain.User) string {
	if u.Surname == "" {
		return u.Name
	}
	return u.Name + " " + u.Surname
}
