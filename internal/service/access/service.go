package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/repository"
)

// Authorization depends on two independently owned records, so either lookup
// can come back empty for a user that was authenticated moments ago. Both
// cases are data-integrity failures, not policy outcomes: they revoke every
// active session for the user instead of degrading to a denial.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrGroupNotFound   = errors.New("group not found")
)

type Service interface {
	// Authorize resolves the user and group records and evaluates the
	// access rules. The decision is computed fresh on every call.
	Authorize(ctx context.Context, userID uuid.UUID) (*domain.User, *domain.Group, domain.AccessDecision, error)
}

type service struct {
	userRepo    repository.UserRepository
	groupRepo   repository.GroupRepository
	sessionRepo repository.SessionRepository
}

func NewService(userRepo repository.UserRepository, groupRepo repository.GroupRepository, sessionRepo repository.SessionRepository) Service {
	return &service{
		userRepo:    userRepo,
		groupRepo:   groupRepo,
		sessionRepo: sessionRepo,
	}
}

func (s *service) Authorize(ctx context.Context, userID uuid.UUID) (*domain.User, *domain.Group, domain.AccessDecision, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, domain.AccessDecision{}, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		_ = s.sessionRepo.RevokeAllForUser(ctx, userID)
		return nil, nil, domain.AccessDecision{}, ErrProfileNotFound
	}

	group, err := s.groupRepo.GetByID(ctx, user.GroupID)
	if err != nil {
		return nil, nil, domain.AccessDecision{}, fmt.Errorf("failed to look up group: %w", err)
	}
	if group == nil {
		_ = s.sessionRepo.RevokeAllForUser(ctx, userID)
		return nil, nil, domain.AccessDecision{}, ErrGroupNotFound
	}

	return user, group, Decide(user, group), nil
}
