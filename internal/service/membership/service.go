// Package membership owns the directory mutations behind the approval
// workflow: flipping a candidate's approved flag, or removing them.
package membership

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/repository"
	"celula-igreja/internal/service/email"
	"celula-igreja/internal/service/roster"
)

var ErrMemberNotFound = errors.New("member not found")

type Service interface {
	Approve(ctx context.Context, actorID, memberID uuid.UUID) error
	Reject(ctx context.Context, actorID, memberID uuid.UUID) error
}

type service struct {
	userRepo  repository.UserRepository
	groupRepo repository.GroupRepository
	auditRepo repository.AuditLogRepository
	rosterSvc roster.Service
	emailSvc  email.Service
}

func NewService(
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	auditRepo repository.AuditLogRepository,
	rosterSvc roster.Service,
	emailSvc email.Service,
) Service {
	return &service{
		userRepo:  userRepo,
		groupRepo: groupRepo,
		auditRepo: auditRepo,
		rosterSvc: rosterSvc,
		emailSvc:  emailSvc,
	}
}

func (s *service) Approve(ctx context.Context, actorID, memberID uuid.UUID) error {
	member, err := s.userRepo.GetByID(ctx, memberID)
	if err != nil {
		return fmt.Errorf("failed to look up member: %w", err)
	}
	if member == nil {
		return ErrMemberNotFound
	}

	if err := s.userRepo.Approve(ctx, memberID); err != nil {
		return fmt.Errorf("failed to approve membership: %w", err)
	}

	s.finish(ctx, actorID, member, domain.AuditApproveMembership)
	return nil
}

func (s *service) Reject(ctx context.Context, actorID, memberID uuid.UUID) error {
	member, err := s.userRepo.GetByID(ctx, memberID)
	if err != nil {
		return fmt.Errorf("failed to look up member: %w", err)
	}
	if member == nil {
		return ErrMemberNotFound
	}

	if err := s.userRepo.Reject(ctx, memberID); err != nil {
		return fmt.Errorf("failed to reject membership: %w", err)
	}

	s.finish(ctx, actorID, member, domain.AuditRejectMembership)
	return nil
}

// finish runs the non-authoritative followups of a successful mutation: the
// roster cache invalidation, the audit entry and the email to the candidate.
// None of them can fail the mutation that already happened.
func (s *service) finish(ctx context.Context, actorID uuid.UUID, member *domain.User, action string) {
	_ = s.rosterSvc.Invalidate(ctx, member.GroupID)

	targetID := member.ID
	_ = s.auditRepo.Create(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		UserID:       actorID,
		Action:       action,
		TargetUserID: &targetID,
	})

	if s.emailSvc == nil || member.Email == "" {
		return
	}

	groupName := ""
	if group, err := s.groupRepo.GetByID(ctx, member.GroupID); err == nil && group != nil {
		groupName = group.Name
	}

	go func(toEmail, name, groupName string, approved bool) {
		ctx := context.Background()
		var err error
		if approved {
			err = s.emailSvc.SendMembershipApproved(ctx, toEmail, name, groupName)
		} else {
			err = s.emailSvc.SendMembershipRejected(ctx, toEmail, name, groupName)
		}
		if err != nil {
			log.Printf("Failed to send membership email to %s: %v", toEmail, err)
		}
	}(member.Email, member.Name, groupName, action == domain.AuditApproveMembership)
}
