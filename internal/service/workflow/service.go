// Package workflow resolves pending-membership notifications exactly once
// per view session and builds the render-ready card for each notification.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/pkg/relativetime"
	"celula-igreja/internal/service/identity"
	"celula-igreja/internal/service/notification"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAlreadyResolved      = errors.New("membership request already resolved")
	ErrNotApprovalRequest   = errors.New("notification is not a membership request")
	ErrNotNavigable         = errors.New("membership requests are not navigable")
	ErrUnknownRequester     = errors.New("membership request carries no requester id")
)

// MembershipMutator is the external mutation behind approve/reject. The
// workflow latches its local state only after the mutation succeeds.
type MembershipMutator interface {
	Approve(ctx context.Context, actorID, memberID uuid.UUID) error
	Reject(ctx context.Context, actorID, memberID uuid.UUID) error
}

// RosterSource supplies the member snapshot fetched asynchronously when a
// view opens.
type RosterSource interface {
	Snapshot(ctx context.Context, groupID uuid.UUID) ([]domain.User, error)
}

// Card is the view model the client renders for one notification.
type Card struct {
	ID             uuid.UUID               `json:"id"`
	Type           domain.NotificationType `json:"type"`
	Message        string                  `json:"message"`
	DisplayName    string                  `json:"display_name"`
	DisplaySurname string                  `json:"display_surname"`
	DisplayPhoto   *string                 `json:"display_photo,omitempty"`
	RelativeTime   string                  `json:"relative_time"`
	IsRead         bool                    `json:"is_read"`
	IsClickable    bool                    `json:"is_clickable"`
	PendingAction  bool                    `json:"pending_action"`
	TerminalLabel  string                  `json:"terminal_label,omitempty"`
}

type Service struct {
	notifSvc   notification.Service
	rosterSrc  RosterSource
	membership MembershipMutator
	now        func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewService(notifSvc notification.Service, rosterSrc RosterSource, membership MembershipMutator) *Service {
	return &Service{
		notifSvc:   notifSvc,
		rosterSrc:  rosterSrc,
		membership: membership,
		now:        time.Now,
		sessions:   make(map[uuid.UUID]*Session),
	}
}

// OpenView returns the viewer's session for the group, creating one and
// kicking off the roster fetch if none is open. The roster result is applied
// through the session so a result arriving after Close is discarded.
func (s *Service) OpenView(viewerID, groupID uuid.UUID) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[viewerID]; ok {
		if sess.GroupID == groupID && !sess.closed() {
			return sess
		}
		sess.Close()
	}

	sess := newSession(s.notifSvc, groupID)
	s.sessions[viewerID] = sess

	go func() {
		users, err := s.rosterSrc.Snapshot(sess.ctx, groupID)
		if err != nil {
			return
		}
		sess.setRoster(users)
	}()

	return sess
}

func (s *Service) CloseView(viewerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[viewerID]; ok {
		sess.Close()
		delete(s.sessions, viewerID)
	}
}

// Cards builds the view models for the session's feed. Identity resolution
// runs against whatever roster snapshot has arrived so far; callers re-render
// once the roster lands.
func (s *Service) Cards(ctx context.Context, sess *Session) ([]Card, error) {
	notifications, err := sess.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}

	roster := sess.Roster()
	now := s.now()

	cards := make([]Card, 0, len(notifications))
	for i := range notifications {
		n := &notifications[i]
		sender := identity.ResolveSender(n, roster)
		state := sess.action(n.ID)

		cards = append(cards, Card{
			ID:             n.ID,
			Type:           n.Type,
			Message:        n.Message,
			DisplayName:    sender.FirstName,
			DisplaySurname: sender.LastName,
			DisplayPhoto:   sender.PhotoURL,
			RelativeTime:   relativetime.Format(n.CreatedAt, now),
			IsRead:         n.IsRead,
			IsClickable:    !n.IsApprovalRequest(),
			PendingAction:  n.IsApprovalRequest() && !state.Terminal(),
			TerminalLabel:  state.Label(),
		})
	}

	return cards, nil
}

// Approve resolves a membership request. The local terminal state is latched
// only after the external mutation succeeds; on failure the request stays
// pending and the caller may retry by invoking the action again.
func (s *Service) Approve(ctx context.Context, sess *Session, actorID, notifID uuid.UUID) error {
	return s.resolve(ctx, sess, actorID, notifID, ActionApproved)
}

func (s *Service) Reject(ctx context.Context, sess *Session, actorID, notifID uuid.UUID) error {
	return s.resolve(ctx, sess, actorID, notifID, ActionRejected)
}

func (s *Service) resolve(ctx context.Context, sess *Session, actorID, notifID uuid.UUID, state ActionState) error {
	n, err := s.lookup(ctx, sess, notifID)
	if err != nil {
		return err
	}
	if !n.IsApprovalRequest() {
		return ErrNotApprovalRequest
	}
	if n.CreatedBy == nil {
		return ErrUnknownRequester
	}
	if sess.action(notifID).Terminal() {
		return ErrAlreadyResolved
	}

	if state == ActionApproved {
		err = s.membership.Approve(ctx, actorID, *n.CreatedBy)
	} else {
		err = s.membership.Reject(ctx, actorID, *n.CreatedBy)
	}
	if err != nil {
		return fmt.Errorf("membership mutation failed: %w", err)
	}

	if err := sess.latch(notifID, state); err != nil {
		return err
	}

	// First interaction with the card also counts as reading it.
	_ = sess.store.MarkRead(ctx, notifID)
	return nil
}

// Open marks a navigable notification read and returns it so the caller can
// perform its navigation. The read-flag update lands before the caller
// proceeds. Membership requests are action-only and cannot be opened.
func (s *Service) Open(ctx context.Context, sess *Session, notifID uuid.UUID) (*domain.Notification, error) {
	n, err := s.lookup(ctx, sess, notifID)
	if err != nil {
		return nil, err
	}
	if n.IsApprovalRequest() {
		return nil, ErrNotNavigable
	}

	if err := sess.store.MarkRead(ctx, notifID); err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}

	n.IsRead = true
	return n, nil
}

func (s *Service) lookup(ctx context.Context, sess *Session, notifID uuid.UUID) (*domain.Notification, error) {
	if n, ok := sess.store.Get(notifID); ok {
		return n, nil
	}
	if _, err := sess.store.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}
	if n, ok := sess.store.Get(notifID); ok {
		return n, nil
	}
	return nil, ErrNotificationNotFound
}
