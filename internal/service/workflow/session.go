package workflow

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/service/notification"
)

// ActionState tracks what the viewer did to a membership request during this
// view session. It lives only as long as the session: the notification record
// itself is never mutated by the workflow, so the terminal transition cannot
// be re-derived from a refetch.
type ActionState int

const (
	ActionPending ActionState = iota
	ActionApproved
	ActionRejected
)

func (s ActionState) Terminal() bool {
	return s != ActionPending
}

// Label is what the client renders in place of the approve/reject buttons
// once the request is resolved.
func (s ActionState) Label() string {
	switch s {
	case ActionApproved:
		return "Aprovado"
	case ActionRejected:
		return "Recusado"
	default:
		return ""
	}
}

// Session is the per-view state container: the notification feed cache, the
// per-notification action latches and the roster snapshot, which arrives
// asynchronously. Closing the session cancels its context, and any fetch
// result landing after that is discarded.
type Session struct {
	GroupID uuid.UUID

	ctx    context.Context
	cancel context.CancelFunc
	store  *notification.Store

	mu      sync.Mutex
	actions map[uuid.UUID]ActionState
	roster  []domain.User
}

func newSession(notifSvc notification.Service, groupID uuid.UUID) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		GroupID: groupID,
		ctx:     ctx,
		cancel:  cancel,
		store:   notification.NewStore(notifSvc, groupID),
		actions: make(map[uuid.UUID]ActionState),
	}
}

func (s *Session) Close() {
	s.cancel()
}

func (s *Session) closed() bool {
	select {
	case <-s.ctx.Done():
		return true
	default:
		return false
	}
}

func (s *Session) setRoster(users []domain.User) {
	if s.closed() {
		return
	}
	s.mu.Lock()
	s.roster = users
	s.mu.Unlock()
}

// Roster returns the latest snapshot, which may still be empty if the
// asynchronous fetch has not completed. Identity resolution falls back to
// the notification's own fields until it does.
func (s *Session) Roster() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster
}

func (s *Session) action(id uuid.UUID) ActionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actions[id]
}

// latch applies the terminal transition at most once per notification id.
func (s *Session) latch(id uuid.UUID, state ActionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.actions[id].Terminal() {
		return ErrAlreadyResolved
	}
	s.actions[id] = state
	return nil
}
