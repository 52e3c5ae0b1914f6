package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"celula-igreja/internal/domain"
)

// Store is a read-through cache over one group's notification feed, scoped to
// a single view session and discarded when that view closes. There is no
// eviction; the feed is small and short-lived.
type Store struct {
	svc     Service
	groupID uuid.UUID

	mu     sync.Mutex
	loaded bool
	order  []uuid.UUID
	byID   map[uuid.UUID]*domain.Notification
}

func NewStore(svc Service, groupID uuid.UUID) *Store {
	return &Store{
		svc:     svc,
		groupID: groupID,
		byID:    make(map[uuid.UUID]*domain.Notification),
	}
}

// Load returns the cached feed, fetching it from the backing service on
// first use. Order is preserved as delivered.
func (st *Store) Load(ctx context.Context) ([]domain.Notification, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.loaded {
		notifications, err := st.svc.ListByGroup(ctx, st.groupID)
		if err != nil {
			return nil, err
		}
		st.order = st.order[:0]
		for i := range notifications {
			n := notifications[i]
			st.order = append(st.order, n.ID)
			st.byID[n.ID] = &n
		}
		st.loaded = true
	}

	return st.snapshotLocked(), nil
}

func (st *Store) Get(id uuid.UUID) (*domain.Notification, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	n, ok := st.byID[id]
	if !ok {
		return nil, false
	}
	copied := *n
	return &copied, true
}

// MarkRead flips the read flag exactly once. A notification already read in
// the cache issues no further write to the backing service.
func (st *Store) MarkRead(ctx context.Context, id uuid.UUID) error {
	st.mu.Lock()
	n, ok := st.byID[id]
	if ok && n.IsRead {
		st.mu.Unlock()
		return nil
	}
	st.mu.Unlock()

	if err := st.svc.MarkRead(ctx, id); err != nil {
		return err
	}

	st.mu.Lock()
	if n, ok := st.byID[id]; ok {
		n.IsRead = true
	}
	st.mu.Unlock()
	return nil
}

func (st *Store) snapshotLocked() []domain.Notification {
	out := make([]domain.Notification, 0, len(st.order))
	for _, id := range st.order {
		out = append(out, *st.byID[id])
	}
	return out
}
