package memory

import (
	"context"
	"fmt"
	"sort"

	"ticket-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type eventStore struct {
	s   *store
	log *zap.Logger
}

func (r *eventStore) Create(ctx context.Context, event *entity.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	clone := *event
	r.s.events[event.ID] = &clone
	return nil
}

func (r *eventStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	event, ok := r.s.events[id]
	if !ok {
		return nil, nil
	}
	clone := *event
	return &clone, nil
}

func (r *eventStore) FindAll(ctx context.Context, limit, offset int) ([]*entity.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	events := make([]*entity.Event, 0, len(r.s.events))
	for _, event := range r.s.events {
		clone := *event
		events = append(events, &clone)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartsAt.Before(events[j].StartsAt)
	})

	return paginate(events, limit, offset), nil
}

func (r *eventStore) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.events)), nil
}

func (r *eventStore) Update(ctx context.Context, event *entity.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[event.ID]; !ok {
		return fmt.Errorf("event %s not found", event.ID.String())
	}
	clone := *event
	r.s.events[event.ID] = &clone
	return nil
}

func (r *eventStore) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[id]; !ok {
		return fmt.Errorf("event %s not found", id.String())
	}
	delete(r.s.events, id)

	r.log.Info("Event deleted", zap.String("event_id", id.String()))
	return nil
}
