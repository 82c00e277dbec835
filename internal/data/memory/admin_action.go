package memory

import (
	"context"
	"sort"

	"ticket-booking/internal/data/entity"

	"go.uber.org/zap"
)

type adminActionStore struct {
	s   *store
	log *zap.Logger
}

func (r *adminActionStore) Create(ctx context.Context, action *entity.AdminAction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	clone := *action
	r.s.adminActions[action.ID] = &clone
	return nil
}

func (r *adminActionStore) FindAll(ctx context.Context, limit, offset int) ([]*entity.AdminAction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	actions := make([]*entity.AdminAction, 0, len(r.s.adminActions))
	for _, action := range r.s.adminActions {
		clone := *action
		actions = append(actions, &clone)
	}
	sort.Slice(actions, func(i, j int) bool {
		return actions[i].CreatedAt.After(actions[j].CreatedAt)
	})

	return paginate(actions, limit, offset), nil
}

func (r *adminActionStore) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.adminActions)), nil
}
