package memory

import (
	"context"
	"fmt"
	"sort"

	"ticket-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type userStore struct {
	s   *store
	log *zap.Logger
}

func (r *userStore) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return fmt.Errorf("create user %s: duplicate email", user.Email)
		}
	}

	clone := *user
	r.s.users[user.ID] = &clone
	return nil
}

func (r *userStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *userStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *userStore) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.s.users))
	for _, user := range r.s.users {
		clone := *user
		users = append(users, &clone)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})

	return paginate(users, limit, offset), nil
}

func (r *userStore) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.users)), nil
}

func (r *userStore) Update(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; !ok {
		return fmt.Errorf("user %s not found", user.ID.String())
	}
	clone := *user
	r.s.users[user.ID] = &clone
	return nil
}

func (r *userStore) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return fmt.Errorf("user %s not found", id.String())
	}
	delete(r.s.users, id)

	// Cascade the way the relational schema does.
	for sid, session := range r.s.sessions {
		if session.UserID == id {
			delete(r.s.sessions, sid)
		}
	}
	for nid, notification := range r.s.notifications {
		if notification.UserID == id {
			delete(r.s.notifications, nid)
		}
	}
	for oid, otp := range r.s.otps {
		if otp.UserID == id {
			delete(r.s.otps, oid)
		}
	}
	for bid, booking := range r.s.bookings {
		if booking.UserID == id {
			delete(r.s.bookings, bid)
			for pid, payment := range r.s.payments {
				if payment.BookingID == bid {
					delete(r.s.payments, pid)
				}
			}
		}
	}

	r.log.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}
