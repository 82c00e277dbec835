package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"ticket-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type paymentStore struct {
	s   *store
	log *zap.Logger
}

func (r *paymentStore) Create(ctx context.Context, payment *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	clone := *payment
	r.s.payments[payment.ID] = &clone
	return nil
}

func (r *paymentStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	payment, ok := r.s.payments[id]
	if !ok {
		return nil, nil
	}
	clone := *payment
	return &clone, nil
}

func (r *paymentStore) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var payments []*entity.Payment
	for _, payment := range r.s.payments {
		if payment.BookingID == bookingID {
			payments = append(payments, payment)
		}
	}
	if len(payments) == 0 {
		return nil, nil
	}
	sort.Slice(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})

	clone := *payments[0]
	return &clone, nil
}

func (r *paymentStore) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus, transactionID *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	payment, ok := r.s.payments[paymentID]
	if !ok {
		return fmt.Errorf("payment %s not found", paymentID.String())
	}
	payment.Status = status
	if transactionID != nil {
		payment.TransactionID = transactionID
	}
	payment.UpdatedAt = time.Now()
	return nil
}

type paymentMethodStore struct {
	s   *store
	log *zap.Logger
}

func (r *paymentMethodStore) Create(ctx context.Context, method *entity.PaymentMethod) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.paymentMethods {
		if existing.Code == method.Code {
			return fmt.Errorf("create payment method %s: duplicate code", method.Code)
		}
	}

	clone := *method
	r.s.paymentMethods[method.ID] = &clone
	return nil
}

func (r *paymentMethodStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	method, ok := r.s.paymentMethods[id]
	if !ok {
		return nil, nil
	}
	clone := *method
	return &clone, nil
}

func (r *paymentMethodStore) FindByCode(ctx context.Context, code string) (*entity.PaymentMethod, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, method := range r.s.paymentMethods {
		if method.Code == code {
			clone := *method
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *paymentMethodStore) FindActive(ctx context.Context) ([]*entity.PaymentMethod, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var methods []*entity.PaymentMethod
	for _, method := range r.s.paymentMethods {
		if method.IsActive {
			clone := *method
			methods = append(methods, &clone)
		}
	}
	sort.Slice(methods, func(i, j int) bool {
		return methods[i].Name < methods[j].Name
	})

	return methods, nil
}

func (r *paymentMethodStore) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.paymentMethods)), nil
}
