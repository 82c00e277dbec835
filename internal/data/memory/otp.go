package memory

import (
	"context"
	"fmt"
	"time"

	"ticket-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type otpStore struct {
	s   *store
	log *zap.Logger
}

func (r *otpStore) Create(ctx context.Context, otp *entity.OTP) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	clone := *otp
	r.s.otps[otp.ID] = &clone
	return nil
}

func (r *otpStore) FindValidOTP(ctx context.Context, email, otpCode, otpType string) (*entity.OTP, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	now := time.Now()
	var latest *entity.OTP
	for _, otp := range r.s.otps {
		if otp.Email != email || otp.OTPCode != otpCode || string(otp.OTPType) != otpType {
			continue
		}
		if otp.IsUsed || !otp.ExpiresAt.After(now) {
			continue
		}
		if latest == nil || otp.CreatedAt.After(latest.CreatedAt) {
			latest = otp
		}
	}

	if latest == nil {
		return nil, nil
	}
	clone := *latest
	return &clone, nil
}

func (r *otpStore) MarkAsUsed(ctx context.Context, otpID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	otp, ok := r.s.otps[otpID]
	if !ok {
		return fmt.Errorf("OTP %s not found", otpID.String())
	}
	otp.IsUsed = true
	return nil
}
