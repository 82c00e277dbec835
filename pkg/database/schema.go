package database

import (
	"context"
	"fmt"
)

// schema statements are idempotent so startup can run them on every boot.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		email_verified BOOLEAN NOT NULL DEFAULT FALSE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token UUID NOT NULL UNIQUE,
		user_agent TEXT,
		ip_address TEXT,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS otps (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		email TEXT NOT NULL,
		otp_code TEXT NOT NULL,
		otp_type TEXT NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		is_used BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		venue TEXT NOT NULL,
		description TEXT,
		starts_at TIMESTAMPTZ NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		currency TEXT NOT NULL,
		capacity INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		order_id TEXT NOT NULL UNIQUE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		event_id UUID NOT NULL REFERENCES events(id),
		seat_label TEXT,
		quantity INT NOT NULL,
		total_price DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		idempotency_key TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_event ON bookings (event_id, status)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_idem ON bookings (user_id, idempotency_key) WHERE idempotency_key IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS payment_methods (
		id UUID PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		booking_id UUID NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
		payment_method_id UUID NOT NULL REFERENCES payment_methods(id),
		amount DOUBLE PRECISION NOT NULL,
		currency TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'initiated',
		transaction_id TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		notification_type TEXT NOT NULL,
		message TEXT NOT NULL,
		read_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS admin_actions (
		id UUID PRIMARY KEY,
		admin_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		action TEXT NOT NULL,
		target_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate creates the schema on startup when it does not exist yet.
func Migrate(ctx context.Context, db PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
