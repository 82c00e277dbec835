package repository

import (
	"context"
	"fmt"

	"ticket-booking/internal/data/entity"
	"ticket-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentMethodRepository interface {
	Create(ctx context.Context, method *entity.PaymentMethod) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error)
	FindByCode(ctx context.Context, code string) (*entity.PaymentMethod, error)
	FindActive(ctx context.Context) ([]*entity.PaymentMethod, error)
	Count(ctx context.Context) (int64, error)
}

type paymentMethodRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentMethodRepository(db database.PgxIface, log *zap.Logger) PaymentMethodRepository {
	return &paymentMethodRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment_method")),
	}
}

func (r *paymentMethodRepository) Create(ctx context.Context, method *entity.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (id, code, name, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		method.ID,
		method.Code,
		method.Name,
		method.IsActive,
		method.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment method",
			zap.Error(err),
			zap.String("code", method.Code),
		)
		return fmt.Errorf("create payment method %s: %w", method.Code, err)
	}

	return nil
}

func (r *paymentMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	query := `SELECT id, code, name, is_active, created_at FROM payment_methods WHERE id = $1`

	var method entity.PaymentMethod
	err := r.db.QueryRow(ctx, query, id).Scan(
		&method.ID,
		&method.Code,
		&method.Name,
		&method.IsActive,
		&method.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment method by ID",
			zap.Error(err),
			zap.String("payment_method_id", id.String()),
		)
		return nil, fmt.Errorf("find payment method by ID %s: %w", id.String(), err)
	}

	return &method, nil
}

func (r *paymentMethodRepository) FindByCode(ctx context.Context, code string) (*entity.PaymentMethod, error) {
	query := `SELECT id, code, name, is_active, created_at FROM payment_methods WHERE code = $1`

	var method entity.PaymentMethod
	err := r.db.QueryRow(ctx, query, code).Scan(
		&method.ID,
		&method.Code,
		&method.Name,
		&method.IsActive,
		&method.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment method by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find payment method by code %s: %w", code, err)
	}

	return &method, nil
}

func (r *paymentMethodRepository) FindActive(ctx context.Context) ([]*entity.PaymentMethod, error) {
	query := `
		SELECT id, code, name, is_active, created_at
		FROM payment_methods
		WHERE is_active = true
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find active payment methods", zap.Error(err))
		return nil, fmt.Errorf("find active payment methods: %w", err)
	}
	defer rows.Close()

	var methods []*entity.PaymentMethod
	for rows.Next() {
		var method entity.PaymentMethod
		err := rows.Scan(
			&method.ID,
			&method.Code,
			&method.Name,
			&method.IsActive,
			&method.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment method row", zap.Error(err))
			return nil, fmt.Errorf("scan payment method row: %w", err)
		}
		methods = append(methods, &method)
	}

	return methods, nil
}

func (r *paymentMethodRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM payment_methods`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count payment methods", zap.Error(err))
		return 0, fmt.Errorf("count payment methods: %w", err)
	}

	return count, nil
}
