package postgres_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// PostgresPaymentsRepository - хранилище платежей за премиум-размещение.
type PostgresPaymentsRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPaymentsRepository(pool *pgxpool.Pool) (*PostgresPaymentsRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresPaymentsRepository{pool: pool}, nil
}

func (r *PostgresPaymentsRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `
		INSERT INTO payments (id, user_id, property_id, order_id, payment_id, plan, amount, currency, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.UserID, p.PropertyID, p.OrderID, p.PaymentID,
		p.Plan, p.Amount, p.Currency, p.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

func (r *PostgresPaymentsRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	query := `
		SELECT id, user_id, property_id, order_id, payment_id, plan, amount, currency, status, created_at, completed_at
		FROM payments
		WHERE order_id = $1`

	var p domain.Payment
	err := r.pool.QueryRow(ctx, query, orderID).Scan(
		&p.ID, &p.UserID, &p.PropertyID, &p.OrderID, &p.PaymentID,
		&p.Plan, &p.Amount, &p.Currency, &p.Status, &p.CreatedAt, &p.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment by order id: %w", err)
	}
	return &p, nil
}

func (r *PostgresPaymentsRepository) MarkCompleted(ctx context.Context, orderID, paymentID string, at time.Time) error {
	query := `
		UPDATE payments
		SET status = $1, payment_id = $2, completed_at = $3
		WHERE order_id = $4`

	cmdTag, err := r.pool.Exec(ctx, query, domain.PaymentCompleted, paymentID, at, orderID)
	if err != nil {
		return fmt.Errorf("failed to mark payment completed: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresPaymentsRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error) {
	query := `
		SELECT id, user_id, property_id, order_id, payment_id, plan, amount, currency, status, created_at, completed_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(
			&p.ID, &p.UserID, &p.PropertyID, &p.OrderID, &p.PaymentID,
			&p.Plan, &p.Amount, &p.Currency, &p.Status, &p.CreatedAt, &p.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
