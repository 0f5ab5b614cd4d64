package repository

import (
	"context"
	"fmt"

	"clinic-booking/internal/data/entity"
	"clinic-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Payment, error)
	FindByBookingID(ctx context.Context, bookingID string) (*entity.Payment, error)
	SumCompleted(ctx context.Context) (float64, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, booking_id, amount, method, status, transaction_id, created_at`

func (r *paymentRepository) FindByID(ctx context.Context, id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	payment, err := scanPaymentRow(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id, err)
	}

	return payment, nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1`

	payment, err := scanPaymentRow(r.db.QueryRow(ctx, query, bookingID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find payment by booking ID %s: %w", bookingID, err)
	}

	return payment, nil
}

func (r *paymentRepository) SumCompleted(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = $1
	`, entity.PaymentStatusCompleted).Scan(&sum)
	if err != nil {
		r.log.Error("Failed to sum completed payments", zap.Error(err))
		return 0, fmt.Errorf("sum completed payments: %w", err)
	}

	return sum, nil
}

func scanPaymentRow(row pgx.Row) (*entity.Payment, error) {
	var payment entity.Payment
	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Method,
		&payment.Status,
		&payment.TransactionID,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
