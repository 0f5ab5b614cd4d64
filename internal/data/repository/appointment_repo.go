package repository

import (
	"context"
	"fmt"

	"clinic-booking/internal/data/entity"
	"clinic-booking/pkg/database"
	"clinic-booking/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AppointmentRepository interface {
	// CreateWithPayment persists the appointment and its payment as one
	// atomic batch. Either both records commit or neither does.
	CreateWithPayment(ctx context.Context, appt *entity.Appointment, payment *entity.Payment) error

	// CancelWithTimeOff flags the appointment cancelled and creates the
	// time-off record freeing the slot, in one atomic batch.
	CancelWithTimeOff(ctx context.Context, id, reason string, off *entity.TimeOff) error

	FindByID(ctx context.Context, id string) (*entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string, limit, offset int) ([]*entity.Appointment, error)
	CountByPatientID(ctx context.Context, patientID string) (int64, error)
	FindByDoctorID(ctx context.Context, doctorID string, limit, offset int) ([]*entity.Appointment, error)
	CountByDoctorID(ctx context.Context, doctorID string) (int64, error)
	FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]*entity.Appointment, error)

	// Sweep support
	FindUpcoming(ctx context.Context) ([]*entity.Appointment, error)
	UpdateStatusBatch(ctx context.Context, ids []string, status entity.AppointmentStatus) (int64, error)

	// Analytics
	CountByService(ctx context.Context) ([]ServiceCount, error)
	CountByMonth(ctx context.Context) ([]MonthCount, error)
	CountTotals(ctx context.Context) (total, cancelled int64, err error)
}

// ServiceCount is a per-service booking total.
type ServiceCount struct {
	ServiceName string
	Count       int64
}

// MonthCount is a per-month booking total, keyed by the creation timestamp.
type MonthCount struct {
	Month string // YYYY-MM
	Count int64
}

type appointmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAppointmentRepository(db database.PgxIface, log *zap.Logger) AppointmentRepository {
	return &appointmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "appointment")),
	}
}

const appointmentColumns = `id, patient_id, patient_name, patient_age, doctor_id, doctor_name,
		service_id, service_name, date, time, status, is_cancelled, cancellation_reason, price, created_at`

func (r *appointmentRepository) CreateWithPayment(ctx context.Context, appt *entity.Appointment, payment *entity.Payment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin confirm batch",
			zap.Error(err),
			zap.String("booking_id", appt.ID),
		)
		return fmt.Errorf("begin confirm batch %s: %w: %w", appt.ID, utils.ErrWrite, err)
	}

	insertBooking := `
		INSERT INTO bookings (` + appointmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err = tx.Exec(ctx, insertBooking,
		appt.ID,
		appt.PatientID,
		appt.PatientName,
		appt.PatientAge,
		appt.DoctorID,
		appt.DoctorName,
		appt.ServiceID,
		appt.ServiceName,
		appt.Date,
		appt.Time,
		appt.Status,
		appt.IsCancelled,
		appt.CancellationReason,
		appt.Price,
		appt.CreatedAt,
	)
	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to insert booking in confirm batch",
			zap.Error(err),
			zap.String("booking_id", appt.ID),
		)
		return fmt.Errorf("insert booking %s: %w: %w", appt.ID, utils.ErrWrite, err)
	}

	insertPayment := `
		INSERT INTO payments (id, booking_id, amount, method, status, transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.Exec(ctx, insertPayment,
		payment.ID,
		payment.BookingID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.TransactionID,
		payment.CreatedAt,
	)
	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to insert payment in confirm batch",
			zap.Error(err),
			zap.String("booking_id", appt.ID),
			zap.String("payment_id", payment.ID),
		)
		return fmt.Errorf("insert payment for booking %s: %w: %w", appt.ID, utils.ErrWrite, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit confirm batch",
			zap.Error(err),
			zap.String("booking_id", appt.ID),
		)
		return fmt.Errorf("commit confirm batch %s: %w: %w", appt.ID, utils.ErrWrite, err)
	}

	return nil
}

func (r *appointmentRepository) CancelWithTimeOff(ctx context.Context, id, reason string, off *entity.TimeOff) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin cancel batch",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return fmt.Errorf("begin cancel batch %s: %w: %w", id, utils.ErrWrite, err)
	}

	// Only the cancellation flag and reason change; every other field keeps
	// its pre-cancellation value.
	result, err := tx.Exec(ctx, `
		UPDATE bookings SET is_cancelled = true, cancellation_reason = $2
		WHERE id = $1
	`, id, reason)
	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to flag booking cancelled",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return fmt.Errorf("cancel booking %s: %w: %w", id, utils.ErrWrite, err)
	}

	if result.RowsAffected() == 0 {
		tx.Rollback(ctx)
		return fmt.Errorf("booking %s: %w", id, utils.ErrNotFound)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO time_off (id, doctor_id, doctor_name, booking_id, date, time, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		off.ID,
		off.DoctorID,
		off.DoctorName,
		off.BookingID,
		off.Date,
		off.Time,
		off.Reason,
		off.CreatedAt,
	)
	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to insert time off in cancel batch",
			zap.Error(err),
			zap.String("booking_id", id),
			zap.String("time_off_id", off.ID),
		)
		return fmt.Errorf("insert time off for booking %s: %w: %w", id, utils.ErrWrite, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit cancel batch",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return fmt.Errorf("commit cancel batch %s: %w: %w", id, utils.ErrWrite, err)
	}

	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM bookings WHERE id = $1`

	appt, err := scanAppointmentRow(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find appointment by ID",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("find appointment by ID %s: %w", id, err)
	}

	return appt, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID string, limit, offset int) ([]*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM bookings
		WHERE patient_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, patientID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find appointments by patient ID",
			zap.Error(err),
			zap.String("patient_id", patientID),
		)
		return nil, fmt.Errorf("find appointments by patient ID %s: %w", patientID, err)
	}
	defer rows.Close()

	return scanAppointmentRows(rows)
}

func (r *appointmentRepository) CountByPatientID(ctx context.Context, patientID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE patient_id = $1`, patientID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count appointments by patient ID",
			zap.Error(err),
			zap.String("patient_id", patientID),
		)
		return 0, fmt.Errorf("count appointments by patient ID %s: %w", patientID, err)
	}

	return count, nil
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID string, limit, offset int) ([]*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM bookings
		WHERE doctor_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, doctorID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find appointments by doctor ID",
			zap.Error(err),
			zap.String("doctor_id", doctorID),
		)
		return nil, fmt.Errorf("find appointments by doctor ID %s: %w", doctorID, err)
	}
	defer rows.Close()

	return scanAppointmentRows(rows)
}

func (r *appointmentRepository) CountByDoctorID(ctx context.Context, doctorID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE doctor_id = $1`, doctorID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count appointments by doctor ID",
			zap.Error(err),
			zap.String("doctor_id", doctorID),
		)
		return 0, fmt.Errorf("count appointments by doctor ID %s: %w", doctorID, err)
	}

	return count, nil
}

func (r *appointmentRepository) FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM bookings
		WHERE doctor_id = $1 AND date = $2 AND is_cancelled = false
		ORDER BY time
	`

	rows, err := r.db.Query(ctx, query, doctorID, date)
	if err != nil {
		r.log.Error("Failed to find appointments by doctor and date",
			zap.Error(err),
			zap.String("doctor_id", doctorID),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("find appointments for doctor %s on %s: %w", doctorID, date, err)
	}
	defer rows.Close()

	return scanAppointmentRows(rows)
}

func (r *appointmentRepository) FindUpcoming(ctx context.Context) ([]*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM bookings
		WHERE status = $1 AND is_cancelled = false
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, entity.AppointmentStatusUpcoming)
	if err != nil {
		r.log.Error("Failed to find upcoming appointments", zap.Error(err))
		return nil, fmt.Errorf("find upcoming appointments: %w", err)
	}
	defer rows.Close()

	return scanAppointmentRows(rows)
}

func (r *appointmentRepository) UpdateStatusBatch(ctx context.Context, ids []string, status entity.AppointmentStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := r.db.Exec(ctx, `UPDATE bookings SET status = $2 WHERE id = ANY($1)`, ids, status)
	if err != nil {
		r.log.Error("Failed to batch update appointment status",
			zap.Error(err),
			zap.Int("count", len(ids)),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("batch update %d appointments to %s: %w", len(ids), string(status), err)
	}

	return result.RowsAffected(), nil
}

func (r *appointmentRepository) CountByService(ctx context.Context) ([]ServiceCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT service_name, COUNT(*) FROM bookings GROUP BY service_name ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		r.log.Error("Failed to count bookings by service", zap.Error(err))
		return nil, fmt.Errorf("count bookings by service: %w", err)
	}
	defer rows.Close()

	var counts []ServiceCount
	for rows.Next() {
		var sc ServiceCount
		if err := rows.Scan(&sc.ServiceName, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan service count row: %w", err)
		}
		counts = append(counts, sc)
	}

	return counts, nil
}

func (r *appointmentRepository) CountByMonth(ctx context.Context) ([]MonthCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(created_at, 'YYYY-MM') AS month, COUNT(*)
		FROM bookings GROUP BY month ORDER BY month
	`)
	if err != nil {
		r.log.Error("Failed to count bookings by month", zap.Error(err))
		return nil, fmt.Errorf("count bookings by month: %w", err)
	}
	defer rows.Close()

	var counts []MonthCount
	for rows.Next() {
		var mc MonthCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, fmt.Errorf("scan month count row: %w", err)
		}
		counts = append(counts, mc)
	}

	return counts, nil
}

func (r *appointmentRepository) CountTotals(ctx context.Context) (int64, int64, error) {
	var total, cancelled int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_cancelled) FROM bookings
	`).Scan(&total, &cancelled)
	if err != nil {
		r.log.Error("Failed to count booking totals", zap.Error(err))
		return 0, 0, fmt.Errorf("count booking totals: %w", err)
	}

	return total, cancelled, nil
}

func scanAppointmentRow(row pgx.Row) (*entity.Appointment, error) {
	var appt entity.Appointment
	err := row.Scan(
		&appt.ID,
		&appt.PatientID,
		&appt.PatientName,
		&appt.PatientAge,
		&appt.DoctorID,
		&appt.DoctorName,
		&appt.ServiceID,
		&appt.ServiceName,
		&appt.Date,
		&appt.Time,
		&appt.Status,
		&appt.IsCancelled,
		&appt.CancellationReason,
		&appt.Price,
		&appt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func scanAppointmentRows(rows pgx.Rows) ([]*entity.Appointment, error) {
	var appointments []*entity.Appointment
	for rows.Next() {
		appt, err := scanAppointmentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment row: %w", err)
		}
		appointments = append(appointments, appt)
	}
	return appointments, nil
}
