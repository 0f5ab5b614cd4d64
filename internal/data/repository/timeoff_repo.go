package repository

import (
	"context"
	"fmt"

	"clinic-booking/internal/data/entity"
	"clinic-booking/pkg/database"
	"clinic-booking/pkg/utils"

	"go.uber.org/zap"
)

type TimeOffRepository interface {
	Create(ctx context.Context, off *entity.TimeOff) error
	FindByDoctorID(ctx context.Context, doctorID string) ([]*entity.TimeOff, error)
	FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]*entity.TimeOff, error)
	Delete(ctx context.Context, id string) error
}

type timeOffRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTimeOffRepository(db database.PgxIface, log *zap.Logger) TimeOffRepository {
	return &timeOffRepository{
		db:  db,
		log: log.With(zap.String("repository", "time_off")),
	}
}

const timeOffColumns = `id, doctor_id, doctor_name, booking_id, date, time, reason, created_at`

func (r *timeOffRepository) Create(ctx context.Context, off *entity.TimeOff) error {
	query := `
		INSERT INTO time_off (` + timeOffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
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
		r.log.Error("Failed to create time off",
			zap.Error(err),
			zap.String("time_off_id", off.ID),
			zap.String("doctor_id", off.DoctorID),
		)
		return fmt.Errorf("create time off %s: %w: %w", off.ID, utils.ErrWrite, err)
	}

	return nil
}

func (r *timeOffRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]*entity.TimeOff, error) {
	query := `
		SELECT ` + timeOffColumns + `
		FROM time_off
		WHERE doctor_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, doctorID)
	if err != nil {
		r.log.Error("Failed to find time off by doctor ID",
			zap.Error(err),
			zap.String("doctor_id", doctorID),
		)
		return nil, fmt.Errorf("find time off by doctor ID %s: %w", doctorID, err)
	}
	defer rows.Close()

	var offs []*entity.TimeOff
	for rows.Next() {
		var off entity.TimeOff
		err := rows.Scan(
			&off.ID,
			&off.DoctorID,
			&off.DoctorName,
			&off.BookingID,
			&off.Date,
			&off.Time,
			&off.Reason,
			&off.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan time off row: %w", err)
		}
		offs = append(offs, &off)
	}

	return offs, nil
}

func (r *timeOffRepository) FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]*entity.TimeOff, error) {
	query := `
		SELECT ` + timeOffColumns + `
		FROM time_off
		WHERE doctor_id = $1 AND date = $2
	`

	rows, err := r.db.Query(ctx, query, doctorID, date)
	if err != nil {
		r.log.Error("Failed to find time off by doctor and date",
			zap.Error(err),
			zap.String("doctor_id", doctorID),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("find time off for doctor %s on %s: %w", doctorID, date, err)
	}
	defer rows.Close()

	var offs []*entity.TimeOff
	for rows.Next() {
		var off entity.TimeOff
		err := rows.Scan(
			&off.ID,
			&off.DoctorID,
			&off.DoctorName,
			&off.BookingID,
			&off.Date,
			&off.Time,
			&off.Reason,
			&off.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan time off row: %w", err)
		}
		offs = append(offs, &off)
	}

	return offs, nil
}

func (r *timeOffRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM time_off WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete time off",
			zap.Error(err),
			zap.String("time_off_id", id),
		)
		return fmt.Errorf("delete time off %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("time off %s: %w", id, utils.ErrNotFound)
	}

	return nil
}
