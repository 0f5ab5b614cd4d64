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

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
	FindAll(ctx context.Context) ([]*entity.Doctor, error)
	FindByServiceID(ctx context.Context, serviceID string) ([]*entity.Doctor, error)
}

type doctorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDoctorRepository(db database.PgxIface, log *zap.Logger) DoctorRepository {
	return &doctorRepository{
		db:  db,
		log: log.With(zap.String("repository", "doctor")),
	}
}

const doctorColumns = `id, name, specialization, gender, years_of_experience, description, rating, profile_image_url, service_ids, created_at`

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	query := `
		INSERT INTO doctors (` + doctorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		doctor.ID,
		doctor.Name,
		doctor.Specialization,
		doctor.Gender,
		doctor.YearsOfExperience,
		doctor.Description,
		doctor.Rating,
		doctor.ProfileImageURL,
		doctor.ServiceIDs,
		doctor.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create doctor",
			zap.Error(err),
			zap.String("doctor_id", doctor.ID),
		)
		return fmt.Errorf("create doctor %s: %w: %w", doctor.ID, utils.ErrWrite, err)
	}

	return nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE id = $1`

	doctor, err := scanDoctorRow(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find doctor by ID",
			zap.Error(err),
			zap.String("doctor_id", id),
		)
		return nil, fmt.Errorf("find doctor by ID %s: %w", id, err)
	}

	return doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]*entity.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find doctors", zap.Error(err))
		return nil, fmt.Errorf("find doctors: %w", err)
	}
	defer rows.Close()

	return scanDoctorRows(rows)
}

func (r *doctorRepository) FindByServiceID(ctx context.Context, serviceID string) ([]*entity.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE $1 = ANY(service_ids) ORDER BY id`

	rows, err := r.db.Query(ctx, query, serviceID)
	if err != nil {
		r.log.Error("Failed to find doctors by service ID",
			zap.Error(err),
			zap.String("service_id", serviceID),
		)
		return nil, fmt.Errorf("find doctors by service ID %s: %w", serviceID, err)
	}
	defer rows.Close()

	return scanDoctorRows(rows)
}

func scanDoctorRow(row pgx.Row) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := row.Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.Specialization,
		&doctor.Gender,
		&doctor.YearsOfExperience,
		&doctor.Description,
		&doctor.Rating,
		&doctor.ProfileImageURL,
		&doctor.ServiceIDs,
		&doctor.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func scanDoctorRows(rows pgx.Rows) ([]*entity.Doctor, error) {
	var doctors []*entity.Doctor
	for rows.Next() {
		doctor, err := scanDoctorRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan doctor row: %w", err)
		}
		doctors = append(doctors, doctor)
	}
	return doctors, nil
}
