package repository

import (
	"context"
	"fmt"

	"clinic-booking/internal/data/entity"
	"clinic-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ServiceRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Service, error)
	FindAll(ctx context.Context) ([]*entity.Service, error)
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

const serviceColumns = `id, specialization, price, description, duration, created_at`

func (r *serviceRepository) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	var service entity.Service
	err := r.db.QueryRow(ctx, query, id).Scan(
		&service.ID,
		&service.Specialization,
		&service.Price,
		&service.Description,
		&service.Duration,
		&service.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.String("service_id", id),
		)
		return nil, fmt.Errorf("find service by ID %s: %w", id, err)
	}

	return &service, nil
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY specialization`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find services", zap.Error(err))
		return nil, fmt.Errorf("find services: %w", err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		var service entity.Service
		err := rows.Scan(
			&service.ID,
			&service.Specialization,
			&service.Price,
			&service.Description,
			&service.Duration,
			&service.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, &service)
	}

	return services, nil
}
