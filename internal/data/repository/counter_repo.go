package repository

import (
	"context"
	"fmt"

	"clinic-booking/pkg/database"
	"clinic-booking/pkg/utils"

	"go.uber.org/zap"
)

// CounterRepository is the sequential identifier allocator. Next reserves
// the next integer for a namespace key; the counter row is the sole
// serialization point, so concurrent callers never observe the same value
// and the issued sequence has no gaps.
type CounterRepository interface {
	Next(ctx context.Context, key string) (int64, error)
}

type counterRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCounterRepository(db database.PgxIface, log *zap.Logger) CounterRepository {
	return &counterRepository{
		db:  db,
		log: log.With(zap.String("repository", "counter")),
	}
}

// Next allocates in a single atomic upsert. The DO UPDATE arm increments the
// committed row value, never a value read earlier in the statement, so two
// concurrent calls racing to create a fresh counter cannot both observe 1:
// the loser of the insert race waits on the row and increments what the
// winner committed. A missing row still reads as 0 (first issued value is 1).
func (r *counterRepository) Next(ctx context.Context, key string) (int64, error) {
	var next int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO counters (key, current) VALUES ($1, 1)
		ON CONFLICT (key) DO UPDATE SET current = counters.current + 1
		RETURNING current
	`, key).Scan(&next)
	if err != nil {
		r.log.Error("Failed to advance counter",
			zap.Error(err),
			zap.String("key", key),
		)
		return 0, fmt.Errorf("advance counter %s: %w: %w", key, utils.ErrTransaction, err)
	}

	return next, nil
}
