package entity

import (
	"time"
)

// Service is a catalog entry for a clinic treatment.
type Service struct {
	ID             string    `db:"id"`
	Specialization string    `db:"specialization"`
	Price          float64   `db:"price"`
	Description    string    `db:"description"`
	Duration       string    `db:"duration"` // e.g. "30 min"
	CreatedAt      time.Time `db:"created_at"`
}
