package entity

import (
	"time"
)

type Doctor struct {
	ID                string    `db:"id"` // D001, D002...
	Name              string    `db:"name"`
	Specialization    string    `db:"specialization"`
	Gender            string    `db:"gender"`
	YearsOfExperience int       `db:"years_of_experience"`
	Description       string    `db:"description"`
	Rating            float64   `db:"rating"`
	ProfileImageURL   string    `db:"profile_image_url"`
	ServiceIDs        []string  `db:"service_ids"`
	CreatedAt         time.Time `db:"created_at"`
}

// ProvidesService reports whether the doctor offers the given service.
func (d *Doctor) ProvidesService(serviceID string) bool {
	for _, id := range d.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
