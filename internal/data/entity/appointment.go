package entity

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusUpcoming  AppointmentStatus = "Upcoming"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment is one scheduled clinic visit. The ID is the booking ID:
// sequential ("B0000042") when the counter is reachable, a random unique ID
// otherwise.
type Appointment struct {
	ID                 string            `db:"id"`
	PatientID          string            `db:"patient_id"`
	PatientName        string            `db:"patient_name"`
	PatientAge         int               `db:"patient_age"`
	DoctorID           string            `db:"doctor_id"`
	DoctorName         string            `db:"doctor_name"`
	ServiceID          string            `db:"service_id"`
	ServiceName        string            `db:"service_name"`
	Date               string            `db:"date"` // dd/MM/yyyy
	Time               string            `db:"time"` // e.g. "9:30am"
	Status             AppointmentStatus `db:"status"`
	IsCancelled        bool              `db:"is_cancelled"`
	CancellationReason string            `db:"cancellation_reason"`
	Price              float64           `db:"price"`
	CreatedAt          time.Time         `db:"created_at"`
}
