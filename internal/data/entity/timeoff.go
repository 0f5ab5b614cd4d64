package entity

import (
	"time"
)

// TimeOff marks a doctor's unavailable date. Created by explicit doctor
// action, or by a booking cancellation to free the slot (BookingID set).
type TimeOff struct {
	ID         string    `db:"id"`
	DoctorID   string    `db:"doctor_id"`
	DoctorName string    `db:"doctor_name"`
	BookingID  string    `db:"booking_id"`
	Date       string    `db:"date"`
	Time       string    `db:"time"`
	Reason     string    `db:"reason"`
	CreatedAt  time.Time `db:"created_at"`
}
