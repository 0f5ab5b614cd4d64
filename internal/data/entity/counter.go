package entity

// Counter keys, one per identifier namespace. The counter row holds the
// last-issued sequence number; a missing row reads as 0.
const (
	BookingCounter = "booking_counter"
	DoctorCounter  = "doctor_counter"
	TimeOffCounter = "timeoff_counter"
	UserCounter    = "user_counter"
)

// ID prefixes and zero-padding widths per namespace.
const (
	BookingIDPrefix = "B"
	BookingIDWidth  = 7

	DoctorIDPrefix = "D"
	DoctorIDWidth  = 3

	TimeOffIDPrefix = "O"
	TimeOffIDWidth  = 8

	UserIDPrefix = "U"
	UserIDWidth  = 3
)

type Counter struct {
	Key     string `db:"key"`
	Current int64  `db:"current"`
}
