package request

type CreateBookingRequest struct {
	ServiceID     string `json:"service_id" validate:"required"`
	DoctorID      string `json:"doctor_id" validate:"required"`
	Date          string `json:"date" validate:"required"` // dd/MM/yyyy
	Time          string `json:"time" validate:"required"` // e.g. "9:30am"
	PatientName   string `json:"patient_name" validate:"required,min=2"`
	PatientAge    int    `json:"patient_age" validate:"omitempty,gte=0"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=card online_banking e_wallet"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}
