package response

import (
	"time"

	"clinic-booking/internal/data/entity"
)

type BookingResponse struct {
	ID                 string                   `json:"id"`
	PatientID          string                   `json:"patient_id"`
	PatientName        string                   `json:"patient_name"`
	DoctorID           string                   `json:"doctor_id"`
	DoctorName         string                   `json:"doctor_name"`
	ServiceID          string                   `json:"service_id"`
	ServiceName        string                   `json:"service_name"`
	Date               string                   `json:"date"`
	Time               string                   `json:"time"`
	Status             entity.AppointmentStatus `json:"status"`
	IsCancelled        bool                     `json:"is_cancelled"`
	CancellationReason string                   `json:"cancellation_reason,omitempty"`
	Price              float64                  `json:"price"`
	Payment            *PaymentResponse         `json:"payment,omitempty"`
	CreatedAt          time.Time                `json:"created_at"`
}

type PaymentResponse struct {
	ID            string               `json:"id"`
	BookingID     string               `json:"booking_id"`
	Amount        float64              `json:"amount"`
	Method        entity.PaymentMethod `json:"method"`
	Status        entity.PaymentStatus `json:"status"`
	TransactionID string               `json:"transaction_id"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Helper converters
func AppointmentToResponse(appt *entity.Appointment) BookingResponse {
	return BookingResponse{
		ID:                 appt.ID,
		PatientID:          appt.PatientID,
		PatientName:        appt.PatientName,
		DoctorID:           appt.DoctorID,
		DoctorName:         appt.DoctorName,
		ServiceID:          appt.ServiceID,
		ServiceName:        appt.ServiceName,
		Date:               appt.Date,
		Time:               appt.Time,
		Status:             appt.Status,
		IsCancelled:        appt.IsCancelled,
		CancellationReason: appt.CancellationReason,
		Price:              appt.Price,
		CreatedAt:          appt.CreatedAt,
	}
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID,
		BookingID:     payment.BookingID,
		Amount:        payment.Amount,
		Method:        payment.Method,
		Status:        payment.Status,
		TransactionID: payment.TransactionID,
		CreatedAt:     payment.CreatedAt,
	}
}
