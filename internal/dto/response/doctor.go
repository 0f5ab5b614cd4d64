package response

import (
	"time"

	"clinic-booking/internal/data/entity"
)

type DoctorResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Specialization    string   `json:"specialization"`
	Gender            string   `json:"gender"`
	YearsOfExperience int      `json:"years_of_experience"`
	Description       string   `json:"description,omitempty"`
	Rating            float64  `json:"rating"`
	ProfileImageURL   string   `json:"profile_image_url,omitempty"`
	ServiceIDs        []string `json:"service_ids"`
}

type ServiceResponse struct {
	ID             string  `json:"id"`
	Specialization string  `json:"specialization"`
	Price          float64 `json:"price"`
	Description    string  `json:"description,omitempty"`
	Duration       string  `json:"duration"`
}

type TimeOffResponse struct {
	ID         string    `json:"id"`
	DoctorID   string    `json:"doctor_id"`
	DoctorName string    `json:"doctor_name,omitempty"`
	BookingID  string    `json:"booking_id,omitempty"`
	Date       string    `json:"date"`
	Time       string    `json:"time,omitempty"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

func DoctorToResponse(doctor *entity.Doctor) DoctorResponse {
	return DoctorResponse{
		ID:                doctor.ID,
		Name:              doctor.Name,
		Specialization:    doctor.Specialization,
		Gender:            doctor.Gender,
		YearsOfExperience: doctor.YearsOfExperience,
		Description:       doctor.Description,
		Rating:            doctor.Rating,
		ProfileImageURL:   doctor.ProfileImageURL,
		ServiceIDs:        doctor.ServiceIDs,
	}
}

func ServiceToResponse(service *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:             service.ID,
		Specialization: service.Specialization,
		Price:          service.Price,
		Description:    service.Description,
		Duration:       service.Duration,
	}
}

func TimeOffToResponse(off *entity.TimeOff) TimeOffResponse {
	return TimeOffResponse{
		ID:         off.ID,
		DoctorID:   off.DoctorID,
		DoctorName: off.DoctorName,
		BookingID:  off.BookingID,
		Date:       off.Date,
		Time:       off.Time,
		Reason:     off.Reason,
		CreatedAt:  off.CreatedAt,
	}
}
