package request

type CreateDoctorRequest struct {
	Name              string   `json:"name" validate:"required,min=2"`
	Specialization    string   `json:"specialization" validate:"required"`
	Gender            string   `json:"gender" validate:"required,oneof=Male Female"`
	YearsOfExperience int      `json:"years_of_experience" validate:"gte=0"`
	Description       string   `json:"description,omitempty"`
	ProfileImageURL   string   `json:"profile_image_url,omitempty"`
	ServiceIDs        []string `json:"service_ids" validate:"required,min=1"`
}

type AddTimeOffRequest struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time,omitempty"`
	Reason   string `json:"reason" validate:"required,min=3"`
}
