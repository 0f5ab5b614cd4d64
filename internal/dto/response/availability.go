package response

// AvailabilityResponse is the bookable slot set for one doctor on one date.
// Blocked is set when the whole date is unavailable (time off or past date).
type AvailabilityResponse struct {
	DoctorID       string   `json:"doctor_id"`
	Date           string   `json:"date"`
	Blocked        bool     `json:"blocked"`
	BlockedReason  string   `json:"blocked_reason,omitempty"`
	AvailableSlots []string `json:"available_slots"`
	TakenSlots     []string `json:"taken_slots,omitempty"`
}
