package response

type ServiceCountResponse struct {
	ServiceName string `json:"service_name"`
	Count       int64  `json:"count"`
}

type MonthCountResponse struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

type AnalyticsResponse struct {
	TotalBookings     int64                  `json:"total_bookings"`
	CancelledBookings int64                  `json:"cancelled_bookings"`
	CancellationRate  float64                `json:"cancellation_rate"`
	TotalRevenue      float64                `json:"total_revenue"`
	ByService         []ServiceCountResponse `json:"by_service"`
	ByMonth           []MonthCountResponse   `json:"by_month"`
}
