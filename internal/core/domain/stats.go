package domain

// DailyCount is the number of bookings created on a given day.
type DailyCount struct {
	Date  string `json:"date"  validate:"required"`
	Count int    `json:"count"`
}

// Stats is the admin dashboard summary over all bookings.
type Stats struct {
	TotalBookings     int          `json:"total_bookings"`
	NewBookings       int          `json:"new_bookings"`
	ConfirmedBookings int          `json:"confirmed_bookings"`
	CompletedBookings int          `json:"completed_bookings"`
	CancelledBookings int          `json:"cancelled_bookings"`
	TotalRevenue      float64      `json:"total_revenue"`
	DailyBookings     []DailyCount `json:"daily_bookings" validate:"dive"`
}
