package domain

// Booking is a transfer order as listed by the bookings endpoint.
// Status and PaymentStatus are owned by the server and never validated here.
type Booking struct {
	ID            int64   `json:"id"`
	FromLocation  string  `json:"from_location"`
	ToLocation    string  `json:"to_location"`
	TravelDate    string  `json:"travel_date"`
	TravelTime    string  `json:"travel_time"`
	Passengers    int     `json:"passengers"`
	TariffName    *string `json:"tariff_name,omitempty"`
	Category      *string `json:"category,omitempty"`
	TotalPrice    float64 `json:"total_price"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	PaymentMethod string  `json:"payment_method"`
	CreatedAt     string  `json:"created_at"`
	UserName      *string `json:"user_name,omitempty"`
	UserEmail     *string `json:"user_email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	VehicleID     *int64  `json:"vehicle_id,omitempty"`
}

// BookingList is the GET /bookings payload.
type BookingList struct {
	Bookings []Booking `json:"bookings"`
}

// BookingRequest holds the fields of a new booking. Guest fields are only
// needed when the caller has no session.
type BookingRequest struct {
	GuestName     string `json:"guest_name,omitempty"`
	GuestPhone    string `json:"guest_phone,omitempty"`
	GuestEmail    string `json:"guest_email,omitempty"`
	FromLocation  string `json:"from_location"  validate:"required"`
	ToLocation    string `json:"to_location"    validate:"required"`
	TravelDate    string `json:"travel_date"    validate:"required"`
	TravelTime    string `json:"travel_time"    validate:"required"`
	Passengers    int    `json:"passengers"     validate:"required,gt=0"`
	TariffID      int64  `json:"tariff_id"      validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
	Notes         string `json:"notes,omitempty"`
}

// BookingConfirmation is returned when the server accepts a new booking.
type BookingConfirmation struct {
	BookingID  int64   `json:"booking_id" validate:"required"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
	Message    string  `json:"message"`
}

// BookingUpdate is a partial update; nil fields are not sent.
type BookingUpdate struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"payment_status,omitempty"`
	VehicleID     *int64  `json:"vehicle_id,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// Empty reports whether the update carries no fields.
func (u BookingUpdate) Empty() bool {
	return u.Status == nil && u.PaymentStatus == nil && u.VehicleID == nil && u.Notes == nil
}

// BookingUpdateResult echoes the booking state after an update.
type BookingUpdateResult struct {
	BookingID     int64  `json:"booking_id" validate:"required"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// MessageResult is the generic acknowledgement envelope.
type MessageResult struct {
	Message string `json:"message"`
}

// CreatedResult is returned when an admin resource is created.
type CreatedResult struct {
	ID      int64  `json:"id" validate:"required"`
	Message string `json:"message"`
}
