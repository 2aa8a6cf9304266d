package domain

import "time"

// Booking statuses as set by the backend.
const (
	StatusNew       = "new"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

	PaymentPending = "pending"

	DefaultPaymentMethod = "prepay_50"
)

// BookingRecord is the stored form of a booking. UserID is zero for guest
// bookings, in which case the guest contact fields are set.
type BookingRecord struct {
	Booking
	UserID     int64
	TariffID   int64
	GuestName  string
	GuestPhone string
	GuestEmail string
	Created    time.Time
}

// Apply copies every non-nil field of u onto b.
func (u BookingUpdate) Apply(b *Booking) {
	if u.Status != nil {
		b.Status = *u.Status
	}
	if u.PaymentStatus != nil {
		b.PaymentStatus = *u.PaymentStatus
	}
	if u.VehicleID != nil {
		id := *u.VehicleID
		b.VehicleID = &id
	}
	if u.Notes != nil {
		n := *u.Notes
		b.Notes = &n
	}
}

func (u TariffUpdate) Empty() bool {
	return u == TariffUpdate{}
}

func (u TariffUpdate) Apply(t *Tariff) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.Description != nil {
		t.Description = u.Description
	}
	if u.BasePrice != nil {
		t.BasePrice = *u.BasePrice
	}
	if u.PricePerKm != nil {
		t.PricePerKm = u.PricePerKm
	}
	if u.MaxPassengers != nil {
		t.MaxPassengers = *u.MaxPassengers
	}
	if u.Features != nil {
		t.Features = append([]string(nil), (*u.Features)...)
	}
	if u.IsActive != nil {
		t.IsActive = *u.IsActive
	}
}

func (u VehicleUpdate) Empty() bool {
	return u == VehicleUpdate{}
}

func (u VehicleUpdate) Apply(v *Vehicle) {
	if u.Name != nil {
		v.Name = *u.Name
	}
	if u.Model != nil {
		v.Model = *u.Model
	}
	if u.Category != nil {
		v.Category = *u.Category
	}
	if u.Seats != nil {
		v.Seats = *u.Seats
	}
	if u.ImageURL != nil {
		v.ImageURL = u.ImageURL
	}
	if u.Features != nil {
		v.Features = append([]string(nil), (*u.Features)...)
	}
	if u.IsActive != nil {
		v.IsActive = *u.IsActive
	}
}

func (u AdvertisementUpdate) Empty() bool {
	return u == AdvertisementUpdate{}
}

func (u AdvertisementUpdate) Apply(a *Advertisement) {
	if u.Title != nil {
		a.Title = *u.Title
	}
	if u.Content != nil {
		a.Content = u.Content
	}
	if u.ImageURL != nil {
		a.ImageURL = u.ImageURL
	}
	if u.LinkURL != nil {
		a.LinkURL = u.LinkURL
	}
	if u.Position != nil {
		a.Position = u.Position
	}
	if u.IsActive != nil {
		a.IsActive = *u.IsActive
	}
	if u.DisplayOrder != nil {
		a.DisplayOrder = *u.DisplayOrder
	}
}
