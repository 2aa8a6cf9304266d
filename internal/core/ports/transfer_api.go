package ports

import (
	"context"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

// SessionAPI covers registration, login and the local session accessors.
type SessionAPI interface {
	Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error)
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) *domain.User
	IsAuthenticated(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
	VerifySession(ctx context.Context) (*domain.SessionCheck, error)
}

// BookingAPI is the bookings endpoint.
type BookingAPI interface {
	CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.BookingConfirmation, error)
	Bookings(ctx context.Context) (*domain.BookingList, error)
	Booking(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, id int64, upd domain.BookingUpdate) (*domain.BookingUpdateResult, error)
	CancelBooking(ctx context.Context, id int64) (*domain.MessageResult, error)
}

// AdminAPI is the admin endpoint. Authorization is enforced by the server only.
type AdminAPI interface {
	AdminStats(ctx context.Context) (*domain.Stats, error)
	Tariffs(ctx context.Context) (*domain.TariffList, error)
	Tariff(ctx context.Context, id int64) (*domain.Tariff, error)
	CreateTariff(ctx context.Context, t domain.TariffUpdate) (*domain.CreatedResult, error)
	UpdateTariff(ctx context.Context, id int64, t domain.TariffUpdate) (*domain.MessageResult, error)
	DeleteTariff(ctx context.Context, id int64) (*domain.MessageResult, error)
	Vehicles(ctx context.Context) (*domain.VehicleList, error)
	Vehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
	CreateVehicle(ctx context.Context, v domain.VehicleUpdate) (*domain.CreatedResult, error)
	UpdateVehicle(ctx context.Context, id int64, v domain.VehicleUpdate) (*domain.MessageResult, error)
	DeleteVehicle(ctx context.Context, id int64) (*domain.MessageResult, error)
	Advertisements(ctx context.Context) (*domain.AdvertisementList, error)
	Advertisement(ctx context.Context, id int64) (*domain.Advertisement, error)
	CreateAdvertisement(ctx context.Context, a domain.AdvertisementUpdate) (*domain.CreatedResult, error)
	UpdateAdvertisement(ctx context.Context, id int64, a domain.AdvertisementUpdate) (*domain.MessageResult, error)
	DeleteAdvertisement(ctx context.Context, id int64) (*domain.MessageResult, error)
}

// TransferAPI is the full client surface used by the CLI.
type TransferAPI interface {
	SessionAPI
	BookingAPI
	AdminAPI
}
