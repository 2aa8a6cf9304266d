package ports

import (
	"context"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

// BookingService is the backend side of the bookings endpoint. A nil actor
// is an anonymous caller.
type BookingService interface {
	Create(ctx context.Context, actor *domain.Actor, req domain.BookingRequest) (*domain.BookingConfirmation, error)
	List(ctx context.Context, actor *domain.Actor) (*domain.BookingList, error)
	Get(ctx context.Context, actor *domain.Actor, id int64) (*domain.Booking, error)
	Update(ctx context.Context, actor *domain.Actor, id int64, upd domain.BookingUpdate) (*domain.BookingUpdateResult, error)
	Cancel(ctx context.Context, actor *domain.Actor, id int64) error
	Stats(ctx context.Context) (*domain.Stats, error)
}

// CatalogService is the backend side of the admin resources.
type CatalogService interface {
	Tariffs(ctx context.Context) ([]domain.Tariff, error)
	Tariff(ctx context.Context, id int64) (*domain.Tariff, error)
	CreateTariff(ctx context.Context, in domain.TariffUpdate) (*domain.Tariff, error)
	UpdateTariff(ctx context.Context, id int64, upd domain.TariffUpdate) error
	DeleteTariff(ctx context.Context, id int64) error

	Vehicles(ctx context.Context) ([]domain.Vehicle, error)
	Vehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
	CreateVehicle(ctx context.Context, in domain.VehicleUpdate) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, id int64, upd domain.VehicleUpdate) error
	DeleteVehicle(ctx context.Context, id int64) error

	Advertisements(ctx context.Context) ([]domain.Advertisement, error)
	Advertisement(ctx context.Context, id int64) (*domain.Advertisement, error)
	CreateAdvertisement(ctx context.Context, in domain.AdvertisementUpdate) (*domain.Advertisement, error)
	UpdateAdvertisement(ctx context.Context, id int64, upd domain.AdvertisementUpdate) error
	DeleteAdvertisement(ctx context.Context, id int64) error
}
