package ports

import (
	"context"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

// BookingRepository stores bookings. Get returns domain.ErrBookingNotFound
// for unknown IDs. List returns newest first; userID 0 lists every booking.
type BookingRepository interface {
	Create(ctx context.Context, rec domain.BookingRecord) (*domain.BookingRecord, error)
	Get(ctx context.Context, id int64) (*domain.BookingRecord, error)
	List(ctx context.Context, userID int64, limit int) ([]domain.BookingRecord, error)
	Save(ctx context.Context, rec domain.BookingRecord) error
}

// CatalogRepository stores tariffs, vehicles and advertisements. Lookups of
// unknown IDs return domain.ErrNotFound. Insert assigns the ID.
type CatalogRepository interface {
	Tariffs(ctx context.Context) ([]domain.Tariff, error)
	Tariff(ctx context.Context, id int64) (*domain.Tariff, error)
	InsertTariff(ctx context.Context, t domain.Tariff) (*domain.Tariff, error)
	SaveTariff(ctx context.Context, t domain.Tariff) error
	DeleteTariff(ctx context.Context, id int64) error

	Vehicles(ctx context.Context) ([]domain.Vehicle, error)
	Vehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
	InsertVehicle(ctx context.Context, v domain.Vehicle) (*domain.Vehicle, error)
	SaveVehicle(ctx context.Context, v domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id int64) error

	Advertisements(ctx context.Context) ([]domain.Advertisement, error)
	Advertisement(ctx context.Context, id int64) (*domain.Advertisement, error)
	InsertAdvertisement(ctx context.Context, a domain.Advertisement) (*domain.Advertisement, error)
	SaveAdvertisement(ctx context.Context, a domain.Advertisement) error
	DeleteAdvertisement(ctx context.Context, id int64) error
}
