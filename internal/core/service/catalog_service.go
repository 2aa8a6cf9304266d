package service

import (
	"context"
	"time"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/core/ports"
)

// CatalogService manages tariffs, vehicles and advertisements.
// New entries are active unless the payload says otherwise.
type CatalogService struct {
	repo ports.CatalogRepository
	now  func() time.Time
}

var _ ports.CatalogService = (*CatalogService)(nil)

func NewCatalogService(repo ports.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo, now: time.Now}
}

func (s *CatalogService) stamp() string {
	return s.now().UTC().Format(timestampLayout)
}

func (s *CatalogService) Tariffs(ctx context.Context) ([]domain.Tariff, error) {
	return s.repo.Tariffs(ctx)
}

func (s *CatalogService) Tariff(ctx context.Context, id int64) (*domain.Tariff, error) {
	return s.repo.Tariff(ctx, id)
}

func (s *CatalogService) CreateTariff(ctx context.Context, in domain.TariffUpdate) (*domain.Tariff, error) {
	if in.Name == nil || in.Category == nil || in.BasePrice == nil || in.MaxPassengers == nil {
		return nil, domain.ErrMissingFields
	}
	ts := s.stamp()
	t := domain.Tariff{IsActive: true, Features: []string{}, CreatedAt: ts, UpdatedAt: ts}
	in.Apply(&t)
	return s.repo.InsertTariff(ctx, t)
}

func (s *CatalogService) UpdateTariff(ctx context.Context, id int64, upd domain.TariffUpdate) error {
	if upd.Empty() {
		return domain.ErrNoFields
	}
	t, err := s.repo.Tariff(ctx, id)
	if err != nil {
		return err
	}
	upd.Apply(t)
	t.UpdatedAt = s.stamp()
	return s.repo.SaveTariff(ctx, *t)
}

func (s *CatalogService) DeleteTariff(ctx context.Context, id int64) error {
	return s.repo.DeleteTariff(ctx, id)
}

func (s *CatalogService) Vehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.repo.Vehicles(ctx)
}

func (s *CatalogService) Vehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return s.repo.Vehicle(ctx, id)
}

func (s *CatalogService) CreateVehicle(ctx context.Context, in domain.VehicleUpdate) (*domain.Vehicle, error) {
	if in.Name == nil || in.Model == nil || in.Category == nil || in.Seats == nil {
		return nil, domain.ErrMissingFields
	}
	ts := s.stamp()
	v := domain.Vehicle{IsActive: true, Features: []string{}, CreatedAt: ts, UpdatedAt: ts}
	in.Apply(&v)
	return s.repo.InsertVehicle(ctx, v)
}

func (s *CatalogService) UpdateVehicle(ctx context.Context, id int64, upd domain.VehicleUpdate) error {
	if upd.Empty() {
		return domain.ErrNoFields
	}
	v, err := s.repo.Vehicle(ctx, id)
	if err != nil {
		return err
	}
	upd.Apply(v)
	v.UpdatedAt = s.stamp()
	return s.repo.SaveVehicle(ctx, *v)
}

func (s *CatalogService) DeleteVehicle(ctx context.Context, id int64) error {
	return s.repo.DeleteVehicle(ctx, id)
}

func (s *CatalogService) Advertisements(ctx context.Context) ([]domain.Advertisement, error) {
	return s.repo.Advertisements(ctx)
}

func (s *CatalogService) Advertisement(ctx context.Context, id int64) (*domain.Advertisement, error) {
	return s.repo.Advertisement(ctx, id)
}

func (s *CatalogService) CreateAdvertisement(ctx context.Context, in domain.AdvertisementUpdate) (*domain.Advertisement, error) {
	if in.Title == nil {
		return nil, domain.ErrMissingFields
	}
	ts := s.stamp()
	a := domain.Advertisement{IsActive: true, CreatedAt: ts, UpdatedAt: ts}
	in.Apply(&a)
	return s.repo.InsertAdvertisement(ctx, a)
}

func (s *CatalogService) UpdateAdvertisement(ctx context.Context, id int64, upd domain.AdvertisementUpdate) error {
	if upd.Empty() {
		return domain.ErrNoFields
	}
	a, err := s.repo.Advertisement(ctx, id)
	if err != nil {
		return err
	}
	upd.Apply(a)
	a.UpdatedAt = s.stamp()
	return s.repo.SaveAdvertisement(ctx, *a)
}

func (s *CatalogService) DeleteAdvertisement(ctx context.Context, id int64) error {
	return s.repo.DeleteAdvertisement(ctx, id)
}
