package memory

import (
	"context"
	"sort"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/core/ports"
)

// CatalogRepository holds tariffs, vehicles and advertisements.
type CatalogRepository struct {
	tariffs  *table[domain.Tariff]
	vehicles *table[domain.Vehicle]
	ads      *table[domain.Advertisement]
}

var _ ports.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository returns an empty catalog.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		tariffs:  newTable(func(t *domain.Tariff) *int64 { return &t.ID }),
		vehicles: newTable(func(v *domain.Vehicle) *int64 { return &v.ID }),
		ads:      newTable(func(a *domain.Advertisement) *int64 { return &a.ID }),
	}
}

func (r *CatalogRepository) Tariffs(context.Context) ([]domain.Tariff, error) {
	return r.tariffs.all(), nil
}

func (r *CatalogRepository) Tariff(_ context.Context, id int64) (*domain.Tariff, error) {
	return r.tariffs.find(id)
}

func (r *CatalogRepository) InsertTariff(_ context.Context, t domain.Tariff) (*domain.Tariff, error) {
	t = r.tariffs.insert(t)
	return &t, nil
}

func (r *CatalogRepository) SaveTariff(_ context.Context, t domain.Tariff) error {
	return saved(r.tariffs.save(t))
}

func (r *CatalogRepository) DeleteTariff(_ context.Context, id int64) error {
	return saved(r.tariffs.remove(id))
}

func (r *CatalogRepository) Vehicles(context.Context) ([]domain.Vehicle, error) {
	return r.vehicles.all(), nil
}

func (r *CatalogRepository) Vehicle(_ context.Context, id int64) (*domain.Vehicle, error) {
	return r.vehicles.find(id)
}

func (r *CatalogRepository) InsertVehicle(_ context.Context, v domain.Vehicle) (*domain.Vehicle, error) {
	v = r.vehicles.insert(v)
	return &v, nil
}

func (r *CatalogRepository) SaveVehicle(_ context.Context, v domain.Vehicle) error {
	return saved(r.vehicles.save(v))
}

func (r *CatalogRepository) DeleteVehicle(_ context.Context, id int64) error {
	return saved(r.vehicles.remove(id))
}

// Advertisements are ordered by display order, then ID.
func (r *CatalogRepository) Advertisements(context.Context) ([]domain.Advertisement, error) {
	ads := r.ads.all()
	sort.SliceStable(ads, func(i, j int) bool {
		return ads[i].DisplayOrder < ads[j].DisplayOrder
	})
	return ads, nil
}

func (r *CatalogRepository) Advertisement(_ context.Context, id int64) (*domain.Advertisement, error) {
	return r.ads.find(id)
}

func (r *CatalogRepository) InsertAdvertisement(_ context.Context, a domain.Advertisement) (*domain.Advertisement, error) {
	a = r.ads.insert(a)
	return &a, nil
}

func (r *CatalogRepository) SaveAdvertisement(_ context.Context, a domain.Advertisement) error {
	return saved(r.ads.save(a))
}

func (r *CatalogRepository) DeleteAdvertisement(_ context.Context, id int64) error {
	return saved(r.ads.remove(id))
}

func saved(ok bool) error {
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
