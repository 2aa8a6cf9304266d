package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/infrastructure/db/memory"
)

func newCatalogFixture(t *testing.T) *CatalogService {
	t.Helper()
	repo := memory.NewCatalogRepository()
	if err := repo.Seed(context.Background(), time.Now()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := NewCatalogService(repo)
	s.now = func() time.Time { return time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC) }
	return s
}

func TestCatalogService_CreateTariff(t *testing.T) {
	s := newCatalogFixture(t)
	ctx := context.Background()

	if _, err := s.CreateTariff(ctx, domain.TariffUpdate{Name: ptr("Minivan")}); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}

	created, err := s.CreateTariff(ctx, domain.TariffUpdate{
		Name:          ptr("Minivan"),
		Category:      ptr("minivan"),
		BasePrice:     ptr(domain.Amount(4200)),
		MaxPassengers: ptr(7),
	})
	if err != nil {
		t.Fatalf("CreateTariff returned error: %v", err)
	}
	if created.ID == 0 || !created.IsActive || created.Features == nil {
		t.Fatalf("unexpected tariff: %+v", created)
	}
	if created.CreatedAt != "2026-06-01T09:30:00" {
		t.Fatalf("unexpected created_at %q", created.CreatedAt)
	}

	list, _ := s.Tariffs(ctx)
	if len(list) != 4 {
		t.Fatalf("expected 4 tariffs, got %d", len(list))
	}
}

func TestCatalogService_UpdateTariff(t *testing.T) {
	s := newCatalogFixture(t)
	ctx := context.Background()

	if err := s.UpdateTariff(ctx, 1, domain.TariffUpdate{}); !errors.Is(err, domain.ErrNoFields) {
		t.Fatalf("expected ErrNoFields, got %v", err)
	}
	if err := s.UpdateTariff(ctx, 99, domain.TariffUpdate{IsActive: ptr(false)}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.UpdateTariff(ctx, 1, domain.TariffUpdate{IsActive: ptr(false)}); err != nil {
		t.Fatalf("UpdateTariff returned error: %v", err)
	}

	got, err := s.Tariff(ctx, 1)
	if err != nil {
		t.Fatalf("Tariff returned error: %v", err)
	}
	if got.IsActive || got.Name != "Economy" || got.BasePrice != 1800 {
		t.Fatalf("partial update touched other fields: %+v", got)
	}
}

func TestCatalogService_VehicleLifecycle(t *testing.T) {
	s := newCatalogFixture(t)
	ctx := context.Background()

	v, err := s.CreateVehicle(ctx, domain.VehicleUpdate{
		Name: ptr("Mercedes"), Model: ptr("V-Class"), Category: ptr("vip"), Seats: ptr(7),
	})
	if err != nil {
		t.Fatalf("CreateVehicle returned error: %v", err)
	}
	if err := s.UpdateVehicle(ctx, v.ID, domain.VehicleUpdate{Seats: ptr(6)}); err != nil {
		t.Fatalf("UpdateVehicle returned error: %v", err)
	}
	got, _ := s.Vehicle(ctx, v.ID)
	if got.Seats != 6 || got.Model != "V-Class" {
		t.Fatalf("unexpected vehicle: %+v", got)
	}
	if err := s.DeleteVehicle(ctx, v.ID); err != nil {
		t.Fatalf("DeleteVehicle returned error: %v", err)
	}
	if _, err := s.Vehicle(ctx, v.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCatalogService_Advertisements(t *testing.T) {
	s := newCatalogFixture(t)
	ctx := context.Background()

	if _, err := s.CreateAdvertisement(ctx, domain.AdvertisementUpdate{}); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	second, err := s.CreateAdvertisement(ctx, domain.AdvertisementUpdate{Title: ptr("Second"), DisplayOrder: ptr(2)})
	if err != nil {
		t.Fatalf("CreateAdvertisement returned error: %v", err)
	}
	if _, err := s.CreateAdvertisement(ctx, domain.AdvertisementUpdate{Title: ptr("First"), DisplayOrder: ptr(1)}); err != nil {
		t.Fatalf("CreateAdvertisement returned error: %v", err)
	}

	ads, _ := s.Advertisements(ctx)
	if len(ads) < 2 || ads[len(ads)-1].ID != second.ID {
		t.Fatalf("expected ads ordered by display_order, got %+v", ads)
	}
	if err := s.DeleteAdvertisement(ctx, 999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
