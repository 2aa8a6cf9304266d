package memory

import (
	"context"
	"time"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

// Seed fills an empty catalog with the default tariffs and fleet.
func (r *CatalogRepository) Seed(ctx context.Context, now time.Time) error {
	ts := now.UTC().Format("2006-01-02T15:04:05")

	tariffs := []domain.Tariff{
		{Name: "Economy", Category: "economy", BasePrice: 1800, MaxPassengers: 4,
			Features: []string{"Air conditioning", "Meeting at arrivals"}},
		{Name: "Comfort", Category: "comfort", BasePrice: 3500, MaxPassengers: 7,
			Features: []string{"Spacious cabin", "Air conditioning", "USB ports"}},
		{Name: "VIP", Category: "vip", BasePrice: 5000, MaxPassengers: 4,
			Features: []string{"Business class car", "Water on board", "Meeting with a sign"}},
	}
	for _, t := range tariffs {
		t.IsActive, t.CreatedAt, t.UpdatedAt = true, ts, ts
		if _, err := r.InsertTariff(ctx, t); err != nil {
			return err
		}
	}

	vehicles := []domain.Vehicle{
		{Name: "Toyota Voxy", Model: "Voxy", Category: "comfort", Seats: 7,
			Features: []string{"Spacious cabin", "Air conditioning", "USB ports"}},
		{Name: "Toyota Prius", Model: "Prius", Category: "economy", Seats: 4,
			Features: []string{"Hybrid", "Economical"}},
		{Name: "Honda StepWagn", Model: "StepWagn", Category: "comfort", Seats: 7,
			Features: []string{"Family", "Large trunk"}},
		{Name: "Hyundai Solaris", Model: "Solaris", Category: "economy", Seats: 4,
			Features: []string{"Reliable", "Budget"}},
		{Name: "Volkswagen Polo", Model: "Polo", Category: "economy", Seats: 4,
			Features: []string{"Air conditioning"}},
	}
	for _, v := range vehicles {
		v.IsActive, v.CreatedAt, v.UpdatedAt = true, ts, ts
		if _, err := r.InsertVehicle(ctx, v); err != nil {
			return err
		}
	}
	return nil
}
