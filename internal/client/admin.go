package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

// Admin resources addressed through ?resource=.
const (
	resourceStats          = "stats"
	resourceTariffs        = "tariffs"
	resourceVehicles       = "vehicles"
	resourceAdvertisements = "advertisements"
)

// adminCall sends an authenticated request to the admin endpoint and decodes
// the result into T. Admin privilege is checked by the server only.
func adminCall[T any](ctx context.Context, c *Client, op, method string, q url.Values, body any, fallback string) (*T, error) {
	var res T
	err := c.send(ctx, call{
		op:       op,
		kind:     domain.ErrAdmin,
		method:   method,
		endpoint: c.endpoints.Admin,
		query:    q,
		body:     body,
		auth:     true,
		fallback: fallback,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func resource(name string) url.Values {
	return url.Values{"resource": {name}}
}

func (c *Client) AdminStats(ctx context.Context) (*domain.Stats, error) {
	return adminCall[domain.Stats](ctx, c, "get_admin_stats", http.MethodGet,
		resource(resourceStats), nil, "Failed to fetch statistics")
}

func (c *Client) Tariffs(ctx context.Context) (*domain.TariffList, error) {
	return adminCall[domain.TariffList](ctx, c, "get_tariffs", http.MethodGet,
		resource(resourceTariffs), nil, "Failed to fetch tariffs")
}

func (c *Client) Tariff(ctx context.Context, id int64) (*domain.Tariff, error) {
	return adminCall[domain.Tariff](ctx, c, "get_tariff", http.MethodGet,
		idQuery(id, "resource", resourceTariffs), nil, "Failed to fetch tariff")
}

func (c *Client) CreateTariff(ctx context.Context, t domain.TariffUpdate) (*domain.CreatedResult, error) {
	return adminCall[domain.CreatedResult](ctx, c, "create_tariff", http.MethodPost,
		resource(resourceTariffs), t, "Failed to create tariff")
}

func (c *Client) UpdateTariff(ctx context.Context, id int64, t domain.TariffUpdate) (*domain.MessageResult, error) {
	return adminCall[domain.MessageResult](ctx, c, "update_tariff", http.MethodPut,
		idQuery(id, "resource", resourceTariffs), t, "Failed to update tariff")
}

func (c *Client) DeleteTariff(ctx context.Context, id int64) (*domain.MessageResult, error) {
	return adminCall[domain.MessageResult](ctx, c, "delete_tariff", http.MethodDelete,
		idQuery(id, "resource", resourceTariffs), nil, "Failed to delete tariff")
}

func (c *Client) Vehicles(ctx context.Context) (*domain.VehicleList, error) {
	return adminCall[domain.VehicleList](ctx, c, "get_vehicles", http.MethodGet,
		resource(resourceVehicles), nil, "Failed to fetch vehicles")
}

func (c *Client) Vehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return adminCall[domain.Vehicle](ctx, c, "get_vehicle", http.MethodGet,
		idQuery(id, "resource", resourceVehicles), nil, "Failed to fetch vehicle")
}

func (c *Client) CreateVehicle(ctx context.Context, v domain.VehicleUpdate) (*domain.CreatedResult, error) {
	return adminCall[domain.CreatedResult](ctx, c, "create_vehicle", http.MethodPost,
		resource(resourceVehicles), v, "Failed to create vehicle")
}

func (c *Client) UpdateVehicle(ctx context.Context, id int64, v domain.VehicleUpdate) (*domain.MessageResult, error) {
	return adminCall[domain.MessageResult](ctx, c, "update_vehicle", http.MethodPut,
		idQuery(id, "resource", resourceVehicles), v, "Failed to update vehicle")
}

func (c *Client) DeleteVehicle(ctx context.Context, id int64) (*domain.MessageResult, error) {
	return adminCall[domain.MessageResult](ctx, c, "delete_vehicle", http.MethodDelete,
		idQuery(id, "resource", resourceVehicles), nil, "Failed to delete vehicle")
}

func (c *Client) Advertisements(ctx context.Context) (*domain.AdvertisementList, error) {
	return adminCall[domain.AdvertisementList](ctx, c, "get_advertisements", http.MethodGet,
		resource(resourceAdvertisements), nil, "Failed to fetch advertisements")
}

func (c *Client) Advertisement(ctx context.Context, id int64) (*domain.Advertisement, error) {
	return adminCall[domain.Advertisement](ctx, c, "get_advertisement", http.MethodGet,
		idQuery(id, "resource", resourceAdvertisements), nil, "Failed to fetch advertisement")
}

func (c *Client) CreateAdvertisement(ctx context.Context, a domain.AdvertisementUpdate) (*domain.CreatedResult, error) {
	return adminCall[domain.CreatedResult](ctx, c, "create_advertisement", http.MethodPost,
		resource(resourceAdvertisements), a, "Failed to create advertisement")
}

func (c *Client) UpdateAdvertisement(ctx context.Context, id int64, a domain.AdvertisementUpdate) (*domain.MessageResult, error) {
	return adminCall[domain.MessageResult](ctx, c, "update_advertisement", http.MethodPut,
		idQuery(id, "resource", resourceAdvertisements), a, "Failed to update advertisement")
}

func (c *Client) DeleteAdvertisement(ctx context.Context, id int64) (*domain.MessageResult, error) {
	return adminCall[domain.MessageResult](ctx, c, "delete_advertisement", http.MethodDelete,
		idQuery(id, "resource", resourceAdvertisements), nil, "Failed to delete advertisement")
}
