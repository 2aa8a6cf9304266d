package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/core/ports"
)

// AdminHandler serves /admin?resource=... for admins. Role checks happen in
// the RBAC middleware in front of it.
type AdminHandler struct {
	bookings ports.BookingService
	catalog  ports.CatalogService
}

func NewAdminHandler(bookings ports.BookingService, catalog ports.CatalogService) *AdminHandler {
	return &AdminHandler{bookings: bookings, catalog: catalog}
}

// Handle dispatches on the resource query parameter.
//
// @Summary      Admin resources
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        resource  query     string  true   "stats, tariffs, vehicles or advertisements"
// @Param        id        query     int     false  "Resource ID"
// @Success      200       {object}  domain.Stats
// @Failure      400       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Router       /admin [get]
func (h *AdminHandler) Handle(c echo.Context) error {
	switch c.QueryParam("resource") {
	case "stats":
		return h.stats(c)
	case "tariffs":
		return serve(c, resource[domain.Tariff, domain.TariffUpdate]{
			name:     "Tariff",
			plural:   "tariffs",
			required: "name, category, base_price and max_passengers are required",
			list:     h.catalog.Tariffs,
			get:      h.catalog.Tariff,
			create:   h.catalog.CreateTariff,
			update:   h.catalog.UpdateTariff,
			remove:   h.catalog.DeleteTariff,
			id:       func(t *domain.Tariff) int64 { return t.ID },
		})
	case "vehicles":
		return serve(c, resource[domain.Vehicle, domain.VehicleUpdate]{
			name:     "Vehicle",
			plural:   "vehicles",
			required: "name, model, category and seats are required",
			list:     h.catalog.Vehicles,
			get:      h.catalog.Vehicle,
			create:   h.catalog.CreateVehicle,
			update:   h.catalog.UpdateVehicle,
			remove:   h.catalog.DeleteVehicle,
			id:       func(v *domain.Vehicle) int64 { return v.ID },
		})
	case "advertisements":
		return serve(c, resource[domain.Advertisement, domain.AdvertisementUpdate]{
			name:     "Advertisement",
			plural:   "advertisements",
			required: "title is required",
			list:     h.catalog.Advertisements,
			get:      h.catalog.Advertisement,
			create:   h.catalog.CreateAdvertisement,
			update:   h.catalog.UpdateAdvertisement,
			remove:   h.catalog.DeleteAdvertisement,
			id:       func(a *domain.Advertisement) int64 { return a.ID },
		})
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown resource")
	}
}

func (h *AdminHandler) stats(c echo.Context) error {
	if c.Request().Method != http.MethodGet {
		return echo.NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed")
	}
	st, err := h.bookings.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

// resource binds one catalog collection to the four admin verbs.
// T is the stored entity, U its partial write payload.
type resource[T, U any] struct {
	name     string
	plural   string
	required string
	list     func(context.Context) ([]T, error)
	get      func(context.Context, int64) (*T, error)
	create   func(context.Context, U) (*T, error)
	update   func(context.Context, int64, U) error
	remove   func(context.Context, int64) error
	id       func(*T) int64
}

func serve[T, U any](c echo.Context, r resource[T, U]) error {
	ctx := c.Request().Context()

	switch c.Request().Method {
	case http.MethodGet:
		id, ok, err := queryID(c)
		if err != nil {
			return err
		}
		if ok {
			item, err := r.get(ctx, id)
			if err != nil {
				return r.notFound(err)
			}
			return c.JSON(http.StatusOK, item)
		}
		items, err := r.list(ctx)
		if err != nil {
			return err
		}
		if items == nil {
			items = []T{}
		}
		return c.JSON(http.StatusOK, map[string]any{r.plural: items})

	case http.MethodPost:
		var in U
		if err := bind(c, &in); err != nil {
			return err
		}
		item, err := r.create(ctx, in)
		if errors.Is(err, domain.ErrMissingFields) {
			return echo.NewHTTPError(http.StatusBadRequest, r.required)
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, domain.CreatedResult{ID: r.id(item), Message: r.name + " created"})

	case http.MethodPut:
		id, err := requireID(c, r.name)
		if err != nil {
			return err
		}
		var upd U
		if err := bind(c, &upd); err != nil {
			return err
		}
		if err := r.update(ctx, id, upd); err != nil {
			return r.notFound(err)
		}
		return c.JSON(http.StatusOK, domain.MessageResult{Message: r.name + " updated"})

	case http.MethodDelete:
		id, err := requireID(c, r.name)
		if err != nil {
			return err
		}
		if err := r.remove(ctx, id); err != nil {
			return r.notFound(err)
		}
		return c.JSON(http.StatusOK, domain.MessageResult{Message: r.name + " deleted"})
	}
	return echo.NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed")
}

func (r resource[T, U]) notFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, r.name+" not found")
	}
	return err
}
