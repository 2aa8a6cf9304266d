package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/core/ports"
	"github.com/abkhaztransfer/transfer-client/internal/stubapi/middleware"
)

type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Create books a transfer for the caller or, without a token, for a guest.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      domain.BookingRequest  true  "Booking details"
// @Success      200   {object}  domain.BookingConfirmation
// @Failure      400   {object}  map[string]string
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req domain.BookingRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.bookings.Create(c.Request().Context(), middleware.Actor(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Get lists the caller's bookings, or returns one when ?id= is given.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Param        id   query     int  false  "Booking ID"
// @Success      200  {object}  domain.BookingList
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /bookings [get]
func (h *BookingHandler) Get(c echo.Context) error {
	id, ok, err := queryID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if ok {
		b, err := h.bookings.Get(ctx, middleware.Actor(c), id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, b)
	}

	list, err := h.bookings.List(ctx, middleware.Actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Update edits a booking. Admin only.
//
// @Summary      Update a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    query     int                   true  "Booking ID"
// @Param        body  body      domain.BookingUpdate  true  "Fields to change"
// @Success      200   {object}  domain.BookingUpdateResult
// @Failure      403   {object}  map[string]string
// @Router       /bookings [put]
func (h *BookingHandler) Update(c echo.Context) error {
	id, err := requireID(c, "Booking")
	if err != nil {
		return err
	}
	var upd domain.BookingUpdate
	if err := bind(c, &upd); err != nil {
		return err
	}
	res, err := h.bookings.Update(c.Request().Context(), middleware.Actor(c), id, upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Cancel marks a booking cancelled.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Produce      json
// @Param        id   query     int  true  "Booking ID"
// @Success      200  {object}  domain.MessageResult
// @Failure      404  {object}  map[string]string
// @Router       /bookings [delete]
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := requireID(c, "Booking")
	if err != nil {
		return err
	}
	if err := h.bookings.Cancel(c.Request().Context(), middleware.Actor(c), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domain.MessageResult{Message: "Booking cancelled successfully"})
}
