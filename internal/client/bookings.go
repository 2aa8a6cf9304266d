package client

import (
	"context"
	"net/http"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

// CreateBooking submits a new booking. The token is attached when present so
// the server can link the booking to the account; guests book without one.
func (c *Client) CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.BookingConfirmation, error) {
	cl := call{
		op:       "create_booking",
		kind:     domain.ErrBooking,
		method:   http.MethodPost,
		endpoint: c.endpoints.Bookings,
		body:     req,
		auth:     true,
		fallback: "Failed to create booking",
	}
	if err := c.checkInput(cl, req); err != nil {
		return nil, err
	}

	var res domain.BookingConfirmation
	if err := c.send(ctx, cl, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Bookings lists the caller's bookings; admins get every booking. The request
// is sent even without a session and the server's answer is surfaced as is.
func (c *Client) Bookings(ctx context.Context) (*domain.BookingList, error) {
	var res domain.BookingList
	err := c.send(ctx, call{
		op:       "get_bookings",
		kind:     domain.ErrBooking,
		method:   http.MethodGet,
		endpoint: c.endpoints.Bookings,
		auth:     true,
		fallback: "Failed to fetch bookings",
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Booking fetches a single booking by id.
func (c *Client) Booking(ctx context.Context, id int64) (*domain.Booking, error) {
	var res domain.Booking
	err := c.send(ctx, call{
		op:       "get_booking",
		kind:     domain.ErrBooking,
		method:   http.MethodGet,
		endpoint: c.endpoints.Bookings,
		query:    idQuery(id),
		auth:     true,
		fallback: "Failed to fetch booking",
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateBooking sends a partial update. Only non-nil fields are transmitted.
func (c *Client) UpdateBooking(ctx context.Context, id int64, upd domain.BookingUpdate) (*domain.BookingUpdateResult, error) {
	var res domain.BookingUpdateResult
	err := c.send(ctx, call{
		op:       "update_booking",
		kind:     domain.ErrBooking,
		method:   http.MethodPut,
		endpoint: c.endpoints.Bookings,
		query:    idQuery(id),
		body:     upd,
		auth:     true,
		fallback: "Failed to update booking",
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CancelBooking asks the server to cancel a booking.
func (c *Client) CancelBooking(ctx context.Context, id int64) (*domain.MessageResult, error) {
	var res domain.MessageResult
	err := c.send(ctx, call{
		op:       "cancel_booking",
		kind:     domain.ErrBooking,
		method:   http.MethodDelete,
		endpoint: c.endpoints.Bookings,
		query:    idQuery(id),
		auth:     true,
		fallback: "Failed to cancel booking",
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
