package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/core/ports"
)

const (
	timestampLayout = "2006-01-02T15:04:05"
	dateLayout      = "2006-01-02"

	listLimit      = 100
	statsWindow    = 30 * 24 * time.Hour
	createdMessage = "Booking created successfully. We will contact you within 5 minutes."
)

// BookingService owns booking creation, listing, admin updates,
// cancellation and the dashboard statistics.
type BookingService struct {
	bookings ports.BookingRepository
	catalog  ports.CatalogRepository
	users    ports.UserRepository
	now      func() time.Time
}

var _ ports.BookingService = (*BookingService)(nil)

func NewBookingService(bookings ports.BookingRepository, catalog ports.CatalogRepository, users ports.UserRepository) *BookingService {
	return &BookingService{bookings: bookings, catalog: catalog, users: users, now: time.Now}
}

// Create books a transfer. Guests must leave a name and phone; the price is
// the base price of an active tariff.
func (s *BookingService) Create(ctx context.Context, actor *domain.Actor, req domain.BookingRequest) (*domain.BookingConfirmation, error) {
	if blank(req.FromLocation) || blank(req.ToLocation) || blank(req.TravelDate) || blank(req.TravelTime) {
		return nil, domain.ErrMissingFields
	}
	if actor == nil && (blank(req.GuestName) || blank(req.GuestPhone)) {
		return nil, domain.ErrGuestContact
	}
	if req.Passengers <= 0 {
		req.Passengers = 1
	}
	if blank(req.PaymentMethod) {
		req.PaymentMethod = domain.DefaultPaymentMethod
	}

	tariff, err := s.catalog.Tariff(ctx, req.TariffID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && !tariff.IsActive) {
		return nil, domain.ErrInvalidTariff
	}
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	rec := domain.BookingRecord{
		Booking: domain.Booking{
			FromLocation:  req.FromLocation,
			ToLocation:    req.ToLocation,
			TravelDate:    req.TravelDate,
			TravelTime:    req.TravelTime,
			Passengers:    req.Passengers,
			TariffName:    ptr(tariff.Name),
			Category:      ptr(tariff.Category),
			TotalPrice:    tariff.BasePrice.Float(),
			Status:        domain.StatusNew,
			PaymentStatus: domain.PaymentPending,
			PaymentMethod: req.PaymentMethod,
			CreatedAt:     now.Format(timestampLayout),
		},
		TariffID:   tariff.ID,
		GuestName:  req.GuestName,
		GuestPhone: req.GuestPhone,
		GuestEmail: req.GuestEmail,
		Created:    now,
	}
	if req.Notes != "" {
		rec.Notes = ptr(req.Notes)
	}
	s.attachContact(ctx, actor, &rec)

	created, err := s.bookings.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	return &domain.BookingConfirmation{
		BookingID:  created.ID,
		Status:     created.Status,
		TotalPrice: created.TotalPrice,
		Message:    createdMessage,
	}, nil
}

// attachContact fills the contact columns admins see in listings.
func (s *BookingService) attachContact(ctx context.Context, actor *domain.Actor, rec *domain.BookingRecord) {
	if actor == nil {
		rec.UserName = ptr(rec.GuestName)
		rec.Phone = ptr(rec.GuestPhone)
		if rec.GuestEmail != "" {
			rec.UserEmail = ptr(rec.GuestEmail)
		}
		return
	}

	rec.UserID = actor.UserID
	rec.UserEmail = ptr(actor.Email)
	if acc, err := s.users.FindByEmail(ctx, actor.Email); err == nil {
		rec.UserName = ptr(acc.FullName)
		if acc.Phone != "" {
			rec.Phone = ptr(acc.Phone)
		}
	}
}

// List returns every booking to admins and the caller's own to clients.
func (s *BookingService) List(ctx context.Context, actor *domain.Actor) (*domain.BookingList, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	var owner int64
	if !actor.IsAdmin() {
		owner = actor.UserID
	}
	recs, err := s.bookings.List(ctx, owner, listLimit)
	if err != nil {
		return nil, err
	}

	list := &domain.BookingList{Bookings: make([]domain.Booking, 0, len(recs))}
	for _, r := range recs {
		list.Bookings = append(list.Bookings, view(actor, r))
	}
	return list, nil
}

func (s *BookingService) Get(ctx context.Context, actor *domain.Actor, id int64) (*domain.Booking, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	rec, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Owns(rec.UserID) {
		return nil, domain.ErrBookingNotFound
	}
	b := view(actor, *rec)
	return &b, nil
}

// Update applies an admin edit to status, payment status, vehicle or notes.
func (s *BookingService) Update(ctx context.Context, actor *domain.Actor, id int64, upd domain.BookingUpdate) (*domain.BookingUpdateResult, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if upd.Empty() {
		return nil, domain.ErrNoFields
	}

	rec, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(&rec.Booking)
	if err := s.bookings.Save(ctx, *rec); err != nil {
		return nil, err
	}
	return &domain.BookingUpdateResult{
		BookingID:     rec.ID,
		Status:        rec.Status,
		PaymentStatus: rec.PaymentStatus,
	}, nil
}

// Cancel marks a booking cancelled. Clients may only cancel their own.
func (s *BookingService) Cancel(ctx context.Context, actor *domain.Actor, id int64) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	rec, err := s.bookings.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.Owns(rec.UserID) {
		return domain.ErrBookingNotFound
	}
	rec.Status = domain.StatusCancelled
	return s.bookings.Save(ctx, *rec)
}

// Stats counts bookings by status, sums revenue over completed ones and
// buckets the last 30 days by creation date, newest first.
func (s *BookingService) Stats(ctx context.Context) (*domain.Stats, error) {
	recs, err := s.bookings.List(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	st := &domain.Stats{TotalBookings: len(recs), DailyBookings: []domain.DailyCount{}}
	since := s.now().UTC().Add(-statsWindow).Truncate(24 * time.Hour)
	daily := map[string]int{}
	for _, r := range recs {
		switch r.Status {
		case domain.StatusNew:
			st.NewBookings++
		case domain.StatusConfirmed:
			st.ConfirmedBookings++
		case domain.StatusCompleted:
			st.CompletedBookings++
			st.TotalRevenue += r.TotalPrice
		case domain.StatusCancelled:
			st.CancelledBookings++
		}
		if !r.Created.Before(since) {
			daily[r.Created.UTC().Format(dateLayout)]++
		}
	}

	for day, n := range daily {
		st.DailyBookings = append(st.DailyBookings, domain.DailyCount{Date: day, Count: n})
	}
	sort.Slice(st.DailyBookings, func(i, j int) bool {
		return st.DailyBookings[i].Date > st.DailyBookings[j].Date
	})
	return st, nil
}

// view hides contact columns from non-admin callers.
func view(actor *domain.Actor, r domain.BookingRecord) domain.Booking {
	b := r.Booking
	if !actor.IsAdmin() {
		b.UserName, b.UserEmail, b.Phone = nil, nil, nil
	}
	return b
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func ptr[T any](v T) *T {
	return &v
}
