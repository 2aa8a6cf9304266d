package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/infrastructure/db/memory"
)

var (
	adminActor  = &domain.Actor{UserID: 1, Email: "admin@example.com", Role: domain.RoleAdmin}
	clientActor = &domain.Actor{UserID: 2, Email: "ann@example.com", Role: domain.RoleClient}
	otherActor  = &domain.Actor{UserID: 3, Email: "bo@example.com", Role: domain.RoleClient}
)

func newBookingFixture(t *testing.T) (*BookingService, *memory.CatalogRepository) {
	t.Helper()
	ctx := context.Background()
	catalog := memory.NewCatalogRepository()
	if err := catalog.Seed(ctx, time.Now()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	users := memory.NewUserRepository()
	if _, err := users.Create(ctx, domain.Account{User: domain.User{Email: "ann@example.com", FullName: "Ann", Phone: "+7911", Role: domain.RoleClient}}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return NewBookingService(memory.NewBookingRepository(), catalog, users), catalog
}

func bookingRequest() domain.BookingRequest {
	return domain.BookingRequest{
		FromLocation: "Sochi Airport",
		ToLocation:   "Pitsunda",
		TravelDate:   "2026-07-01",
		TravelTime:   "12:30",
		TariffID:     2,
	}
}

func TestBookingService_Create_Defaults(t *testing.T) {
	svc, _ := newBookingFixture(t)

	conf, err := svc.Create(context.Background(), clientActor, bookingRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if conf.BookingID == 0 || conf.Status != domain.StatusNew || conf.TotalPrice != 3500 || conf.Message == "" {
		t.Fatalf("unexpected confirmation: %+v", conf)
	}

	b, err := svc.Get(context.Background(), clientActor, conf.BookingID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if b.Passengers != 1 || b.PaymentMethod != domain.DefaultPaymentMethod || b.PaymentStatus != domain.PaymentPending {
		t.Fatalf("defaults not applied: %+v", b)
	}
	if b.TariffName == nil || *b.TariffName != "Comfort" {
		t.Fatalf("expected tariff name, got %v", b.TariffName)
	}
	if b.UserEmail != nil {
		t.Fatalf("contact columns must be hidden from clients")
	}
}

func TestBookingService_Create_GuestNeedsContact(t *testing.T) {
	svc, _ := newBookingFixture(t)

	if _, err := svc.Create(context.Background(), nil, bookingRequest()); !errors.Is(err, domain.ErrGuestContact) {
		t.Fatalf("expected ErrGuestContact, got %v", err)
	}

	req := bookingRequest()
	req.GuestName, req.GuestPhone = "Guest", "+7000"
	if _, err := svc.Create(context.Background(), nil, req); err != nil {
		t.Fatalf("guest create: %v", err)
	}
}

func TestBookingService_Create_Rejections(t *testing.T) {
	svc, catalog := newBookingFixture(t)
	ctx := context.Background()

	req := bookingRequest()
	req.ToLocation = " "
	if _, err := svc.Create(ctx, clientActor, req); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}

	req = bookingRequest()
	req.TariffID = 99
	if _, err := svc.Create(ctx, clientActor, req); !errors.Is(err, domain.ErrInvalidTariff) {
		t.Fatalf("expected ErrInvalidTariff, got %v", err)
	}

	tariff, _ := catalog.Tariff(ctx, 2)
	tariff.IsActive = false
	_ = catalog.SaveTariff(ctx, *tariff)
	if _, err := svc.Create(ctx, clientActor, bookingRequest()); !errors.Is(err, domain.ErrInvalidTariff) {
		t.Fatalf("expected ErrInvalidTariff for inactive tariff, got %v", err)
	}
}

func TestBookingService_List_Scoping(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	for _, a := range []*domain.Actor{clientActor, otherActor, clientActor} {
		if _, err := svc.Create(ctx, a, bookingRequest()); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	if _, err := svc.List(ctx, nil); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	own, err := svc.List(ctx, clientActor)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(own.Bookings) != 2 || own.Bookings[0].ID <= own.Bookings[1].ID {
		t.Fatalf("expected own bookings newest first, got %+v", own.Bookings)
	}

	all, err := svc.List(ctx, adminActor)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all.Bookings) != 3 {
		t.Fatalf("admin should see all bookings, got %d", len(all.Bookings))
	}
	last := all.Bookings[0]
	if last.UserName == nil || *last.UserName != "Ann" || last.Phone == nil || *last.Phone != "+7911" {
		t.Fatalf("admin listing lacks contact columns: %+v", last)
	}
}

func TestBookingService_Update(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()
	conf, _ := svc.Create(ctx, clientActor, bookingRequest())

	status := domain.StatusConfirmed
	upd := domain.BookingUpdate{Status: &status}

	if _, err := svc.Update(ctx, clientActor, conf.BookingID, upd); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Update(ctx, adminActor, conf.BookingID, domain.BookingUpdate{}); !errors.Is(err, domain.ErrNoFields) {
		t.Fatalf("expected ErrNoFields, got %v", err)
	}
	if _, err := svc.Update(ctx, adminActor, 999, upd); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}

	res, err := svc.Update(ctx, adminActor, conf.BookingID, upd)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.Status != domain.StatusConfirmed || res.PaymentStatus != domain.PaymentPending {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestBookingService_Cancel(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()
	conf, _ := svc.Create(ctx, clientActor, bookingRequest())

	if err := svc.Cancel(ctx, otherActor, conf.BookingID); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound for foreign booking, got %v", err)
	}
	if err := svc.Cancel(ctx, clientActor, conf.BookingID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	b, _ := svc.Get(ctx, clientActor, conf.BookingID)
	if b.Status != domain.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", b.Status)
	}
}

func TestBookingService_Stats(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	completed := domain.StatusCompleted
	for i := 0; i < 3; i++ {
		conf, err := svc.Create(ctx, clientActor, bookingRequest())
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if i < 2 {
			if _, err := svc.Update(ctx, adminActor, conf.BookingID, domain.BookingUpdate{Status: &completed}); err != nil {
				t.Fatalf("update: %v", err)
			}
		}
	}

	st, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.TotalBookings != 3 || st.CompletedBookings != 2 || st.NewBookings != 1 {
		t.Fatalf("unexpected counts: %+v", st)
	}
	if st.TotalRevenue != 7000 {
		t.Fatalf("expected revenue over completed bookings only, got %v", st.TotalRevenue)
	}
	if len(st.DailyBookings) != 1 || st.DailyBookings[0].Count != 3 {
		t.Fatalf("unexpected daily buckets: %+v", st.DailyBookings)
	}
}
