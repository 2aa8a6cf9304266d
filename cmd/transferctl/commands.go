package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/core/ports"
	"github.com/abkhaztransfer/transfer-client/internal/voucher"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks argument errors; they exit with exitUsage.
var errUsage = errors.New("usage")

type command struct {
	summary string
	run     func(ctx context.Context, api ports.TransferAPI, args []string, out io.Writer) error
}

var commands = map[string]command{
	"register":       {"create an account and start a session", cmdRegister},
	"login":          {"start a session", cmdLogin},
	"logout":         {"forget the stored session", cmdLogout},
	"whoami":         {"show the stored session user", cmdWhoami},
	"verify":         {"check the stored token with the server", cmdVerify},
	"book":           {"create a booking", cmdBook},
	"bookings":       {"list bookings", cmdBookings},
	"booking":        {"show one booking", cmdBooking},
	"update-booking": {"change booking status, payment, vehicle or notes (admin)", cmdUpdateBooking},
	"cancel":         {"cancel a booking", cmdCancel},
	"stats":          {"booking statistics (admin)", cmdStats},
	"tariffs":        {"list tariffs (admin)", cmdTariffs},
	"update-tariff":  {"change a tariff (admin)", cmdUpdateTariff},
	"vehicles":       {"list vehicles (admin)", cmdVehicles},
	"update-vehicle": {"change a vehicle (admin)", cmdUpdateVehicle},
	"ads":            {"list advertisements (admin)", cmdAds},
	"voucher":        {"save a booking voucher as PDF", cmdVoucher},
}

// run executes one command and returns the process exit code. Results go to
// stdout as JSON, failures to stderr as the bare error message.
func run(ctx context.Context, api ports.TransferAPI, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage(stderr)
		return exitUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		usage(stderr)
		return exitUsage
	}

	err := cmd.run(ctx, api, args[1:], stdout)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitUsage
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "%s: %v\n", args[0], err)
		return exitUsage
	default:
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}
}

func usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "usage: transferctl <command> [flags]")
	fmt.Fprintln(w)
	for _, name := range names {
		fmt.Fprintf(w, "  %-15s %s\n", name, commands[name].summary)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// flags wraps a FlagSet and remembers which flags were given, so partial
// updates only carry what the user typed.
type flags struct {
	*flag.FlagSet
	given map[string]bool
}

func newFlags(name string) *flags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return &flags{FlagSet: fs}
}

func (f *flags) parse(args []string) error {
	if err := f.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	f.given = map[string]bool{}
	f.Visit(func(fl *flag.Flag) { f.given[fl.Name] = true })
	return nil
}

func (f *flags) set(name string) bool { return f.given[name] }

func requireID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: -id is required", errUsage)
	}
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// --- session ---

func cmdRegister(ctx context.Context, api ports.TransferAPI, args []string, out io.Writer) error {
	fs := newFlags("register")
	var in domain.RegisterInput
	fs.StringVar(&in.Email, "email", "", "account email")
	fs.StringVar(&in.Password, "password", "", "password, at least 6 characters")
	fs.StringVar(&in.FullName, "name", "", "full name")
	fs.StringVar(&in.Phone, "phone", "", "contact phone")
	if err := fs.parse(args); err != nil {
		return err
	}
	res, err := api.Register(ctx, in)
	if err != nil {
		return err
	}
	return printJSON(out, res.User)
}

func cmdLogin(ctx context.Context, api ports.TransferAPI, args []string, out io.Writer) error {
	fs := newFlags("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "password")
	if err := fs.parse(args); err != nil {
		return err
	}
	res, err := api.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	return printJSON(out, res.User)
}

func cmdLogout(ctx context.Context, api ports.TransferAPI, _ []string, out io.Writer) error {
	api.Logout(ctx)
	return printJSON(out, domain.MessageResult{Message: "Logged out"})
}

type whoami struct {
	Authenticated bool         `json:"authenticated"`
	Admin         bool         `json:"admin"`
	User          *domain.User `json:"user"`
}

func cmdWhoami(ctx context.Context, api ports.TransferAPI, _ []string, out io.Writer) error {
	return printJSON(out, whoami{
		Authenticated: api.IsAuthenticated(ctx),
		Admin:         api.IsAdmin(ctx),
		User:          api.CurrentUser(ctx),
	})
}

func cmdVerify(ctx context.Context, api ports.TransferAPI, _ []string, out io.Writer) error {
	res, err := api.VerifySession(ctx)
	if err != nil {
		return err
	}
	return printJSON(out, res)
}

// --- bookings ---

func cmdBook(ctx context.Context, api ports.TransferAPI, args []string, out io.Writer) error {
	fs := newFlags("book")
	var req domain.BookingRequest
	fs.StringVar(&req.FromLocation, "from", "", "pickup location")
	fs.StringVar(&req.ToLocation, "to", "", "destination")
	fs.StringVar(&req.TravelDate, "date", "", "travel date, YYYY-MM-DD")
	fs.StringVar(&req.TravelTime, "time", "", "pickup time, HH:MM")
	fs.IntVar(&req.Passengers, "passengers", 1, "number of passengers")
	fs.Int64Var(&req.TariffID, "tariff", 0, "tariff id")
	fs.StringVar(&req.PaymentMethod, "payment", domain.DefaultPaymentMethod, "payment method")
	fs.StringVar(&req.Notes, "notes", "", "notes for the driver")
	fs.StringVar(&req.GuestName, "guest-name", "", "contact name when not logged in")
	fs.StringVar(&req.GuestPhone, "guest-phone", "", "contact phone when not logged in")
	fs.StringVar(&req.GuestEmail, "guest-email", "", "contact email when not logged in")
	if err := fs.parse(args); err != nil {
		return err
	}
	res, err := api.CreateBooking(ctx, req)
	if err != nil {
		return err
	}
	return printJSON(out, res)
}

func cmdBookings(ctx context.Context, api ports.TransferAPI, _ []string, out io.Writer) error {
	res, err := api.Bookings(ctx)
	if err != nil {
		return err
	}
	return printJSON(out, res)
}

func cmdBooking(ctx context.Context, api ports.TransferAPI, args []string, out io.Writer) error {
	fs := newFlags("booking")
	id := fs.Int64("id", 0, "booking id")
	if err := fs.parse(args); err != nil {
		return err
	}
	if err := requireID(*id); err != nil {
		return err
	}
	res, err := api.Booking(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(out, res)
}

func cmdUpdateBooking(ctx context.Context, api ports.TransferAPI, args []string, out io.Writer) error {
	fs := newFlags("update-booking")
	id := fs.Int64("id", 0, "booking id")
	status := fs.String("status", "", "new, confirmed, completed or cancelled")
	payment := fs.String("payment-status", "", "payment status")
	vehicle := fs.Int64("vehicle", 0, "assigned vehicle id")
	notes := fs.String("notes", "", "notes")
	if err := fs.parse(args); err != nil {
		return err
	}
	if err := requireID(*id); err != nil {
		return err
	}

	var upd domain.BookingUpdate
	if fs.set("status") {
		upd.Status = status
	}
	if fs.set("payment-status") {
		upd.PaymentStatus = payment
	}
	if fs.set("vehicle") {
		upd.VehicleID = vehicle
	}
	if fs.set("notes") {
		upd.Notes = notes
	}
	res, err := api.UpdateBooking(ctx, *id, upd)
	if err != nil {
		return err
	}
	return printJSON(out, res)
}

func cmdCancel(ctx context.Context, api ports.TransferAPI, args []string, out io.Writer) error {
	fs := newFlags("cancel")
	id := fs.Int64("id", 0, "booking id")
	if err := fs.parse(args); err != nil {
		return err
	}
	if err := requireID(*id); err != nil {
		return err
	}
	res, err := api.CancelBooking(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(out, res)
}

func cmdVoucher(ctx context.Context, api ports.TransferAPI, args []string, out io.Writer) error {
	fs := newFlags("voucher")
	id := fs.Int64("id", 0, "booking id")
	dir := fs.String("dir", ".", "output directory")
	if err := fs.parse(args); err != nil {
		return err
	}
	if err := requireID(*id); err != nil {
		return err
	}
	b, err := api.Booking(ctx, *id)
	if err != nil {
		return err
	}
	path, err := voucher.Save(*dir, *b, time.Now())
	if err != nil {
		return err
	}
	return printJSON(out, map[string]string{"file": path})
}

// --- admin ---

func cmdStats(ctx context.Context, api ports.TransferAPI, _ []string, out io.Writer) error {
	res, err := api.AdminStats(ctx)
	if err != nil {
		return err
	}
	return printJSON(out, res)
}

func cmdTariffs(ctx context.Context, api ports.TransferAPI, _ []string, out io.Writer) error {
	res, err := api.Tariffs(ctx)
	if err != nil {
		return err
	}
	return printJSON(out, res)
}

func cmdUpdateTariff(ctx context.Context, api ports.TransferAPI, args []string, out io.Writer) error {
	fs := newFlags("update-tariff")
	id := fs.Int64("id", 0, "tariff id")
	name := fs.String("name", "", "name")
	category := fs.String("category", "", "category")
	description := fs.String("description", "", "description")
	basePrice := fs.Float64("base-price", 0, "base price")
	perKm := fs.Float64("price-per-km", 0, "price per km")
	maxPassengers := fs.Int("max-passengers", 0, "passenger limit")
	features := fs.String("features", "", "comma separated features")
	active := fs.Bool("active", true, "whether the tariff can be booked")
	if err := fs.parse(args); err != nil {
		return err
	}
	if err := requireID(*id); err != nil {
		return err
	}

	var upd domain.TariffUpdate
	if fs.set("name") {
		upd.Name = name
	}
	if fs.set("category") {
		upd.Category = category
	}
	if fs.set("description") {
		upd.Description = description
	}
	if fs.set("base-price") {
		p := domain.Amount(*basePrice)
		upd.BasePrice = &p
	}
	if fs.set("price-per-km") {
		p := domain.Amount(*perKm)
		upd.PricePerKm = &p
	}
	if fs.set("max-passengers") {
		upd.MaxPassengers = maxPassengers
	}
	if fs.set("features") {
		list := splitList(*features)
		upd.Features = &list
	}
	if fs.set("active") {
		upd.IsActive = active
	}
	res, err := api.UpdateTariff(ctx, *id, upd)
	if err != nil {
		return err
	}
	return printJSON(out, res)
}

func cmdVehicles(ctx context.Context, api ports.TransferAPI, _ []string, out io.Writer) error {
	res, err := api.Vehicles(ctx)
	if err != nil {
		return err
	}
	return printJSON(out, res)
}

func cmdUpdateVehicle(ctx context.Context, api ports.TransferAPI, args []string, out io.Writer) error {
	fs := newFlags("update-vehicle")
	id := fs.Int64("id", 0, "vehicle id")
	name := fs.String("name", "", "name")
	model := fs.String("model", "", "model")
	category := fs.String("category", "", "category")
	seats := fs.Int("seats", 0, "seats")
	image := fs.String("image", "", "image URL")
	features := fs.String("features", "", "comma separated features")
	active := fs.Bool("active", true, "whether the vehicle is in service")
	if err := fs.parse(args); err != nil {
		return err
	}
	if err := requireID(*id); err != nil {
		return err
	}

	var upd domain.VehicleUpdate
	if fs.set("name") {
		upd.Name = name
	}
	if fs.set("model") {
		upd.Model = model
	}
	if fs.set("category") {
		upd.Category = category
	}
	if fs.set("seats") {
		upd.Seats = seats
	}
	if fs.set("image") {
		upd.ImageURL = image
	}
	if fs.set("features") {
		list := splitList(*features)
		upd.Features = &list
	}
	if fs.set("active") {
		upd.IsActive = active
	}
	res, err := api.UpdateVehicle(ctx, *id, upd)
	if err != nil {
		return err
	}
	return printJSON(out, res)
}

func cmdAds(ctx context.Context, api ports.TransferAPI, _ []string, out io.Writer) error {
	res, err := api.Advertisements(ctx)
	if err != nil {
		return err
	}
	return printJSON(out, res)
}
