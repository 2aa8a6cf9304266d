package voucher

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

func sampleBooking() domain.Booking {
	tariff, notes := "Comfort", "Child seat, please"
	return domain.Booking{
		ID:            17,
		FromLocation:  "Sochi Airport",
		ToLocation:    "Sukhum",
		TravelDate:    "2026-07-01",
		TravelTime:    "10:30",
		Passengers:    3,
		TariffName:    &tariff,
		TotalPrice:    3500,
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentPending,
		PaymentMethod: domain.DefaultPaymentMethod,
		Notes:         &notes,
	}
}

func TestBytes_ProducesPDF(t *testing.T) {
	data, err := Bytes(sampleBooking(), time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestRender_NonLatinText(t *testing.T) {
	b := sampleBooking()
	b.FromLocation = "Аэропорт Сочи"
	var buf bytes.Buffer
	if err := Render(&buf, b, time.Now()); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(dir, sampleBooking(), time.Now())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Base(path) != "VOUCHER_17.pdf" {
		t.Fatalf("unexpected file name: %s", path)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("voucher not written: %v", err)
	}
}
