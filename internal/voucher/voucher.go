// Package voucher renders a booking into a printable one-page PDF.
package voucher

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

// FileName is the conventional file name of the voucher for booking id.
func FileName(id int64) string {
	return fmt.Sprintf("VOUCHER_%d.pdf", id)
}

// Render writes the voucher for b to w. issued is printed in the footer.
// Core PDF fonts only cover Latin-1, so other characters are replaced.
func Render(w io.Writer, b domain.Booking, issued time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Transfer voucher #%d", b.ID), false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRANSFER VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking      : #%d", b.ID),
		fmt.Sprintf("Status       : %s", safe(b.Status, "-")),
		fmt.Sprintf("Route        : %s -> %s", safe(b.FromLocation, "-"), safe(b.ToLocation, "-")),
		fmt.Sprintf("Date / time  : %s %s", safe(b.TravelDate, "-"), safe(b.TravelTime, "-")),
		fmt.Sprintf("Passengers   : %d", b.Passengers),
		fmt.Sprintf("Tariff       : %s", tariffLabel(b)),
		fmt.Sprintf("Total price  : %.2f RUB", b.TotalPrice),
		fmt.Sprintf("Payment      : %s (%s)", safe(b.PaymentMethod, "-"), safe(b.PaymentStatus, "-")),
	}
	if b.UserName != nil {
		lines = append(lines, fmt.Sprintf("Passenger    : %s", safe(*b.UserName, "-")))
	}
	if b.Phone != nil {
		lines = append(lines, fmt.Sprintf("Phone        : %s", safe(*b.Phone, "-")))
	}
	for _, s := range lines {
		pdf.Cell(0, 7, tr(s))
		pdf.Ln(7)
	}

	if b.Notes != nil && strings.TrimSpace(*b.Notes) != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Notes")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(*b.Notes), "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please show this voucher to the driver. The driver will meet you at the pickup point at the booked time.", "", "", false)
	pdf.Ln(2)
	pdf.Cell(0, 6, "Issued "+issued.Format("2006-01-02 15:04"))

	return pdf.Output(w)
}

// Bytes renders the voucher into memory.
func Bytes(b domain.Booking, issued time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, b, issued); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save renders the voucher into dir under FileName and returns the path.
func Save(dir string, b domain.Booking, issued time.Time) (string, error) {
	data, err := Bytes(b, issued)
	if err != nil {
		return "", fmt.Errorf("render voucher: %w", err)
	}
	path := filepath.Join(dir, FileName(b.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write voucher: %w", err)
	}
	return path, nil
}

func tariffLabel(b domain.Booking) string {
	name, category := "-", ""
	if b.TariffName != nil {
		name = safe(*b.TariffName, "-")
	}
	if b.Category != nil && *b.Category != "" {
		category = " / " + *b.Category
	}
	return name + category
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
