// Package ticket renders a booking into a printable e-ticket PDF, the
// artifact behind the confirmation screen's download action.
package ticket

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/nxtbus/nxtbus-go/internal/domain"
)

// Render produces the e-ticket PDF for a booking and a suggested filename.
func Render(b domain.Booking) ([]byte, string, error) {
	const op = "ticket.Render"

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("NxtBus E-Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "NXTBUS E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("PNR: %s", b.PNR))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Route      : %s -> %s", safe(b.FromCity), safe(b.ToCity)),
		fmt.Sprintf("Journey    : %s", safe(b.JourneyDate)),
		fmt.Sprintf("Operator   : %s (%s)", safe(b.Bus.OperatorName), safe(b.Bus.ClassTag)),
		fmt.Sprintf("Departure  : %s   Arrival: %s   (%s)",
			safe(b.Bus.DepartureTime), safe(b.Bus.ArrivalTime), safe(b.Bus.Duration)),
		fmt.Sprintf("Seats      : %s", safe(strings.Join(b.SelectedSeats, ", "))),
		fmt.Sprintf("Status     : %s", string(b.Status)),
		fmt.Sprintf("Booked on  : %s", safe(b.BookingDate)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passengers")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	for _, p := range b.Passengers {
		pdf.Cell(0, 7, fmt.Sprintf("%-6s %s (%d, %s)", p.SeatNumber, safe(p.Name), p.Age, safe(p.Gender)))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Total paid: Rs. %d", b.TotalAmount))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6,
		fmt.Sprintf("Contact: %s / %s. Please carry a valid ID proof for every passenger.",
			safe(b.ContactDetails.MobileNumber), safe(b.ContactDetails.EmailAddress)),
		"", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), fmt.Sprintf("ETICKET_%s.pdf", b.PNR), nil
}

func safe(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
