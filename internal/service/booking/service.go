package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/nxtbus/nxtbus-go/internal/domain"
	"github.com/nxtbus/nxtbus-go/internal/payment"
	"github.com/nxtbus/nxtbus-go/internal/pnr"
	"github.com/nxtbus/nxtbus-go/internal/repository"
	"github.com/nxtbus/nxtbus-go/internal/validate"
)

const bookingDateLayout = "02 Jan 2006, 03:04 PM"

type Config struct {
	Currency       string
	MaxPNRAttempts int
}

// Service finalizes bookings and serves the persisted collection. A
// finalization validates the passenger set, runs the payment gate, allocates
// a PNR, and saves; nothing is persisted before payment succeeds.
type Service struct {
	repo    *repository.BookingRepo
	gateway payment.Gateway
	logger  *slog.Logger
	cfg     Config
	now     func() time.Time
}

func New(repo *repository.BookingRepo, gateway payment.Gateway, logger *slog.Logger, cfg Config) *Service {
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}
	if cfg.MaxPNRAttempts <= 0 {
		cfg.MaxPNRAttempts = 5
	}

	return &Service{
		repo:    repo,
		gateway: gateway,
		logger:  logger,
		cfg:     cfg,
		now:     time.Now,
	}
}

// FinalizeInput carries everything the booking flow has collected: the
// chosen bus, the ledger's selection, and the form data.
type FinalizeInput struct {
	Bus           domain.Bus
	SelectedSeats []domain.Seat
	Passengers    []domain.PassengerInput
	Contact       domain.ContactDetails
	JourneyDate   string
	FromCity      string
	ToCity        string
	TotalAmount   int
}

// Finalize runs the whole booking pipeline.
//
// Returns:
//   - *domain.Booking: the persisted record on success.
//   - error: *ValidationError with per-field messages when the form is bad;
//     an error wrapping ErrPaymentFailed (and carrying the *payment.Error)
//     when the gateway declines; ErrPNRExhausted when no unique PNR could be
//     allocated.
func (s *Service) Finalize(ctx context.Context, in FinalizeInput) (*domain.Booking, error) {
	const op = "service.booking.Finalize"

	if len(in.SelectedSeats) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoSeatsSelected)
	}

	passengers, verr := s.validateInput(in)
	if verr != nil {
		return nil, fmt.Errorf("%s: %w", op, verr)
	}

	payReq := payment.Request{
		AmountSubunits: int64(in.TotalAmount) * 100,
		Currency:       s.cfg.Currency,
		PayerName:      passengers[0].Name,
		Description:    fmt.Sprintf("Bus ticket %s to %s on %s", in.FromCity, in.ToCity, in.JourneyDate),
		Contact:        in.Contact.MobileNumber,
		Email:          in.Contact.EmailAddress,
	}

	payRes, err := s.gateway.Checkout(ctx, payReq)
	if err != nil {
		// No booking state exists yet; the caller may simply retry.
		return nil, fmt.Errorf("%s: %w: %w", op, ErrPaymentFailed, err)
	}

	seatNumbers := make([]string, 0, len(in.SelectedSeats))
	for _, seat := range in.SelectedSeats {
		seatNumbers = append(seatNumbers, seat.Number)
	}

	booking := domain.Booking{
		Bus:            in.Bus,
		SelectedSeats:  seatNumbers,
		Passengers:     passengers,
		ContactDetails: in.Contact,
		JourneyDate:    in.JourneyDate,
		FromCity:       in.FromCity,
		ToCity:         in.ToCity,
		TotalAmount:    in.TotalAmount,
		BookingDate:    s.now().Format(bookingDateLayout),
		Status:         domain.StatusConfirmed,
	}

	for attempt := 0; attempt < s.cfg.MaxPNRAttempts; attempt++ {
		code, err := pnr.Generate()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		booking.PNR = code
		err = s.repo.Save(ctx, booking)
		if errors.Is(err, repository.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if s.logger != nil {
			s.logger.Info("booking confirmed",
				"pnr", booking.PNR,
				"payment_id", payRes.PaymentID,
				"seats", len(seatNumbers),
				"amount", booking.TotalAmount,
			)
		}
		return &booking, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrPNRExhausted)
}

// Bookings lists every stored booking.
func (s *Service) Bookings(ctx context.Context) ([]domain.Booking, error) {
	const op = "service.booking.Bookings"

	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return bookings, nil
}

// Booking looks one booking up by PNR.
//
// Returns:
//   - error: booking.ErrBookingNotFound if the PNR is absent.
func (s *Service) Booking(ctx context.Context, code string) (*domain.Booking, error) {
	const op = "service.booking.Booking"

	b, err := s.repo.FindByPNR(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %s: %w", op, code, ErrBookingNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

// Cancel transitions the booking's status to CANCELLED. The record stays in
// the store so the ticket list can show it as cancelled.
func (s *Service) Cancel(ctx context.Context, code string) error {
	const op = "service.booking.Cancel"

	err := s.repo.SetStatus(ctx, code, domain.StatusCancelled)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s: %s: %w", op, code, ErrBookingNotFound)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.logger != nil {
		s.logger.Info("booking cancelled", "pnr", code)
	}
	return nil
}

// Delete removes the booking record for good.
func (s *Service) Delete(ctx context.Context, code string) error {
	const op = "service.booking.Delete"

	err := s.repo.Delete(ctx, code)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s: %s: %w", op, code, ErrBookingNotFound)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.logger != nil {
		s.logger.Info("booking deleted", "pnr", code)
	}
	return nil
}

// validateInput checks the passenger set against the seat selection and runs
// every field validator, collecting all messages before reporting.
func (s *Service) validateInput(in FinalizeInput) ([]domain.Passenger, *ValidationError) {
	verr := &ValidationError{Passengers: make([]PassengerErrors, len(in.Passengers))}

	selected := make(map[string]bool, len(in.SelectedSeats))
	for _, seat := range in.SelectedSeats {
		selected[seat.Number] = true
	}

	if len(in.Passengers) != len(in.SelectedSeats) {
		verr.SeatError = fmt.Sprintf("need one passenger per seat: %d seats, %d passengers",
			len(in.SelectedSeats), len(in.Passengers))
	}

	passengers := make([]domain.Passenger, 0, len(in.Passengers))
	for i, p := range in.Passengers {
		pe := &verr.Passengers[i]

		if res := validate.Name(p.Name); !res.Valid {
			pe.NameError = res.Message
		}
		if res := validate.Age(p.Age); !res.Valid {
			pe.AgeError = res.Message
		}
		if !selected[p.SeatNumber] {
			pe.SeatError = fmt.Sprintf("seat %s is not part of the selection", p.SeatNumber)
		}

		age, _ := strconv.Atoi(p.Age)
		passengers = append(passengers, domain.Passenger{
			Name:       p.Name,
			Age:        age,
			Gender:     p.Gender,
			SeatNumber: p.SeatNumber,
		})
	}

	if res := validate.Mobile(in.Contact.MobileNumber); !res.Valid {
		verr.MobileError = res.Message
	}
	if res := validate.Email(in.Contact.EmailAddress); !res.Valid {
		verr.EmailError = res.Message
	}

	if verr.any() {
		return nil, verr
	}
	return passengers, nil
}
