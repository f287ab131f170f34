package booking

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNoSeatsSelected  = errors.New("no seats selected")
	ErrPNRExhausted     = errors.New("could not allocate a unique pnr")
	ErrPaymentFailed    = errors.New("payment failed")
	ErrValidationFailed = errors.New("please correct the highlighted fields")
)

// ValidationError aggregates every per-field message of a failed
// finalization. Passengers mirrors the input order with the error fields
// filled in.
type ValidationError struct {
	Passengers  []PassengerErrors
	MobileError string
	EmailError  string
	SeatError   string
}

type PassengerErrors struct {
	NameError string
	AgeError  string
	SeatError string
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

func (e *ValidationError) any() bool {
	if e.MobileError != "" || e.EmailError != "" || e.SeatError != "" {
		return true
	}
	for _, p := range e.Passengers {
		if p.NameError != "" || p.AgeError != "" || p.SeatError != "" {
			return true
		}
	}
	return false
}
