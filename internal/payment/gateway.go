// Package payment is the checkout collaborator boundary. The core treats the
// gateway strictly as a pass/fail gate before a booking is finalized; it does
// no settlement or reconciliation.
package payment

import (
	"context"
	"fmt"
)

// Request describes one checkout. Amount is in the smallest currency subunit
// (paise for INR).
type Request struct {
	AmountSubunits int64
	Currency       string
	PayerName      string
	Description    string
	Contact        string
	Email          string
	// UPIOnly restricts the checkout to UPI, hiding cards and netbanking.
	UPIOnly bool
}

// Result carries the gateway's opaque payment identifier on success.
type Result struct {
	PaymentID string
}

// Error is a gateway failure or a user cancellation, distinct from
// validation errors.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("payment failed (code %d): %s", e.Code, e.Message)
}

type Gateway interface {
	Checkout(ctx context.Context, req Request) (Result, error)
}
