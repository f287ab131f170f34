package payment

import (
	"context"

	"github.com/google/uuid"
)

// Error codes reported by the sandbox, mirroring the checkout SDK's result
// surface.
const (
	CodeInvalidAmount = 1
	CodeDeclined      = 2
)

// Sandbox is an offline Gateway that approves every well-formed checkout
// with a fresh payment id. Decline forces failures for tests and demos of
// the error path.
type Sandbox struct {
	Decline bool
}

func NewSandbox() *Sandbox {
	return &Sandbox{}
}

func (s *Sandbox) Checkout(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if req.AmountSubunits <= 0 {
		return Result{}, &Error{Code: CodeInvalidAmount, Message: "amount must be positive"}
	}

	if s.Decline {
		return Result{}, &Error{Code: CodeDeclined, Message: "payment was declined"}
	}

	return Result{PaymentID: "pay_" + uuid.NewString()}, nil
}
