package payment

import (
	"context"
	"errors"
	"testing"
)

func TestSandboxApproves(t *testing.T) {
	gw := NewSandbox()

	res, err := gw.Checkout(context.Background(), Request{
		AmountSubunits: 240000,
		Currency:       "INR",
		PayerName:      "Asha Rao",
		Contact:        "9876543210",
		Email:          "asha@example.com",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if res.PaymentID == "" {
		t.Error("approved checkout returned empty payment id")
	}
}

func TestSandboxRejectsNonPositiveAmount(t *testing.T) {
	gw := NewSandbox()

	_, err := gw.Checkout(context.Background(), Request{AmountSubunits: 0, Currency: "INR"})
	var perr *Error
	if !errors.As(err, &perr) || perr.Code != CodeInvalidAmount {
		t.Fatalf("checkout of zero amount = %v, want CodeInvalidAmount", err)
	}
}

func TestSandboxDeclineMode(t *testing.T) {
	gw := &Sandbox{Decline: true}

	_, err := gw.Checkout(context.Background(), Request{AmountSubunits: 100, Currency: "INR"})
	var perr *Error
	if !errors.As(err, &perr) || perr.Code != CodeDeclined {
		t.Fatalf("declined checkout = %v, want CodeDeclined", err)
	}
}
