// Package validate holds the passenger and contact field validators used by
// the booking flow. All rules are independent; there are no cross-field
// checks.
package validate

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
)

const (
	MinAge = 1
	MaxAge = 120
)

var (
	namePattern   = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// Result is a validity flag plus a human-readable message. Message is empty
// when the field is valid.
type Result struct {
	Valid   bool
	Message string
}

func ok() Result {
	return Result{Valid: true}
}

func invalid(msg string) Result {
	return Result{Valid: false, Message: msg}
}

func Name(name string) Result {
	switch {
	case strings.TrimSpace(name) == "":
		return invalid("Name is required")
	case len(name) < 2:
		return invalid("Name must be at least 2 characters")
	case !namePattern.MatchString(name):
		return invalid("Name can only contain letters")
	default:
		return ok()
	}
}

func Age(ageStr string) Result {
	if strings.TrimSpace(ageStr) == "" {
		return invalid("Age is required")
	}

	age, err := strconv.Atoi(ageStr)
	switch {
	case err != nil:
		return invalid("Please enter a valid age")
	case age < MinAge:
		return invalid("Age must be at least " + strconv.Itoa(MinAge))
	case age > MaxAge:
		return invalid("Age cannot exceed " + strconv.Itoa(MaxAge))
	default:
		return ok()
	}
}

func Mobile(mobile string) Result {
	switch {
	case strings.TrimSpace(mobile) == "":
		return invalid("Mobile number is required")
	case !mobilePattern.MatchString(mobile):
		return invalid("Please enter a valid 10-digit mobile number")
	default:
		return ok()
	}
}

func Email(email string) Result {
	if strings.TrimSpace(email) == "" {
		return invalid("Email is required")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return invalid("Please enter a valid email address")
	}
	return ok()
}
