package domain

import "strings"

// BusClass is the structured seating/AC variant of a bus. It is derived once
// at generation time from the display tag and carried as data, so callers
// never re-inspect the tag string.
type BusClass int

const (
	SeaterNonAC BusClass = iota
	SeaterAC
	SleeperNonAC
	SleeperAC
)

func (c BusClass) IsSleeper() bool {
	return c == SleeperNonAC || c == SleeperAC
}

func (c BusClass) IsAC() bool {
	return c == SeaterAC || c == SleeperAC
}

// TotalSeats is fixed per layout: 24 berths for sleepers, 47 seats otherwise.
func (c BusClass) TotalSeats() int {
	if c.IsSleeper() {
		return 24
	}
	return 47
}

func (c BusClass) String() string {
	switch c {
	case SeaterAC:
		return "SEATER_AC"
	case SleeperNonAC:
		return "SLEEPER"
	case SleeperAC:
		return "SLEEPER_AC"
	default:
		return "SEATER"
	}
}

// ClassFromString parses the persisted token form produced by String.
func ClassFromString(s string) (BusClass, bool) {
	switch s {
	case "SEATER":
		return SeaterNonAC, true
	case "SEATER_AC":
		return SeaterAC, true
	case "SLEEPER":
		return SleeperNonAC, true
	case "SLEEPER_AC":
		return SleeperAC, true
	default:
		return SeaterNonAC, false
	}
}

// ClassFromTag maps a display tag from the class catalog to its variant.
// AC is a plain substring match: "Non A/C" tags also contain "A/C" and so
// derive as AC, taking the AC price bands. Kept as is, see DESIGN.md.
func ClassFromTag(tag string) BusClass {
	sleeper := strings.Contains(tag, "Sleeper")
	ac := strings.Contains(tag, "A/C")

	switch {
	case sleeper && ac:
		return SleeperAC
	case sleeper:
		return SleeperNonAC
	case ac:
		return SeaterAC
	default:
		return SeaterNonAC
	}
}

type SeatType string

const (
	SeatTypeSeater  SeatType = "SEATER"
	SeatTypeSleeper SeatType = "SLEEPER"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// RouteKey identifies one inventory generation result. Two keys that
// normalize equal must observe the same inventory within a session.
type RouteKey struct {
	Origin      string
	Destination string
	Date        string
}

// Normalize trims all fields and unifies the date separator so that
// "20-10-2025" and "20/10/2025" address the same inventory.
func (k RouteKey) Normalize() RouteKey {
	return RouteKey{
		Origin:      strings.TrimSpace(k.Origin),
		Destination: strings.TrimSpace(k.Destination),
		Date:        strings.ReplaceAll(strings.TrimSpace(k.Date), "-", "/"),
	}
}

func (k RouteKey) String() string {
	n := k.Normalize()
	return n.Origin + "|" + n.Destination + "|" + n.Date
}

type Bus struct {
	ID             string
	OperatorName   string
	ClassTag       string
	Class          BusClass
	DepartureTime  string
	ArrivalTime    string
	Duration       string
	Distance       string
	Price          int
	AvailableSeats int
	TotalSeats     int
	Amenities      []string
	Rating         float32
}

type Seat struct {
	Number    string
	Available bool
	Selected  bool
	Type      SeatType
	Price     int
}

// PassengerInput carries the raw form fields plus per-field validation
// messages (empty string means the field is fine).
type PassengerInput struct {
	Name       string
	Age        string
	Gender     string
	SeatNumber string

	NameError string
	AgeError  string
}

type Passenger struct {
	Name       string
	Age        int
	Gender     string
	SeatNumber string
}

// ContactDetails are shared by all passengers of one booking.
type ContactDetails struct {
	MobileNumber string
	EmailAddress string
}

// Booking is the persisted record. PNR is the sole lookup key.
type Booking struct {
	PNR            string
	Bus            Bus
	SelectedSeats  []string
	Passengers     []Passenger
	ContactDetails ContactDetails
	JourneyDate    string
	FromCity       string
	ToCity         string
	TotalAmount    int
	BookingDate    string
	Status         BookingStatus
}
