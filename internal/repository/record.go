package repository

import (
	"encoding/json"
	"fmt"

	"github.com/nxtbus/nxtbus-go/internal/domain"
)

// currentSchemaVersion is written on every encode. Version 0 (the field
// absent) is the legacy shape: no seat list, a single "passenger" object
// instead of the "passengers" array, no structured bus class.
const currentSchemaVersion = 1

type busRecord struct {
	ID             string   `json:"id"`
	OperatorName   string   `json:"operatorName"`
	BusType        string   `json:"busType"`
	Class          string   `json:"class,omitempty"`
	DepartureTime  string   `json:"departureTime"`
	ArrivalTime    string   `json:"arrivalTime"`
	Duration       string   `json:"duration"`
	Distance       string   `json:"distance"`
	Price          int      `json:"price"`
	AvailableSeats int      `json:"availableSeats"`
	TotalSeats     int      `json:"totalSeats"`
	Amenities      []string `json:"amenities,omitempty"`
	Rating         float32  `json:"rating"`
}

type passengerRecord struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	SeatNumber string `json:"seatNumber"`
}

type contactRecord struct {
	MobileNumber string `json:"mobileNumber"`
	EmailAddress string `json:"emailAddress"`
}

type bookingRecord struct {
	SchemaVersion int               `json:"schemaVersion,omitempty"`
	PNR           string            `json:"pnr"`
	Bus           busRecord         `json:"bus"`
	SelectedSeats []string          `json:"selectedSeats,omitempty"`
	Passenger     *passengerRecord  `json:"passenger,omitempty"`
	Passengers    []passengerRecord `json:"passengers,omitempty"`
	Contact       contactRecord     `json:"contactDetails"`
	JourneyDate   string            `json:"journeyDate"`
	FromCity      string            `json:"fromCity"`
	ToCity        string            `json:"toCity"`
	TotalAmount   int               `json:"totalAmount"`
	BookingDate   string            `json:"bookingDate"`
	Status        string            `json:"status,omitempty"`
}

func encodeBookings(bookings []domain.Booking) ([]byte, error) {
	records := make([]bookingRecord, 0, len(bookings))
	for _, b := range bookings {
		records = append(records, toRecord(b))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode bookings: %w", err)
	}
	return data, nil
}

// decodeBookings parses the collection and fills legacy defaults in one
// place: absent seat lists become empty, a legacy single passenger is
// promoted to a one-element list, a missing status reads as CONFIRMED, and
// the bus class is re-derived from the tag when the record predates it.
func decodeBookings(data []byte) ([]domain.Booking, error) {
	var records []bookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode bookings: %w: %w", ErrCorrupt, err)
	}

	bookings := make([]domain.Booking, 0, len(records))
	for _, r := range records {
		bookings = append(bookings, fromRecord(r))
	}
	return bookings, nil
}

func toRecord(b domain.Booking) bookingRecord {
	passengers := make([]passengerRecord, 0, len(b.Passengers))
	for _, p := range b.Passengers {
		passengers = append(passengers, passengerRecord(p))
	}

	return bookingRecord{
		SchemaVersion: currentSchemaVersion,
		PNR:           b.PNR,
		Bus: busRecord{
			ID:             b.Bus.ID,
			OperatorName:   b.Bus.OperatorName,
			BusType:        b.Bus.ClassTag,
			Class:          b.Bus.Class.String(),
			DepartureTime:  b.Bus.DepartureTime,
			ArrivalTime:    b.Bus.ArrivalTime,
			Duration:       b.Bus.Duration,
			Distance:       b.Bus.Distance,
			Price:          b.Bus.Price,
			AvailableSeats: b.Bus.AvailableSeats,
			TotalSeats:     b.Bus.TotalSeats,
			Amenities:      b.Bus.Amenities,
			Rating:         b.Bus.Rating,
		},
		SelectedSeats: b.SelectedSeats,
		Passengers:    passengers,
		Contact:       contactRecord(b.ContactDetails),
		JourneyDate:   b.JourneyDate,
		FromCity:      b.FromCity,
		ToCity:        b.ToCity,
		TotalAmount:   b.TotalAmount,
		BookingDate:   b.BookingDate,
		Status:        string(b.Status),
	}
}

func fromRecord(r bookingRecord) domain.Booking {
	class, ok := domain.ClassFromString(r.Bus.Class)
	if !ok {
		class = domain.ClassFromTag(r.Bus.BusType)
	}

	seats := r.SelectedSeats
	if seats == nil {
		seats = []string{}
	}

	var passengers []domain.Passenger
	switch {
	case len(r.Passengers) > 0:
		passengers = make([]domain.Passenger, 0, len(r.Passengers))
		for _, p := range r.Passengers {
			passengers = append(passengers, domain.Passenger(p))
		}
	case r.Passenger != nil:
		passengers = []domain.Passenger{domain.Passenger(*r.Passenger)}
	default:
		passengers = []domain.Passenger{}
	}

	status := domain.BookingStatus(r.Status)
	if status == "" {
		status = domain.StatusConfirmed
	}

	return domain.Booking{
		PNR: r.PNR,
		Bus: domain.Bus{
			ID:             r.Bus.ID,
			OperatorName:   r.Bus.OperatorName,
			ClassTag:       r.Bus.BusType,
			Class:          class,
			DepartureTime:  r.Bus.DepartureTime,
			ArrivalTime:    r.Bus.ArrivalTime,
			Duration:       r.Bus.Duration,
			Distance:       r.Bus.Distance,
			Price:          r.Bus.Price,
			AvailableSeats: r.Bus.AvailableSeats,
			TotalSeats:     r.Bus.TotalSeats,
			Amenities:      r.Bus.Amenities,
			Rating:         r.Bus.Rating,
		},
		SelectedSeats:  seats,
		Passengers:     passengers,
		ContactDetails: domain.ContactDetails(r.Contact),
		JourneyDate:    r.JourneyDate,
		FromCity:       r.FromCity,
		ToCity:         r.ToCity,
		TotalAmount:    r.TotalAmount,
		BookingDate:    r.BookingDate,
		Status:         status,
	}
}
