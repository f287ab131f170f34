package ledger

import "github.com/nxtbus/nxtbus-go/internal/domain"

// MaxSelection is the most seats one booking may hold.
const MaxSelection = 6

// Outcome reports what a toggle did. Rejections are explicit so callers can
// tell a refused request from a successful no-op.
type Outcome int

const (
	Selected Outcome = iota
	Deselected
	RejectedUnavailable
	RejectedLimitReached
	RejectedUnknownSeat
)

func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case Deselected:
		return "deselected"
	case RejectedUnavailable:
		return "rejected: seat unavailable"
	case RejectedLimitReached:
		return "rejected: selection limit reached"
	case RejectedUnknownSeat:
		return "rejected: unknown seat"
	default:
		return "unknown"
	}
}

// Ledger tracks one session's tentative seat selection for a single bus. It
// owns a working copy of the seat list; the cached inventory is never
// mutated. The total is always re-derived from the selection, never cached.
type Ledger struct {
	seats    []domain.Seat
	index    map[string]int
	selected []string
}

func New(seats []domain.Seat) *Ledger {
	working := make([]domain.Seat, len(seats))
	copy(working, seats)

	index := make(map[string]int, len(working))
	for i, s := range working {
		index[s.Number] = i
	}

	return &Ledger{seats: working, index: index}
}

// Toggle flips the selection state of the named seat.
func (l *Ledger) Toggle(seatNumber string) Outcome {
	i, ok := l.index[seatNumber]
	if !ok {
		return RejectedUnknownSeat
	}

	seat := &l.seats[i]
	if !seat.Available {
		return RejectedUnavailable
	}

	if seat.Selected {
		seat.Selected = false
		for j, n := range l.selected {
			if n == seatNumber {
				l.selected = append(l.selected[:j], l.selected[j+1:]...)
				break
			}
		}
		return Deselected
	}

	if len(l.selected) >= MaxSelection {
		return RejectedLimitReached
	}

	seat.Selected = true
	l.selected = append(l.selected, seatNumber)
	return Selected
}

// Seats returns the working copy with current selection flags.
func (l *Ledger) Seats() []domain.Seat {
	out := make([]domain.Seat, len(l.seats))
	copy(out, l.seats)
	return out
}

// Selected returns the selected seats in selection order.
func (l *Ledger) Selected() []domain.Seat {
	out := make([]domain.Seat, 0, len(l.selected))
	for _, n := range l.selected {
		out = append(out, l.seats[l.index[n]])
	}
	return out
}

// SelectedNumbers returns just the seat numbers, in selection order.
func (l *Ledger) SelectedNumbers() []string {
	out := make([]string, len(l.selected))
	copy(out, l.selected)
	return out
}

// Total sums the prices of the current selection.
func (l *Ledger) Total() int {
	total := 0
	for _, n := range l.selected {
		total += l.seats[l.index[n]].Price
	}
	return total
}

// Reset clears the selection, keeping the working seat list.
func (l *Ledger) Reset() {
	for _, n := range l.selected {
		l.seats[l.index[n]].Selected = false
	}
	l.selected = nil
}
