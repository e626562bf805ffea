package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInvalidLine       = errors.New("invalid cart line")
	ErrPastDate          = errors.New("date is in the past")
	ErrMixedClub         = errors.New("cart already holds tickets for another club")
	ErrMixedDate         = errors.New("cart already holds tickets for another date")
	ErrMaxPerPerson      = errors.New("per-person ticket limit exceeded")
	ErrInsufficientStock = errors.New("not enough tickets left")
)

// StockError reports how many units remain when a stock ceiling rejects an
// add or update. errors.Is(err, ErrInsufficientStock) matches it.
type StockError struct {
	Remaining int
}

func (e *StockError) Error() string {
	return "not enough tickets left"
}

func (e *StockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// Line is one cart entry: a ticket, a calendar date, and how many units.
// The owning club id is derived from the ticket and carried on the line so
// the single-club invariant can be checked without a catalog round trip.
type Line struct {
	id        uuid.UUID
	ticketID  uuid.UUID
	clubID    uuid.UUID
	date      time.Time
	quantity  int
	createdAt time.Time
}

func NewLine(ticketID, clubID uuid.UUID, date time.Time, quantity int) (*Line, error) {
	if ticketID == uuid.Nil || clubID == uuid.Nil || date.IsZero() {
		return nil, ErrInvalidLine
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	return &Line{
		id:       uuid.New(),
		ticketID: ticketID,
		clubID:   clubID,
		date:     date,
		quantity: quantity,
	}, nil
}

func ReconstructLine(id, ticketID, clubID uuid.UUID, date time.Time, quantity int, createdAt time.Time) *Line {
	return &Line{
		id:        id,
		ticketID:  ticketID,
		clubID:    clubID,
		date:      date,
		quantity:  quantity,
		createdAt: createdAt,
	}
}

func (l *Line) ID() uuid.UUID        { return l.id }
func (l *Line) TicketID() uuid.UUID  { return l.ticketID }
func (l *Line) ClubID() uuid.UUID    { return l.clubID }
func (l *Line) Date() time.Time      { return l.date }
func (l *Line) Quantity() int        { return l.quantity }
func (l *Line) CreatedAt() time.Time { return l.createdAt }
