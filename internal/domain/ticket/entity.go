package ticket

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTicket  = errors.New("invalid ticket definition")
	ErrInactive       = errors.New("ticket is not active")
	ErrNoDateAssigned = errors.New("free ticket has no assigned date")
	ErrDateMismatch   = errors.New("date does not match the ticket's event date")
	ErrEventConflict  = errors.New("a special event blocks cover sales on this date")
	ErrDateOutOfRange = errors.New("date is beyond the booking horizon")
	ErrClubClosed     = errors.New("club is closed on this weekday")
)

// Ticket is a read-only snapshot of a catalog entry, including the owning
// club's weekly opening schedule. Catalog management lives elsewhere; this
// package only answers "may this ticket be bought for that date".
type Ticket struct {
	id               uuid.UUID
	clubID           uuid.UUID
	name             string
	price            int64
	availableDate    *time.Time
	isRecurrentEvent bool
	isActive         bool
	maxPerPerson     int
	quantity         *int
	openDays         OpenDays
}

func NewTicket(
	id, clubID uuid.UUID,
	name string,
	price int64,
	availableDate *time.Time,
	isRecurrentEvent, isActive bool,
	maxPerPerson int,
	quantity *int,
	openDays OpenDays,
) (*Ticket, error) {
	if id == uuid.Nil || clubID == uuid.Nil {
		return nil, ErrInvalidTicket
	}
	if price < 0 || maxPerPerson < 1 {
		return nil, ErrInvalidTicket
	}
	if quantity != nil && *quantity < 0 {
		return nil, ErrInvalidTicket
	}
	return &Ticket{
		id:               id,
		clubID:           clubID,
		name:             name,
		price:            price,
		availableDate:    availableDate,
		isRecurrentEvent: isRecurrentEvent,
		isActive:         isActive,
		maxPerPerson:     maxPerPerson,
		quantity:         quantity,
		openDays:         openDays,
	}, nil
}

func (t *Ticket) ID() uuid.UUID             { return t.id }
func (t *Ticket) ClubID() uuid.UUID         { return t.clubID }
func (t *Ticket) Name() string              { return t.name }
func (t *Ticket) Price() int64              { return t.price }
func (t *Ticket) AvailableDate() *time.Time { return t.availableDate }
func (t *Ticket) IsRecurrentEvent() bool    { return t.isRecurrentEvent }
func (t *Ticket) IsActive() bool            { return t.isActive }
func (t *Ticket) MaxPerPerson() int         { return t.maxPerPerson }
func (t *Ticket) Quantity() *int            { return t.quantity }
func (t *Ticket) OpenDays() OpenDays        { return t.openDays }

func (t *Ticket) IsFree() bool { return t.price == 0 }

// IsStandingCover reports whether this is a paid ticket without a fixed event
// date, valid on any open day within the booking window.
func (t *Ticket) IsStandingCover() bool {
	return t.price > 0 && t.availableDate == nil
}

// ResolveDate applies the availability-date rules for buying this ticket on
// the given calendar date. today and date are civil dates (midnight UTC).
// hasConflictingEvent is the same-club special-event check, resolved by the
// caller against the catalog. horizonDays bounds standing cover bookings.
func (t *Ticket) ResolveDate(today, date time.Time, horizonDays int, hasConflictingEvent bool) error {
	if !t.isActive {
		return ErrInactive
	}

	if t.IsFree() {
		if t.availableDate == nil {
			return ErrNoDateAssigned
		}
		if !date.Equal(*t.availableDate) {
			return ErrDateMismatch
		}
		return nil
	}

	if t.availableDate != nil {
		if !date.Equal(*t.availableDate) {
			return ErrDateMismatch
		}
		return nil
	}

	// Standing cover: any open day within the horizon, unless a special
	// event takes over the club that night.
	if hasConflictingEvent {
		return ErrEventConflict
	}
	if date.After(today.AddDate(0, 0, horizonDays)) {
		return ErrDateOutOfRange
	}
	if !t.openDays.Contains(date.Weekday()) {
		return ErrClubClosed
	}
	return nil
}
