//go:build unit || e2e

package builder

import (
	"time"

	"nightpass/internal/domain/ticket"

	"github.com/google/uuid"
)

// TicketBuilder assembles catalog ticket snapshots for tests. Defaults model
// a paid standing cover for a club open Friday and Saturday.
type TicketBuilder struct {
	id               uuid.UUID
	clubID           uuid.UUID
	name             string
	price            int64
	availableDate    *time.Time
	isRecurrentEvent bool
	isActive         bool
	maxPerPerson     int
	quantity         *int
	openDays         ticket.OpenDays
}

func NewTicketBuilder() *TicketBuilder {
	return &TicketBuilder{
		id:           uuid.New(),
		clubID:       uuid.New(),
		name:         "General Cover",
		price:        5000,
		isActive:     true,
		maxPerPerson: 4,
		openDays:     ticket.NewOpenDays(time.Friday, time.Saturday),
	}
}

func (b *TicketBuilder) WithID(id uuid.UUID) *TicketBuilder     { b.id = id; return b }
func (b *TicketBuilder) WithClubID(id uuid.UUID) *TicketBuilder { b.clubID = id; return b }
func (b *TicketBuilder) WithName(name string) *TicketBuilder    { b.name = name; return b }
func (b *TicketBuilder) WithPrice(price int64) *TicketBuilder   { b.price = price; return b }
func (b *TicketBuilder) WithMaxPerPerson(n int) *TicketBuilder  { b.maxPerPerson = n; return b }
func (b *TicketBuilder) WithRecurrent(v bool) *TicketBuilder    { b.isRecurrentEvent = v; return b }
func (b *TicketBuilder) WithActive(v bool) *TicketBuilder       { b.isActive = v; return b }

func (b *TicketBuilder) WithAvailableDate(d time.Time) *TicketBuilder {
	b.availableDate = &d
	return b
}

func (b *TicketBuilder) WithQuantity(n int) *TicketBuilder {
	b.quantity = &n
	return b
}

func (b *TicketBuilder) WithOpenDays(days ...time.Weekday) *TicketBuilder {
	b.openDays = ticket.NewOpenDays(days...)
	return b
}

func (b *TicketBuilder) Build() (*ticket.Ticket, error) {
	return ticket.NewTicket(
		b.id,
		b.clubID,
		b.name,
		b.price,
		b.availableDate,
		b.isRecurrentEvent,
		b.isActive,
		b.maxPerPerson,
		b.quantity,
		b.openDays,
	)
}

func (b *TicketBuilder) MustBuild() *ticket.Ticket {
	tk, err := b.Build()
	if err != nil {
		panic(err)
	}
	return tk
}

// Date builds a civil date (midnight UTC) the way the engines normalize them.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
