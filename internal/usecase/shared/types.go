package shared

import (
	"context"
	"time"

	"nightpass/internal/domain/cart"
	"nightpass/internal/domain/identity"
	"nightpass/internal/domain/settlement"
	"nightpass/internal/domain/ticket"

	"github.com/google/uuid"
)

// OwnedLine pairs a cart line with the identity columns it was stored under,
// for ownership checks on update and remove.
type OwnedLine struct {
	Line      *cart.Line
	UserID    *uuid.UUID
	SessionID *string
}

// BelongsTo reports whether the stored identity columns match the acting owner.
func (o *OwnedLine) BelongsTo(owner identity.Owner) bool {
	if userID := owner.UserID(); userID != nil {
		return o.UserID != nil && *o.UserID == *userID
	}
	if sessionID := owner.SessionID(); sessionID != "" {
		return o.SessionID != nil && *o.SessionID == sessionID
	}
	return false
}

// CommandReads is the read surface the engines validate against.
type CommandReads interface {
	// TicketByID returns the catalog snapshot with the club's open days,
	// or a NOT_FOUND repository error.
	TicketByID(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
	// HasConflictingEvent reports whether an active, non-recurring ticket
	// of the club is fixed on the given date.
	HasConflictingEvent(ctx context.Context, clubID uuid.UUID, date time.Time) (bool, error)
	// CartLinesByOwner returns the owner's lines, newest first.
	CartLinesByOwner(ctx context.Context, owner identity.Owner) ([]*cart.Line, error)
	// OwnedLineByID returns one line with its stored identity columns.
	OwnedLineByID(ctx context.Context, lineID uuid.UUID) (*OwnedLine, error)
}

type CartLineRepository interface {
	// UpsertAdd inserts the line or, when the owner already holds this
	// (ticket, date), atomically increments the existing row's quantity.
	// Returns the resulting line.
	UpsertAdd(ctx context.Context, owner identity.Owner, line *cart.Line) (*cart.Line, error)
	// UpdateQuantity overwrites one line's quantity.
	UpdateQuantity(ctx context.Context, lineID uuid.UUID, quantity int) (*cart.Line, error)
	Delete(ctx context.Context, lineID uuid.UUID) error
	// LockByOwner reads the owner's lines FOR UPDATE so ceiling checks and
	// the settlement expansion act on a stable snapshot.
	LockByOwner(ctx context.Context, owner identity.Owner) ([]*cart.Line, error)
	DeleteByOwner(ctx context.Context, owner identity.Owner) error
	// DeleteDatedBefore purges lines whose event date has passed.
	DeleteDatedBefore(ctx context.Context, date time.Time) (int64, error)
}

type SettlementRepository interface {
	CreateTransaction(ctx context.Context, tx *settlement.Transaction) error
	CreatePurchaseUnits(ctx context.Context, units []*settlement.PurchaseUnit) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
