package commands

import (
	"context"
	"time"

	"nightpass/internal/domain/cart"
	"nightpass/internal/domain/identity"
	"nightpass/internal/domain/ticket"
	"nightpass/internal/infra"
	"nightpass/internal/pkg/clock"
	"nightpass/internal/pkg/config"
	"nightpass/internal/pkg/errs"
	"nightpass/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput         = errs.New("invalid input")
	ErrPastDate             = errs.New("date is in the past")
	ErrTicketNotFound       = errs.New("ticket not found")
	ErrTicketInactive       = errs.New("ticket is not active")
	ErrNoDateAssigned       = errs.New("free ticket has no assigned date")
	ErrDateMismatch         = errs.New("date does not match the event date")
	ErrEventConflict        = errs.New("a special event blocks cover sales that day")
	ErrDateOutOfRange       = errs.New("date is beyond the booking horizon")
	ErrClubClosed           = errs.New("club is closed on that weekday")
	ErrMixedClub            = errs.New("cart holds tickets for another club")
	ErrMixedDate            = errs.New("cart holds tickets for another date")
	ErrMaxPerPersonExceeded = errs.New("per-person ticket limit exceeded")
	ErrInsufficientStock    = errs.New("not enough tickets left")
	ErrLineNotFound         = errs.New("cart line not found")
	ErrForbidden            = errs.New("cart line belongs to another visitor")

	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type AddLineInput struct {
	TicketID uuid.UUID
	Date     time.Time
	Quantity int
}

type CartCommands interface {
	AddLine(ctx context.Context, owner identity.Owner, input AddLineInput) (*cart.Line, error)
	UpdateLine(ctx context.Context, owner identity.Owner, lineID uuid.UUID, quantity int) (*cart.Line, error)
	RemoveLine(ctx context.Context, owner identity.Owner, lineID uuid.UUID) error
}

type cartCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	venue   *time.Location
	horizon int
}

func NewCartCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) (CartCommands, error) {
	venue, err := time.LoadLocation(cfg.Venue.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid venue time zone")
	}
	return &cartCommandsImpl{
		uow:     uow,
		clock:   clk,
		venue:   venue,
		horizon: cfg.Venue.BookingHorizon,
	}, nil
}

func (c *cartCommandsImpl) AddLine(ctx context.Context, owner identity.Owner, input AddLineInput) (*cart.Line, error) {
	if owner.IsZero() {
		return nil, errs.Mark(identity.ErrMissingIdentity, ErrInvalidInput)
	}
	if input.Quantity < 1 || input.TicketID == uuid.Nil || input.Date.IsZero() {
		return nil, ErrInvalidInput
	}

	today := clock.CivilDate(c.clock.Now(), c.venue)
	if input.Date.Before(today) {
		return nil, ErrPastDate
	}

	var result *cart.Line
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tk, err := c.loadTicket(ctx, tx.Reads(), input.TicketID)
		if err != nil {
			return err
		}
		if !tk.IsActive() {
			return ErrTicketInactive
		}

		hasConflict := false
		if tk.IsStandingCover() {
			hasConflict, err = tx.Reads().HasConflictingEvent(ctx, tk.ClubID(), input.Date)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		if err := tk.ResolveDate(today, input.Date, c.horizon, hasConflict); err != nil {
			return mapAvailabilityErr(err)
		}

		existing, err := tx.CartLines().LockByOwner(ctx, owner)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := cart.CheckCompatibility(existing, tk.ClubID(), input.Date); err != nil {
			return mapCartErr(err)
		}

		held := cart.QuantityFor(existing, tk.ID(), input.Date, uuid.Nil)
		if err := cart.CheckCeilings(tk, held, input.Quantity); err != nil {
			return mapCartErr(err)
		}

		line, err := cart.NewLine(tk.ID(), tk.ClubID(), input.Date, input.Quantity)
		if err != nil {
			return errs.Mark(err, ErrInvalidInput)
		}

		result, err = tx.CartLines().UpsertAdd(ctx, owner, line)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *cartCommandsImpl) UpdateLine(ctx context.Context, owner identity.Owner, lineID uuid.UUID, quantity int) (*cart.Line, error) {
	if owner.IsZero() {
		return nil, errs.Mark(identity.ErrMissingIdentity, ErrInvalidInput)
	}
	if lineID == uuid.Nil || quantity < 1 {
		return nil, ErrInvalidInput
	}

	var result *cart.Line
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owned, err := c.loadOwnedLine(ctx, tx.Reads(), owner, lineID)
		if err != nil {
			return err
		}

		tk, err := c.loadTicket(ctx, tx.Reads(), owned.Line.TicketID())
		if err != nil {
			return err
		}

		// Date and club rules are not re-validated here: the line was
		// legal when it entered the cart. Only the ceilings move.
		existing, err := tx.CartLines().LockByOwner(ctx, owner)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		held := cart.QuantityFor(existing, owned.Line.TicketID(), owned.Line.Date(), lineID)
		if err := cart.CheckCeilings(tk, held, quantity); err != nil {
			return mapCartErr(err)
		}

		result, err = tx.CartLines().UpdateQuantity(ctx, lineID, quantity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *cartCommandsImpl) RemoveLine(ctx context.Context, owner identity.Owner, lineID uuid.UUID) error {
	if owner.IsZero() {
		return errs.Mark(identity.ErrMissingIdentity, ErrInvalidInput)
	}
	if lineID == uuid.Nil {
		return ErrInvalidInput
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := c.loadOwnedLine(ctx, tx.Reads(), owner, lineID); err != nil {
			return err
		}
		if err := tx.CartLines().Delete(ctx, lineID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *cartCommandsImpl) loadTicket(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*ticket.Ticket, error) {
	tk, err := reads.TicketByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return tk, nil
}

func (c *cartCommandsImpl) loadOwnedLine(ctx context.Context, reads shared.CommandReads, owner identity.Owner, lineID uuid.UUID) (*shared.OwnedLine, error) {
	owned, err := reads.OwnedLineByID(ctx, lineID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLineNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !owned.BelongsTo(owner) {
		return nil, ErrForbidden
	}
	return owned, nil
}

func mapAvailabilityErr(err error) error {
	switch {
	case errs.Is(err, ticket.ErrInactive):
		return errs.Mark(err, ErrTicketInactive)
	case errs.Is(err, ticket.ErrNoDateAssigned):
		return errs.Mark(err, ErrNoDateAssigned)
	case errs.Is(err, ticket.ErrDateMismatch):
		return errs.Mark(err, ErrDateMismatch)
	case errs.Is(err, ticket.ErrEventConflict):
		return errs.Mark(err, ErrEventConflict)
	case errs.Is(err, ticket.ErrDateOutOfRange):
		return errs.Mark(err, ErrDateOutOfRange)
	case errs.Is(err, ticket.ErrClubClosed):
		return errs.Mark(err, ErrClubClosed)
	default:
		return err
	}
}

func mapCartErr(err error) error {
	switch {
	case errs.Is(err, cart.ErrInvalidQuantity), errs.Is(err, cart.ErrInvalidLine):
		return errs.Mark(err, ErrInvalidInput)
	case errs.Is(err, cart.ErrMixedClub):
		return errs.Mark(err, ErrMixedClub)
	case errs.Is(err, cart.ErrMixedDate):
		return errs.Mark(err, ErrMixedDate)
	case errs.Is(err, cart.ErrMaxPerPerson):
		return errs.Mark(err, ErrMaxPerPersonExceeded)
	case errs.Is(err, cart.ErrInsufficientStock):
		// Keep the StockError in the chain so callers can read Remaining.
		return errs.Mark(err, ErrInsufficientStock)
	default:
		return err
	}
}
