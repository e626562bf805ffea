package commands

import (
	"context"
	"encoding/json"
	"time"

	"nightpass/internal/domain/cart"
	"nightpass/internal/domain/identity"
	"nightpass/internal/domain/settlement"
	"nightpass/internal/infra"
	"nightpass/internal/pkg/clock"
	"nightpass/internal/pkg/errs"
	"nightpass/internal/pkg/token"
	"nightpass/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMissingIdentity   = errs.New("missing owner identity")
	ErrMissingEmail      = errs.New("email is required")
	ErrEmptyCart         = errs.New("cart is empty")
	ErrTicketUnavailable = errs.New("ticket is no longer available")
)

// UnavailableTicketError names the ticket that was deactivated between
// cart-add and checkout. errors.Is(err, ErrTicketUnavailable) matches it.
type UnavailableTicketError struct {
	TicketID   uuid.UUID
	TicketName string
}

func (e *UnavailableTicketError) Error() string {
	if e.TicketName != "" {
		return "ticket no longer available: " + e.TicketName
	}
	return "ticket no longer available: " + e.TicketID.String()
}

func (e *UnavailableTicketError) Is(target error) bool {
	return target == ErrTicketUnavailable
}

type SettleSummaryItem struct {
	TicketID   uuid.UUID
	TicketName string
	Date       time.Time
	Quantity   int
	QRTokens   []string
}

type SettleResult struct {
	TransactionID uuid.UUID
	Summary       []SettleSummaryItem
}

type CheckoutCommands interface {
	Settle(ctx context.Context, owner identity.Owner, email string) (*SettleResult, error)
}

type checkoutCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens token.Provider
	clock  clock.Clock
}

func NewCheckoutCommands(uow shared.UnitOfWork, tokens token.Provider, clk clock.Clock) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:    uow,
		tokens: tokens,
		clock:  clk,
	}
}

// Settle converts the owner's cart into an immutable transaction with one
// purchase unit per admitted person. Everything below runs in a single
// database transaction: a failure at any step leaves the cart untouched.
func (c *checkoutCommandsImpl) Settle(ctx context.Context, owner identity.Owner, email string) (*SettleResult, error) {
	if owner.IsZero() {
		return nil, ErrMissingIdentity
	}
	if email == "" {
		return nil, ErrMissingEmail
	}

	var result *SettleResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lines, err := tx.CartLines().LockByOwner(ctx, owner)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		units, summary, err := c.expandLines(ctx, tx.Reads(), lines, owner, email)
		if err != nil {
			return err
		}

		// All lines share one club and one date by cart construction.
		transaction, err := settlement.NewTransaction(owner.UserID(), lines[0].ClubID(), email, lines[0].Date(), units)
		if err != nil {
			return errs.Mark(err, ErrMissingEmail)
		}

		if err := tx.Settlements().CreateTransaction(ctx, transaction); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, u := range units {
			u.StampTransaction(transaction.ID())
		}
		if err := tx.Settlements().CreatePurchaseUnits(ctx, units); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := c.enqueueReceipt(ctx, tx, transaction); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.CartLines().DeleteByOwner(ctx, owner); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = &SettleResult{
			TransactionID: transaction.ID(),
			Summary:       summary,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// expandLines re-validates every ticket against the live catalog and expands
// each line's quantity into individual purchase units. Checkout is the last
// line of defense against a ticket deactivated after it entered the cart.
func (c *checkoutCommandsImpl) expandLines(
	ctx context.Context,
	reads shared.CommandReads,
	lines []*cart.Line,
	owner identity.Owner,
	email string,
) ([]*settlement.PurchaseUnit, []SettleSummaryItem, error) {
	units := make([]*settlement.PurchaseUnit, 0, len(lines))
	summary := make([]SettleSummaryItem, 0, len(lines))

	for _, line := range lines {
		tk, err := reads.TicketByID(ctx, line.TicketID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, nil, &UnavailableTicketError{TicketID: line.TicketID()}
			}
			return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !tk.IsActive() {
			return nil, nil, &UnavailableTicketError{TicketID: tk.ID(), TicketName: tk.Name()}
		}

		split, err := settlement.ComputeSplit(tk.Price())
		if err != nil {
			return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		item := SettleSummaryItem{
			TicketID:   tk.ID(),
			TicketName: tk.Name(),
			Date:       line.Date(),
			Quantity:   line.Quantity(),
			QRTokens:   make([]string, 0, line.Quantity()),
		}
		for i := 0; i < line.Quantity(); i++ {
			qrToken, err := c.tokens.IssueToken()
			if err != nil {
				return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
			}
			unit := settlement.NewPurchaseUnit(
				tk.ID(), tk.ClubID(), line.Date(),
				email, qrToken, owner.UserID(),
				tk.Price(), split,
			)
			units = append(units, unit)
			item.QRTokens = append(item.QRTokens, qrToken)
		}
		summary = append(summary, item)
	}

	return units, summary, nil
}

func (c *checkoutCommandsImpl) enqueueReceipt(ctx context.Context, tx shared.Tx, transaction *settlement.Transaction) error {
	payload, err := json.Marshal(map[string]any{
		"transaction_id": transaction.ID(),
		"email":          transaction.Email(),
		"club_id":        transaction.ClubID(),
		"total_paid":     transaction.Totals().TotalPaid,
		"type":           "purchase_completed",
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, "email", "purchase_completed", payload, c.clock.Now())
}
