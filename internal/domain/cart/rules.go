package cart

import (
	"time"

	"nightpass/internal/domain/ticket"

	"github.com/google/uuid"
)

// CheckCompatibility enforces the single-club, single-date cart invariant
// against the owner's existing lines.
func CheckCompatibility(existing []*Line, clubID uuid.UUID, date time.Time) error {
	for _, line := range existing {
		if line.ClubID() != clubID {
			return ErrMixedClub
		}
		if !line.Date().Equal(date) {
			return ErrMixedDate
		}
	}
	return nil
}

// QuantityFor sums the cart quantity already held for one (ticket, date),
// skipping excludeLine so updates don't count their own previous quantity.
func QuantityFor(existing []*Line, ticketID uuid.UUID, date time.Time, excludeLine uuid.UUID) int {
	total := 0
	for _, line := range existing {
		if line.ID() == excludeLine {
			continue
		}
		if line.TicketID() == ticketID && line.Date().Equal(date) {
			total += line.Quantity()
		}
	}
	return total
}

// CheckCeilings applies the per-person limit and, when the ticket carries a
// finite stock, the stock ceiling. heldQuantity is what the owner's cart
// already holds for this (ticket, date); requested is the quantity being
// added on top of it (or the replacement quantity for updates, with the
// line's own previous amount excluded from heldQuantity).
//
// Stock is checked against this cart only, never against other owners'
// carts or committed purchases: a soft reservation by design.
func CheckCeilings(tk *ticket.Ticket, heldQuantity, requested int) error {
	if requested < 1 {
		return ErrInvalidQuantity
	}
	if heldQuantity+requested > tk.MaxPerPerson() {
		return ErrMaxPerPerson
	}
	if stock := tk.Quantity(); stock != nil {
		if heldQuantity+requested > *stock {
			remaining := *stock - heldQuantity
			if remaining < 0 {
				remaining = 0
			}
			return &StockError{Remaining: remaining}
		}
	}
	return nil
}
