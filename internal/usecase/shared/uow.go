package shared

import (
	"context"
)

// UnitOfWork scopes repository work to one database transaction. Within
// retries on serialization conflicts, so fn must be safe to re-run.
type UnitOfWork interface {
	// Within: full read-write transaction for cart mutations and settlement.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: command-side reads outside any explicit transaction.
	Reads() CommandReads
}

// Tx exposes the write repositories bound to the running transaction.
// The settlement commit (transaction + units + cart wipe) only exists
// behind this interface: there is no way to write those rows piecemeal.
type Tx interface {
	CartLines() CartLineRepository
	Settlements() SettlementRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}
