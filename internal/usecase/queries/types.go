package queries

import (
	"context"
	"time"

	"nightpass/internal/domain/identity"

	"github.com/google/uuid"
)

type CartLineView struct {
	ID         uuid.UUID
	TicketID   uuid.UUID
	TicketName string
	UnitPrice  int64
	ClubID     uuid.UUID
	Date       time.Time
	Quantity   int
	CreatedAt  time.Time
}

type TransactionView struct {
	ID               uuid.UUID
	OwnerUserID      *uuid.UUID
	ClubID           uuid.UUID
	Email            string
	Date             time.Time
	TotalPaid        int64
	ClubReceives     int64
	PlatformReceives int64
	GatewayFee       int64
	GatewayVAT       int64
	CreatedAt        time.Time
}

type PurchaseUnitView struct {
	ID               uuid.UUID
	TicketID         uuid.UUID
	TicketName       string
	ClubID           uuid.UUID
	Date             time.Time
	Email            string
	QRToken          string
	OwnerUserID      *uuid.UUID
	UserPaid         int64
	ClubReceives     int64
	PlatformReceives int64
	GatewayFee       int64
	GatewayVAT       int64
	TransactionID    uuid.UUID
}

type CartReadStore interface {
	// LinesByOwner returns the owner's lines joined with ticket name and
	// current price, most recently created first.
	LinesByOwner(ctx context.Context, owner identity.Owner) ([]*CartLineView, error)
}

type TransactionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TransactionView, error)
	UnitsByTransactionID(ctx context.Context, id uuid.UUID) ([]*PurchaseUnitView, error)
	UnitByToken(ctx context.Context, qrToken string) (*PurchaseUnitView, error)
}
