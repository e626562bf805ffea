package settlement

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingEmail = errors.New("email is required")
	ErrNoUnits      = errors.New("transaction must own at least one purchase unit")
)

// PurchaseUnit is one physical ticket sold: one row per admitted person,
// carrying its own copy of the fee split and the opaque door token.
type PurchaseUnit struct {
	id               uuid.UUID
	ticketID         uuid.UUID
	clubID           uuid.UUID
	date             time.Time
	email            string
	qrToken          string
	ownerUserID      *uuid.UUID
	userPaid         int64
	clubReceives     int64
	platformReceives int64
	gatewayFee       int64
	gatewayVAT       int64
	transactionID    uuid.UUID
}

func NewPurchaseUnit(
	ticketID, clubID uuid.UUID,
	date time.Time,
	email, qrToken string,
	ownerUserID *uuid.UUID,
	unitPrice int64,
	split Split,
) *PurchaseUnit {
	return &PurchaseUnit{
		id:               uuid.New(),
		ticketID:         ticketID,
		clubID:           clubID,
		date:             date,
		email:            email,
		qrToken:          qrToken,
		ownerUserID:      ownerUserID,
		userPaid:         unitPrice,
		clubReceives:     split.ClubNet,
		platformReceives: split.PlatformFee,
		gatewayFee:       split.GatewayFee,
		gatewayVAT:       split.GatewayVAT,
	}
}

func (u *PurchaseUnit) ID() uuid.UUID            { return u.id }
func (u *PurchaseUnit) TicketID() uuid.UUID      { return u.ticketID }
func (u *PurchaseUnit) ClubID() uuid.UUID        { return u.clubID }
func (u *PurchaseUnit) Date() time.Time          { return u.date }
func (u *PurchaseUnit) Email() string            { return u.email }
func (u *PurchaseUnit) QRToken() string          { return u.qrToken }
func (u *PurchaseUnit) OwnerUserID() *uuid.UUID  { return u.ownerUserID }
func (u *PurchaseUnit) UserPaid() int64          { return u.userPaid }
func (u *PurchaseUnit) ClubReceives() int64      { return u.clubReceives }
func (u *PurchaseUnit) PlatformReceives() int64  { return u.platformReceives }
func (u *PurchaseUnit) GatewayFee() int64        { return u.gatewayFee }
func (u *PurchaseUnit) GatewayVAT() int64        { return u.gatewayVAT }
func (u *PurchaseUnit) TransactionID() uuid.UUID { return u.transactionID }

// StampTransaction back-references the owning transaction. Set once, right
// before the units are persisted in the same atomic commit.
func (u *PurchaseUnit) StampTransaction(transactionID uuid.UUID) {
	u.transactionID = transactionID
}

// Totals aggregates the per-unit money fields across every unit of one
// transaction. Equality between these sums and the per-unit rows is a
// standing ledger invariant.
type Totals struct {
	TotalPaid        int64
	ClubReceives     int64
	PlatformReceives int64
	GatewayFee       int64
	GatewayVAT       int64
}

func (t *Totals) Accumulate(u *PurchaseUnit) {
	t.TotalPaid += u.UserPaid()
	t.ClubReceives += u.ClubReceives()
	t.PlatformReceives += u.PlatformReceives()
	t.GatewayFee += u.GatewayFee()
	t.GatewayVAT += u.GatewayVAT()
}

// Transaction is the immutable checkout ledger entry owning its units.
type Transaction struct {
	id          uuid.UUID
	ownerUserID *uuid.UUID
	clubID      uuid.UUID
	email       string
	date        time.Time
	totals      Totals
	createdAt   time.Time
}

func NewTransaction(ownerUserID *uuid.UUID, clubID uuid.UUID, email string, date time.Time, units []*PurchaseUnit) (*Transaction, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	if len(units) == 0 {
		return nil, ErrNoUnits
	}

	var totals Totals
	for _, u := range units {
		totals.Accumulate(u)
	}

	return &Transaction{
		id:          uuid.New(),
		ownerUserID: ownerUserID,
		clubID:      clubID,
		email:       email,
		date:        date,
		totals:      totals,
	}, nil
}

func ReconstructTransaction(
	id uuid.UUID,
	ownerUserID *uuid.UUID,
	clubID uuid.UUID,
	email string,
	date time.Time,
	totals Totals,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		id:          id,
		ownerUserID: ownerUserID,
		clubID:      clubID,
		email:       email,
		date:        date,
		totals:      totals,
		createdAt:   createdAt,
	}
}

func (t *Transaction) ID() uuid.UUID           { return t.id }
func (t *Transaction) OwnerUserID() *uuid.UUID { return t.ownerUserID }
func (t *Transaction) ClubID() uuid.UUID       { return t.clubID }
func (t *Transaction) Email() string           { return t.email }
func (t *Transaction) Date() time.Time         { return t.date }
func (t *Transaction) Totals() Totals          { return t.totals }
func (t *Transaction) CreatedAt() time.Time    { return t.createdAt }
