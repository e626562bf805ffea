package queries

import (
	"context"

	"nightpass/internal/domain/identity"
	"nightpass/internal/infra"
	"nightpass/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound = errs.New("transaction not found")
	ErrPurchaseNotFound    = errs.New("purchase not found")
	ErrNotTransactionOwner = errs.New("transaction belongs to another user")
)

type TransactionDetail struct {
	Transaction *TransactionView
	Units       []*PurchaseUnitView
}

type TransactionQueries interface {
	// GetByID returns the settled ledger entry with its purchase units.
	// Entries owned by a user are only visible to that user; anonymous
	// purchases are addressable by their unguessable id alone.
	GetByID(ctx context.Context, owner identity.Owner, id uuid.UUID) (*TransactionDetail, error)
	// UnitByToken resolves an opaque door token to its purchase unit.
	UnitByToken(ctx context.Context, qrToken string) (*PurchaseUnitView, error)
}

type transactionQueriesImpl struct {
	transactions TransactionReadStore
}

func NewTransactionQueries(transactions TransactionReadStore) TransactionQueries {
	return &transactionQueriesImpl{transactions: transactions}
}

func (q *transactionQueriesImpl) GetByID(ctx context.Context, owner identity.Owner, id uuid.UUID) (*TransactionDetail, error) {
	view, err := q.transactions.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	if view.OwnerUserID != nil {
		userID := owner.UserID()
		if userID == nil || *userID != *view.OwnerUserID {
			return nil, ErrNotTransactionOwner
		}
	}

	units, err := q.transactions.UnitsByTransactionID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	return &TransactionDetail{Transaction: view, Units: units}, nil
}

func (q *transactionQueriesImpl) UnitByToken(ctx context.Context, qrToken string) (*PurchaseUnitView, error) {
	if qrToken == "" {
		return nil, ErrPurchaseNotFound
	}
	unit, err := q.transactions.UnitByToken(ctx, qrToken)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return unit, nil
}
