package readstore

import (
	"context"
	"errors"
	"time"

	"nightpass/internal/infra"
	"nightpass/internal/infra/db"
	"nightpass/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TransactionReadStore struct {
	db db.DBTX
}

func NewTransactionReadStore(dbtx db.DBTX) *TransactionReadStore {
	return &TransactionReadStore{db: dbtx}
}

func (r *TransactionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TransactionView, error) {
	row := r.db.QueryRow(ctx, `
SELECT id, owner_user_id, club_id, email, date,
       total_paid, club_receives, platform_receives, gateway_fee, gateway_vat,
       created_at
FROM transactions
WHERE id = $1`, id)

	var (
		v    queries.TransactionView
		date time.Time
	)
	err := row.Scan(&v.ID, &v.OwnerUserID, &v.ClubID, &v.Email, &date,
		&v.TotalPaid, &v.ClubReceives, &v.PlatformReceives, &v.GatewayFee, &v.GatewayVAT,
		&v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load transaction", err)
	}
	v.Date = civilDate(date)
	return &v, nil
}

const selectUnit = `
SELECT u.id, u.ticket_id, t.name, u.club_id, u.date, u.email, u.qr_token,
       u.owner_user_id, u.user_paid, u.club_receives, u.platform_receives,
       u.gateway_fee, u.gateway_vat, u.transaction_id
FROM purchase_units u
JOIN tickets t ON t.id = u.ticket_id`

func (r *TransactionReadStore) UnitsByTransactionID(ctx context.Context, id uuid.UUID) ([]*queries.PurchaseUnitView, error) {
	rows, err := r.db.Query(ctx, selectUnit+`
WHERE u.transaction_id = $1
ORDER BY u.created_at, u.id`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list purchase units", err)
	}
	defer rows.Close()

	var views []*queries.PurchaseUnitView
	for rows.Next() {
		v, err := scanUnit(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan purchase unit", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read purchase units", err)
	}
	return views, nil
}

func (r *TransactionReadStore) UnitByToken(ctx context.Context, qrToken string) (*queries.PurchaseUnitView, error) {
	row := r.db.QueryRow(ctx, selectUnit+`
WHERE u.qr_token = $1`, qrToken)

	v, err := scanUnit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("purchase unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load purchase unit", err)
	}
	return v, nil
}

func scanUnit(row pgx.Row) (*queries.PurchaseUnitView, error) {
	var (
		v    queries.PurchaseUnitView
		date time.Time
	)
	err := row.Scan(&v.ID, &v.TicketID, &v.TicketName, &v.ClubID, &date, &v.Email, &v.QRToken,
		&v.OwnerUserID, &v.UserPaid, &v.ClubReceives, &v.PlatformReceives,
		&v.GatewayFee, &v.GatewayVAT, &v.TransactionID)
	if err != nil {
		return nil, err
	}
	v.Date = civilDate(date)
	return &v, nil
}
