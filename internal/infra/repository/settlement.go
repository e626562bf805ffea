package repository

import (
	"context"
	"errors"

	"nightpass/internal/domain/settlement"
	"nightpass/internal/infra"
	"nightpass/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type SettlementRepository struct {
	db db.DBTX
}

func NewSettlementRepository(dbtx db.DBTX) *SettlementRepository {
	return &SettlementRepository{db: dbtx}
}

func (r *SettlementRepository) CreateTransaction(ctx context.Context, tx *settlement.Transaction) error {
	totals := tx.Totals()
	_, err := r.db.Exec(ctx, `
INSERT INTO transactions (
    id, owner_user_id, club_id, email, date,
    total_paid, club_receives, platform_receives, gateway_fee, gateway_vat
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		tx.ID(), tx.OwnerUserID(), tx.ClubID(), tx.Email(), tx.Date(),
		totals.TotalPaid, totals.ClubReceives, totals.PlatformReceives,
		totals.GatewayFee, totals.GatewayVAT)
	if err != nil {
		return infra.WrapRepoErr("failed to insert transaction", err, classifyPgErr(err))
	}
	return nil
}

const insertPurchaseUnit = `
INSERT INTO purchase_units (
    id, transaction_id, ticket_id, club_id, date, email, qr_token, owner_user_id,
    user_paid, club_receives, platform_receives, gateway_fee, gateway_vat
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (r *SettlementRepository) CreatePurchaseUnits(ctx context.Context, units []*settlement.PurchaseUnit) error {
	batch := &pgx.Batch{}
	for _, u := range units {
		batch.Queue(insertPurchaseUnit,
			u.ID(), u.TransactionID(), u.TicketID(), u.ClubID(), u.Date(),
			u.Email(), u.QRToken(), u.OwnerUserID(),
			u.UserPaid(), u.ClubReceives(), u.PlatformReceives(),
			u.GatewayFee(), u.GatewayVAT())
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for range units {
		if _, err := results.Exec(); err != nil {
			return infra.WrapRepoErr("failed to insert purchase units", err, classifyPgErr(err))
		}
	}
	return nil
}

// classifyPgErr maps PostgreSQL constraint violations onto repository kinds.
func classifyPgErr(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return infra.KindDuplicateKey
		case "23503":
			return infra.KindForeignKeyViolated
		}
	}
	return infra.KindDBFailure
}
