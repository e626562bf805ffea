package repository

import (
	"context"
	"errors"
	"time"

	"nightpass/internal/domain/cart"
	"nightpass/internal/domain/identity"
	"nightpass/internal/infra"
	"nightpass/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CartLineRepository struct {
	db db.DBTX
}

func NewCartLineRepository(dbtx db.DBTX) *CartLineRepository {
	return &CartLineRepository{db: dbtx}
}

const upsertLineByUser = `
INSERT INTO cart_lines (id, user_id, ticket_id, club_id, date, quantity)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, ticket_id, date) WHERE user_id IS NOT NULL
DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity
RETURNING id, ticket_id, club_id, date, quantity, created_at`

const upsertLineBySession = `
INSERT INTO cart_lines (id, session_id, ticket_id, club_id, date, quantity)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (session_id, ticket_id, date) WHERE session_id IS NOT NULL
DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity
RETURNING id, ticket_id, club_id, date, quantity, created_at`

func (r *CartLineRepository) UpsertAdd(ctx context.Context, owner identity.Owner, line *cart.Line) (*cart.Line, error) {
	var row pgx.Row
	if userID := owner.UserID(); userID != nil {
		row = r.db.QueryRow(ctx, upsertLineByUser,
			line.ID(), *userID, line.TicketID(), line.ClubID(), line.Date(), line.Quantity())
	} else {
		row = r.db.QueryRow(ctx, upsertLineBySession,
			line.ID(), owner.SessionID(), line.TicketID(), line.ClubID(), line.Date(), line.Quantity())
	}

	result, err := scanLine(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert cart line", err)
	}
	return result, nil
}

func (r *CartLineRepository) UpdateQuantity(ctx context.Context, lineID uuid.UUID, quantity int) (*cart.Line, error) {
	row := r.db.QueryRow(ctx, `
UPDATE cart_lines SET quantity = $2 WHERE id = $1
RETURNING id, ticket_id, club_id, date, quantity, created_at`,
		lineID, quantity)

	result, err := scanLine(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("cart line not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update cart line quantity", err)
	}
	return result, nil
}

func (r *CartLineRepository) Delete(ctx context.Context, lineID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart_lines WHERE id = $1`, lineID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete cart line", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart line not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CartLineRepository) LockByOwner(ctx context.Context, owner identity.Owner) ([]*cart.Line, error) {
	clause, arg := ownerClause(owner)
	rows, err := r.db.Query(ctx, `
SELECT id, ticket_id, club_id, date, quantity, created_at
FROM cart_lines
WHERE `+clause+`
ORDER BY created_at DESC
FOR UPDATE`, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock cart lines", err)
	}
	defer rows.Close()

	return collectLines(rows)
}

func (r *CartLineRepository) DeleteByOwner(ctx context.Context, owner identity.Owner) error {
	clause, arg := ownerClause(owner)
	if _, err := r.db.Exec(ctx, `DELETE FROM cart_lines WHERE `+clause, arg); err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}

func (r *CartLineRepository) DeleteDatedBefore(ctx context.Context, date time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart_lines WHERE date < $1`, date)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sweep stale cart lines", err)
	}
	return tag.RowsAffected(), nil
}

func ownerClause(owner identity.Owner) (string, any) {
	if userID := owner.UserID(); userID != nil {
		return "user_id = $1", *userID
	}
	return "session_id = $1", owner.SessionID()
}

func scanLine(row pgx.Row) (*cart.Line, error) {
	var (
		id, ticketID, clubID uuid.UUID
		date, createdAt      time.Time
		quantity             int
	)
	if err := row.Scan(&id, &ticketID, &clubID, &date, &quantity, &createdAt); err != nil {
		return nil, err
	}
	return cart.ReconstructLine(id, ticketID, clubID, civilDate(date), quantity, createdAt), nil
}

func collectLines(rows pgx.Rows) ([]*cart.Line, error) {
	var lines []*cart.Line
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart lines", err)
	}
	return lines, nil
}

// civilDate normalizes a scanned DATE value to midnight UTC so it compares
// with Equal against engine-built dates.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
