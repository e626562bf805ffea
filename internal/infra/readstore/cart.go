package readstore

import (
	"context"
	"time"

	"nightpass/internal/domain/identity"
	"nightpass/internal/infra"
	"nightpass/internal/infra/db"
	"nightpass/internal/usecase/queries"
)

// CartReadStore serves the cart listing and quote queries from the pool,
// joined with the live catalog price.
type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(dbtx db.DBTX) *CartReadStore {
	return &CartReadStore{db: dbtx}
}

func (r *CartReadStore) LinesByOwner(ctx context.Context, owner identity.Owner) ([]*queries.CartLineView, error) {
	clause, arg := ownerClause(owner)
	rows, err := r.db.Query(ctx, `
SELECT l.id, l.ticket_id, t.name, t.price, l.club_id, l.date, l.quantity, l.created_at
FROM cart_lines l
JOIN tickets t ON t.id = l.ticket_id
WHERE l.`+clause+`
ORDER BY l.created_at DESC`, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart lines", err)
	}
	defer rows.Close()

	var views []*queries.CartLineView
	for rows.Next() {
		var (
			v    queries.CartLineView
			date time.Time
		)
		if err := rows.Scan(&v.ID, &v.TicketID, &v.TicketName, &v.UnitPrice,
			&v.ClubID, &date, &v.Quantity, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line view", err)
		}
		v.Date = civilDate(date)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart line views", err)
	}
	return views, nil
}
