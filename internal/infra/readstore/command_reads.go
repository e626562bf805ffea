package readstore

import (
	"context"
	"errors"
	"time"

	"nightpass/internal/domain/cart"
	"nightpass/internal/domain/identity"
	"nightpass/internal/domain/ticket"
	"nightpass/internal/infra"
	"nightpass/internal/infra/db"
	"nightpass/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CommandReads serves the validation reads of the cart and checkout engines.
// Bound to the pool for pre-checks and to the running transaction inside a
// unit of work.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) TicketByID(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	row := r.db.QueryRow(ctx, `
SELECT t.id, t.club_id, t.name, t.price, t.available_date,
       t.is_recurrent_event, t.is_active, t.max_per_person, t.quantity,
       c.open_days
FROM tickets t
JOIN clubs c ON c.id = t.club_id
WHERE t.id = $1`, id)

	var (
		ticketID, clubID             uuid.UUID
		name                         string
		price                        int64
		availableDate                *time.Time
		isRecurrentEvent, isActive   bool
		maxPerPerson                 int
		quantity                     *int
		openDayNames                 []string
	)
	err := row.Scan(&ticketID, &clubID, &name, &price, &availableDate,
		&isRecurrentEvent, &isActive, &maxPerPerson, &quantity, &openDayNames)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load ticket", err)
	}

	if availableDate != nil {
		d := civilDate(*availableDate)
		availableDate = &d
	}

	tk, err := ticket.NewTicket(ticketID, clubID, name, price, availableDate,
		isRecurrentEvent, isActive, maxPerPerson, quantity, ticket.ParseOpenDays(openDayNames))
	if err != nil {
		return nil, infra.WrapRepoErr("invalid ticket row", err)
	}
	return tk, nil
}

func (r *CommandReads) HasConflictingEvent(ctx context.Context, clubID uuid.UUID, date time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
SELECT EXISTS (
    SELECT 1 FROM tickets
    WHERE club_id = $1 AND available_date = $2
      AND is_active AND NOT is_recurrent_event
)`, clubID, date).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check for conflicting events", err)
	}
	return exists, nil
}

func (r *CommandReads) CartLinesByOwner(ctx context.Context, owner identity.Owner) ([]*cart.Line, error) {
	clause, arg := ownerClause(owner)
	rows, err := r.db.Query(ctx, `
SELECT id, ticket_id, club_id, date, quantity, created_at
FROM cart_lines
WHERE `+clause+`
ORDER BY created_at DESC`, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart lines", err)
	}
	defer rows.Close()

	var lines []*cart.Line
	for rows.Next() {
		var (
			id, ticketID, lineClubID uuid.UUID
			date, createdAt          time.Time
			quantity                 int
		)
		if err := rows.Scan(&id, &ticketID, &lineClubID, &date, &quantity, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line", err)
		}
		lines = append(lines, cart.ReconstructLine(id, ticketID, lineClubID, civilDate(date), quantity, createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart lines", err)
	}
	return lines, nil
}

func (r *CommandReads) OwnedLineByID(ctx context.Context, lineID uuid.UUID) (*shared.OwnedLine, error) {
	row := r.db.QueryRow(ctx, `
SELECT id, user_id, session_id, ticket_id, club_id, date, quantity, created_at
FROM cart_lines
WHERE id = $1`, lineID)

	var (
		id, ticketID, clubID uuid.UUID
		userID               *uuid.UUID
		sessionID            *string
		date, createdAt      time.Time
		quantity             int
	)
	err := row.Scan(&id, &userID, &sessionID, &ticketID, &clubID, &date, &quantity, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("cart line not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load cart line", err)
	}

	return &shared.OwnedLine{
		Line:      cart.ReconstructLine(id, ticketID, clubID, civilDate(date), quantity, createdAt),
		UserID:    userID,
		SessionID: sessionID,
	}, nil
}

func ownerClause(owner identity.Owner) (string, any) {
	if userID := owner.UserID(); userID != nil {
		return "user_id = $1", *userID
	}
	return "session_id = $1", owner.SessionID()
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
