//go:build unit

package commands_test

import (
	"context"
	"time"

	"nightpass/internal/domain/cart"
	"nightpass/internal/domain/identity"
	"nightpass/internal/domain/settlement"
	"nightpass/internal/domain/ticket"
	"nightpass/internal/infra"
	"nightpass/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the persistence layer. It backs the
// unit of work, the command reads and all three write repositories, so the
// engines run their full validation paths without a database. It does not
// roll back: failure tests assert on steps that never ran, not on undo.
type fakeStore struct {
	tickets   map[uuid.UUID]*ticket.Ticket
	conflicts map[string]bool
	rows      []*ownedRow

	transactions []*settlement.Transaction
	units        []*settlement.PurchaseUnit
	jobs         []fakeJob
}

type ownedRow struct {
	line      *cart.Line
	userID    *uuid.UUID
	sessionID *string
}

type fakeJob struct {
	kind    string
	topic   string
	payload []byte
	runAt   time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tickets:   make(map[uuid.UUID]*ticket.Ticket),
		conflicts: make(map[string]bool),
	}
}

func (s *fakeStore) AddTicket(tk *ticket.Ticket) {
	s.tickets[tk.ID()] = tk
}

func (s *fakeStore) SetConflict(clubID uuid.UUID, date time.Time) {
	s.conflicts[conflictKey(clubID, date)] = true
}

func (s *fakeStore) SeedLine(owner identity.Owner, line *cart.Line) {
	s.rows = append(s.rows, newOwnedRow(owner, line))
}

func (s *fakeStore) LinesFor(owner identity.Owner) []*cart.Line {
	var lines []*cart.Line
	for i := len(s.rows) - 1; i >= 0; i-- {
		if s.rows[i].matches(owner) {
			lines = append(lines, s.rows[i].line)
		}
	}
	return lines
}

func newOwnedRow(owner identity.Owner, line *cart.Line) *ownedRow {
	row := &ownedRow{line: line}
	if userID := owner.UserID(); userID != nil {
		row.userID = userID
	} else {
		sid := owner.SessionID()
		row.sessionID = &sid
	}
	return row
}

func (r *ownedRow) matches(owner identity.Owner) bool {
	if userID := owner.UserID(); userID != nil {
		return r.userID != nil && *r.userID == *userID
	}
	return r.sessionID != nil && *r.sessionID == owner.SessionID()
}

func conflictKey(clubID uuid.UUID, date time.Time) string {
	return clubID.String() + "|" + date.Format("2006-01-02")
}

// CommandReads

func (s *fakeStore) TicketByID(_ context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	tk, ok := s.tickets[id]
	if !ok {
		return nil, infra.WrapRepoErr("ticket not found", nil, infra.KindNotFound)
	}
	return tk, nil
}

func (s *fakeStore) HasConflictingEvent(_ context.Context, clubID uuid.UUID, date time.Time) (bool, error) {
	return s.conflicts[conflictKey(clubID, date)], nil
}

func (s *fakeStore) CartLinesByOwner(_ context.Context, owner identity.Owner) ([]*cart.Line, error) {
	return s.LinesFor(owner), nil
}

func (s *fakeStore) OwnedLineByID(_ context.Context, lineID uuid.UUID) (*shared.OwnedLine, error) {
	for _, row := range s.rows {
		if row.line.ID() == lineID {
			return &shared.OwnedLine{
				Line:      row.line,
				UserID:    row.userID,
				SessionID: row.sessionID,
			}, nil
		}
	}
	return nil, infra.WrapRepoErr("cart line not found", nil, infra.KindNotFound)
}

// CartLineRepository

func (s *fakeStore) UpsertAdd(_ context.Context, owner identity.Owner, line *cart.Line) (*cart.Line, error) {
	for _, row := range s.rows {
		if row.matches(owner) && row.line.TicketID() == line.TicketID() && row.line.Date().Equal(line.Date()) {
			merged := cart.ReconstructLine(
				row.line.ID(), row.line.TicketID(), row.line.ClubID(), row.line.Date(),
				row.line.Quantity()+line.Quantity(), row.line.CreatedAt(),
			)
			row.line = merged
			return merged, nil
		}
	}
	s.rows = append(s.rows, newOwnedRow(owner, line))
	return line, nil
}

func (s *fakeStore) UpdateQuantity(_ context.Context, lineID uuid.UUID, quantity int) (*cart.Line, error) {
	for _, row := range s.rows {
		if row.line.ID() == lineID {
			updated := cart.ReconstructLine(
				row.line.ID(), row.line.TicketID(), row.line.ClubID(), row.line.Date(),
				quantity, row.line.CreatedAt(),
			)
			row.line = updated
			return updated, nil
		}
	}
	return nil, infra.WrapRepoErr("cart line not found", nil, infra.KindNotFound)
}

func (s *fakeStore) Delete(_ context.Context, lineID uuid.UUID) error {
	for i, row := range s.rows {
		if row.line.ID() == lineID {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return infra.WrapRepoErr("cart line not found", nil, infra.KindNotFound)
}

func (s *fakeStore) LockByOwner(_ context.Context, owner identity.Owner) ([]*cart.Line, error) {
	return s.LinesFor(owner), nil
}

func (s *fakeStore) DeleteByOwner(_ context.Context, owner identity.Owner) error {
	kept := s.rows[:0]
	for _, row := range s.rows {
		if !row.matches(owner) {
			kept = append(kept, row)
		}
	}
	s.rows = kept
	return nil
}

func (s *fakeStore) DeleteDatedBefore(_ context.Context, date time.Time) (int64, error) {
	var removed int64
	kept := s.rows[:0]
	for _, row := range s.rows {
		if row.line.Date().Before(date) {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	s.rows = kept
	return removed, nil
}

// SettlementRepository

func (s *fakeStore) CreateTransaction(_ context.Context, tx *settlement.Transaction) error {
	s.transactions = append(s.transactions, tx)
	return nil
}

func (s *fakeStore) CreatePurchaseUnits(_ context.Context, units []*settlement.PurchaseUnit) error {
	s.units = append(s.units, units...)
	return nil
}

// NotificationRepository

func (s *fakeStore) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	s.jobs = append(s.jobs, fakeJob{kind: kind, topic: topic, payload: payload, runAt: runAt})
	return nil
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) Reads() shared.CommandReads {
	return u.store
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) CartLines() shared.CartLineRepository         { return t.store }
func (t *fakeTx) Settlements() shared.SettlementRepository     { return t.store }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.store }
func (t *fakeTx) Reads() shared.CommandReads                   { return t.store }
