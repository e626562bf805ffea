//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nightpass/internal/domain/cart"
	"nightpass/internal/domain/identity"
	"nightpass/internal/domain/ticket"
	"nightpass/internal/pkg/clock"
	"nightpass/internal/pkg/token"
	"nightpass/internal/usecase/commands"
	"nightpass/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	store *fakeStore
	clk   *clock.MockClock
	cmds  commands.CheckoutCommands
	owner identity.Owner
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.store = newFakeStore()
	s.clk = clock.NewMockClock(testNow)
	s.cmds = commands.NewCheckoutCommands(&fakeUoW{store: s.store}, token.NewRandomProvider(), s.clk)

	owner, err := identity.NewAnonymous("sess-checkout-test")
	s.Require().NoError(err)
	s.owner = owner
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) seedLine(tk *ticket.Ticket, date time.Time, qty int) *cart.Line {
	line, err := cart.NewLine(tk.ID(), tk.ClubID(), date, qty)
	s.Require().NoError(err)
	s.store.SeedLine(s.owner, line)
	return line
}

func (s *CheckoutCommandsTestSuite) TestSettle_ExpandsLinesIntoUnits() {
	clubID := uuid.New()
	friday := builder.Date(2025, time.July, 4)
	tkA := builder.NewTicketBuilder().WithClubID(clubID).WithPrice(10000).WithName("VIP Cover").MustBuild()
	tkB := builder.NewTicketBuilder().WithClubID(clubID).WithPrice(10000).WithName("General Cover").MustBuild()
	s.store.AddTicket(tkA)
	s.store.AddTicket(tkB)
	s.seedLine(tkA, friday, 1)
	s.seedLine(tkB, friday, 2)

	result, err := s.cmds.Settle(context.Background(), s.owner, "guest@example.com")
	s.Require().NoError(err)

	// One unit per admitted person.
	s.Require().Len(s.store.units, 3)
	s.Require().Len(s.store.transactions, 1)

	tx := s.store.transactions[0]
	s.Equal(result.TransactionID, tx.ID())
	s.Nil(tx.OwnerUserID())
	s.Equal(clubID, tx.ClubID())
	s.Equal("guest@example.com", tx.Email())

	// 10000 per unit: platform 500, gateway 1199, VAT 228, club 9500.
	totals := tx.Totals()
	s.Equal(int64(30000), totals.TotalPaid)
	s.Equal(int64(28500), totals.ClubReceives)
	s.Equal(int64(1500), totals.PlatformReceives)
	s.Equal(int64(3597), totals.GatewayFee)
	s.Equal(int64(684), totals.GatewayVAT)

	// Every unit stamped with the owning transaction and a unique token.
	tokens := make(map[string]struct{}, len(s.store.units))
	for _, u := range s.store.units {
		s.Equal(tx.ID(), u.TransactionID())
		s.Equal("guest@example.com", u.Email())
		s.Equal(int64(10000), u.UserPaid())
		tokens[u.QRToken()] = struct{}{}
	}
	s.Len(tokens, 3)

	s.Require().Len(result.Summary, 2)
	s.Len(result.Summary[0].QRTokens, result.Summary[0].Quantity)
	s.Len(result.Summary[1].QRTokens, result.Summary[1].Quantity)

	// Settlement wipes the cart and queues the receipt.
	s.Empty(s.store.LinesFor(s.owner))
	s.Require().Len(s.store.jobs, 1)
	s.Equal("email", s.store.jobs[0].kind)
	s.Equal("purchase_completed", s.store.jobs[0].topic)
}

func (s *CheckoutCommandsTestSuite) TestSettle_EmptyCart() {
	_, err := s.cmds.Settle(context.Background(), s.owner, "guest@example.com")
	s.Require().ErrorIs(err, commands.ErrEmptyCart)
}

func (s *CheckoutCommandsTestSuite) TestSettle_MissingEmail() {
	tk := builder.NewTicketBuilder().MustBuild()
	s.store.AddTicket(tk)
	s.seedLine(tk, builder.Date(2025, time.July, 4), 1)

	_, err := s.cmds.Settle(context.Background(), s.owner, "")
	s.Require().ErrorIs(err, commands.ErrMissingEmail)
	s.Len(s.store.LinesFor(s.owner), 1)
}

func (s *CheckoutCommandsTestSuite) TestSettle_MissingIdentity() {
	_, err := s.cmds.Settle(context.Background(), identity.Owner{}, "guest@example.com")
	s.Require().ErrorIs(err, commands.ErrMissingIdentity)
}

func (s *CheckoutCommandsTestSuite) TestSettle_DeactivatedTicketAbortsUntouched() {
	tk := builder.NewTicketBuilder().WithName("Closing Party").WithActive(false).MustBuild()
	s.store.AddTicket(tk)
	s.seedLine(tk, builder.Date(2025, time.July, 4), 2)

	_, err := s.cmds.Settle(context.Background(), s.owner, "guest@example.com")
	s.Require().ErrorIs(err, commands.ErrTicketUnavailable)

	var unavailable *commands.UnavailableTicketError
	s.Require().True(errors.As(err, &unavailable))
	s.Equal(tk.ID(), unavailable.TicketID)
	s.Equal("Closing Party", unavailable.TicketName)

	// Nothing settled, cart intact.
	s.Empty(s.store.transactions)
	s.Empty(s.store.units)
	s.Empty(s.store.jobs)
	s.Len(s.store.LinesFor(s.owner), 1)
}

func (s *CheckoutCommandsTestSuite) TestSettle_RemovedTicketAbortsUntouched() {
	tk := builder.NewTicketBuilder().MustBuild()
	// Not added to the catalog: the line points at a deleted ticket.
	s.seedLine(tk, builder.Date(2025, time.July, 4), 1)

	_, err := s.cmds.Settle(context.Background(), s.owner, "guest@example.com")
	s.Require().ErrorIs(err, commands.ErrTicketUnavailable)
	s.Len(s.store.LinesFor(s.owner), 1)
}

func (s *CheckoutCommandsTestSuite) TestSettle_FreeTicketSettlesAtZero() {
	eventDate := builder.Date(2025, time.July, 4)
	tk := builder.NewTicketBuilder().WithPrice(0).WithAvailableDate(eventDate).MustBuild()
	s.store.AddTicket(tk)
	s.seedLine(tk, eventDate, 2)

	_, err := s.cmds.Settle(context.Background(), s.owner, "guest@example.com")
	s.Require().NoError(err)

	s.Require().Len(s.store.units, 2)
	for _, u := range s.store.units {
		s.Zero(u.UserPaid())
		s.Zero(u.ClubReceives())
		s.Zero(u.GatewayFee())
		s.NotEmpty(u.QRToken())
	}

	totals := s.store.transactions[0].Totals()
	s.Zero(totals.TotalPaid)
	s.Zero(totals.PlatformReceives)
}

func (s *CheckoutCommandsTestSuite) TestSettle_AuthenticatedOwnerStampedOnLedger() {
	userID := uuid.New()
	owner, err := identity.NewAuthenticated(userID, "member@example.com")
	s.Require().NoError(err)

	tk := builder.NewTicketBuilder().MustBuild()
	s.store.AddTicket(tk)
	line, err := cart.NewLine(tk.ID(), tk.ClubID(), builder.Date(2025, time.July, 4), 1)
	s.Require().NoError(err)
	s.store.SeedLine(owner, line)

	result, err := s.cmds.Settle(context.Background(), owner, "member@example.com")
	s.Require().NoError(err)

	tx := s.store.transactions[0]
	s.Equal(result.TransactionID, tx.ID())
	s.Require().NotNil(tx.OwnerUserID())
	s.Equal(userID, *tx.OwnerUserID())

	s.Require().Len(s.store.units, 1)
	s.Require().NotNil(s.store.units[0].OwnerUserID())
	s.Equal(userID, *s.store.units[0].OwnerUserID())
}
