//go:build unit

package cart_test

import (
	"errors"
	"testing"
	"time"

	"nightpass/internal/domain/cart"
	"nightpass/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	clubID = uuid.New()
	date   = builder.Date(2025, time.July, 4)
)

func line(t *testing.T, ticketID uuid.UUID, qty int) *cart.Line {
	t.Helper()
	l, err := cart.NewLine(ticketID, clubID, date, qty)
	require.NoError(t, err)
	return l
}

func TestNewLine(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		l, err := cart.NewLine(uuid.New(), clubID, date, 2)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, l.ID())
		assert.Equal(t, 2, l.Quantity())
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		_, err := cart.NewLine(uuid.New(), clubID, date, 0)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	})

	t.Run("missing ticket rejected", func(t *testing.T) {
		_, err := cart.NewLine(uuid.Nil, clubID, date, 1)
		assert.ErrorIs(t, err, cart.ErrInvalidLine)
	})

	t.Run("missing date rejected", func(t *testing.T) {
		_, err := cart.NewLine(uuid.New(), clubID, time.Time{}, 1)
		assert.ErrorIs(t, err, cart.ErrInvalidLine)
	})
}

func TestCheckCompatibility(t *testing.T) {
	existing := []*cart.Line{line(t, uuid.New(), 1)}

	t.Run("same club and date passes", func(t *testing.T) {
		assert.NoError(t, cart.CheckCompatibility(existing, clubID, date))
	})

	t.Run("different club fails", func(t *testing.T) {
		assert.ErrorIs(t, cart.CheckCompatibility(existing, uuid.New(), date), cart.ErrMixedClub)
	})

	t.Run("different date fails", func(t *testing.T) {
		other := date.AddDate(0, 0, 7)
		assert.ErrorIs(t, cart.CheckCompatibility(existing, clubID, other), cart.ErrMixedDate)
	})

	t.Run("empty cart always passes", func(t *testing.T) {
		assert.NoError(t, cart.CheckCompatibility(nil, uuid.New(), date))
	})
}

func TestQuantityFor(t *testing.T) {
	ticketID := uuid.New()
	l1 := line(t, ticketID, 2)
	l2 := line(t, ticketID, 1)
	other := line(t, uuid.New(), 5)
	lines := []*cart.Line{l1, l2, other}

	assert.Equal(t, 3, cart.QuantityFor(lines, ticketID, date, uuid.Nil))
	assert.Equal(t, 1, cart.QuantityFor(lines, ticketID, date, l1.ID()), "excluded line does not count")
	assert.Equal(t, 0, cart.QuantityFor(lines, uuid.New(), date, uuid.Nil))
}

func TestCheckCeilings(t *testing.T) {
	t.Run("per-person ceiling", func(t *testing.T) {
		tk := builder.NewTicketBuilder().WithMaxPerPerson(4).MustBuild()

		assert.NoError(t, cart.CheckCeilings(tk, 2, 2))
		assert.ErrorIs(t, cart.CheckCeilings(tk, 2, 3), cart.ErrMaxPerPerson)
	})

	t.Run("unlimited stock only enforces the per-person limit", func(t *testing.T) {
		tk := builder.NewTicketBuilder().WithMaxPerPerson(10).MustBuild()
		assert.NoError(t, cart.CheckCeilings(tk, 5, 5))
	})

	t.Run("stock ceiling reports remaining units", func(t *testing.T) {
		tk := builder.NewTicketBuilder().WithMaxPerPerson(10).WithQuantity(3).MustBuild()

		err := cart.CheckCeilings(tk, 2, 2)
		require.ErrorIs(t, err, cart.ErrInsufficientStock)

		var stockErr *cart.StockError
		require.True(t, errors.As(err, &stockErr))
		assert.Equal(t, 1, stockErr.Remaining)
	})

	t.Run("exhausted stock reports zero remaining", func(t *testing.T) {
		tk := builder.NewTicketBuilder().WithMaxPerPerson(10).WithQuantity(2).MustBuild()

		var stockErr *cart.StockError
		require.ErrorAs(t, cart.CheckCeilings(tk, 2, 1), &stockErr)
		assert.Equal(t, 0, stockErr.Remaining)
	})

	t.Run("non-positive request rejected", func(t *testing.T) {
		tk := builder.NewTicketBuilder().MustBuild()
		assert.ErrorIs(t, cart.CheckCeilings(tk, 0, 0), cart.ErrInvalidQuantity)
	})
}
