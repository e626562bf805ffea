//go:build unit

package settlement_test

import (
	"testing"
	"time"

	"nightpass/internal/domain/settlement"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSplit(t *testing.T) {
	cases := []struct {
		name     string
		price    int64
		expected settlement.Split
	}{
		{
			name:  "round values at 10000",
			price: 10000,
			expected: settlement.Split{
				PlatformFee: 500,
				GatewayFee:  1199, // 299 + 900 fixed
				GatewayVAT:  228,  // 227.81 rounds up
				ClubNet:     9500,
			},
		},
		{
			name:  "half-up rounding at 5000",
			price: 5000,
			expected: settlement.Split{
				PlatformFee: 250,
				GatewayFee:  1050, // 149.5 rounds to 150, plus 900
				GatewayVAT:  200,  // 199.5 rounds to 200
				ClubNet:     4750,
			},
		},
		{
			name:  "one minor unit still carries the fixed gateway fee",
			price: 1,
			expected: settlement.Split{
				PlatformFee: 0,
				GatewayFee:  900,
				GatewayVAT:  171,
				ClubNet:     1,
			},
		},
		{
			name:     "free ticket settles to zero",
			price:    0,
			expected: settlement.Split{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			split, err := settlement.ComputeSplit(tc.price)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, split)
		})
	}

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := settlement.ComputeSplit(-1)
		assert.ErrorIs(t, err, settlement.ErrNegativePrice)
	})

	t.Run("platform fee plus club net equals the price", func(t *testing.T) {
		for _, price := range []int64{1, 7, 99, 101, 4999, 5000, 12345, 1000000} {
			split, err := settlement.ComputeSplit(price)
			require.NoError(t, err)
			assert.Equal(t, price, split.PlatformFee+split.ClubNet, "price %d", price)
		}
	})

	t.Run("N units total exactly N times the per-unit split", func(t *testing.T) {
		const price, n = 12345, 7
		unit, err := settlement.ComputeSplit(price)
		require.NoError(t, err)

		var sum settlement.Split
		for i := 0; i < n; i++ {
			u, err := settlement.ComputeSplit(price)
			require.NoError(t, err)
			sum.PlatformFee += u.PlatformFee
			sum.GatewayFee += u.GatewayFee
			sum.GatewayVAT += u.GatewayVAT
			sum.ClubNet += u.ClubNet
		}
		assert.Equal(t, unit.PlatformFee*n, sum.PlatformFee)
		assert.Equal(t, unit.GatewayFee*n, sum.GatewayFee)
		assert.Equal(t, unit.GatewayVAT*n, sum.GatewayVAT)
		assert.Equal(t, unit.ClubNet*n, sum.ClubNet)
	})
}

func TestQuotePerUnit(t *testing.T) {
	t.Run("fees are added on top of the price", func(t *testing.T) {
		quote, err := settlement.QuotePerUnit(10000)
		require.NoError(t, err)

		assert.Equal(t, int64(500), quote.PlatformFee)
		assert.Equal(t, int64(1199), quote.GatewayFee)
		assert.Equal(t, int64(228), quote.GatewayVAT)
		assert.Equal(t, int64(11927), quote.FinalPerUnit) // 10000+500+1199+228
	})

	t.Run("free ticket quotes zero", func(t *testing.T) {
		quote, err := settlement.QuotePerUnit(0)
		require.NoError(t, err)
		assert.Equal(t, settlement.Quote{}, quote)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := settlement.QuotePerUnit(-500)
		assert.ErrorIs(t, err, settlement.ErrNegativePrice)
	})

	t.Run("quote and split intentionally disagree on the final amount", func(t *testing.T) {
		quote, err := settlement.QuotePerUnit(10000)
		require.NoError(t, err)
		split, err := settlement.ComputeSplit(10000)
		require.NoError(t, err)

		// The quote charges fees on top; the split carves them out of the
		// already-paid price.
		assert.Greater(t, quote.FinalPerUnit, int64(10000))
		assert.Equal(t, int64(10000), split.ClubNet+split.PlatformFee)
	})
}

func TestTransactionTotals(t *testing.T) {
	clubID := uuid.New()
	ticketID := uuid.New()
	date := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)

	buildUnit := func(price int64) *settlement.PurchaseUnit {
		split, err := settlement.ComputeSplit(price)
		require.NoError(t, err)
		return settlement.NewPurchaseUnit(ticketID, clubID, date, "door@club.test", uuid.NewString(), nil, price, split)
	}

	t.Run("totals equal the sum of the unit fields exactly", func(t *testing.T) {
		units := []*settlement.PurchaseUnit{buildUnit(10000), buildUnit(10000), buildUnit(5000)}

		tx, err := settlement.NewTransaction(nil, clubID, "door@club.test", date, units)
		require.NoError(t, err)

		var want settlement.Totals
		for _, u := range units {
			want.Accumulate(u)
		}
		assert.Equal(t, want, tx.Totals())
		assert.Equal(t, int64(25000), tx.Totals().TotalPaid)
		assert.Equal(t, int64(1250), tx.Totals().PlatformReceives)
	})

	t.Run("stamping back-references every unit", func(t *testing.T) {
		units := []*settlement.PurchaseUnit{buildUnit(10000), buildUnit(10000)}
		tx, err := settlement.NewTransaction(nil, clubID, "door@club.test", date, units)
		require.NoError(t, err)

		for _, u := range units {
			u.StampTransaction(tx.ID())
			assert.Equal(t, tx.ID(), u.TransactionID())
		}
	})

	t.Run("email is required", func(t *testing.T) {
		_, err := settlement.NewTransaction(nil, clubID, "", date, []*settlement.PurchaseUnit{buildUnit(100)})
		assert.ErrorIs(t, err, settlement.ErrMissingEmail)
	})

	t.Run("at least one unit is required", func(t *testing.T) {
		_, err := settlement.NewTransaction(nil, clubID, "door@club.test", date, nil)
		assert.ErrorIs(t, err, settlement.ErrNoUnits)
	})
}
