package settlement

import "errors"

var ErrNegativePrice = errors.New("unit price cannot be negative")

// Fee schedule, in force for every settled unit:
// platform keeps 5% of the price, the payment gateway charges 2.99% plus a
// fixed 900 minor units per unit, and 19% VAT applies to the gateway charge.
const (
	platformFeePermille  = 50   // 5.0% expressed in 1/1000
	gatewayFeeBasisP10k  = 299  // 2.99% expressed in 1/10000
	gatewayFixedFee      = 900  // minor units per unit
	gatewayVATPercent    = 19
)

// Split is the settled division of one paid unit. The club nets the price
// minus the platform fee; gateway cost and its VAT are tracked for
// reconciliation but were already baked into what the customer paid.
type Split struct {
	PlatformFee int64
	GatewayFee  int64
	GatewayVAT  int64
	ClubNet     int64
}

// ComputeSplit divides a unit price in minor currency units. All rounding is
// half-up per unit, in pure integer arithmetic: N units always total exactly
// N times the per-unit split. Free tickets settle to all zeros.
func ComputeSplit(unitPrice int64) (Split, error) {
	if unitPrice < 0 {
		return Split{}, ErrNegativePrice
	}
	if unitPrice == 0 {
		return Split{}, nil
	}

	platformFee := roundHalfUp(unitPrice*platformFeePermille, 1000)
	gatewayFee := roundHalfUp(unitPrice*gatewayFeeBasisP10k, 10000) + gatewayFixedFee
	gatewayVAT := roundHalfUp(gatewayFee*gatewayVATPercent, 100)

	return Split{
		PlatformFee: platformFee,
		GatewayFee:  gatewayFee,
		GatewayVAT:  gatewayVAT,
		ClubNet:     unitPrice - platformFee,
	}, nil
}

// roundHalfUp divides num by den rounding half away from zero.
// Both arguments must be non-negative.
func roundHalfUp(num, den int64) int64 {
	return (num + den/2) / den
}
