package settlement

// Quote is the customer-facing pre-checkout estimate for one unit. Unlike
// the settlement split, the quote adds the platform fee, gateway fee and VAT
// on top of the listed price: it models what a gateway-collected total would
// look like, while the split divides a price the customer already paid at
// cart time. The two are intentionally not required to agree.
type Quote struct {
	UnitPrice    int64
	PlatformFee  int64
	GatewayFee   int64
	GatewayVAT   int64
	FinalPerUnit int64
}

// QuotePerUnit estimates the all-in per-unit charge for a listed price.
// Free tickets quote zero across the board.
func QuotePerUnit(unitPrice int64) (Quote, error) {
	if unitPrice < 0 {
		return Quote{}, ErrNegativePrice
	}
	if unitPrice == 0 {
		return Quote{UnitPrice: 0}, nil
	}

	platformFee := roundHalfUp(unitPrice*platformFeePermille, 1000)
	gatewayFee := roundHalfUp(unitPrice*gatewayFeeBasisP10k, 10000) + gatewayFixedFee
	gatewayVAT := roundHalfUp(gatewayFee*gatewayVATPercent, 100)

	return Quote{
		UnitPrice:    unitPrice,
		PlatformFee:  platformFee,
		GatewayFee:   gatewayFee,
		GatewayVAT:   gatewayVAT,
		FinalPerUnit: unitPrice + platformFee + gatewayFee + gatewayVAT,
	}, nil
}
