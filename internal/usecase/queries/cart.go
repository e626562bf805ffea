package queries

import (
	"context"

	"nightpass/internal/domain/identity"
	"nightpass/internal/domain/settlement"
	"nightpass/internal/pkg/errs"
)

var ErrQueryFailed = errs.New("query failed")

// QuoteLine is the customer-facing estimate for one cart line. Unlike the
// settlement split, the estimate adds fees on top of the listed price; it
// previews a gateway-collected total and is never persisted.
type QuoteLine struct {
	Line         *CartLineView
	PerUnit      settlement.Quote
	LineSubtotal int64
}

type CartQuote struct {
	Lines []QuoteLine
	Total int64
}

type CartQueries interface {
	ListLines(ctx context.Context, owner identity.Owner) ([]*CartLineView, error)
	Quote(ctx context.Context, owner identity.Owner) (*CartQuote, error)
}

type cartQueriesImpl struct {
	carts CartReadStore
}

func NewCartQueries(carts CartReadStore) CartQueries {
	return &cartQueriesImpl{carts: carts}
}

func (q *cartQueriesImpl) ListLines(ctx context.Context, owner identity.Owner) ([]*CartLineView, error) {
	lines, err := q.carts.LinesByOwner(ctx, owner)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return lines, nil
}

func (q *cartQueriesImpl) Quote(ctx context.Context, owner identity.Owner) (*CartQuote, error) {
	lines, err := q.carts.LinesByOwner(ctx, owner)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	quote := &CartQuote{Lines: make([]QuoteLine, 0, len(lines))}
	for _, line := range lines {
		perUnit, err := settlement.QuotePerUnit(line.UnitPrice)
		if err != nil {
			return nil, errs.Mark(err, ErrQueryFailed)
		}
		subtotal := perUnit.FinalPerUnit * int64(line.Quantity)
		quote.Lines = append(quote.Lines, QuoteLine{
			Line:         line,
			PerUnit:      perUnit,
			LineSubtotal: subtotal,
		})
		quote.Total += subtotal
	}
	return quote, nil
}
