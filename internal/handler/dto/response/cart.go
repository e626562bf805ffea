package response

import (
	"time"

	"nightpass/internal/domain/cart"
	"nightpass/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CartLineResponse struct {
	ID        uuid.UUID `json:"id"`
	TicketID  uuid.UUID `json:"ticketId"`
	ClubID    uuid.UUID `json:"clubId"`
	Date      string    `json:"date"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromCartLine(line *cart.Line) *CartLineResponse {
	return &CartLineResponse{
		ID:        line.ID(),
		TicketID:  line.TicketID(),
		ClubID:    line.ClubID(),
		Date:      line.Date().Format(dateLayout),
		Quantity:  line.Quantity(),
		CreatedAt: line.CreatedAt(),
	}
}

type CartLineViewResponse struct {
	ID         uuid.UUID `json:"id"`
	TicketID   uuid.UUID `json:"ticketId"`
	TicketName string    `json:"ticketName"`
	UnitPrice  int64     `json:"unitPrice"`
	ClubID     uuid.UUID `json:"clubId"`
	Date       string    `json:"date"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromCartLineView(v *queries.CartLineView) *CartLineViewResponse {
	return &CartLineViewResponse{
		ID:         v.ID,
		TicketID:   v.TicketID,
		TicketName: v.TicketName,
		UnitPrice:  v.UnitPrice,
		ClubID:     v.ClubID,
		Date:       v.Date.Format(dateLayout),
		Quantity:   v.Quantity,
		CreatedAt:  v.CreatedAt,
	}
}

type CartResponse struct {
	Lines []*CartLineViewResponse `json:"lines"`
}

func FromCartLineViews(views []*queries.CartLineView) *CartResponse {
	lines := make([]*CartLineViewResponse, len(views))
	for i, v := range views {
		lines[i] = FromCartLineView(v)
	}
	return &CartResponse{Lines: lines}
}

type QuoteLineResponse struct {
	Line         *CartLineViewResponse `json:"line"`
	BasePrice    int64                 `json:"basePrice"`
	PlatformFee  int64                 `json:"platformFee"`
	GatewayFee   int64                 `json:"gatewayFee"`
	GatewayVAT   int64                 `json:"gatewayVat"`
	FinalPerUnit int64                 `json:"finalPerUnit"`
	LineSubtotal int64                 `json:"lineSubtotal"`
}

type QuoteResponse struct {
	Lines []*QuoteLineResponse `json:"lines"`
	Total int64                `json:"total"`
}

func FromCartQuote(q *queries.CartQuote) *QuoteResponse {
	lines := make([]*QuoteLineResponse, len(q.Lines))
	for i, ql := range q.Lines {
		lines[i] = &QuoteLineResponse{
			Line:         FromCartLineView(ql.Line),
			BasePrice:    ql.PerUnit.UnitPrice,
			PlatformFee:  ql.PerUnit.PlatformFee,
			GatewayFee:   ql.PerUnit.GatewayFee,
			GatewayVAT:   ql.PerUnit.GatewayVAT,
			FinalPerUnit: ql.PerUnit.FinalPerUnit,
			LineSubtotal: ql.LineSubtotal,
		}
	}
	return &QuoteResponse{Lines: lines, Total: q.Total}
}
