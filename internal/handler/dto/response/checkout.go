package response

import (
	"nightpass/internal/usecase/commands"

	"github.com/google/uuid"
)

type SettleSummaryItemResponse struct {
	TicketID   uuid.UUID `json:"ticketId"`
	TicketName string    `json:"ticketName"`
	Date       string    `json:"date"`
	Quantity   int       `json:"quantity"`
	QRTokens   []string  `json:"qrTokens"`
}

type CheckoutResponse struct {
	TransactionID uuid.UUID                   `json:"transactionId"`
	Summary       []SettleSummaryItemResponse `json:"summary"`
}

func FromSettleResult(result *commands.SettleResult) *CheckoutResponse {
	summary := make([]SettleSummaryItemResponse, len(result.Summary))
	for i, item := range result.Summary {
		summary[i] = SettleSummaryItemResponse{
			TicketID:   item.TicketID,
			TicketName: item.TicketName,
			Date:       item.Date.Format(dateLayout),
			Quantity:   item.Quantity,
			QRTokens:   item.QRTokens,
		}
	}
	return &CheckoutResponse{
		TransactionID: result.TransactionID,
		Summary:       summary,
	}
}
