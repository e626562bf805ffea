package response

import (
	"time"

	"nightpass/internal/usecase/queries"

	"github.com/google/uuid"
)

type PurchaseUnitResponse struct {
	ID         uuid.UUID `json:"id"`
	TicketID   uuid.UUID `json:"ticketId"`
	TicketName string    `json:"ticketName"`
	Date       string    `json:"date"`
	QRToken    string    `json:"qrToken"`
	UserPaid   int64     `json:"userPaid"`
}

type TransactionResponse struct {
	ID               uuid.UUID              `json:"id"`
	ClubID           uuid.UUID              `json:"clubId"`
	Email            string                 `json:"email"`
	Date             string                 `json:"date"`
	TotalPaid        int64                  `json:"totalPaid"`
	ClubReceives     int64                  `json:"clubReceives"`
	PlatformReceives int64                  `json:"platformReceives"`
	GatewayFee       int64                  `json:"gatewayFee"`
	GatewayVAT       int64                  `json:"gatewayVat"`
	CreatedAt        time.Time              `json:"createdAt"`
	Units            []PurchaseUnitResponse `json:"units"`
}

func FromTransactionDetail(detail *queries.TransactionDetail) *TransactionResponse {
	t := detail.Transaction
	units := make([]PurchaseUnitResponse, len(detail.Units))
	for i, u := range detail.Units {
		units[i] = PurchaseUnitResponse{
			ID:         u.ID,
			TicketID:   u.TicketID,
			TicketName: u.TicketName,
			Date:       u.Date.Format(dateLayout),
			QRToken:    u.QRToken,
			UserPaid:   u.UserPaid,
		}
	}
	return &TransactionResponse{
		ID:               t.ID,
		ClubID:           t.ClubID,
		Email:            t.Email,
		Date:             t.Date.Format(dateLayout),
		TotalPaid:        t.TotalPaid,
		ClubReceives:     t.ClubReceives,
		PlatformReceives: t.PlatformReceives,
		GatewayFee:       t.GatewayFee,
		GatewayVAT:       t.GatewayVAT,
		CreatedAt:        t.CreatedAt,
		Units:            units,
	}
}
