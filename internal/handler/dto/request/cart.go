package request

import (
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type AddCartLineRequest struct {
	TicketID uuid.UUID `json:"ticket_id" binding:"required"`
	Date     string    `json:"date" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

// ParseDate returns the requested calendar date at midnight UTC, the form
// every date comparison in the engine uses.
func (r AddCartLineRequest) ParseDate() (time.Time, error) {
	return time.ParseInLocation(dateLayout, r.Date, time.UTC)
}

type UpdateCartLineRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
