package request

import "strings"

type CheckoutRequest struct {
	// Optional for authenticated visitors, whose token already carries an
	// address. Required for anonymous checkouts.
	Email string `json:"email" binding:"omitempty,email"`
}

func (r CheckoutRequest) GetEmail() string {
	return strings.TrimSpace(r.Email)
}
