package api

import (
	"errors"
	"net/http"

	"nightpass/internal/handler/dto/request"
	"nightpass/internal/handler/dto/response"
	"nightpass/internal/handler/middleware"
	"nightpass/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
	}
}

// @Summary Checkout
// @Description Settle the visitor's cart into a transaction with per-person tickets
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body request.CheckoutRequest true "Checkout request"
// @Success 201 {object} response.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	owner, ok := middleware.GetOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req request.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	email := req.GetEmail()
	if email == "" {
		email = owner.Email()
	}

	result, err := h.checkoutCommands.Settle(c.Request.Context(), owner, email)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMissingIdentity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Missing visitor identity",
			})
		case errors.Is(err, commands.ErrMissingEmail):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Email is required",
			})
		case errors.Is(err, commands.ErrEmptyCart):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, commands.ErrTicketUnavailable):
			resp := gin.H{
				"error": "A ticket in the cart is no longer available",
			}
			var unavailable *commands.UnavailableTicketError
			if errors.As(err, &unavailable) {
				resp["ticket_id"] = unavailable.TicketID
				if unavailable.TicketName != "" {
					resp["ticket_name"] = unavailable.TicketName
				}
			}
			c.JSON(http.StatusConflict, resp)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, response.FromSettleResult(result))
}
