package api

import (
	"errors"
	"net/http"

	"nightpass/internal/domain/cart"
	"nightpass/internal/handler/dto/request"
	"nightpass/internal/handler/dto/response"
	"nightpass/internal/handler/middleware"
	"nightpass/internal/usecase/commands"
	"nightpass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
	}
}

// @Summary Add cart line
// @Description Add a ticket for a date to the visitor's cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body request.AddCartLineRequest true "Line to add"
// @Success 201 {object} response.CartLineResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/lines [post]
func (h *CartHandler) AddLine(c *gin.Context) {
	owner, ok := middleware.GetOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req request.AddCartLineRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	line, err := h.cartCommands.AddLine(c.Request.Context(), owner, commands.AddLineInput{
		TicketID: req.TicketID,
		Date:     date,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromCartLine(line))
}

// @Summary Update cart line
// @Description Overwrite the quantity of one cart line
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Cart line ID"
// @Param request body request.UpdateCartLineRequest true "New quantity"
// @Success 200 {object} response.CartLineResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/lines/{id} [patch]
func (h *CartHandler) UpdateLine(c *gin.Context) {
	owner, ok := middleware.GetOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart line ID format",
		})
		return
	}

	var req request.UpdateCartLineRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	line, err := h.cartCommands.UpdateLine(c.Request.Context(), owner, lineID, req.Quantity)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCartLine(line))
}

// @Summary Remove cart line
// @Description Delete one cart line
// @Tags cart
// @Produce json
// @Param id path string true "Cart line ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/lines/{id} [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	owner, ok := middleware.GetOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart line ID format",
		})
		return
	}

	if err := h.cartCommands.RemoveLine(c.Request.Context(), owner, lineID); err != nil {
		h.respondCartError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get cart
// @Description List the visitor's cart lines with current catalog prices
// @Tags cart
// @Produce json
// @Success 200 {object} response.CartResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	owner, ok := middleware.GetOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.cartQueries.ListLines(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response.FromCartLineViews(views))
}

// @Summary Quote cart
// @Description Estimate the all-in charge for the current cart
// @Tags checkout
// @Produce json
// @Success 200 {object} response.QuoteResponse
// @Router /checkout/quote [get]
func (h *CartHandler) Quote(c *gin.Context) {
	owner, ok := middleware.GetOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	quote, err := h.cartQueries.Quote(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response.FromCartQuote(quote))
}

func (h *CartHandler) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input",
		})
	case errors.Is(err, commands.ErrPastDate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date is in the past",
		})
	case errors.Is(err, commands.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Ticket not found",
		})
	case errors.Is(err, commands.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart line not found",
		})
	case errors.Is(err, commands.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Cart line belongs to another visitor",
		})
	case errors.Is(err, commands.ErrTicketInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Ticket is not active",
		})
	case errors.Is(err, commands.ErrNoDateAssigned):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Free ticket has no assigned date",
		})
	case errors.Is(err, commands.ErrDateMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Date does not match the event date",
		})
	case errors.Is(err, commands.ErrEventConflict):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "A special event blocks cover sales that day",
		})
	case errors.Is(err, commands.ErrDateOutOfRange):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Date is beyond the booking horizon",
		})
	case errors.Is(err, commands.ErrClubClosed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Club is closed on that weekday",
		})
	case errors.Is(err, commands.ErrMixedClub):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Cart holds tickets for another club",
		})
	case errors.Is(err, commands.ErrMixedDate):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Cart holds tickets for another date",
		})
	case errors.Is(err, commands.ErrMaxPerPersonExceeded):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Per-person ticket limit exceeded",
		})
	case errors.Is(err, commands.ErrInsufficientStock):
		resp := gin.H{
			"error": "Not enough tickets left",
		}
		var stockErr *cart.StockError
		if errors.As(err, &stockErr) {
			resp["remaining"] = stockErr.Remaining
		}
		c.JSON(http.StatusUnprocessableEntity, resp)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
