package api

import (
	"errors"
	"net/http"

	"nightpass/internal/handler/dto/response"
	"nightpass/internal/handler/middleware"
	"nightpass/internal/pkg/qr"
	"nightpass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const qrImageSize = 256

type TransactionHandler struct {
	transactionQueries queries.TransactionQueries
}

func NewTransactionHandler(transactionQueries queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{
		transactionQueries: transactionQueries,
	}
}

// @Summary Get transaction
// @Description Get a settled transaction with its purchase units
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} response.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	owner, ok := middleware.GetOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid transaction ID format",
		})
		return
	}

	detail, err := h.transactionQueries.GetByID(c.Request.Context(), owner, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Transaction not found",
			})
		case errors.Is(err, queries.ErrNotTransactionOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Transaction belongs to another user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, response.FromTransactionDetail(detail))
}

// @Summary Purchase QR image
// @Description Render a purchase unit's door token as a PNG QR code
// @Tags transactions
// @Produce png
// @Param token path string true "Opaque purchase token"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /purchases/{token}/qr [get]
func (h *TransactionHandler) GetPurchaseQR(c *gin.Context) {
	token := c.Param("token")

	unit, err := h.transactionQueries.UnitByToken(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPurchaseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Purchase not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	img, err := qr.EncodePNG(unit.QRToken, qrImageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Data(http.StatusOK, "image/png", img)
}
