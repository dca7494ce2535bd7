package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	reqdto "coolslate/internal/handler/dto/request"
	"coolslate/internal/handler/middleware"
	"coolslate/internal/pkg/config"
	"coolslate/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const signatureHeader = "X-Payment-Signature"

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	secret          []byte
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, cfg config.PaymentConfig) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		secret:          []byte(cfg.WebhookSecret),
	}
}

// @Summary Payment webhook
// @Description Provider callback for successful charges; verified by HMAC signature and safe to redeliver
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Payment-Signature header string true "Hex HMAC-SHA256 of the raw body"
// @Param request body reqdto.PaymentWebhookRequest true "Payment notification"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if !h.verifySignature(body, c.GetHeader(signatureHeader)) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid webhook signature",
		})
		return
	}

	var req reqdto.PaymentWebhookRequest
	if err := json.Unmarshal(body, &req); err != nil || req.OrderNumber == "" || req.Amount < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	c.Set(middleware.CtxOrderNumberKey, req.OrderNumber)

	result, err := h.paymentCommands.Confirm(c.Request.Context(), req.OrderNumber, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrPaymentAmountMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Payment amount mismatch",
			})
		case errors.Is(err, commands.ErrOrderConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order cannot accept payment in its current state",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := "confirmed"
	if result.IsReplayed {
		status = "already_processed"
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

func (h *PaymentHandler) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, h.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
