package request

// PaymentWebhookRequest is the payload the payment provider posts on a
// successful charge.
type PaymentWebhookRequest struct {
	OrderNumber string `json:"order_number" binding:"required"`
	Amount      int    `json:"amount" binding:"required,min=1"`
	TradeNo     string `json:"trade_no" binding:"required"`
}
