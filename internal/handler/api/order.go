package api

import (
	"errors"
	"net/http"

	"coolslate/internal/domain/booking"

	reqdto "coolslate/internal/handler/dto/request"
	resdto "coolslate/internal/handler/dto/response"
	"coolslate/internal/handler/middleware"
	"coolslate/internal/usecase/commands"
	"coolslate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Create order
// @Description Create a service order; installation and maintenance hold their time slots for 30 minutes pending payment
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	email, emailOK := middleware.GetUserEmail(c)
	if !ok || !emailOK {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.orderCommands.Create(c.Request.Context(), req, userID, email)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrServiceTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service type not found",
			})
		case errors.Is(err, commands.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time slot",
			})
		case errors.Is(err, commands.ErrInvalidSlotCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Between one and two booking slots are allowed",
			})
		case errors.Is(err, commands.ErrDateNotBookable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Date is outside the booking window",
			})
		case errors.Is(err, commands.ErrInvalidUnitCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unit count out of range",
			})
		case errors.Is(err, commands.ErrEquipmentRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Equipment selection required",
			})
		case errors.Is(err, commands.ErrAddressNotFound):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Address could not be located",
			})
		case errors.Is(err, commands.ErrOutsideServiceArea):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Address is outside the service area",
			})
		case errors.Is(err, commands.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested time slots are no longer available",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateOrderResult(result))
}

// @Summary Get order
// @Description Get order details by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	view, err := h.orderQueries.ByID(c.Request.Context(), orderID, userID, middleware.IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, queries.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List own orders
// @Description List the authenticated user's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderSummaryResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.orderQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderSummaries(views))
}

// @Summary Cancel order
// @Description Cancel an unpaid or refunded order, releasing its held time slots
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id} [delete]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	if err := h.orderCommands.Cancel(c.Request.Context(), orderID, userID, middleware.IsAdmin(c)); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		case errors.Is(err, booking.ErrRefundRequired):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Paid order requires a refund before cancellation",
			})
		case errors.Is(err, booking.ErrOrderNotCancellable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order cannot be cancelled in its current state",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
