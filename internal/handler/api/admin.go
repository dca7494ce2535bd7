package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	reqdto "coolslate/internal/handler/dto/request"
	"coolslate/internal/infra/reportstore"
	"coolslate/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler groups back-office operations: refunds, rescheduling, manual
// dispatch, and completion reports.
type AdminHandler struct {
	paymentCommands    commands.PaymentCommands
	schedulingCommands commands.SchedulingCommands
	completionCommands commands.CompletionCommands
	maxReportSize      int64
}

func NewAdminHandler(
	paymentCommands commands.PaymentCommands,
	schedulingCommands commands.SchedulingCommands,
	completionCommands commands.CompletionCommands,
	maxReportSize int64,
) *AdminHandler {
	return &AdminHandler{
		paymentCommands:    paymentCommands,
		schedulingCommands: schedulingCommands,
		completionCommands: completionCommands,
		maxReportSize:      maxReportSize,
	}
}

// @Summary Refund order
// @Description Refund a paid order and release its schedule
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/orders/{id}/refund [post]
func (h *AdminHandler) RefundOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	if err := h.paymentCommands.Refund(c.Request.Context(), orderID); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrAlreadyRefunded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order holds no refundable payment",
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

// @Summary Reschedule order
// @Description Move an order to a new time window, releasing the old schedule first
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.RescheduleOrderRequest true "New window"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/orders/{id}/reschedule [post]
func (h *AdminHandler) RescheduleOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	var req reqdto.RescheduleOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	date, err := time.Parse("2006-01-02", req.SlotDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date",
		})
		return
	}

	if err := h.schedulingCommands.Reschedule(c.Request.Context(), orderID, date, req.StartHour); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time slot",
			})
		case errors.Is(err, commands.ErrSchedulingFailed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No capacity available for the requested window",
			})
		case errors.Is(err, commands.ErrOrderConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order cannot be rescheduled in its current state",
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

// @Summary Run repair dispatch
// @Description Trigger the repair dispatch sweep immediately instead of waiting for the daily run
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} commands.DispatchResult
// @Router /admin/dispatch [post]
func (h *AdminHandler) RunDispatch(c *gin.Context) {
	result, err := h.schedulingCommands.DispatchDueRepairs(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Upload completion report
// @Description Store the technician's PDF report and close the order
// @Tags admin
// @Accept application/pdf
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /admin/orders/{id}/complete [post]
func (h *AdminHandler) CompleteOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, h.maxReportSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}
	if int64(len(body)) > h.maxReportSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": "Report exceeds the size limit",
		})
		return
	}

	reportID, err := h.completionCommands.Complete(c.Request.Context(), orderID, body)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrOrderConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order is not in a completable state",
			})
		case errors.Is(err, commands.ErrReportAlreadyUploaded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Completion report already uploaded",
			})
		case errors.Is(err, reportstore.ErrNotPDF), errors.Is(err, reportstore.ErrEmptyFile):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Completion report must be a non-empty PDF",
			})
		case errors.Is(err, reportstore.ErrTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "Report exceeds the size limit",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"report_id": reportID.String()})
}
