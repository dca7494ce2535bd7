package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"coolslate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CalendarHandler struct {
	calendarQueries queries.CalendarQueries
}

func NewCalendarHandler(calendarQueries queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{calendarQueries: calendarQueries}
}

// @Summary Month availability
// @Description Mark each day of a month that still has a bookable time slot for the service
// @Tags calendar
// @Produce json
// @Param service_type_id query string true "Service type ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Param unit_count query int false "Unit count" default(1)
// @Success 200 {object} queries.MonthView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /calendar/month [get]
func (h *CalendarHandler) Month(c *gin.Context) {
	serviceTypeID, err := uuid.Parse(c.Query("service_type_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service type ID",
		})
		return
	}
	year, yErr := strconv.Atoi(c.Query("year"))
	month, mErr := strconv.Atoi(c.Query("month"))
	if yErr != nil || mErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid year or month",
		})
		return
	}
	unitCount := h.unitCount(c)

	view, err := h.calendarQueries.Month(c.Request.Context(), serviceTypeID, year, month, unitCount)
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Day availability
// @Description Break a day into start hours with remaining worker counts
// @Tags calendar
// @Produce json
// @Param service_type_id query string true "Service type ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param unit_count query int false "Unit count" default(1)
// @Success 200 {object} queries.DayView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /calendar/day [get]
func (h *CalendarHandler) Day(c *gin.Context) {
	serviceTypeID, err := uuid.Parse(c.Query("service_type_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service type ID",
		})
		return
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date",
		})
		return
	}
	unitCount := h.unitCount(c)

	view, err := h.calendarQueries.Day(c.Request.Context(), serviceTypeID, date, unitCount)
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Maximum schedulable units
// @Description Largest unit count still schedulable at a start hour
// @Tags calendar
// @Produce json
// @Param service_type_id query string true "Service type ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start_hour query int true "Start hour (8-16)"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /calendar/max-units [get]
func (h *CalendarHandler) MaxUnits(c *gin.Context) {
	serviceTypeID, err := uuid.Parse(c.Query("service_type_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service type ID",
		})
		return
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date",
		})
		return
	}
	startHour, err := strconv.Atoi(c.Query("start_hour"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start hour",
		})
		return
	}

	maxUnits, err := h.calendarQueries.MaxUnits(c.Request.Context(), serviceTypeID, date, startHour)
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"max_units": maxUnits})
}

func (h *CalendarHandler) unitCount(c *gin.Context) int {
	unitCount, err := strconv.Atoi(c.DefaultQuery("unit_count", "1"))
	if err != nil || unitCount < 1 {
		return 1
	}
	return unitCount
}

func (h *CalendarHandler) queryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrServiceTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service type not found",
		})
	case errors.Is(err, queries.ErrInvalidQueryRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid calendar range",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
