package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"mawid/models"
	"mawid/services/calendar"
	"mawid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler exposes the two client-facing operations: the month
// availability view and the slot reservation.
type CalendarHandler struct {
	Service calendar.Service
}

func NewCalendarHandler(svc calendar.Service) *CalendarHandler {
	return &CalendarHandler{Service: svc}
}

// parseMonthParams reads and checks the :year/:month path parameters.
func parseMonthParams(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year in path"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month in path, expected 1..12"})
		return 0, 0, false
	}
	return year, month, true
}

// GetMonthAvailabilityHandler serves the availability view for a month.
// A month with no configured record answers 200 with empty days.
func (h *CalendarHandler) GetMonthAvailabilityHandler(c *gin.Context) {
	year, month, ok := parseMonthParams(c)
	if !ok {
		return
	}

	view, err := h.Service.MonthAvailability(c.Request.Context(), year, month)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to load availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// ReserveSlotHandler executes a reservation.
func (h *CalendarHandler) ReserveSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input models.ReserveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Month < 1 || input.Month > 12 || input.Day < 1 || input.Day > 31 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month or day out of range"})
		return
	}

	booking, view, err := h.Service.Reserve(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": calendar.ErrValidation.Message})
		case errors.Is(err, calendar.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": calendar.ErrSlotUnavailable.Message,
				"hint":  "re-fetch availability and pick another slot",
			})
		default:
			logger.Error("reserve failed", zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "Reservation failed", calendar.ErrRepository.Message)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      fmt.Sprintf("Booked %s on day %d of %s", booking.Slot, booking.Day, models.MonthKey(booking.Year, booking.Month)),
		"booking":      booking,
		"availability": view,
	})
}
