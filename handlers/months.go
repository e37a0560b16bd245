package handlers

import (
	"errors"
	"net/http"

	"mawid/models"
	"mawid/services/calendar"
	"mawid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MonthHandler exposes the operator surface: configuring a month's
// availability and reading its booking ledger.
type MonthHandler struct {
	Service calendar.Service
}

func NewMonthHandler(svc calendar.Service) *MonthHandler {
	return &MonthHandler{Service: svc}
}

// SetupMonthRequest is the operator payload replacing a month's availability.
type SetupMonthRequest struct {
	Days []models.DayAvailability `json:"days" binding:"required"`
}

// SetupMonthHandler replaces the availability document for a month.
func (h *MonthHandler) SetupMonthHandler(c *gin.Context) {
	logger := utils.GetLogger()

	year, month, ok := parseMonthParams(c)
	if !ok {
		return
	}

	var req SetupMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid month setup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	view, err := h.Service.SetupMonth(c.Request.Context(), year, month, req.Days)
	if err != nil {
		if errors.Is(err, calendar.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability", "message": err.Error()})
			return
		}
		logger.Error("Failed to set up month", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to set up month", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Month availability saved",
		"availability": view,
	})
}

// MonthBookingsHandler lists the booking ledger for a month, newest first.
func (h *MonthHandler) MonthBookingsHandler(c *gin.Context) {
	year, month, ok := parseMonthParams(c)
	if !ok {
		return
	}

	bookings, err := h.Service.MonthBookings(c.Request.Context(), year, month)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to fetch bookings", err.Error())
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
