package routes

import (
	"net/http"
	"time"

	"mawid/handlers"
	"mawid/middleware"
	"mawid/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCalendarRoutes registers the client-facing calendar endpoints.
func RegisterCalendarRoutes(r *gin.Engine, calendarHandler *handlers.CalendarHandler) {
	api := r.Group("/api/calendar")
	{
		api.GET("/:year/:month", calendarHandler.GetMonthAvailabilityHandler)
		api.POST("/reserve", calendarHandler.ReserveSlotHandler)
	}
}

// RegisterOperatorRoutes sets up endpoints for month management.
func RegisterOperatorRoutes(r *gin.Engine, monthHandler *handlers.MonthHandler) {
	api := r.Group("/api/admin/months")
	{
		api.Use(middleware.OperatorAuthMiddleware())
		api.PUT("/:year/:month", monthHandler.SetupMonthHandler)
		api.GET("/:year/:month/bookings", monthHandler.MonthBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, calendarHandler *handlers.CalendarHandler, monthHandler *handlers.MonthHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCalendarRoutes(r, calendarHandler)
	RegisterOperatorRoutes(r, monthHandler)
}
