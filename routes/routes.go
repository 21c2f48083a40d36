// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"slotify/handlers"
	"slotify/middleware"
	"slotify/models"
	"slotify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Users.RegisterHandler)
		api.POST("/login", hb.Users.LoginHandler)
		api.GET("/providers/:id", hb.Users.ProviderProfileHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.Users.MeHandler)
	}
}

// RegisterSlotRoutes registers slot lifecycle endpoints. Browsing a
// provider's open slots is public; publishing and deleting require a
// provider account.
func RegisterSlotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/slots")
	{
		api.GET("/provider/:id", hb.Slots.ListProviderSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleProvider))
		protected.POST("", hb.Slots.CreateSlotHandler)
		protected.GET("/my", hb.Slots.ListOwnSlotsHandler)
		protected.DELETE("/:id", hb.Slots.DeleteSlotHandler)
	}
}

// RegisterBookingRoutes registers the booking state machine endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", middleware.RequireRole(models.RoleClient), hb.Bookings.CreateBookingHandler)
		api.GET("/my", hb.Bookings.MyBookingsHandler)
		api.GET("/:id", hb.Bookings.GetBookingHandler)
		api.PATCH("/:id/cancel", hb.Bookings.CancelBookingHandler)
		api.PATCH("/:id/complete", middleware.RequireRole(models.RoleProvider), hb.Bookings.CompleteBookingHandler)
	}
}

// RegisterPaymentRoutes registers gateway order and verification endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/order", middleware.RequireRole(models.RoleClient), hb.Payments.CreateOrderHandler)
		api.POST("/validate", hb.Payments.ValidatePaymentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())
	r.Use(utils.ErrorHandler())

	RegisterUserRoutes(r, hb)
	RegisterSlotRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
