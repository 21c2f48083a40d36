// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotify/config"
	"slotify/cron"
	"slotify/database"
	bookingRepoPkg "slotify/database/repository/booking"
	paymentRepoPkg "slotify/database/repository/payment"
	slotRepoPkg "slotify/database/repository/slot"
	userRepoPkg "slotify/database/repository/user"
	"slotify/handlers"
	"slotify/routes"
	"slotify/services/booking"
	"slotify/services/payment"
	"slotify/services/slot"
	"slotify/services/user"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	cld, err := utils.Cloudinary()
	if err != nil {
		// Registration still works without profile images.
		logger.Sugar().Warnf("main: cloudinary unavailable, profile image uploads disabled: %v", err)
		cld = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	db := database.GetDatabase()
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	slotRepo := slotRepoPkg.NewMongoSlotRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(db)

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}
	slotService := &slot.DefaultSlotService{
		Repo:  slotRepo,
		Users: userRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:  bookingRepo,
		Slots: slotRepo,
		Users: userRepo,
	}
	paymentService := &payment.DefaultPaymentService{
		Repo:     paymentRepo,
		Bookings: bookingRepo,
		Gateway:  payment.NewRazorpayGateway(config.AppConfig.RazorpayKeyID, config.AppConfig.RazorpaySecret),
		Secret:   config.AppConfig.RazorpaySecret,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &handlers.HandlerBundle{
		Users:    handlers.NewUserHandler(userService, cld),
		Slots:    handlers.NewSlotHandler(slotService),
		Bookings: handlers.NewBookingHandler(bookingService),
		Payments: handlers.NewPaymentHandler(paymentService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitCleanupSweeper(slotService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
