package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shoepay_app_echo/internal/config"
	"shoepay_app_echo/internal/handlers"
	relayMiddleware "shoepay_app_echo/internal/middleware"
	"shoepay_app_echo/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := config.Load()
	if cfg.EncryptionKey == "" {
		log.Println("Warning: YAGOUT_ENCRYPTION_KEY not set, gateway calls will fail")
	}
	if cfg.InsecureTLS {
		log.Println("Warning: YAGOUT_INSECURE_TLS enabled, do not use in production")
	}

	// Services
	gatewayService := services.NewYagoutService(cfg)
	paymentService := services.NewPaymentService(cfg, gatewayService)

	// Create Echo instance
	e := echo.New()
	e.HTTPErrorHandler = relayMiddleware.CustomErrorHandler

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Initialize handlers
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Routes
	e.GET("/", paymentHandler.Health)
	e.POST("/payments/api/initiate", paymentHandler.InitiatePayment)
	e.POST("/payments/link/create", paymentHandler.CreatePaymentLink)
	e.POST("/payments/static-link/create", paymentHandler.CreateStaticLink)
	e.POST("/payments/hosted/initiate", paymentHandler.HostedInitiate)
	e.POST("/test/decrypt", paymentHandler.TestDecrypt)

	log.Printf("Relay starting on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
