// Package cli provides the Cobra-based command line for the inventory API.
package cli

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"gudang/internal/config"
	"gudang/internal/database"
	"gudang/internal/handlers"
	"gudang/internal/middleware"
	"gudang/internal/repositories"
	"gudang/internal/services"
	"gudang/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gudang",
	Short: "Inventory management API",
}

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(config.Load())
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with development data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			db, err := database.Open(cfg.DatabaseDSN)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			return database.Seed(db, seedAdminPassword)
		},
	}
	seedCmd.Flags().StringVar(&seedAdminPassword, "admin-password", "12345", "password for the seeded admin user")

	rootCmd.AddCommand(serveCmd, seedCmd)
}

var seedAdminPassword string

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer(cfg *config.Config) error {
	// --- Event publisher ---
	// The API stays up without a broker; lifecycle events are then skipped.
	var publisher events.Publisher
	mqClient, err := events.NewClient(events.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Printf("Warning: RabbitMQ unavailable, lifecycle events disabled: %v", err)
	} else {
		publisher = mqClient
		defer mqClient.Close()
	}

	// --- Database ---
	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	supplierRepo := repositories.NewGORMSupplierRepository(db)
	inventoryRepo := repositories.NewGORMInventoryRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	tokenRepo := repositories.NewGORMTokenRepository(db)

	// --- Services ---
	productService := services.NewProductService(productRepo, supplierRepo, publisher)
	supplierService := services.NewSupplierService(supplierRepo, publisher)
	inventoryService := services.NewInventoryService(inventoryRepo)
	authService := services.NewAuthService(userRepo, tokenRepo, cfg.JWTSecret, cfg.TokenTTL)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	app := fiber.New()
	app.Use(logger.New()) // Request logger

	api := app.Group("/api")
	authRequired := middleware.AuthRequired(authService)

	authHandler.RegisterRoutes(api, authRequired)

	protected := api.Group("", authRequired)
	productHandler.RegisterRoutes(protected)
	supplierHandler.RegisterRoutes(protected)
	inventoryHandler.RegisterRoutes(protected)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Listen(cfg.AppPort)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error during Fiber shutdown: %v", err)
		}
		log.Println("Server gracefully stopped")
		return nil
	}
}
