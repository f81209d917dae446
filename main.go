package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"cake-shop/config"
	"cake-shop/handlers"
	"cake-shop/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	// Initialize structured logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(logHandler))

	// Load configuration
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize the catalog store backend
	switch cfg.StorageBackend {
	case "mongo":
		client, err := services.InitMongoDB(ctx, cfg.MongoURI)
		if err != nil {
			slog.Error("Failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		defer client.Disconnect(context.Background())
		services.InitCatalog(services.NewMongoStore(client, cfg.DatabaseName))
	case "memory":
		services.InitCatalog(services.NewMemoryStore())
	default:
		slog.Warn("Unknown storage backend, using memory", "backend", cfg.StorageBackend)
		services.InitCatalog(services.NewMemoryStore())
	}

	// Initialize matcher and AI fallback
	services.InitMatcher(cfg.MatchStrategy)
	services.InitAI(cfg)

	// Seed the default cakes into an empty catalog
	if err := services.SeedCatalog(ctx); err != nil {
		slog.Error("Failed to seed catalog", "error", err)
		// Continue anyway - the store still works, just starts empty
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("Request error", "error", err, "status", code)
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())

	// CORS is open for local development; narrow the list in production
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path}\n",
	}))

	// Catalog CRUD endpoints
	products := app.Group("/products")
	products.Get("/", handlers.ListProducts)
	products.Get("/:id", handlers.GetProduct)
	products.Post("/", handlers.CreateProduct)
	products.Put("/:id", handlers.UpdateProduct)
	products.Delete("/:id", handlers.DeleteProduct)

	// Chatbot endpoint
	app.Post("/chatbot", handlers.Chatbot)

	// Homepage
	app.Get("/", handlers.Index)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "cake-shop",
		})
	})

	slog.Info("Server starting", "port", cfg.Port, "backend", cfg.StorageBackend)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
