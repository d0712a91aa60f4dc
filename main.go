// @title Civic Reports API
// @version 1.0
// @description Session-scoped API for reporting and tracking municipal issues.
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"
	"time"

	_ "civic-reports/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"civic-reports/config"
	"civic-reports/internal/controllers"
	"civic-reports/internal/i18n"
	"civic-reports/internal/repository"
	"civic-reports/internal/routes"
	"civic-reports/internal/services"
	"civic-reports/internal/utils"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}
	log.Printf("env: JWT_SECRET len=%d", len(cfg.JWTSecret))

	// Both dictionaries must carry the same keys
	if err := i18n.Validate(); err != nil {
		log.Fatalf("i18n: %v", err)
	}
	utils.SetExtraProfanityWords(cfg.ProfanityWords)

	locale, err := i18n.ParseLocale(cfg.DefaultLocale)
	if err != nil {
		log.Printf("i18n: %v, falling back to %s", err, i18n.English)
		locale = i18n.English
	}

	backend := services.NewBackend(
		repository.NewPostRepository(),
		repository.NewMunicipalityRepository(),
		services.Delays{
			Send:   cfg.SendDelay,
			Verify: cfg.VerifyDelay,
			Submit: cfg.SubmitDelay,
			Save:   cfg.SaveDelay,
		},
		locale,
	)
	store := services.NewSessionStore(backend)
	go sweepSessions(store, cfg.SessionIdleTTL)

	// Fiber app
	app := fiber.New(fiber.Config{ErrorHandler: controllers.ErrorHandler})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	routes.Register(app, routes.Deps{
		Store:    store,
		Secret:   cfg.JWTSecret,
		TokenTTL: cfg.TokenTTL,
	})

	// RUN SERVER
	log.Printf("listening at http://localhost:%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// sweepSessions drops idle sessions every tenth of the idle TTL.
func sweepSessions(store *services.SessionStore, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	every := ttl / 10
	if every < time.Minute {
		every = time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for range ticker.C {
		store.Sweep(ttl)
	}
}
