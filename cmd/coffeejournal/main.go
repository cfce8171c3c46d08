package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coffeejournal/internal/api"
	"coffeejournal/internal/config"
	"coffeejournal/internal/db"
	"coffeejournal/internal/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load(getEnv("CONFIG_FILE", "config.yaml"))
	if err != nil {
		fallbackLog := logging.New("info", false)
		fallbackLog.Fatal().Err(err).Msg("loading configuration failed")
	}

	log := logging.New(cfg.LogLevel, cfg.LogPretty)

	database, err := db.OpenSQLite(cfg.DBPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	handler, err := api.NewHandler(database, cfg.SecretKey, cfg.CookieSecure, cfg.UploadsDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("handler init failed")
	}

	app := fiber.New(fiber.Config{
		AppName:               "CoffeeJournal",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	app.Use(compress.New())

	app.Static("/uploads", cfg.UploadsDir)
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("db", cfg.DBPath).
		Str("uploads", cfg.UploadsDir).
		Msg("coffeejournal listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
