package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/soulsisters/joyeria-api/internal/application/auth"
	"github.com/soulsisters/joyeria-api/internal/application/usecase"
	"github.com/soulsisters/joyeria-api/internal/infrastructure/postgres"
	"github.com/soulsisters/joyeria-api/internal/infrastructure/storage"
	httpRouter "github.com/soulsisters/joyeria-api/internal/interfaces/http"
	"github.com/soulsisters/joyeria-api/pkg/config"
	"github.com/soulsisters/joyeria-api/pkg/logger"
)

const swaggerSpecPath = "./docs/swagger.json"

// registerSwagger monta el Swagger UI en /docs solo si el spec generado
// existe: el middleware entra en pánico con un FilePath inexistente, y el
// API debe poder arrancar sin los docs (ej. binario desplegado sin ellos).
func registerSwagger(app *fiber.App, specPath string) bool {
	if _, err := os.Stat(specPath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: specPath,
		Path:     "docs",
		Title:    "Joyería POS API",
	}))
	return true
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	productUC := usecase.NewProductUseCase(productRepo)
	statsUC := usecase.NewStatsUseCase(productRepo)

	credStore, err := auth.NewStaticCredentialStore(cfg.Auth.Users)
	if err != nil {
		log.Fatal().Err(err).Msg("tabla de credenciales")
	}
	authUC := auth.NewAuthUseCase(credStore, auth.NewMemoryLimiter(), auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		TTL:    time.Duration(cfg.JWT.Expiration) * time.Minute,
		Issuer: cfg.JWT.Issuer,
	})

	// Almacenamiento de imágenes: opcional. Sin endpoint configurado el API
	// funciona igual, solo que sin rutas de uploads.
	var imageStorage *storage.ImageStorage
	if cfg.Storage.Enabled() {
		imageStorage = storage.NewImageStorage(cfg.Storage)
		log.Info().Str("bucket", cfg.Storage.Bucket).Msg("almacenamiento de imágenes habilitado")
	} else {
		log.Info().Msg("almacenamiento de imágenes deshabilitado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	if registerSwagger(app, swaggerSpecPath) {
		log.Info().Str("path", "/docs").Msg("Swagger UI habilitado")
	} else {
		log.Warn().Str("file", swaggerSpecPath).Msg("swagger.json no encontrado, Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	deps := httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		StatsUC:      statsUC,
		UploadExpiry: cfg.Storage.PresignMinutes * 60,
		JWTSecret:    cfg.JWT.Secret,
	}
	if imageStorage != nil {
		deps.Storage = imageStorage
	}
	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
