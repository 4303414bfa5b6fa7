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

	"github.com/jhoicas/carrito-api/internal/application/cart"
	"github.com/jhoicas/carrito-api/internal/infrastructure/notify"
	"github.com/jhoicas/carrito-api/internal/infrastructure/postgres"
	"github.com/jhoicas/carrito-api/internal/infrastructure/rediscache"
	"github.com/jhoicas/carrito-api/internal/infrastructure/storeapi"
	httpRouter "github.com/jhoicas/carrito-api/internal/interfaces/http"
	"github.com/jhoicas/carrito-api/pkg/config"
	"github.com/jhoicas/carrito-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("cache_backend", cfg.Cache.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Slot duradero del carrito: Redis por defecto, PostgreSQL como alternativa.
	var store cart.CartStore
	switch cfg.Cache.Backend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pgStore := postgres.NewCartStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema del slot del carrito")
		}
		store = pgStore
	default:
		client, err := rediscache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		store = rediscache.NewCartStore(client)
	}

	storeClient := storeapi.NewClient(cfg.Store.BaseURL, cfg.Store.Timeout)
	notifier := notify.NewLogNotifier(log)

	cartUC := cart.NewCartUseCase(storeClient, storeClient, store, notifier)
	if err := cartUC.Restore(ctx); err != nil {
		// El carrito arranca vacío si el snapshot no se pudo leer.
		log.Warn().Err(err).Msg("no se pudo rehidratar el carrito guardado")
	} else {
		log.Info().Int("items", len(cartUC.Items())).Msg("carrito rehidratado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Carrito API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CartUC: cartUC,
	})

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
