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
	"github.com/jhoicas/vagones-api/internal/application/auth"
	"github.com/jhoicas/vagones-api/internal/application/company"
	"github.com/jhoicas/vagones-api/internal/application/counterparty"
	"github.com/jhoicas/vagones-api/internal/application/dislocation"
	"github.com/jhoicas/vagones-api/internal/application/identity"
	"github.com/jhoicas/vagones-api/internal/application/ledger"
	"github.com/jhoicas/vagones-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/vagones-api/internal/interfaces/http"
	"github.com/jhoicas/vagones-api/pkg/config"
	"github.com/jhoicas/vagones-api/pkg/logger"
)

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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	counterpartyRepo := postgres.NewCounterpartyRepository(pool)
	tenantRepo := postgres.NewTenantLedgerRepository(pool)
	ownedRepo := postgres.NewOwnedLedgerRepository(pool)
	dislocationRepo := postgres.NewDislocationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := identity.NewResolver(profileRepo)
	ledgerUC := ledger.NewLedgerUseCase(txRunner, tenantRepo, ownedRepo, profileRepo)
	counterpartyUC := counterparty.NewDirectoryUseCase(counterpartyRepo)
	dislocationUC := dislocation.NewReportUseCase(dislocationRepo)
	companyUC := company.NewUseCase(companyRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, profileRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vagones API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:       ledgerUC,
		CounterpartyUC: counterpartyUC,
		DislocationUC:  dislocationUC,
		CompanyUC:      companyUC,
		AuthUC:         authUC,
		Resolver:       resolver,
		JWTSecret:      cfg.JWT.Secret,
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
