package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/resonira/invoice-api/internal/application/auth"
	"github.com/resonira/invoice-api/internal/application/billing"
	appsettings "github.com/resonira/invoice-api/internal/application/settings"
	"github.com/resonira/invoice-api/internal/domain/repository"
	"github.com/resonira/invoice-api/internal/infrastructure/jsondb"
	"github.com/resonira/invoice-api/internal/infrastructure/mail"
	infrapdf "github.com/resonira/invoice-api/internal/infrastructure/pdf"
	"github.com/resonira/invoice-api/internal/infrastructure/postgres"
	httpRouter "github.com/resonira/invoice-api/internal/interfaces/http"
	"github.com/resonira/invoice-api/pkg/config"
	"github.com/resonira/invoice-api/pkg/jwt"
	"github.com/resonira/invoice-api/pkg/logger"
)

// repos groups the three persistence ports so both backends wire identically.
type repos struct {
	invoices repository.InvoiceRepository
	settings repository.SettingsRepository
	users    repository.UserRepository
	backend  string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	// The SPA expects amounts as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	// Logins must work on a zero-config deployment too.
	if cfg.JWT.Secret == "" {
		secret, err := jwt.RandomSecret()
		if err != nil {
			log.Fatal().Err(err).Msg("generate session secret")
		}
		cfg.JWT.Secret = secret
		log.Warn().Msg("JWT_SECRET not set, using an ephemeral secret; sessions reset on restart")
	}

	ctx := context.Background()
	r, cleanup := selectBackend(ctx, cfg, log)
	defer cleanup()

	invoiceUC := billing.NewInvoiceUseCase(r.invoices)
	settingsUC := appsettings.NewUseCase(r.settings)
	authUC := auth.NewUseCase(r.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	generator := infrapdf.NewMarotoInvoiceGenerator()
	mailer := mail.NewGomailSender(cfg.Mail)
	sendUC := billing.NewSendInvoiceUseCase(r.invoices, r.settings, generator, mailer)

	// First-boot seeding: default admin account and issuer settings.
	if seeded, err := authUC.EnsureDefaultAdmin(); err != nil {
		log.Fatal().Err(err).Msg("seed default admin")
	} else if seeded {
		log.Info().Msg("seeded default admin account")
	}
	if seeded, err := settingsUC.EnsureDefaults(); err != nil {
		log.Fatal().Err(err).Msg("seed default settings")
	} else if seeded {
		log.Info().Msg("seeded default company settings")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    10 * 1024 * 1024, // invoice payloads may embed a logo
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // PDF rendering can be slow on large invoices
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(string) bool { return true },
		AllowCredentials: true,
	}))

	// Swagger UI in local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoice API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC:   invoiceUC,
		SendUC:      sendUC,
		SettingsUC:  settingsUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
		BackendName: r.backend,
		MailReady:   mailer.Configured(),
		Port:        cfg.HTTP.Port,
	})

	log.Info().
		Str("addr", cfg.HTTP.Addr()).
		Str("backend", r.backend).
		Bool("email_configured", mailer.Configured()).
		Msg("invoice server running")

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

// selectBackend picks PostgreSQL when a connection is configured and reachable,
// otherwise falls back to the flat-file JSON store. The returned cleanup closes
// whatever the selection opened.
func selectBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (repos, func()) {
	if cfg.DB.Configured() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err == nil {
			if err := postgres.EnsureSchema(ctx, pool); err != nil {
				pool.Close()
				log.Fatal().Err(err).Msg("PostgreSQL schema")
			}
			log.Info().Msg("storage backend: PostgreSQL")
			return repos{
				invoices: postgres.NewInvoiceRepository(pool),
				settings: postgres.NewSettingsRepository(pool),
				users:    postgres.NewUserRepository(pool),
				backend:  "postgres",
			}, pool.Close
		}
		log.Warn().Err(err).Msg("PostgreSQL unavailable, falling back to JSON storage")
	} else {
		log.Info().Msg("DATABASE_URL not configured, using local JSON storage")
	}

	store, err := jsondb.Open(cfg.Storage.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("open JSON store")
	}
	log.Info().Str("dir", store.Dir()).Msg("storage backend: JSON files")
	return repos{
		invoices: jsondb.NewInvoiceRepository(store),
		settings: jsondb.NewSettingsRepository(store),
		users:    jsondb.NewUserRepository(store),
		backend:  "json-file-storage",
	}, func() {}
}
