package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/config"
	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/database"
	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/health"
	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/logger"
	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/middleware"
	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/mtls"
	nrinit "github.com/Davidepaula1212/pix-inter-backend/internal/pkg/newrelic"
	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/server"
	"github.com/Davidepaula1212/pix-inter-backend/migrations"
	"github.com/Davidepaula1212/pix-inter-backend/services/pix"
	"github.com/Davidepaula1212/pix-inter-backend/services/pix/gateway/inter"
	"github.com/Davidepaula1212/pix-inter-backend/services/pix/handler"
	"github.com/Davidepaula1212/pix-inter-backend/services/pix/repository"
	"github.com/Davidepaula1212/pix-inter-backend/services/pix/usecase"
)

const partnerTimeout = 30 * time.Second

func main() {
	cfg := config.InitConfig(".env")

	nrApp := nrinit.InitNewRelic(cfg)

	zapLogger, err := logger.InitZapLoggerFromConfig(cfg, nrApp)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Banco Inter requires mutual TLS; the key material arrives base64
	// encoded in the environment and is written out at startup.
	certPath, err := mtls.MaterializeFromEnv("INTER_CERT_B64", "inter.crt")
	if err != nil {
		logger.Fatal("Failed to materialize client certificate", logger.Err(err))
	}
	keyPath, err := mtls.MaterializeFromEnv("INTER_KEY_B64", "inter.key")
	if err != nil {
		logger.Fatal("Failed to materialize client key", logger.Err(err))
	}

	httpClient, err := mtls.NewHTTPClient(certPath, keyPath, partnerTimeout)
	if err != nil {
		logger.Fatal("Failed to build mTLS HTTP client", logger.Err(err))
	}

	interGW := inter.NewClient(cfg.Inter, httpClient)

	var orderRepo pix.OrderRepo
	switch {
	case cfg.Database.URL != "":
		pgClient, err := database.NewPostgresClient(cfg.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", logger.Err(err))
		}
		defer pgClient.Close()

		if err := pgClient.RunMigrations(migrations.FS); err != nil {
			logger.Fatal("Failed to run migrations", logger.Err(err))
		}

		orderRepo = repository.NewPostgresOrderRepo(pgClient.GetDB())
		logger.Info("Using direct Postgres order store")
	case cfg.Supabase.URL != "":
		orderRepo = repository.NewSupabaseOrderRepo(cfg.Supabase)
		logger.Info("Using Supabase order store")
	default:
		logger.Fatal("No order store configured: set DATABASE_URL or SUPABASE_URL")
	}

	pixUC := usecase.NewPixUC(cfg, orderRepo, interGW)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, cfg.App.Name)
	handler.NewPixHandler(pixUC).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port, cfg.Server.ShutdownTimeout)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server error", logger.Err(err))
	}
}
