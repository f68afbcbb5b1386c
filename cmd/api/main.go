package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	_ "oficina_jobs/docs"
	"oficina_jobs/internal/adapter/http/routes"
	"oficina_jobs/internal/config"
	"oficina_jobs/pkg"
	"oficina_jobs/pkg/logger"
	"oficina_jobs/pkg/tracing"
)

// @title           Oficina Jobs API
// @version         1.0
// @description     Repair-shop job workflow (stages, steps, photos, billing) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New(logger.Config{}).Fatal("[app][main] invalid configuration", zap.Error(err))
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer func() { _ = log.Sync() }()

	pkg.ExposeErrorDetails(cfg.Server.IsDevelopment())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Otel.Enabled {
		shutdown, err := tracing.Setup(ctx, cfg.Otel.ServiceName)
		if err != nil {
			log.Fatal("[app][main] failed to start tracing", zap.Error(err))
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn("[app][main] tracing shutdown failed", zap.Error(err))
			}
		}()
	}

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Fatal("[app][main] server stopped", zap.Error(err))
	}
}
