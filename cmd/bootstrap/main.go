package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"oficina_jobs/internal/adapter/persistence/repository"
	"oficina_jobs/internal/bootstrap"
	"oficina_jobs/internal/config"
	"oficina_jobs/internal/infrastructure/auth"
	"oficina_jobs/internal/infrastructure/cache"
	"oficina_jobs/internal/infrastructure/database"
	"oficina_jobs/internal/usecase"
	"oficina_jobs/internal/usecase/interfaces"
	"oficina_jobs/pkg/logger"
)

// Prepares DynamoDB for the API: tables, workflow templates, vehicle catalog
// and, when BOOTSTRAP_ADMIN_USERNAME and BOOTSTRAP_ADMIN_PASSWORD are set, a
// first admin employee. Safe to run repeatedly.
func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "optional YAML config file")
	seedPath := flag.String("seed", "", "workflow seed file (defaults to workflow.catalog_path)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New(logger.Config{}).Fatal("[bootstrap][main] invalid configuration", zap.Error(err))
	}
	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path := *seedPath
	if path == "" {
		path = cfg.Workflow.CatalogPath
	}
	seed, err := bootstrap.LoadSeed(path)
	if err != nil {
		log.Fatal("[bootstrap][main] invalid seed", zap.String("path", path), zap.Error(err))
	}

	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		log.Fatal("[bootstrap][main] failed to load aws config", zap.Error(err))
	}
	ddb := database.NewDynamoDBClient(awsCfg, cfg.DynamoDB.Endpoint)
	tables := repository.NewTables(cfg.DynamoDB.TablePrefix)

	// Saving through the cache decorator drops any stale cached catalog.
	var templates interfaces.IWorkflowTemplateRepository = repository.NewWorkflowTemplateDynamoRepository(ddb, tables)
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			log.Warn("[bootstrap][main] redis unavailable; cached catalog not invalidated", zap.Error(err))
		} else {
			defer func() { _ = redisCache.Close() }()
			templates = repository.NewCachedWorkflowTemplateRepository(templates, redisCache, cfg.Redis.TemplateTTL, log)
		}
	}

	employees := usecase.NewEmployeeUseCase(
		repository.NewEmployeeDynamoRepository(ddb, tables),
		repository.NewJobDynamoRepository(ddb, tables),
		auth.NewBcryptHasher(0),
		log,
	)

	var admin *bootstrap.AdminAccount
	if u, p := os.Getenv("BOOTSTRAP_ADMIN_USERNAME"), os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"); u != "" && p != "" {
		admin = &bootstrap.AdminAccount{Name: os.Getenv("BOOTSTRAP_ADMIN_NAME"), Username: u, Password: p}
	}

	runner := bootstrap.Runner{
		EnsureTables: func(ctx context.Context) error { return database.EnsureTables(ctx, ddb, tables, log) },
		Templates:    templates,
		Vehicles:     repository.NewVehicleCatalogDynamoRepository(ddb, tables),
		Employees:    employees,
		Log:          log,
	}
	if err := runner.Run(ctx, seed, admin); err != nil {
		log.Fatal("[bootstrap][main] bootstrap failed", zap.Error(err))
	}
	log.Info("[bootstrap][main] done")
}
