package routes

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"oficina_jobs/internal/adapter/http/handlers"
	"oficina_jobs/internal/adapter/persistence/repository"
	"oficina_jobs/internal/config"
	"oficina_jobs/internal/infrastructure/auth"
	"oficina_jobs/internal/infrastructure/cache"
	"oficina_jobs/internal/infrastructure/database"
	"oficina_jobs/internal/infrastructure/metrics"
	"oficina_jobs/internal/infrastructure/payments"
	"oficina_jobs/internal/infrastructure/storage"
	"oficina_jobs/internal/usecase"
	"oficina_jobs/internal/usecase/interfaces"
)

type app struct {
	handlers Handlers
	options  Options
	closers  []func() error
}

func (a *app) close() {
	for _, c := range a.closers {
		_ = c()
	}
}

// newApp connects the infrastructure and builds every use case and handler.
// Redis, S3 and Mercado Pago are optional; their absence disables the
// template cache, photo uploads and real charges respectively.
func newApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app, error) {
	a := &app{}

	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	ddb := database.NewDynamoDBClient(awsCfg, cfg.DynamoDB.Endpoint)
	tables := repository.NewTables(cfg.DynamoDB.TablePrefix)

	jobRepo := repository.NewJobDynamoRepository(ddb, tables)
	customerRepo := repository.NewCustomerDynamoRepository(ddb, tables)
	vehicleRepo := repository.NewVehicleDynamoRepository(ddb, tables)
	employeeRepo := repository.NewEmployeeDynamoRepository(ddb, tables)
	insurerRepo := repository.NewInsuranceCompanyDynamoRepository(ddb, tables)
	paymentRepo := repository.NewJobPaymentDynamoRepository(ddb, tables)
	vehicleCatalogRepo := repository.NewVehicleCatalogDynamoRepository(ddb, tables)

	var templateRepo interfaces.IWorkflowTemplateRepository = repository.NewWorkflowTemplateDynamoRepository(ddb, tables)
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			log.Warn("[app][wiring] redis unavailable; template cache disabled", zap.Error(err))
		} else {
			a.closers = append(a.closers, redisCache.Close)
			templateRepo = repository.NewCachedWorkflowTemplateRepository(templateRepo, redisCache, cfg.Redis.TemplateTTL, log)
			log.Info("[app][wiring] template cache enabled", zap.String("addr", cfg.Redis.Addr))
		}
	}

	var photoStorage interfaces.IPhotoStorage
	if cfg.S3.Bucket != "" {
		photoStorage = storage.NewS3PhotoStorage(awsCfg, cfg.S3.Bucket, cfg.S3.Endpoint, cfg.S3.PresignTTL, log)
	} else {
		log.Info("[app][wiring] s3 bucket not set; photo uploads disabled")
	}

	var paymentGateway interfaces.IPaymentGateway
	if !cfg.MercadoPago.Mock {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, log)
		if err != nil {
			log.Warn("[app][wiring] Mercado Pago gateway not configured", zap.Error(err))
		} else {
			paymentGateway = mpGateway
		}
	}

	m := metrics.New()
	hasher := auth.NewBcryptHasher(0)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	jobUseCase := usecase.NewJobUseCase(usecase.JobDeps{
		Jobs:      jobRepo,
		Templates: templateRepo,
		Vehicles:  vehicleRepo,
		Customers: customerRepo,
		Insurers:  insurerRepo,
		Employees: employeeRepo,
		Storage:   photoStorage,
		Metrics:   m,
	}, log)
	paymentUseCase := usecase.NewJobPaymentUseCase(paymentRepo, jobRepo, paymentGateway, usecase.PaymentConfig{
		Mock:            cfg.MercadoPago.Mock,
		AccessToken:     cfg.MercadoPago.AccessToken,
		TestPayerEmail:  cfg.MercadoPago.TestPayerEmail,
		TestPayerUserID: cfg.MercadoPago.TestPayerUserID,
	}, log)

	a.handlers = Handlers{
		Jobs:               handlers.NewJobHandler(jobUseCase, log),
		Payments:           handlers.NewJobPaymentHandler(paymentUseCase, log),
		Customers:          handlers.NewCustomerHandler(usecase.NewCustomerUseCase(customerRepo, jobRepo, log), log),
		Vehicles:           handlers.NewVehicleHandler(usecase.NewVehicleUseCase(vehicleRepo, customerRepo, jobRepo, log), log),
		Employees:          handlers.NewEmployeeHandler(usecase.NewEmployeeUseCase(employeeRepo, jobRepo, hasher, log), log),
		InsuranceCompanies: handlers.NewInsuranceCompanyHandler(usecase.NewInsuranceCompanyUseCase(insurerRepo, jobRepo, log), log),
		Catalog:            handlers.NewCatalogHandler(usecase.NewCatalogUseCase(templateRepo, vehicleCatalogRepo), log),
		Auth:               handlers.NewAuthHandler(usecase.NewAuthUseCase(employeeRepo, hasher, jwtManager, log), log),
	}
	a.options = Options{
		Metrics:     m,
		ServiceName: cfg.Otel.ServiceName,
		Tracing:     cfg.Otel.Enabled,
		Log:         log,
	}
	if cfg.Auth.Enabled {
		a.options.Verifier = jwtManager
	}
	return a, nil
}
