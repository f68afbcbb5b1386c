package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "oficina_jobs/docs"
	"oficina_jobs/internal/adapter/http/handlers"
	"oficina_jobs/internal/adapter/http/middleware"
	"oficina_jobs/internal/adapter/http/validation"
	"oficina_jobs/internal/config"
	"oficina_jobs/internal/infrastructure/metrics"
	"oficina_jobs/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// Handlers groups every HTTP handler mounted by the router.
type Handlers struct {
	Jobs               *handlers.JobHandler
	Payments           *handlers.JobPaymentHandler
	Customers          *handlers.CustomerHandler
	Vehicles           *handlers.VehicleHandler
	Employees          *handlers.EmployeeHandler
	InsuranceCompanies *handlers.InsuranceCompanyHandler
	Catalog            *handlers.CatalogHandler
	Auth               *handlers.AuthHandler
}

// Options configures the cross-cutting middleware. A nil Verifier leaves the
// business routes public.
type Options struct {
	Metrics     *metrics.Metrics
	Verifier    middleware.TokenVerifier
	ServiceName string
	Tracing     bool
	Log         *zap.Logger
}

// NewRouter builds the gin engine: middleware, public routes and the /v1 API.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	log := logger.OrNop(opts.Log)
	validation.Register()

	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	if opts.Tracing {
		router.Use(middleware.Tracing(opts.ServiceName))
	}
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
		router.GET("/metrics", middleware.MetricsEndpoint(opts.Metrics))
	}
	router.Use(middleware.Logger(log))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, h.Auth)

	api := v1.Group("")
	if opts.Verifier != nil {
		api.Use(middleware.Auth(opts.Verifier, log))
	}
	addJobRoutes(api, h.Jobs, h.Payments)
	addMasterDataRoutes(api, h)
	addCatalogRoutes(api, h.Catalog)

	return router
}

// Run wires the service from cfg and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	app, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.close()

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      NewRouter(app.handlers, app.options),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[http][server] listening", zap.String("addr", srv.Addr), zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
