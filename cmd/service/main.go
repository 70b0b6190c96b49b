package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "builty-service/internal/app"
	"builty-service/internal/entities"
	"builty-service/internal/gateway/s3/photo_storage"
	"builty-service/internal/handlers/rest/builties_carrier_get"
	"builty-service/internal/handlers/rest/builties_my_get"
	"builty-service/internal/handlers/rest/builty_cancel_post"
	"builty-service/internal/handlers/rest/builty_deliver_post"
	"builty-service/internal/handlers/rest/builty_dispatch_post"
	"builty-service/internal/handlers/rest/builty_get"
	"builty-service/internal/handlers/rest/builty_photo_post"
	"builty-service/internal/handlers/rest/builty_post"
	"builty-service/internal/handlers/rest/builty_print_get"
	"builty-service/internal/handlers/rest/builty_print_pdf_get"
	"builty-service/internal/handlers/rest/builty_sign_consignor_post"
	"builty-service/internal/handlers/rest/builty_stats_get"
	"builty-service/internal/handlers/rest/builty_verify_get"
	"builty-service/internal/handlers/rest/config_list_get"
	"builty-service/internal/handlers/rest/config_public_get"
	"builty-service/internal/handlers/rest/config_put"
	"builty-service/internal/handlers/rest/config_status_post"
	"builty-service/internal/handlers/rest/healthcheck_head"
	"builty-service/internal/handlers/rest/ping_get"
	"builty-service/internal/handlers/rest/pricing_rule_post"
	"builty-service/internal/handlers/rest/pricing_rule_put"
	"builty-service/internal/handlers/rest/pricing_rule_status_post"
	"builty-service/internal/handlers/rest/pricing_rules_applicable_get"
	"builty-service/internal/handlers/rest/pricing_rules_get"
	"builty-service/internal/handlers/rest/route_pricing_get"
	"builty-service/internal/handlers/rest/route_pricing_post"
	"builty-service/internal/handlers/rest/route_pricing_status_post"
	"builty-service/internal/handlers/rest/route_quote_get"
	"builty-service/internal/pkg/auth"
	"builty-service/internal/pkg/config"
	"builty-service/internal/pkg/dotenv"
	"builty-service/internal/pkg/kafka"
	authmw "builty-service/internal/pkg/middlewares/auth"
	"builty-service/internal/pkg/middlewares/graceful_shutdown"
	"builty-service/internal/pkg/middlewares/idempotency"
	"builty-service/internal/pkg/middlewares/metrics"
	"builty-service/internal/pkg/middlewares/rate_limiter"
	"builty-service/internal/pkg/middlewares/timeout"
	"builty-service/internal/pkg/pdf"
	"builty-service/internal/pkg/postgres"
	"builty-service/internal/pkg/redis"
	"builty-service/internal/pkg/s3client"
	builtyService "builty-service/internal/service/builty"
	"builty-service/pkg/logger"
	"builty-service/pkg/logger/zap_adapter"
	"builty-service/pkg/token_bucket"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			stdlog.Printf("failed to load .env file: %v", err)
			return
		}
	}

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting builty-service application")

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	redisClient, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis client", logger.NewField("error", err))
		}
	}()

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka, cfg.Kafka.BrokerList())
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}()

	var storage builtyService.FileStorage
	if cfg.Storage.Enabled {
		s3, err := s3client.NewClient(ctx, &cfg.Storage)
		if err != nil {
			return fmt.Errorf("object storage: %w", err)
		}
		storage = photo_storage.New(s3, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL)
	}

	var renderer builtyService.PDFRenderer
	if cfg.PDF.Enabled {
		r, err := pdf.New(&cfg.PDF, log)
		if err != nil {
			return fmt.Errorf("pdf renderer: %w", err)
		}
		defer r.Close()
		renderer = r
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, storage, renderer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	authenticator := auth.New(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	idempotencyStore := redis.NewStore(redisClient)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	router := initRouter(routerDeps{
		ongoingCtx:     ongoingCtx,
		log:            log,
		isShuttingDown: &isShuttingDown,
		app:            businessApp,
		db:             pool,
		tokens:         authenticator,
		idempotency:    idempotencyStore,
		cfg:            cfg,
	})

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second, // печать PDF бывает долгой
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

type routerDeps struct {
	ongoingCtx     context.Context
	log            logger.Logger
	isShuttingDown *atomic.Bool
	app            *application.Application
	db             healthcheck_head.Pinger
	tokens         authmw.TokenParser
	idempotency    idempotency.Store
	cfg            *config.Config
}

func initRouter(deps routerDeps) http.Handler {
	log := deps.log
	app := deps.app
	cfg := deps.cfg.Server

	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(deps.isShuttingDown, deps.ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(deps.isShuttingDown, deps.db)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// публичные: печать, проверка подлинности, публичный конфиг
	router.Handle("/builty/print/{documentNumber}", builty_print_get.New(log, app.ServiceBuilty)).Methods("GET")
	router.Handle("/builty/print/{documentNumber}/pdf", builty_print_pdf_get.New(log, app.ServiceBuilty)).Methods("GET")
	router.Handle("/builty/verify/{documentNumber}", builty_verify_get.New(log, app.ServiceBuilty)).Methods("GET")
	router.Handle("/config/public", config_public_get.New(log, app.ServiceConfiguration)).Methods("GET")

	authed := router.NewRoute().Subrouter()
	authed.Use(authmw.Authenticate(log, deps.tokens))

	only := func(h http.Handler, roles ...entities.Role) http.Handler {
		return authmw.RequireRoles(log, roles...)(h)
	}
	idempotent := idempotency.Middleware(log, deps.idempotency, deps.cfg.Redis.IdempotencyTTL)

	authed.Handle("/builty", only(idempotent(builty_post.New(log, app.ServiceBuilty)), entities.RoleShipper, entities.RoleAdmin)).Methods("POST")
	authed.Handle("/builty/my-builties", only(builties_my_get.New(log, app.ServiceBuilty), entities.RoleShipper)).Methods("GET")
	authed.Handle("/builty/carrier-builties", only(builties_carrier_get.New(log, app.ServiceBuilty), entities.RoleCarrier)).Methods("GET")
	authed.Handle("/builty/{id:[0-9]+}", builty_get.New(log, app.ServiceBuilty)).Methods("GET")
	authed.Handle("/builty/{id:[0-9]+}/dispatch", only(builty_dispatch_post.New(log, app.ServiceBuilty), entities.RoleCarrier, entities.RoleAdmin)).Methods("POST")
	authed.Handle("/builty/{id:[0-9]+}/deliver", only(builty_deliver_post.New(log, app.ServiceBuilty), entities.RoleCarrier, entities.RoleAdmin)).Methods("POST")
	authed.Handle("/builty/{id:[0-9]+}/sign-consignor", only(builty_sign_consignor_post.New(log, app.ServiceBuilty), entities.RoleShipper)).Methods("POST")
	authed.Handle("/builty/{id:[0-9]+}/cancel", only(builty_cancel_post.New(log, app.ServiceBuilty), entities.RoleShipper, entities.RoleAdmin)).Methods("POST")
	authed.Handle("/builty/{id:[0-9]+}/photos", builty_photo_post.New(log, app.ServiceBuilty)).Methods("POST")

	authed.Handle("/pricing/rules/applicable", pricing_rules_applicable_get.New(log, app.ServicePricing)).Methods("GET")
	authed.Handle("/pricing/route-quote", route_quote_get.New(log, app.ServicePricing)).Methods("GET")

	admin := authed.PathPrefix("/admin").Subrouter()
	admin.Use(authmw.RequireRoles(log, entities.RoleAdmin))

	admin.Handle("/builty/stats", builty_stats_get.New(log, app.ServiceBuilty)).Methods("GET")

	admin.Handle("/config", config_list_get.New(log, app.ServiceConfiguration)).Methods("GET")
	admin.Handle("/config/{key}", config_put.New(log, app.ServiceConfiguration)).Methods("PUT")
	admin.Handle("/config/{key}/{action}", config_status_post.New(log, app.ServiceConfiguration)).Methods("POST")

	admin.Handle("/pricing-rules", pricing_rules_get.New(log, app.ServicePricing)).Methods("GET")
	admin.Handle("/pricing-rules", pricing_rule_post.New(log, app.ServicePricing)).Methods("POST")
	admin.Handle("/pricing-rules/{id:[0-9]+}", pricing_rule_put.New(log, app.ServicePricing)).Methods("PUT")
	admin.Handle("/pricing-rules/{id:[0-9]+}/status", pricing_rule_status_post.New(log, app.ServicePricing)).Methods("POST")

	admin.Handle("/route-pricing", route_pricing_get.New(log, app.ServicePricing)).Methods("GET")
	admin.Handle("/route-pricing", route_pricing_post.New(log, app.ServicePricing)).Methods("POST")
	admin.Handle("/route-pricing/{id:[0-9]+}/status", route_pricing_status_post.New(log, app.ServicePricing)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, db healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
