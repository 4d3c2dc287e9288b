package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"normalro/internal/cnp"
	cnphandler "normalro/internal/cnp/handler"
	cnpmetrics "normalro/internal/cnp/metrics"
	"normalro/internal/company"
	companyhandler "normalro/internal/company/handler"
	companymetrics "normalro/internal/company/metrics"
	companystore "normalro/internal/company/store"
	"normalro/internal/email"
	emailhandler "normalro/internal/email/handler"
	emailmetrics "normalro/internal/email/metrics"
	emailstore "normalro/internal/email/store"
	"normalro/internal/platform/config"
	"normalro/internal/platform/httpserver"
	"normalro/internal/platform/logger"
	"normalro/internal/platform/metrics"
	"normalro/internal/platform/redis"
	"normalro/internal/platform/tracing"
	"normalro/internal/tools"
	toolshandler "normalro/internal/tools/handler"
	httptransport "normalro/internal/transport/http"
	"normalro/pkg/platform/circuit"
)

const shutdownTimeout = 10 * time.Second

// main wires configuration, stores and modules, then runs the HTTP server and
// the temp file sweeper until SIGINT or SIGTERM.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "normalro: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing.Enabled {
		shutdownTracing, err := tracing.Init("normalro", cfg.Server.Version, cfg.Tracing.Output)
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := shutdownTracing(flushCtx); err != nil {
				log.Warn("tracing shutdown failed", "error", err.Error())
			}
		}()
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()
	if redisClient != nil {
		log.Info("redis enabled for company cache and temp file metadata")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	cnpHandler := cnphandler.New(cnp.NewGenerator(), log, cnpmetrics.New(reg))
	toolsHandler := toolshandler.New(tools.NewPasswordGenerator(nil), log)

	companyService := newCompanyService(cfg.Company, redisClient, log, reg)
	companyHandler := companyhandler.New(companyService, log)

	emailService, err := newEmailService(cfg.Email, redisClient, log, reg)
	if err != nil {
		return err
	}
	emailHandler := emailhandler.New(emailService, log)
	sweeper := email.NewSweeper(emailService, cfg.Email.SweepInterval, log)

	router := httptransport.NewRouter(httptransport.Options{
		Logger:         log,
		Metrics:        metrics.New(reg),
		Gatherer:       reg,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Version:        cfg.Server.Version,
		Health:         redisClient.Health,
	}, cnpHandler, toolsHandler, companyHandler, emailHandler)

	srv := httpserver.New(cfg.Server.Addr, router, cfg.Server.RequestTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting normalro", "addr", cfg.Server.Addr, "version", cfg.Server.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return sweeper.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newCompanyService(cfg config.Company, redisClient *redis.Client, log *slog.Logger, reg prometheus.Registerer) *company.Service {
	var cache company.Cache = companystore.NewInMemoryCache(cfg.CacheTTL)
	if redisClient != nil {
		cache = companystore.NewRedisCache(redisClient.Client, cfg.CacheTTL)
	}
	breaker := circuit.New("anaf",
		circuit.WithFailureThreshold(cfg.FailureThreshold),
		circuit.WithSuccessThreshold(1),
		circuit.WithCooldown(cfg.BreakerCooldown),
	)
	return company.NewService(
		company.NewANAFClient(cfg.ANAFURL, cfg.Timeout),
		breaker,
		log,
		company.WithCache(cache),
		company.WithMetrics(companymetrics.New(reg)),
		company.WithCallTimeout(cfg.Timeout),
	)
}

func newEmailService(cfg config.Email, redisClient *redis.Client, log *slog.Logger, reg prometheus.Registerer) (*email.Service, error) {
	disk, err := email.NewDiskStorage(cfg.TempDir)
	if err != nil {
		return nil, err
	}
	var files email.FileStore = emailstore.NewInMemoryStore()
	if redisClient != nil {
		files = emailstore.NewRedisStore(redisClient.Client)
	}

	presets := make([]email.Provider, 0, len(cfg.Providers))
	for _, p := range cfg.Providers {
		presets = append(presets, email.Provider{
			Name:     p.Name,
			Host:     p.Host,
			Port:     p.Port,
			Username: p.Username,
			Password: p.Password,
		})
	}
	providers := email.NewProviders(presets)
	if !providers.Config().HasAnyProvider {
		log.Warn("no SMTP provider has server-side credentials; sends need credentials in the request")
	}

	return email.NewService(
		providers,
		files,
		disk,
		email.NewSMTPSender(cfg.SMTPTimeout),
		log,
		email.WithMetrics(emailmetrics.New(reg)),
		email.WithTempTTL(cfg.TempTTL),
		email.WithMaxFileBytes(cfg.MaxFileBytes),
	), nil
}
