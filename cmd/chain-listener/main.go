package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/jul1angr1s/bugbounty-backend/internal/chain"
	"github.com/jul1angr1s/bugbounty-backend/internal/listener"
	"github.com/jul1angr1s/bugbounty-backend/internal/metrics"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"github.com/jul1angr1s/bugbounty-backend/internal/reconcile"
	"github.com/jul1angr1s/bugbounty-backend/internal/repository/postgres"
	"github.com/jul1angr1s/bugbounty-backend/pkg/batcher"
	"github.com/jul1angr1s/bugbounty-backend/pkg/workerpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	PostgresDSN       string        `long:"postgres-dsn" env:"LISTENER_POSTGRES_DSN" description:"Postgres DSN" required:"true"`
	PollInterval      time.Duration `long:"poll-interval" env:"LISTENER_POLL_INTERVAL" description:"event poll interval" default:"15s"`
	ReconcileInterval time.Duration `long:"reconcile-interval" env:"LISTENER_RECONCILE_INTERVAL" description:"reconciliation cycle interval" default:"5m"`
	GracePeriod       time.Duration `long:"grace-period" env:"LISTENER_GRACE_PERIOD" description:"how long a confirmed validation may wait for payment" default:"1h"`
	MetricsAddr       string        `long:"metrics-addr" env:"LISTENER_METRICS_ADDR" description:"address for metrics server" default:":2115"`
	ShutdownTimeout   time.Duration `long:"shutdown-timeout" env:"LISTENER_SHUTDOWN_TIMEOUT" description:"metrics server shutdown timeout" default:"5s"`

	RPCURL                 string `long:"rpc-url" env:"LISTENER_RPC_URL" description:"settlement chain RPC URL" required:"true"`
	ProtocolRegistryAddr   string `long:"protocol-registry" env:"LISTENER_PROTOCOL_REGISTRY" description:"protocol registry contract address" required:"true"`
	ValidationRegistryAddr string `long:"validation-registry" env:"LISTENER_VALIDATION_REGISTRY" description:"validation registry contract address" required:"true"`
	BountyPoolAddr         string `long:"bounty-pool" env:"LISTENER_BOUNTY_POOL" description:"bounty pool contract address" required:"true"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("chain listener failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, cfg.ShutdownTimeout, logger)

	pool, err := postgres.OpenPool(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo, err := postgres.NewRepository(pool, metrics.NewRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	// Listener side never transacts; no wallet key.
	chainClient, err := chain.NewClient(ctx, chain.Config{
		RPCURL:                 cfg.RPCURL,
		ProtocolRegistryAddr:   cfg.ProtocolRegistryAddr,
		ValidationRegistryAddr: cfg.ValidationRegistryAddr,
		BountyPoolAddr:         cfg.BountyPoolAddr,
	}, metrics.NewChainClient())
	if err != nil {
		return fmt.Errorf("init chain client: %w", err)
	}
	defer chainClient.Close()

	tail, err := listener.NewListener(repo, chainClient, metrics.NewListener(), cfg.PollInterval, logger)
	if err != nil {
		return err
	}

	discrepancies := batcher.New(logger, repo.InsertDiscrepancies, 50, 10*time.Second, 1)
	discrepancies.Start(ctx)
	defer discrepancies.Stop()

	reconciler, err := reconcile.NewReconciler(repo, discrepancySink{discrepancies}, metrics.NewReconciler(), cfg.ReconcileInterval, cfg.GracePeriod, logger)
	if err != nil {
		return err
	}

	logger.Info("chain listener started",
		zap.Duration("poll_interval", cfg.PollInterval),
		zap.Duration("reconcile_interval", cfg.ReconcileInterval),
	)

	loops := []func(context.Context) error{tail.Run, reconciler.Run}
	return workerpool.Process(ctx, len(loops), loops, func(ctx context.Context, loop func(context.Context) error) error {
		return loop(ctx)
	})
}

// discrepancySink adapts the batcher to the reconciler's sink interface.
type discrepancySink struct {
	b *batcher.Batcher[model.Discrepancy]
}

func (s discrepancySink) Add(ctx context.Context, d model.Discrepancy) error {
	return s.b.Add(ctx, d)
}

func startMetricsServer(ctx context.Context, addr string, shutdownTimeout time.Duration, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
