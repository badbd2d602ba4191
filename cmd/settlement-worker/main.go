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
	"github.com/jul1angr1s/bugbounty-backend/internal/metrics"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"github.com/jul1angr1s/bugbounty-backend/internal/queue"
	"github.com/jul1angr1s/bugbounty-backend/internal/registrar"
	"github.com/jul1angr1s/bugbounty-backend/internal/repository/postgres"
	"github.com/jul1angr1s/bugbounty-backend/internal/settlement"
	"github.com/jul1angr1s/bugbounty-backend/pkg/workerpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	PostgresDSN       string        `long:"postgres-dsn" env:"SETTLEMENT_POSTGRES_DSN" description:"Postgres DSN" required:"true"`
	Concurrency       int           `long:"concurrency" env:"SETTLEMENT_CONCURRENCY" description:"number of concurrent settlement workers" default:"1"`
	ReleasesPerMinute int           `long:"releases-per-minute" env:"SETTLEMENT_RELEASES_PER_MINUTE" description:"cap on bounty release transactions per minute" default:"6"`
	AgentID           string        `long:"agent-id" env:"SETTLEMENT_AGENT_ID" description:"agent identifier stamped on initial scans" default:"researcher-1"`
	RegistrarInterval time.Duration `long:"registrar-interval" env:"SETTLEMENT_REGISTRAR_INTERVAL" description:"protocol registration sweep interval" default:"30s"`
	MetricsAddr       string        `long:"metrics-addr" env:"SETTLEMENT_METRICS_ADDR" description:"address for metrics server" default:":2114"`
	ShutdownTimeout   time.Duration `long:"shutdown-timeout" env:"SETTLEMENT_SHUTDOWN_TIMEOUT" description:"metrics server shutdown timeout" default:"5s"`

	RPCURL                 string `long:"rpc-url" env:"SETTLEMENT_RPC_URL" description:"settlement chain RPC URL" required:"true"`
	SettlementKeyHex       string `long:"settlement-key" env:"SETTLEMENT_KEY" description:"settlement wallet private key (hex)" required:"true"`
	ProtocolRegistryAddr   string `long:"protocol-registry" env:"SETTLEMENT_PROTOCOL_REGISTRY" description:"protocol registry contract address" required:"true"`
	ValidationRegistryAddr string `long:"validation-registry" env:"SETTLEMENT_VALIDATION_REGISTRY" description:"validation registry contract address" required:"true"`
	BountyPoolAddr         string `long:"bounty-pool" env:"SETTLEMENT_BOUNTY_POOL" description:"bounty pool contract address" required:"true"`
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
		logger.Fatal("settlement worker failed", zap.Error(err))
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
	jobs, err := queue.New(pool, metrics.NewQueue())
	if err != nil {
		return fmt.Errorf("init queue: %w", err)
	}

	chainClient, err := chain.NewClient(ctx, chain.Config{
		RPCURL:                 cfg.RPCURL,
		SettlementKeyHex:       cfg.SettlementKeyHex,
		ProtocolRegistryAddr:   cfg.ProtocolRegistryAddr,
		ValidationRegistryAddr: cfg.ValidationRegistryAddr,
		BountyPoolAddr:         cfg.BountyPoolAddr,
	}, metrics.NewChainClient())
	if err != nil {
		return fmt.Errorf("init chain client: %w", err)
	}
	defer chainClient.Close()

	settler, err := settlement.NewSettler(repo, chainClient, cfg.ReleasesPerMinute, metrics.NewSettlement(), logger)
	if err != nil {
		return err
	}

	reg, err := registrar.NewRegistrar(repo, chainClient, jobs, metrics.NewRegistrar(), cfg.AgentID, cfg.RegistrarInterval, logger)
	if err != nil {
		return err
	}

	loops := make([]func(context.Context) error, 0, cfg.Concurrency+1)
	for i := 0; i < cfg.Concurrency; i++ {
		w, err := queue.NewWorker(jobs, model.QueuePayment, settler, logger)
		if err != nil {
			return err
		}
		loops = append(loops, w.Run)
	}
	loops = append(loops, reg.Run)

	logger.Info("settlement worker started",
		zap.Int("concurrency", cfg.Concurrency),
		zap.Int("releases_per_minute", cfg.ReleasesPerMinute),
	)
	return workerpool.Process(ctx, len(loops), loops, func(ctx context.Context, loop func(context.Context) error) error {
		return loop(ctx)
	})
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
