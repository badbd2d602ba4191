package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/jessevdk/go-flags"
	"github.com/jul1angr1s/bugbounty-backend/internal/chain"
	"github.com/jul1angr1s/bugbounty-backend/internal/metrics"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"github.com/jul1angr1s/bugbounty-backend/internal/progress"
	"github.com/jul1angr1s/bugbounty-backend/internal/queue"
	"github.com/jul1angr1s/bugbounty-backend/internal/repository/postgres"
	"github.com/jul1angr1s/bugbounty-backend/internal/sandbox"
	"github.com/jul1angr1s/bugbounty-backend/internal/staging"
	"github.com/jul1angr1s/bugbounty-backend/internal/toolchain"
	"github.com/jul1angr1s/bugbounty-backend/internal/validation"
	"github.com/jul1angr1s/bugbounty-backend/pkg/workerpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	PostgresDSN      string        `long:"postgres-dsn" env:"VALIDATION_POSTGRES_DSN" description:"Postgres DSN" required:"true"`
	WorkDir          string        `long:"work-dir" env:"VALIDATION_WORK_DIR" description:"base directory for staged repositories" default:"/tmp/bugbounty/validation"`
	SolcPath         string        `long:"solc-path" env:"VALIDATION_SOLC_PATH" description:"path to the solc binary" default:"solc"`
	SlitherPath      string        `long:"slither-path" env:"VALIDATION_SLITHER_PATH" description:"path to the slither binary" default:"slither"`
	AnvilPath        string        `long:"anvil-path" env:"VALIDATION_ANVIL_PATH" description:"path to the anvil binary" default:"anvil"`
	Concurrency      int           `long:"concurrency" env:"VALIDATION_CONCURRENCY" description:"number of concurrent validation workers" default:"2"`
	ValidatorKeyHex  string        `long:"validator-key" env:"VALIDATION_VALIDATOR_KEY" description:"validator private key (hex) for proof decryption"`
	DisablePlaintext bool          `long:"disable-plaintext-proofs" env:"VALIDATION_DISABLE_PLAINTEXT_PROOFS" description:"reject proofs that are not sealed for the validator key"`
	PayoutAddress    string        `long:"payout-address" env:"VALIDATION_PAYOUT_ADDRESS" description:"fallback bounty recipient for unsigned proofs" required:"true"`
	MetricsAddr      string        `long:"metrics-addr" env:"VALIDATION_METRICS_ADDR" description:"address for metrics server" default:":2113"`
	ShutdownTimeout  time.Duration `long:"shutdown-timeout" env:"VALIDATION_SHUTDOWN_TIMEOUT" description:"metrics server shutdown timeout" default:"5s"`

	RPCURL                 string `long:"rpc-url" env:"VALIDATION_RPC_URL" description:"settlement chain RPC URL" required:"true"`
	SettlementKeyHex       string `long:"settlement-key" env:"VALIDATION_SETTLEMENT_KEY" description:"settlement wallet private key (hex)" required:"true"`
	ProtocolRegistryAddr   string `long:"protocol-registry" env:"VALIDATION_PROTOCOL_REGISTRY" description:"protocol registry contract address" required:"true"`
	ValidationRegistryAddr string `long:"validation-registry" env:"VALIDATION_VALIDATION_REGISTRY" description:"validation registry contract address" required:"true"`
	BountyPoolAddr         string `long:"bounty-pool" env:"VALIDATION_BOUNTY_POOL" description:"bounty pool contract address" required:"true"`
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
		logger.Fatal("validation worker failed", zap.Error(err))
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

	stager, err := staging.NewStager(cfg.WorkDir, logger)
	if err != nil {
		return fmt.Errorf("init stager: %w", err)
	}
	tools, err := toolchain.NewAdapter(cfg.SolcPath, cfg.SlitherPath, logger)
	if err != nil {
		return fmt.Errorf("init toolchain: %w", err)
	}
	runner, err := sandbox.NewRunner(cfg.AnvilPath, logger)
	if err != nil {
		return fmt.Errorf("init sandbox runner: %w", err)
	}

	publisher := progress.NewPublisher()
	defer publisher.Shutdown()

	var opts []validation.Option
	if cfg.ValidatorKeyHex != "" {
		key, keyErr := crypto.HexToECDSA(strings.TrimPrefix(cfg.ValidatorKeyHex, "0x"))
		if keyErr != nil {
			return fmt.Errorf("parse validator key: %w", keyErr)
		}
		opts = append(opts, validation.WithDecryptionKey(key))
	}
	opts = append(opts, validation.WithPlaintextFallback(!cfg.DisablePlaintext))

	pipeline, err := validation.NewPipeline(
		repo,
		stager,
		tools,
		sandboxStarter{runner},
		chainClient,
		jobs,
		publisher,
		metrics.NewValidationPipeline(),
		cfg.PayoutAddress,
		logger,
		opts...,
	)
	if err != nil {
		return err
	}

	workers := make([]*queue.Worker, 0, cfg.Concurrency)
	for i := 0; i < cfg.Concurrency; i++ {
		w, err := queue.NewWorker(jobs, model.QueueValidation, pipeline, logger)
		if err != nil {
			return err
		}
		workers = append(workers, w)
	}

	logger.Info("validation worker started", zap.Int("concurrency", cfg.Concurrency))
	return workerpool.Process(ctx, cfg.Concurrency, workers, func(ctx context.Context, w *queue.Worker) error {
		return w.Run(ctx)
	})
}

// sandboxStarter adapts the concrete runner to the pipeline's interface.
type sandboxStarter struct {
	runner *sandbox.Runner
}

func (s sandboxStarter) Start(ctx context.Context) (validation.SandboxInstance, error) {
	inst, err := s.runner.Start(ctx)
	if err != nil {
		return nil, err
	}
	return inst, nil
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
