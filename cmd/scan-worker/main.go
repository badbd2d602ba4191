package main

import (
	"context"
	"encoding/hex"
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
	"github.com/jul1angr1s/bugbounty-backend/internal/metrics"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"github.com/jul1angr1s/bugbounty-backend/internal/progress"
	"github.com/jul1angr1s/bugbounty-backend/internal/queue"
	"github.com/jul1angr1s/bugbounty-backend/internal/repository/postgres"
	"github.com/jul1angr1s/bugbounty-backend/internal/sandbox"
	"github.com/jul1angr1s/bugbounty-backend/internal/scan"
	"github.com/jul1angr1s/bugbounty-backend/internal/staging"
	"github.com/jul1angr1s/bugbounty-backend/internal/toolchain"
	"github.com/jul1angr1s/bugbounty-backend/pkg/workerpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	PostgresDSN      string        `long:"postgres-dsn" env:"SCAN_POSTGRES_DSN" description:"Postgres DSN" required:"true"`
	AgentID          string        `long:"agent-id" env:"SCAN_AGENT_ID" description:"researcher agent identifier" default:"researcher-1"`
	WorkDir          string        `long:"work-dir" env:"SCAN_WORK_DIR" description:"base directory for staged repositories" default:"/tmp/bugbounty/staging"`
	SolcPath         string        `long:"solc-path" env:"SCAN_SOLC_PATH" description:"path to the solc binary" default:"solc"`
	SlitherPath      string        `long:"slither-path" env:"SCAN_SLITHER_PATH" description:"path to the slither binary" default:"slither"`
	AnvilPath        string        `long:"anvil-path" env:"SCAN_ANVIL_PATH" description:"path to the anvil binary" default:"anvil"`
	ConfidenceFloor  float64       `long:"confidence-floor" env:"SCAN_CONFIDENCE_FLOOR" description:"minimum analyzer confidence to keep a finding" default:"0.5"`
	Concurrency      int           `long:"concurrency" env:"SCAN_CONCURRENCY" description:"number of concurrent scan workers" default:"2"`
	ValidatorPubHex  string        `long:"validator-pub" env:"SCAN_VALIDATOR_PUB" description:"validator public key (hex) for proof encryption"`
	ResearcherKeyHex string        `long:"researcher-key" env:"SCAN_RESEARCHER_KEY" description:"researcher private key (hex) for proof signing"`
	MetricsAddr      string        `long:"metrics-addr" env:"SCAN_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	ShutdownTimeout  time.Duration `long:"shutdown-timeout" env:"SCAN_SHUTDOWN_TIMEOUT" description:"metrics server shutdown timeout" default:"5s"`
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
		logger.Fatal("scan worker failed", zap.Error(err))
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

	opts, err := pipelineOptions(cfg)
	if err != nil {
		return err
	}

	pipeline, err := scan.NewPipeline(
		repo,
		stager,
		tools,
		sandboxStarter{runner},
		jobs,
		publisher,
		metrics.NewScanPipeline(cfg.AgentID),
		cfg.AgentID,
		cfg.ConfidenceFloor,
		logger,
		opts...,
	)
	if err != nil {
		return err
	}

	workers := make([]*queue.Worker, 0, cfg.Concurrency)
	for i := 0; i < cfg.Concurrency; i++ {
		w, err := queue.NewWorker(jobs, model.QueueScan, pipeline, logger)
		if err != nil {
			return err
		}
		workers = append(workers, w)
	}

	logger.Info("scan worker started",
		zap.String("agent", cfg.AgentID),
		zap.Int("concurrency", cfg.Concurrency),
	)
	return workerpool.Process(ctx, cfg.Concurrency, workers, func(ctx context.Context, w *queue.Worker) error {
		return w.Run(ctx)
	})
}

// pipelineOptions parses the optional proof-encryption key material.
func pipelineOptions(cfg config) ([]scan.Option, error) {
	if cfg.ValidatorPubHex == "" && cfg.ResearcherKeyHex == "" {
		return nil, nil
	}
	if cfg.ValidatorPubHex == "" || cfg.ResearcherKeyHex == "" {
		return nil, errors.New("validator-pub and researcher-key must be set together")
	}

	pubBytes, err := hex.DecodeString(strings.TrimPrefix(cfg.ValidatorPubHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decode validator public key: %w", err)
	}
	validatorPub, err := crypto.UnmarshalPubkey(pubBytes)
	if err != nil {
		return nil, fmt.Errorf("parse validator public key: %w", err)
	}
	researcherKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.ResearcherKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse researcher key: %w", err)
	}
	return []scan.Option{scan.WithProofEncryption(validatorPub, researcherKey)}, nil
}

// sandboxStarter adapts the concrete runner to the pipeline's interface.
type sandboxStarter struct {
	runner *sandbox.Runner
}

func (s sandboxStarter) Start(ctx context.Context) (scan.SandboxInstance, error) {
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
