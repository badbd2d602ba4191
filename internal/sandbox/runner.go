// Package sandbox spawns isolated local blockchain instances for contract
// deployment and exploit replay. Each instance is private to one job and is
// never shared between the researcher and validator pipelines.
package sandbox

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/exec"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jul1angr1s/bugbounty-backend/internal/clock"
	"go.uber.org/zap"
)

const (
	startupTimeout  = 30 * time.Second
	startupPollStep = 250 * time.Millisecond
)

// Instance is a running sandbox chain with its process handle. The handle is
// tracked so teardown is guaranteed even when a later pipeline step fails.
type Instance struct {
	Port   int
	RPCURL string
	Client *ethclient.Client

	cmd    *exec.Cmd
	logger *zap.Logger
}

type Runner struct {
	logger    *zap.Logger
	anvilPath string
}

// NewRunner builds a Runner around the anvil binary.
func NewRunner(anvilPath string, logger *zap.Logger) (*Runner, error) {
	if anvilPath == "" {
		anvilPath = "anvil"
	}
	return &Runner{logger: logger.Named("sandbox"), anvilPath: anvilPath}, nil
}

// Start leases a free local port, spawns an anvil instance bound to it and
// waits for the RPC endpoint to come up.
func (r *Runner) Start(ctx context.Context) (*Instance, error) {
	port, err := leasePort()
	if err != nil {
		return nil, fmt.Errorf("lease sandbox port: %w", err)
	}

	cmd := exec.Command(r.anvilPath, "--port", strconv.Itoa(port), "--silent")
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start sandbox process: %w", err)
	}

	inst := &Instance{
		Port:   port,
		RPCURL: fmt.Sprintf("http://127.0.0.1:%d", port),
		cmd:    cmd,
		logger: r.logger.With(zap.Int("port", port)),
	}

	client, err := inst.awaitReady(ctx)
	if err != nil {
		inst.Teardown()
		return nil, err
	}
	inst.Client = client

	inst.logger.Info("sandbox started", zap.Int("pid", cmd.Process.Pid))
	return inst, nil
}

func (i *Instance) awaitReady(ctx context.Context) (*ethclient.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	for {
		client, err := ethclient.DialContext(ctx, i.RPCURL)
		if err == nil {
			if _, err = client.ChainID(ctx); err == nil {
				return client, nil
			}
			client.Close()
		}
		if sleepErr := clock.SleepWithContext(ctx, startupPollStep); sleepErr != nil {
			return nil, fmt.Errorf("sandbox rpc not ready: %w", err)
		}
	}
}

// Teardown stops the sandbox process and releases its port. Best-effort: an
// orphaned local process cannot affect protocol state, so failures are logged
// by callers rather than treated as fatal.
func (i *Instance) Teardown() error {
	if i.Client != nil {
		i.Client.Close()
	}
	if i.cmd == nil || i.cmd.Process == nil {
		return nil
	}
	if err := i.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("kill sandbox process: %w", err)
	}
	_ = i.cmd.Wait()
	return nil
}

// leasePort asks the kernel for a free TCP port and releases it immediately.
// A small race window exists but collisions only fail the one job, which the
// queue retries.
func leasePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()

	addr, ok := l.Addr().(*net.TCPAddr)
	if !ok {
		return 0, errors.New("unexpected listener address type")
	}
	return addr.Port, nil
}
