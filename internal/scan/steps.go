package scan

import (
	"context"
	"strings"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"github.com/jul1angr1s/bugbounty-backend/internal/toolchain"
	"go.uber.org/zap"
)

func (p *Pipeline) stepClone(ctx context.Context, msg model.ScanJob, protocol *model.Protocol) (string, *stepFailure) {
	p.advance(ctx, msg.ScanID, model.StepClone)
	started := time.Now()

	branch := msg.Branch
	if branch == "" {
		branch = protocol.Branch
	}

	dir, err := p.stager.Stage(ctx, protocol.RepoURL, branch, msg.CommitHash, msg.ProtocolID, msg.ScanID)
	p.metrics.ObserveStep(string(model.StepClone), err, started)
	if err != nil {
		return "", failure(model.StepClone, "clone %s: %v", protocol.RepoURL, err)
	}
	return dir, nil
}

func (p *Pipeline) stepCompile(ctx context.Context, msg model.ScanJob, protocol *model.Protocol, dir string) (*toolchain.Artifact, *stepFailure) {
	p.advance(ctx, msg.ScanID, model.StepCompile)
	started := time.Now()

	artifact, err := p.toolchain.Compile(ctx, dir, protocol.ContractPath, protocol.ContractName)
	p.metrics.ObserveStep(string(model.StepCompile), err, started)
	if err != nil {
		// List what is actually in the tree to aid diagnosis; the most
		// common cause is a wrong contract path in the registration.
		available := toolchain.ListSourceFiles(dir)
		return nil, failure(model.StepCompile, "compile %s: %v (available sources: %s)",
			protocol.ContractPath, err, strings.Join(available, ", "))
	}
	return artifact, nil
}

func (p *Pipeline) stepDeploy(ctx context.Context, msg model.ScanJob, artifact *toolchain.Artifact) (SandboxInstance, *stepFailure) {
	p.advance(ctx, msg.ScanID, model.StepDeploy)
	started := time.Now()

	inst, err := p.sandboxes.Start(ctx)
	if err != nil {
		p.metrics.ObserveStep(string(model.StepDeploy), err, started)
		return nil, failure(model.StepDeploy, "start sandbox: %v", err)
	}

	addr, err := inst.Deploy(ctx, artifact.Bytecode)
	p.metrics.ObserveStep(string(model.StepDeploy), err, started)
	if err != nil {
		if tdErr := inst.Teardown(); tdErr != nil {
			p.logger.Warn("sandbox teardown after deploy failure", zap.Error(tdErr))
		}
		return nil, failure(model.StepDeploy, "deploy %s: %v", artifact.ContractName, err)
	}

	p.logger.Info("contract deployed to sandbox",
		zap.String("scan_id", msg.ScanID),
		zap.String("address", addr.Hex()),
	)
	return inst, nil
}

func (p *Pipeline) stepAnalyze(ctx context.Context, msg model.ScanJob, protocol *model.Protocol, dir string) ([]model.Finding, *stepFailure) {
	p.advance(ctx, msg.ScanID, model.StepAnalyze)
	started := time.Now()

	findings, err := p.toolchain.Analyze(ctx, dir, protocol.ContractPath, msg.ScanID, p.confidenceFloor)
	p.metrics.ObserveStep(string(model.StepAnalyze), err, started)
	if err != nil {
		return nil, failure(model.StepAnalyze, "analyze %s: %v", protocol.ContractPath, err)
	}

	findings, err = toolchain.ApplyEnhancer(ctx, p.enhancer, findings)
	if err != nil {
		return nil, failure(model.StepAnalyze, "enhance findings: %v", err)
	}

	if len(findings) > 0 {
		if err := p.repo.InsertFindings(ctx, findings); err != nil {
			return nil, failure(model.StepAnalyze, "persist findings: %v", err)
		}
	}

	p.logger.Info("analysis findings persisted",
		zap.String("scan_id", msg.ScanID),
		zap.Int("count", len(findings)),
	)
	return findings, nil
}
