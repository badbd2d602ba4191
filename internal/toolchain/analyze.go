package toolchain

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"go.uber.org/zap"
)

// DefaultConfidenceFloor drops findings the analyzer itself is unsure about.
const DefaultConfidenceFloor = 0.5

// Analyze runs the static analyzer over the staged source tree and returns
// normalized findings at or above the confidence floor.
func (a *Adapter) Analyze(ctx context.Context, sourceDir, contractPath, scanID string, confidenceFloor float64) ([]model.Finding, error) {
	ctx, cancel := context.WithTimeout(ctx, analyzeTimeout)
	defer cancel()

	reportPath := filepath.Join(sourceDir, "slither-report.sarif")
	cmd := exec.CommandContext(ctx, a.slitherPath, contractPath, "--sarif", reportPath)
	cmd.Dir = sourceDir

	// Slither exits non-zero when it finds issues; only a missing report is
	// a real failure.
	if out, err := cmd.CombinedOutput(); err != nil {
		if _, statErr := os.Stat(reportPath); statErr != nil {
			return nil, fmt.Errorf("slither failed: %s: %w", string(out), err)
		}
	}
	defer func() {
		_ = os.Remove(reportPath)
	}()

	data, err := os.ReadFile(reportPath)
	if err != nil {
		return nil, fmt.Errorf("read analyzer report: %w", err)
	}

	findings, err := NormalizeSARIF(data, scanID)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Finding, 0, len(findings))
	for _, f := range findings {
		if f.Confidence < confidenceFloor {
			a.logger.Debug("dropping low-confidence finding",
				zap.String("title", f.Title),
				zap.Float64("confidence", f.Confidence),
			)
			continue
		}
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		filtered = append(filtered, f)
	}

	a.logger.Info("analysis complete",
		zap.Int("raw", len(findings)),
		zap.Int("kept", len(filtered)),
	)
	return filtered, nil
}
