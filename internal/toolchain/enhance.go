package toolchain

import (
	"context"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// Enhancer may append findings after analysis. Enhancers never remove or
// block the analyzer's original findings.
type Enhancer interface {
	Enhance(ctx context.Context, findings []model.Finding) ([]model.Finding, error)
}

// NoopEnhancer is the default: analysis results pass through untouched.
type NoopEnhancer struct{}

func (NoopEnhancer) Enhance(_ context.Context, findings []model.Finding) ([]model.Finding, error) {
	return findings, nil
}

// ApplyEnhancer runs the enhancer and enforces the append-only contract: the
// original findings always survive, whatever the enhancer returns.
func ApplyEnhancer(ctx context.Context, enhancer Enhancer, findings []model.Finding) ([]model.Finding, error) {
	if enhancer == nil {
		return findings, nil
	}
	enhanced, err := enhancer.Enhance(ctx, findings)
	if err != nil {
		// Enhancement is advisory; a failing enhancer never blocks the scan.
		return findings, nil
	}

	seen := make(map[string]struct{}, len(enhanced))
	for _, f := range enhanced {
		seen[f.ID] = struct{}{}
	}
	out := enhanced
	for _, f := range findings {
		if _, ok := seen[f.ID]; !ok {
			out = append(out, f)
		}
	}
	return out, nil
}
