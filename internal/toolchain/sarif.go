package toolchain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"github.com/owenrumney/go-sarif/v2/sarif"
)

// NormalizeSARIF converts an analyzer SARIF report into pipeline findings.
// Tool-specific impact levels are mapped onto the fixed five-level severity
// scale; results without an impact fall back to the SARIF level.
func NormalizeSARIF(data []byte, scanID string) ([]model.Finding, error) {
	var report sarif.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse sarif report: %w", err)
	}

	var findings []model.Finding
	for _, run := range report.Runs {
		rules := map[string]*sarif.ReportingDescriptor{}
		if run.Tool.Driver != nil {
			for _, rule := range run.Tool.Driver.Rules {
				rules[rule.ID] = rule
			}
		}

		for _, res := range run.Results {
			ruleID := ""
			if res.RuleID != nil {
				ruleID = *res.RuleID
			}

			f := model.Finding{
				ID:         uuid.NewString(),
				ScanID:     scanID,
				Type:       classifyRule(ruleID),
				Severity:   severityFor(res, rules[ruleID]),
				Title:      ruleID,
				Confidence: confidenceFor(rules[ruleID]),
				Status:     model.FindingPending,
			}
			if res.Message.Text != nil {
				f.Description = *res.Message.Text
			}
			if len(res.Locations) > 0 && res.Locations[0].PhysicalLocation != nil {
				phys := res.Locations[0].PhysicalLocation
				if phys.ArtifactLocation != nil && phys.ArtifactLocation.URI != nil {
					f.FilePath = *phys.ArtifactLocation.URI
				}
				if phys.Region != nil && phys.Region.StartLine != nil {
					f.Line = *phys.Region.StartLine
				}
			}
			findings = append(findings, f)
		}
	}
	return findings, nil
}

// classifyRule maps analyzer rule ids onto the verdict-policy vulnerability
// types. Unrecognized rules become GENERIC, which the validator treats as
// inconclusive rather than guessing.
func classifyRule(ruleID string) model.VulnerabilityType {
	id := strings.ToLower(ruleID)
	switch {
	case strings.Contains(id, "reentrancy"):
		return model.VulnReentrancy
	case strings.Contains(id, "arbitrary-send"), strings.Contains(id, "suicidal"):
		return model.VulnFundTheft
	case strings.Contains(id, "overflow"), strings.Contains(id, "underflow"):
		return model.VulnOverflow
	case strings.Contains(id, "access"), strings.Contains(id, "tx-origin"), strings.Contains(id, "unprotected"):
		return model.VulnAccessControl
	case strings.Contains(id, "unchecked"):
		return model.VulnUncheckedCall
	default:
		return model.VulnGeneric
	}
}

func severityFor(res *sarif.Result, rule *sarif.ReportingDescriptor) model.Severity {
	if rule != nil && rule.Properties != nil {
		if impact, ok := rule.Properties["impact"].(string); ok {
			switch strings.ToLower(impact) {
			case "critical":
				return model.SeverityCritical
			case "high":
				return model.SeverityHigh
			case "medium":
				return model.SeverityMedium
			case "low":
				return model.SeverityLow
			case "informational", "info":
				return model.SeverityInfo
			}
		}
	}

	level := ""
	if res.Level != nil {
		level = *res.Level
	}
	switch strings.ToLower(level) {
	case "error":
		return model.SeverityHigh
	case "warning":
		return model.SeverityMedium
	default:
		return model.SeverityInfo
	}
}

func confidenceFor(rule *sarif.ReportingDescriptor) float64 {
	if rule == nil || rule.Properties == nil {
		return DefaultConfidenceFloor
	}
	switch conf, _ := rule.Properties["confidence"].(string); strings.ToLower(conf) {
	case "high":
		return 0.9
	case "medium":
		return 0.7
	case "low":
		return 0.4
	default:
		return DefaultConfidenceFloor
	}
}
