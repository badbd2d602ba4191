// Package toolchain compiles contract source and normalizes static-analysis
// output into the pipeline's finding model.
package toolchain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	compileTimeout = 2 * time.Minute
	analyzeTimeout = 5 * time.Minute
)

// Artifact is the compiled form of one contract.
type Artifact struct {
	ContractName string
	ABI          string
	Bytecode     string
}

type Adapter struct {
	logger      *zap.Logger
	solcPath    string
	slitherPath string
}

// NewAdapter builds an Adapter around the solc and slither binaries.
func NewAdapter(solcPath, slitherPath string, logger *zap.Logger) (*Adapter, error) {
	if solcPath == "" {
		solcPath = "solc"
	}
	if slitherPath == "" {
		slitherPath = "slither"
	}
	return &Adapter{
		logger:      logger.Named("toolchain"),
		solcPath:    solcPath,
		slitherPath: slitherPath,
	}, nil
}

// Compile runs solc over the contract file and extracts ABI and bytecode for
// the named contract.
func (a *Adapter) Compile(ctx context.Context, sourceDir, contractPath, contractName string) (*Artifact, error) {
	ctx, cancel := context.WithTimeout(ctx, compileTimeout)
	defer cancel()

	file := filepath.Join(sourceDir, contractPath)
	cmd := exec.CommandContext(ctx, a.solcPath, "--combined-json", "abi,bin", file)
	cmd.Dir = sourceDir

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("solc failed: %s: %w", strings.TrimSpace(string(exitErr.Stderr)), err)
		}
		return nil, fmt.Errorf("run solc: %w", err)
	}

	var combined struct {
		Contracts map[string]struct {
			ABI json.RawMessage `json:"abi"`
			Bin string          `json:"bin"`
		} `json:"contracts"`
	}
	if err := json.Unmarshal(out, &combined); err != nil {
		return nil, fmt.Errorf("parse solc output: %w", err)
	}

	// Keys are "<path>:<ContractName>".
	for key, c := range combined.Contracts {
		if strings.HasSuffix(key, ":"+contractName) {
			return &Artifact{
				ContractName: contractName,
				ABI:          string(c.ABI),
				Bytecode:     c.Bin,
			}, nil
		}
	}
	return nil, fmt.Errorf("contract %s not found in solc output", contractName)
}

// ListSourceFiles returns the Solidity files under dir, used to aid diagnosis
// when compilation fails.
func ListSourceFiles(dir string) []string {
	var files []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(path, ".sol") {
			rel, relErr := filepath.Rel(dir, path)
			if relErr == nil {
				files = append(files, rel)
			}
		}
		return nil
	})
	return files
}
