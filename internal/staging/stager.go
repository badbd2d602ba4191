// Package staging clones protocol repositories into sandboxed filesystem
// paths with strict URL allow-listing and guaranteed cleanup.
package staging

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/zap"
)

const (
	cloneTimeout = 3 * time.Minute

	// Extra history fetched when a specific commit is requested. Keeps the
	// fetch bounded instead of pulling full history.
	commitFetchDepth = 50
)

// ErrDisallowedURL is returned for clone URLs outside the allow-list.
var ErrDisallowedURL = errors.New("repository url not allowed")

type Stager struct {
	logger  *zap.Logger
	baseDir string
	timeout time.Duration
}

// NewStager builds a Stager rooted at baseDir.
func NewStager(baseDir string, logger *zap.Logger) (*Stager, error) {
	if baseDir == "" {
		return nil, errors.New("staging base dir is required")
	}
	return &Stager{
		logger:  logger.Named("stager"),
		baseDir: baseDir,
		timeout: cloneTimeout,
	}, nil
}

// ValidateURL enforces the clone allow-list: https scheme, github.com host,
// and an owner/repo path. The URL is validated before any git invocation so
// nothing shell-reachable ever sees an arbitrary string.
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse repository url: %w", err)
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q", ErrDisallowedURL, parsed.Scheme)
	}
	if parsed.Host != "github.com" {
		return fmt.Errorf("%w: host %q", ErrDisallowedURL, parsed.Host)
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return fmt.Errorf("%w: path %q", ErrDisallowedURL, parsed.Path)
	}
	return nil
}

// Dir returns the staging path for one scan, namespaced by protocol and scan
// id so concurrent scans never collide.
func (s *Stager) Dir(protocolID, scanID string) string {
	return filepath.Join(s.baseDir, protocolID, scanID)
}

// Stage clones the repository for one scan and returns the checkout path.
// The target directory is force-removed first; a leftover tree from a crashed
// scan must never leak into a new one.
func (s *Stager) Stage(ctx context.Context, repoURL, branch, commitHash, protocolID, scanID string) (string, error) {
	if err := ValidateURL(repoURL); err != nil {
		return "", err
	}

	dir := s.Dir(protocolID, scanID)
	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("clean staging dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create staging dir: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := &git.CloneOptions{
		URL:           repoURL,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
		SingleBranch:  true,
		Depth:         1,
	}
	if commitHash != "" {
		// A pinned commit may sit behind the branch tip; fetch bounded
		// extra history so the checkout can find it.
		opts.Depth = commitFetchDepth
	}

	s.logger.Info("cloning repository",
		zap.String("url", repoURL),
		zap.String("branch", branch),
		zap.String("dir", dir),
	)

	repo, err := git.PlainCloneContext(ctx, dir, false, opts)
	if err != nil {
		_ = os.RemoveAll(dir)
		return "", fmt.Errorf("clone repository: %w", err)
	}

	if commitHash != "" {
		if err := checkoutCommit(repo, commitHash); err != nil {
			_ = os.RemoveAll(dir)
			return "", err
		}
	}

	return dir, nil
}

// Cleanup force-removes the staging directory for one scan. Called on both
// success and failure paths.
func (s *Stager) Cleanup(protocolID, scanID string) error {
	dir := s.Dir(protocolID, scanID)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove staging dir: %w", err)
	}
	return nil
}

func checkoutCommit(repo *git.Repository, commitHash string) error {
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}
	if err := wt.Checkout(&git.CheckoutOptions{
		Hash:  plumbing.NewHash(commitHash),
		Force: true,
	}); err != nil {
		return fmt.Errorf("checkout commit %s: %w", commitHash, err)
	}
	return nil
}
