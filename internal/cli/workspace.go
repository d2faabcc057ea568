package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/infra/fsstore"
	"github.com/aalvaropc/kata/internal/infra/randsource"
	"github.com/aalvaropc/kata/internal/infra/reportstore"
	"github.com/aalvaropc/kata/internal/infra/workspacefinder"
	"github.com/aalvaropc/kata/internal/ports"
)

type workspaceCtx struct {
	// root is empty when no kata.yaml was found; defaults apply.
	root string
	cfg  domain.Config

	files   ports.FileStore
	rnd     ports.RandomSource
	reports ports.ReportStore
}

func (ws *workspaceCtx) found() bool { return ws.root != "" }

// loadWorkspace resolves the workspace from --workspace or the working directory.
// An explicit flag must point at a workspace; autodetection falls back to defaults.
func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig()
	if root != "" {
		cfg, err = workspacefinder.LoadConfig(root)
		if err != nil {
			return nil, err
		}
	}

	ws := &workspaceCtx{
		root:  root,
		cfg:   cfg,
		files: fsstore.New(),
		rnd:   randsource.FromConfig(cfg),
	}
	if root != "" {
		ws.reports = reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(cfg.Reports.Index))
	}
	return ws, nil
}

var locator ports.WorkspaceLocator = workspacefinder.NewFinder()

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", nil
		}
		return "", err
	}
	return root, nil
}
