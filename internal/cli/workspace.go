package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
	"github.com/satishgoda/OpenAssetIO/internal/infra/logger"
	"github.com/satishgoda/OpenAssetIO/internal/infra/workspacefinder"
	"github.com/satishgoda/OpenAssetIO/internal/infra/yamlpipeline"
	"github.com/satishgoda/OpenAssetIO/internal/ports"
	"github.com/satishgoda/OpenAssetIO/internal/usecase"
)

// workspaceCtx is what every command needs from the surrounding workspace.
// Outside a workspace found is false and cfg holds the defaults.
type workspaceCtx struct {
	found bool
	root  string
	cfg   domain.Config

	locator   ports.WorkspaceLocator
	pipelines ports.PipelineLoader
}

// loadWorkspace resolves the workspace from --workspace, or by searching
// upward from the working directory. Only an explicit --workspace must exist.
func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	finder := workspacefinder.NewFinder()
	ws := &workspaceCtx{
		cfg:       domain.DefaultConfig(),
		locator:   finder,
		pipelines: yamlpipeline.NewLoader(),
	}

	root, err := resolveWorkspaceRoot(finder, workspaceFlag)
	if err != nil {
		return nil, err
	}
	if root == "" {
		return ws, nil
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	ws.found = true
	ws.root = root
	ws.cfg = cfg
	ws.pipelines = yamlpipeline.NewLoader(
		yamlpipeline.WithPipelinesDir(cfg.Paths.PipelinesDir),
	)
	return ws, nil
}

func resolveWorkspaceRoot(finder ports.WorkspaceLocator, workspaceFlag string) (string, error) {
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

	root, err := finder.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", nil
		}
		return "", err
	}
	return root, nil
}

// requireWorkspace fails with a hint when no workspace was found.
func (ws *workspaceCtx) requireWorkspace() error {
	if ws.found {
		return nil
	}
	return &domain.OpError{
		Op:   "cli.workspace",
		Kind: domain.KindNotFound,
		Err:  fmt.Errorf("workspace not found (tip: run `traitspec init`): %w", domain.ErrNotFound),
	}
}

// setupLogging writes logs into the workspace. Outside one, logs are discarded.
func (ws *workspaceCtx) setupLogging(debug bool) func() {
	if !ws.found {
		return func() {}
	}
	cleanup, err := logger.Setup(logger.Config{Root: ws.root, Debug: debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

// resolvePipelinePath maps a --file argument to a pipeline path.
// The empty result selects the built-in sample.
//
// Order: existing file path, name in the pipelines dir (file stem or declared
// name), the workspace default pipeline, the built-in sample.
func resolvePipelinePath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)

	if in != "" {
		if p, ok := existingFile(ws, in); ok {
			return p, nil
		}
		if p, ok := lookupPipeline(ws, in); ok {
			return p, nil
		}
		if in == usecase.SampleName {
			return "", nil
		}
		return "", &domain.OpError{
			Op:   "cli.resolvepipeline",
			Kind: domain.KindNotFound,
			Path: in,
			Err:  fmt.Errorf("pipeline %q not found: %w", in, domain.ErrNotFound),
		}
	}

	def := strings.TrimSpace(ws.cfg.Defaults.Pipeline)
	if ws.found && def != "" {
		if p, ok := lookupPipeline(ws, def); ok {
			return p, nil
		}
		if def != usecase.SampleName {
			return "", &domain.OpError{
				Op:   "cli.resolvepipeline",
				Kind: domain.KindNotFound,
				Path: def,
				Err:  fmt.Errorf("default pipeline %q not found: %w", def, domain.ErrNotFound),
			}
		}
	}
	return "", nil
}

func existingFile(ws *workspaceCtx, in string) (string, bool) {
	candidates := []string{in}
	if ws.found && looksLikePath(in) && !filepath.IsAbs(in) {
		candidates = append(candidates, filepath.Join(ws.root, in))
	}
	for _, c := range candidates {
		if fileExists(c) {
			return filepath.Clean(c), true
		}
	}
	return "", false
}

func lookupPipeline(ws *workspaceCtx, name string) (string, bool) {
	if !ws.found || looksLikePath(name) {
		return "", false
	}
	dir := filepath.Join(ws.root, ws.cfg.Paths.PipelinesDir)

	// "hero.yaml" is a file under the pipelines dir.
	if hasYAMLExt(name) {
		p := filepath.Join(dir, name)
		return p, fileExists(p)
	}

	for _, ext := range []string{".yaml", ".yml"} {
		if p := filepath.Join(dir, name+ext); fileExists(p) {
			return p, true
		}
	}

	// Last resort: match the declared "name" field.
	refs, err := ws.pipelines.ListPipelines(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, name) {
				return r.Path, true
			}
		}
	}
	return "", false
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
