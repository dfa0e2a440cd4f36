package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/satishgoda/OpenAssetIO/internal/usecase"
)

const loadTimeout = 10 * time.Second

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceRoot != "" {
			return workspaceRefreshedMsg{found: true, root: deps.WorkspaceRoot}
		}

		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}
		return workspaceRefreshedMsg{cwd: wd, found: true, root: root}
	}
}

func cmdLoadPipeline(deps Deps, path string) tea.Cmd {
	return func() tea.Msg {
		log := deps.logger()

		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		p, err := usecase.NewDescribePipeline(deps.Pipelines).Execute(ctx, path)
		if err != nil {
			log.Error("pipeline.load.failed", "path", path, "err", err)
			return pipelineLoadedMsg{path: path, err: err}
		}

		log.Info("pipeline.loaded",
			"path", path,
			"name", p.Name,
			"specifications", len(p.Specifications()),
		)
		if deps.Debug {
			for _, s := range p.Specifications() {
				log.Debug("pipeline.specification", "stage", s.Stage(), "roles", len(s.Roles()))
			}
		}
		return pipelineLoadedMsg{path: path, pipeline: p}
	}
}

func cmdListPipelines(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.Pipelines == nil {
			return pipelinesListedMsg{root: root, err: errors.New("PipelineLoader is nil")}
		}
		refs, err := deps.Pipelines.ListPipelines(root)
		if err != nil {
			deps.logger().Warn("pipelines.list.failed", "root", root, "err", err)
		}
		return pipelinesListedMsg{root: root, refs: refs, err: err}
	}
}
