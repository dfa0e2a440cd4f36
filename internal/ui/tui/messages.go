package tui

import "github.com/satishgoda/OpenAssetIO/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type pipelineLoadedMsg struct {
	path     string
	pipeline *domain.Pipeline
	err      error
}

type pipelinesListedMsg struct {
	root string
	refs []domain.PipelineRef
	err  error
}
