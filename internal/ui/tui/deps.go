package tui

import (
	"log/slog"

	"github.com/satishgoda/OpenAssetIO/internal/ports"
)

type Deps struct {
	WorkspaceLocator ports.WorkspaceLocator
	Pipelines        ports.PipelineLoader

	// WorkspaceRoot is the workspace the caller already resolved. When empty,
	// the workspace is searched upward from the working directory.
	WorkspaceRoot string

	// PipelinePath is opened on start; empty means the built-in sample.
	PipelinePath string

	Logger *slog.Logger
	Debug  bool
}
