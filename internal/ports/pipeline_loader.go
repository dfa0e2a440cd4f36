package ports

import "github.com/satishgoda/OpenAssetIO/internal/domain"

// PipelineLoader loads pipeline definitions from a source (e.g., filesystem)
// and composes their specifications.
type PipelineLoader interface {
	LoadPipeline(path string) (*domain.Pipeline, error)
	ListPipelines(root string) ([]domain.PipelineRef, error)
}
