package usecase

import (
	"context"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
	"github.com/satishgoda/OpenAssetIO/internal/ports"
)

type DescribePipeline struct {
	pipelines ports.PipelineLoader
}

func NewDescribePipeline(pl ports.PipelineLoader) *DescribePipeline {
	return &DescribePipeline{pipelines: pl}
}

// Execute loads the pipeline at path and returns it composed.
// An empty path selects the built-in sample pipeline.
func (uc *DescribePipeline) Execute(ctx context.Context, path string) (*domain.Pipeline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" || uc.pipelines == nil {
		return SamplePipeline()
	}
	return uc.pipelines.LoadPipeline(path)
}
