package usecase

import "github.com/satishgoda/OpenAssetIO/internal/domain"

type fakePipelineLoader struct {
	p      *domain.Pipeline
	err    error
	loaded []string
}

func (f *fakePipelineLoader) LoadPipeline(path string) (*domain.Pipeline, error) {
	f.loaded = append(f.loaded, path)
	if f.err != nil {
		return nil, f.err
	}
	return f.p, nil
}

func (f *fakePipelineLoader) ListPipelines(string) ([]domain.PipelineRef, error) {
	return nil, nil
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return nil
}
