package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
	"github.com/satishgoda/OpenAssetIO/internal/infra/reprfmt"
)

const sampleReport = `Model Specification: {'vertices': 1000, 'edges': 2000, 'faces': 500}
Shading Specification: {'shader_type': 'PBR', 'parameters': {'roughness': 0.5, 'metallic': 0.2}}
Rigging Specification: {'bones': ['spine', 'arm', 'leg'], 'constraints': {'arm': 'IK', 'leg': 'IK'}}
Animation Specification: {'keyframes': [{'frame': 1, 'pose': 'A'}, {'frame': 24, 'pose': 'B'}], 'duration': 1.0}
Texturing Specification: {'texture_maps': {'diffuse': 'textures/diffuse.png', 'normal': 'textures/normal.png'}}
Final Assembly Specification: {'components': ['Model', 'Shader', 'Rig', 'Animation', 'Texture']}
`

func TestSamplePipeline_Report(t *testing.T) {
	p, err := SamplePipeline()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := reprfmt.Report(&buf, p); err != nil {
		t.Fatalf("report: %v", err)
	}
	if buf.String() != sampleReport {
		t.Fatalf("report mismatch\n--- got ---\n%s--- want ---\n%s", buf.String(), sampleReport)
	}
}

func TestSamplePipeline_IdentityPreservingComposition(t *testing.T) {
	p, err := SamplePipeline()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Model.Geometry != p.Rigging.Geometry {
		t.Fatalf("expected model and rigging to share geometry")
	}

	p.Model.Geometry.Edges = 1
	if p.Rigging.Geometry.Edges != 1 || p.Texturing.Geometry.Edges != 1 {
		t.Fatalf("expected geometry mutation to be visible through every specification")
	}
}

func TestDescribePipeline_EmptyPathUsesSample(t *testing.T) {
	loader := &fakePipelineLoader{}
	p, err := NewDescribePipeline(loader).Execute(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != SampleName {
		t.Fatalf("expected sample pipeline, got %q", p.Name)
	}
	if len(loader.loaded) != 0 {
		t.Fatalf("expected loader not to be called, got %v", loader.loaded)
	}
}

func TestDescribePipeline_UsesLoader(t *testing.T) {
	want := &domain.Pipeline{Name: "hero"}
	loader := &fakePipelineLoader{p: want}

	got, err := NewDescribePipeline(loader).Execute(context.Background(), "pipelines/hero.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected loader pipeline")
	}
	if len(loader.loaded) != 1 || loader.loaded[0] != "pipelines/hero.yaml" {
		t.Fatalf("unexpected loader calls %v", loader.loaded)
	}
}

func TestDescribePipeline_LoaderError(t *testing.T) {
	loadErr := errors.New("boom")
	_, err := NewDescribePipeline(&fakePipelineLoader{err: loadErr}).Execute(context.Background(), "x.yaml")
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected loadErr, got %v", err)
	}
}

func TestDescribePipeline_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDescribePipeline(&fakePipelineLoader{}).Execute(ctx, "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestInitWorkspace_DelegatesToInitializer(t *testing.T) {
	fi := &fakeInitializer{}
	if err := NewInitWorkspace(fi).Execute("/tmp/ws", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fi.spec.Root != "/tmp/ws" || !fi.force {
		t.Fatalf("unexpected initializer call %+v force=%v", fi.spec, fi.force)
	}
}
