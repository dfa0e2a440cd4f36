package yamlpipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
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

func TestLoadPipeline_SampleReport(t *testing.T) {
	p, err := NewLoader().LoadPipeline(filepath.Join("testdata", "sample.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "sample" {
		t.Fatalf("expected name sample, got %q", p.Name)
	}

	var buf bytes.Buffer
	if err := reprfmt.Report(&buf, p); err != nil {
		t.Fatalf("report: %v", err)
	}
	if buf.String() != sampleReport {
		t.Fatalf("report mismatch:\n%s", buf.String())
	}
}

func TestLoadPipeline_SharesTraitsAcrossSpecifications(t *testing.T) {
	p, err := NewLoader().LoadPipeline(filepath.Join("testdata", "sample.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Model.Geometry != p.Rigging.Geometry || p.Rigging.Geometry != p.Texturing.Geometry {
		t.Fatalf("expected one shared geometry trait")
	}
}

func TestLoadPipeline_KeepsDocumentOrder(t *testing.T) {
	p, err := NewLoader().LoadPipeline(filepath.Join("testdata", "ordered.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := p.Shading.Shader.Parameters.Keys(); !reflect.DeepEqual(got, []string{"specular", "ambient", "diffuse"}) {
		t.Fatalf("unexpected parameter order %v", got)
	}
	if v, _ := p.Shading.Shader.Parameters.Get("diffuse"); v != 1 {
		t.Fatalf("expected integer literal decoded as float 1, got %v", v)
	}
	if got := p.Texturing.Texture.TextureMaps.Keys(); !reflect.DeepEqual(got, []string{"roughness", "albedo"}) {
		t.Fatalf("unexpected texture map order %v", got)
	}

	var buf bytes.Buffer
	if err := reprfmt.Report(&buf, p); err != nil {
		t.Fatalf("report: %v", err)
	}
	want := "Shading Specification: {'shader_type': 'Phong', 'parameters': {'specular': 0.9, 'ambient': 0.1, 'diffuse': 1.0}}\n" +
		"Texturing Specification: {'texture_maps': {'roughness': 'maps/r.exr', 'albedo': 'maps/a.exr'}}\n"
	if buf.String() != want {
		t.Fatalf("report mismatch\n--- got ---\n%s--- want ---\n%s", buf.String(), want)
	}
}

func TestLoadPipeline_DeclaredNameAndStageOrder(t *testing.T) {
	p, err := NewLoader().LoadPipeline(filepath.Join("testdata", "ordered.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Ordered Hero" {
		t.Fatalf("expected declared name, got %q", p.Name)
	}
	stages := []domain.Stage{}
	for _, s := range p.Specifications() {
		stages = append(stages, s.Stage())
	}
	if !reflect.DeepEqual(stages, []domain.Stage{domain.StageShading, domain.StageTexturing}) {
		t.Fatalf("expected declaration order, got %v", stages)
	}
	if p.Model != nil || p.Rigging != nil {
		t.Fatalf("expected unrequested stages to stay nil")
	}
	if p.Texturing.Geometry != p.Traits.Geometry {
		t.Fatalf("expected texturing to reference the loaded geometry")
	}
}

func TestLoadPipeline_RiggingWithoutGeometryFails(t *testing.T) {
	_, err := NewLoader().LoadPipeline(filepath.Join("testdata", "missing_trait.yaml"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindMissingTrait) {
		t.Fatalf("expected KindMissingTrait, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing_trait.yaml") {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoadPipeline_UnknownStage(t *testing.T) {
	path := filepath.Join("testdata", "unknown_stage.yaml")
	_, err := NewLoader().LoadPipeline(path)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), "specifications[1]") {
		t.Fatalf("expected field in error, got %v", err)
	}
}

func TestLoadPipeline_InvalidMapping(t *testing.T) {
	_, err := NewLoader().LoadPipeline(filepath.Join("testdata", "invalid.yaml"))
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), "expected a mapping") {
		t.Fatalf("expected mapping error, got %v", err)
	}
}

func TestLoadPipeline_NotFound(t *testing.T) {
	_, err := NewLoader().LoadPipeline(filepath.Join(t.TempDir(), "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestLoadPipeline_NameDefaultsToFileStem(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "prop.yaml")
	content := []byte("traits:\n  assembly:\n    components: []\nspecifications: [final_assembly]\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p, err := NewLoader().LoadPipeline(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "prop" {
		t.Fatalf("expected name prop, got %q", p.Name)
	}
	line, _ := reprfmt.Record(p.FinalAssembly.Assembly.Fields())
	if line != "{'components': []}" {
		t.Fatalf("expected empty components, got %s", line)
	}
}

func TestListPipelines(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "assets")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files := map[string]string{
		"b.yaml":      "name: Zebra\n",
		"a.yml":       "traits: {}\n",
		"notes.txt":   "ignored",
		"broken.yaml": "name: [\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	refs, err := NewLoader(WithPipelinesDir("assets")).ListPipelines(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, r := range refs {
		names = append(names, r.Name)
	}
	if !reflect.DeepEqual(names, []string{"Zebra", "a", "broken"}) {
		t.Fatalf("unexpected refs %v", names)
	}
}

func TestListPipelines_MissingDir(t *testing.T) {
	_, err := NewLoader().ListPipelines(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
