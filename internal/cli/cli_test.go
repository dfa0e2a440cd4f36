package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
	"github.com/satishgoda/OpenAssetIO/internal/infra/fsworkspace"
)

const sampleReport = `Model Specification: {'vertices': 1000, 'edges': 2000, 'faces': 500}
Shading Specification: {'shader_type': 'PBR', 'parameters': {'roughness': 0.5, 'metallic': 0.2}}
Rigging Specification: {'bones': ['spine', 'arm', 'leg'], 'constraints': {'arm': 'IK', 'leg': 'IK'}}
Animation Specification: {'keyframes': [{'frame': 1, 'pose': 'A'}, {'frame': 24, 'pose': 'B'}], 'duration': 1.0}
Texturing Specification: {'texture_maps': {'diffuse': 'textures/diffuse.png', 'normal': 'textures/normal.png'}}
Final Assembly Specification: {'components': ['Model', 'Shader', 'Rig', 'Animation', 'Texture']}
`

const heroPipeline = `name: Hero Prop
traits:
  geometry: {vertices: 12, edges: 18, faces: 8}
  shader:
    shader_type: Unlit
    parameters:
      emission: 2
specifications: [model, shading]
`

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// chdir moves into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

// newWorkspace scaffolds a workspace and adds pipelines/hero.yaml.
func newWorkspace(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	if err := fsworkspace.NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("init workspace: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "pipelines", "hero.yaml"), []byte(heroPipeline), 0o644); err != nil {
		t.Fatalf("write hero.yaml: %v", err)
	}
	return root
}

// --- root / print ---

func TestRoot_NoArgsOutsideWorkspacePrintsSample(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := runCLI(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != sampleReport {
		t.Fatalf("report mismatch\n--- got ---\n%s--- want ---\n%s", out, sampleReport)
	}
}

func TestRoot_InsideFreshWorkspacePrintsSample(t *testing.T) {
	root := newWorkspace(t)
	chdir(t, filepath.Join(root, "pipelines"))

	out, err := runCLI(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != sampleReport {
		t.Fatalf("report mismatch\n--- got ---\n%s--- want ---\n%s", out, sampleReport)
	}
	if _, err := os.Stat(filepath.Join(root, ".traitspec", "logs", "traitspec.log")); err != nil {
		t.Fatalf("expected workspace log file: %v", err)
	}
}

func TestPrint_ByNameAndDeclaredName(t *testing.T) {
	root := newWorkspace(t)
	want := "Model Specification: {'vertices': 12, 'edges': 18, 'faces': 8}\n" +
		"Shading Specification: {'shader_type': 'Unlit', 'parameters': {'emission': 2.0}}\n"

	for _, f := range []string{"hero", "hero.yaml", "Hero Prop", filepath.Join(root, "pipelines", "hero.yaml")} {
		out, err := runCLI(t, "print", "-w", root, "-f", f)
		if err != nil {
			t.Fatalf("print -f %q: unexpected error: %v", f, err)
		}
		if out != want {
			t.Fatalf("print -f %q:\n--- got ---\n%s--- want ---\n%s", f, out, want)
		}
	}
}

func TestPrint_JSONFormat(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := runCLI(t, "print", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc map[string]map[string]map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if got := doc["rigging"]["geometry"]["vertices"]; got != float64(1000) {
		t.Fatalf("unexpected rigging.geometry.vertices %v", got)
	}
	if strings.Index(out, `"model"`) > strings.Index(out, `"final_assembly"`) {
		t.Fatalf("expected stage order preserved:\n%s", out)
	}
}

func TestPrint_WorkspaceDefaultFormat(t *testing.T) {
	root := newWorkspace(t)
	cfg := "traitspec:\n  defaults:\n    pipeline: hero\n    format: yaml\n"
	if err := os.WriteFile(filepath.Join(root, "traitspec.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runCLI(t, "-w", root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "model:\n  geometry:\n    vertices: 12\n") {
		t.Fatalf("expected YAML for hero, got:\n%s", out)
	}
}

func TestPrint_UnknownFormat(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := runCLI(t, "print", "--format", "xml")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), `"xml"`) {
		t.Fatalf("expected error to name the format, got %v", err)
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestPrint_UnknownPipeline(t *testing.T) {
	root := newWorkspace(t)

	_, err := runCLI(t, "print", "-w", root, "-f", "villain")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestPrint_MissingTrait(t *testing.T) {
	root := newWorkspace(t)
	broken := "name: broken\ntraits:\n  shader: {shader_type: PBR}\nspecifications: [rigging]\n"
	if err := os.WriteFile(filepath.Join(root, "pipelines", "broken.yaml"), []byte(broken), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := runCLI(t, "print", "-w", root, "-f", "broken")
	if !domain.IsKind(err, domain.KindMissingTrait) {
		t.Fatalf("expected KindMissingTrait, got %v", err)
	}
}

// --- other commands ---

func TestValidate(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := runCLI(t, "validate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "OK sample (6 specification(s), 6 trait(s))\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestQuery(t *testing.T) {
	chdir(t, t.TempDir())

	cases := []struct {
		expr string
		want string
	}{
		{"$.rigging.rigging.bones[0]", "\"spine\"\n"},
		{"$.shading.shader.parameters.metallic", "0.2\n"},
		{"$.final_assembly.assembly.components", "[\n  \"Model\",\n  \"Shader\",\n  \"Rig\",\n  \"Animation\",\n  \"Texture\"\n]\n"},
	}
	for _, c := range cases {
		out, err := runCLI(t, "query", c.expr)
		if err != nil {
			t.Fatalf("query %q: unexpected error: %v", c.expr, err)
		}
		if out != c.want {
			t.Errorf("query %q = %q, want %q", c.expr, out, c.want)
		}
	}

	if _, err := runCLI(t, "query"); err == nil {
		t.Fatalf("expected error without an expression")
	}
}

func TestStages(t *testing.T) {
	out, err := runCLI(t, "stages")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 stages, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "- model ") || !strings.HasSuffix(lines[0], "requires: geometry") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.HasSuffix(lines[3], "requires: rigging, animation") {
		t.Fatalf("unexpected animation line %q", lines[3])
	}
}

func TestPipelinesList(t *testing.T) {
	root := newWorkspace(t)

	out, err := runCLI(t, "pipelines", "list", "-w", root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Workspace: " + root + "\n\n" +
		"- Hero Prop  (pipelines/hero.yaml)\n" +
		"- sample  (pipelines/sample.yaml)\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestPipelinesList_RequiresWorkspace(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := runCLI(t, "pipelines", "list")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "show")

	out, err := runCLI(t, "init", "--path", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Initialized traitspec workspace at "+dir) {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = runCLI(t, "-w", dir)
	if err != nil {
		t.Fatalf("print after init: %v", err)
	}
	if out != sampleReport {
		t.Fatalf("report mismatch after init\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "traitspec ") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"print", "validate", "query", "stages", "pipelines", "browse", "init", "version"} {
		if c, _, err := cmd.Find([]string{name}); err != nil || c.Name() != name {
			t.Errorf("expected command %q registered (err=%v)", name, err)
		}
	}
	for _, flag := range []string{"workspace", "debug"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent flag --%s", flag)
		}
	}
}

// --- helpers ---

func TestLooksLikePath(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"hero", false},
		{"hero.yaml", false},
		{"./hero.yaml", true},
		{"pipelines/hero.yaml", true},
		{"/abs/path/hero.yaml", true},
	}
	for _, c := range cases {
		if got := looksLikePath(c.input); got != c.want {
			t.Errorf("looksLikePath(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestHasYAMLExt(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"hero.yaml", true},
		{"hero.yml", true},
		{"HERO.YAML", true},
		{"hero.json", false},
		{"hero", false},
		{"", false},
	}
	for _, c := range cases {
		if got := hasYAMLExt(c.input); got != c.want {
			t.Errorf("hasYAMLExt(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestFileExists(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "exists.yaml")
	if err := os.WriteFile(p, []byte("name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !fileExists(p) {
		t.Errorf("expected fileExists=true for %s", p)
	}
	if fileExists(filepath.Join(tmp, "not_there.yaml")) {
		t.Error("expected fileExists=false for non-existent file")
	}
	if fileExists(tmp) {
		t.Error("expected fileExists=false for a directory")
	}
}

func TestResolvePipelinePath_DefaultsToSampleOutsideWorkspace(t *testing.T) {
	ws := &workspaceCtx{cfg: domain.DefaultConfig()}
	got, err := resolvePipelinePath(ws, "")
	if err != nil || got != "" {
		t.Fatalf("expected built-in sample, got %q err=%v", got, err)
	}
	got, err = resolvePipelinePath(ws, "sample")
	if err != nil || got != "" {
		t.Fatalf("expected built-in sample by name, got %q err=%v", got, err)
	}
}
