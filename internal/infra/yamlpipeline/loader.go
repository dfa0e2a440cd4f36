package yamlpipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
	"github.com/satishgoda/OpenAssetIO/internal/ports"
)

type Loader struct {
	pipelinesDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{pipelinesDir: "pipelines"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithPipelinesDir(dir string) Option {
	return func(l *Loader) { l.pipelinesDir = dir }
}

var _ ports.PipelineLoader = (*Loader)(nil)

// LoadPipeline reads a pipeline definition and composes its specifications.
func (l *Loader) LoadPipeline(path string) (*domain.Pipeline, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlpipeline.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yp yamlPipeline
	if err := yaml.Unmarshal(b, &yp); err != nil {
		return nil, &domain.OpError{
			Op:   "yamlpipeline.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapAndCompose(path, yp)
}

func (l *Loader) ListPipelines(root string) ([]domain.PipelineRef, error) {
	dir := filepath.Join(root, l.pipelinesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlpipeline.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.PipelineRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readPipelineName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.PipelineRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readPipelineName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

func mapAndCompose(path string, yp yamlPipeline) (*domain.Pipeline, error) {
	name := strings.TrimSpace(yp.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	ts := mapTraits(yp.Traits)

	stages := make([]domain.Stage, 0, len(yp.Specifications))
	for i, s := range yp.Specifications {
		st, err := domain.ParseStage(s)
		if err != nil {
			return nil, invalidField(path, fmt.Sprintf("specifications[%d]", i), err.Error())
		}
		stages = append(stages, st)
	}

	p, err := domain.Compose(name, ts, stages...)
	if err != nil {
		var oe *domain.OpError
		kind := domain.KindExecution
		if errors.As(err, &oe) {
			kind = oe.Kind
		}
		return nil, &domain.OpError{
			Op:   "yamlpipeline.compose",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return p, nil
}

func mapTraits(yt yamlTraits) domain.TraitSet {
	var ts domain.TraitSet

	if g := yt.Geometry; g != nil {
		ts.Geometry = domain.NewGeometryTrait(g.Vertices, g.Edges, g.Faces)
	}
	if s := yt.Shader; s != nil {
		ts.Shader = domain.NewShaderTrait(domain.ShaderKind(s.ShaderType), domain.NewOrderedMap[float64](s.Parameters...))
	}
	if r := yt.Rigging; r != nil {
		bones := r.Bones
		if bones == nil {
			bones = []string{}
		}
		ts.Rigging = domain.NewRiggingTrait(bones, domain.NewOrderedMap[string](r.Constraints...))
	}
	if a := yt.Animation; a != nil {
		frames := make([]domain.Keyframe, 0, len(a.Keyframes))
		for _, k := range a.Keyframes {
			frames = append(frames, domain.Keyframe{Frame: k.Frame, Pose: k.Pose})
		}
		ts.Animation = domain.NewAnimationTrait(frames, a.Duration)
	}
	if t := yt.Texture; t != nil {
		ts.Texture = domain.NewTextureTrait(domain.NewOrderedMap[string](t.TextureMaps...))
	}
	if a := yt.Assembly; a != nil {
		components := a.Components
		if components == nil {
			components = []string{}
		}
		ts.Assembly = domain.NewAssemblyTrait(components)
	}

	return ts
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlpipeline.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
