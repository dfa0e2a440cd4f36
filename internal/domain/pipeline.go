package domain

import (
	"fmt"
	"strings"
)

// Stage is a pipeline stage, each described by one specification.
type Stage string

const (
	StageModel         Stage = "model"
	StageShading       Stage = "shading"
	StageRigging       Stage = "rigging"
	StageAnimation     Stage = "animation"
	StageTexturing     Stage = "texturing"
	StageFinalAssembly Stage = "final_assembly"
)

// StageInfo describes a stage and the traits its specification requires.
type StageInfo struct {
	Stage    Stage
	Title    string
	Requires []TraitKind
}

var stageTable = []StageInfo{
	{Stage: StageModel, Title: "Model Specification", Requires: []TraitKind{TraitGeometry}},
	{Stage: StageShading, Title: "Shading Specification", Requires: []TraitKind{TraitShader}},
	{Stage: StageRigging, Title: "Rigging Specification", Requires: []TraitKind{TraitGeometry, TraitRigging}},
	{Stage: StageAnimation, Title: "Animation Specification", Requires: []TraitKind{TraitRigging, TraitAnimation}},
	{Stage: StageTexturing, Title: "Texturing Specification", Requires: []TraitKind{TraitGeometry, TraitTexture}},
	{Stage: StageFinalAssembly, Title: "Final Assembly Specification", Requires: []TraitKind{TraitAssembly}},
}

// Stages returns every stage in declaration order.
func Stages() []StageInfo {
	out := make([]StageInfo, len(stageTable))
	for i, s := range stageTable {
		s.Requires = append([]TraitKind(nil), s.Requires...)
		out[i] = s
	}
	return out
}

func (s Stage) info() (StageInfo, bool) {
	for _, si := range stageTable {
		if si.Stage == s {
			return si, true
		}
	}
	return StageInfo{}, false
}

// Title returns the report heading of the stage (e.g. "Model Specification").
func (s Stage) Title() string {
	if si, ok := s.info(); ok {
		return si.Title
	}
	return string(s)
}

// ParseStage accepts a stage name, case-insensitive; "-" and " " are read as "_".
func ParseStage(name string) (Stage, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "_", " ", "_").Replace(n)
	if _, ok := Stage(n).info(); ok {
		return Stage(n), nil
	}
	return "", fmt.Errorf("unknown stage %q", name)
}

// TraitSet holds at most one trait of each kind. Nil fields are absent traits.
type TraitSet struct {
	Geometry  *GeometryTrait
	Shader    *ShaderTrait
	Rigging   *RiggingTrait
	Animation *AnimationTrait
	Texture   *TextureTrait
	Assembly  *AssemblyTrait
}

// Lookup returns the trait of the given kind, if present.
func (ts TraitSet) Lookup(kind TraitKind) (Trait, bool) {
	switch kind {
	case TraitGeometry:
		if ts.Geometry != nil {
			return ts.Geometry, true
		}
	case TraitShader:
		if ts.Shader != nil {
			return ts.Shader, true
		}
	case TraitRigging:
		if ts.Rigging != nil {
			return ts.Rigging, true
		}
	case TraitAnimation:
		if ts.Animation != nil {
			return ts.Animation, true
		}
	case TraitTexture:
		if ts.Texture != nil {
			return ts.Texture, true
		}
	case TraitAssembly:
		if ts.Assembly != nil {
			return ts.Assembly, true
		}
	}
	return nil, false
}

// Present returns the traits that are set, in declaration order.
func (ts TraitSet) Present() []Trait {
	var out []Trait
	for _, k := range TraitKinds() {
		if t, ok := ts.Lookup(k); ok {
			out = append(out, t)
		}
	}
	return out
}

// Pipeline is the set of specifications composed from one TraitSet.
// Unrequested stages are nil.
type Pipeline struct {
	Name   string
	Traits TraitSet

	Model         *ModelSpecification
	Shading       *ShadingSpecification
	Rigging       *RiggingSpecification
	Animation     *AnimationSpecification
	Texturing     *TexturingSpecification
	FinalAssembly *FinalAssemblySpecification
}

// Specifications returns the composed specifications in declaration order.
func (p *Pipeline) Specifications() []Specification {
	if p == nil {
		return nil
	}
	var out []Specification
	if p.Model != nil {
		out = append(out, p.Model)
	}
	if p.Shading != nil {
		out = append(out, p.Shading)
	}
	if p.Rigging != nil {
		out = append(out, p.Rigging)
	}
	if p.Animation != nil {
		out = append(out, p.Animation)
	}
	if p.Texturing != nil {
		out = append(out, p.Texturing)
	}
	if p.FinalAssembly != nil {
		out = append(out, p.FinalAssembly)
	}
	return out
}

// Specification returns the specification for stage, if composed.
func (p *Pipeline) Specification(stage Stage) (Specification, bool) {
	for _, s := range p.Specifications() {
		if s.Stage() == stage {
			return s, true
		}
	}
	return nil, false
}

// Compose builds a pipeline holding one specification per requested stage.
// With no stages, every stage is composed. Each specification receives the
// trait pointers from ts, so traits are shared rather than copied.
//
// A stage whose required trait is absent fails with KindMissingTrait.
func Compose(name string, ts TraitSet, stages ...Stage) (*Pipeline, error) {
	if len(stages) == 0 {
		for _, si := range stageTable {
			stages = append(stages, si.Stage)
		}
	}

	p := &Pipeline{Name: name, Traits: ts}
	for _, st := range stages {
		si, ok := st.info()
		if !ok {
			return nil, &OpError{
				Op:   "pipeline.compose",
				Kind: KindInvalidConfig,
				Err:  fmt.Errorf("unknown stage %q: %w", st, ErrInvalidConfig),
			}
		}
		for _, k := range si.Requires {
			if _, ok := ts.Lookup(k); !ok {
				return nil, &OpError{
					Op:   "pipeline.compose",
					Kind: KindMissingTrait,
					Err:  fmt.Errorf("%s requires trait %s: %w", si.Title, k, ErrMissingTrait),
				}
			}
		}

		switch st {
		case StageModel:
			p.Model = NewModelSpecification(ts.Geometry)
		case StageShading:
			p.Shading = NewShadingSpecification(ts.Shader)
		case StageRigging:
			p.Rigging = NewRiggingSpecification(ts.Geometry, ts.Rigging)
		case StageAnimation:
			p.Animation = NewAnimationSpecification(ts.Rigging, ts.Animation)
		case StageTexturing:
			p.Texturing = NewTexturingSpecification(ts.Geometry, ts.Texture)
		case StageFinalAssembly:
			p.FinalAssembly = NewFinalAssemblySpecification(ts.Assembly)
		}
	}
	return p, nil
}
