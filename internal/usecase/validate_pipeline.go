package usecase

import (
	"context"
	"fmt"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
	"github.com/satishgoda/OpenAssetIO/internal/ports"
)

// ValidationReport summarizes a composed pipeline.
// Warnings are informational: trait values are unconstrained, so nothing here
// fails validation.
type ValidationReport struct {
	Name           string
	Specifications int
	Traits         int
	Warnings       []string
}

type ValidatePipeline struct {
	describe *DescribePipeline
}

func NewValidatePipeline(pl ports.PipelineLoader) *ValidatePipeline {
	return &ValidatePipeline{describe: NewDescribePipeline(pl)}
}

// Execute loads and composes the pipeline, then inspects trait values.
func (uc *ValidatePipeline) Execute(ctx context.Context, path string) (ValidationReport, error) {
	p, err := uc.describe.Execute(ctx, path)
	if err != nil {
		return ValidationReport{}, err
	}
	if err := ctx.Err(); err != nil {
		return ValidationReport{}, err
	}

	rep := ValidationReport{
		Name:           p.Name,
		Specifications: len(p.Specifications()),
		Traits:         len(p.Traits.Present()),
	}
	if rep.Specifications == 0 {
		rep.Warnings = append(rep.Warnings, "no specifications composed")
	}
	rep.Warnings = append(rep.Warnings, inspectTraits(p.Traits)...)
	return rep, nil
}

func inspectTraits(ts domain.TraitSet) []string {
	var out []string

	if g := ts.Geometry; g != nil {
		if g.Vertices < 0 || g.Edges < 0 || g.Faces < 0 {
			out = append(out, fmt.Sprintf("geometry: negative count (vertices=%d edges=%d faces=%d)", g.Vertices, g.Edges, g.Faces))
		}
	}
	if s := ts.Shader; s != nil && s.ShaderType == "" {
		out = append(out, "shader: empty shader_type")
	}
	if r := ts.Rigging; r != nil {
		if len(r.Bones) == 0 {
			out = append(out, "rigging: no bones")
		}
		known := map[string]bool{}
		for _, b := range r.Bones {
			known[b] = true
		}
		for _, k := range r.Constraints.Keys() {
			if !known[k] {
				out = append(out, fmt.Sprintf("rigging: constraint on unknown bone %q", k))
			}
		}
	}
	if a := ts.Animation; a != nil {
		if a.Duration < 0 {
			out = append(out, fmt.Sprintf("animation: negative duration %v", a.Duration))
		}
		for i := 1; i < len(a.Keyframes); i++ {
			if a.Keyframes[i].Frame < a.Keyframes[i-1].Frame {
				out = append(out, fmt.Sprintf("animation: keyframes[%d] (frame %d) is before the previous keyframe", i, a.Keyframes[i].Frame))
			}
		}
	}
	if t := ts.Texture; t != nil && t.TextureMaps.Len() == 0 {
		out = append(out, "texture: no texture maps")
	}
	if a := ts.Assembly; a != nil && len(a.Components) == 0 {
		out = append(out, "assembly: no components")
	}

	return out
}
