package usecase

import "github.com/satishgoda/OpenAssetIO/internal/domain"

// SampleName is the name of the built-in pipeline.
const SampleName = "sample"

// SamplePipeline builds one trait of each kind from literal sample data and
// composes every specification from them.
func SamplePipeline() (*domain.Pipeline, error) {
	geometry := domain.NewGeometryTrait(1000, 2000, 500)
	shader := domain.NewShaderTrait(domain.ShaderPBR, domain.NewOrderedMap(
		domain.Entry[float64]{Key: "roughness", Value: 0.5},
		domain.Entry[float64]{Key: "metallic", Value: 0.2},
	))
	rigging := domain.NewRiggingTrait(
		[]string{"spine", "arm", "leg"},
		domain.NewOrderedMap(
			domain.Entry[string]{Key: "arm", Value: "IK"},
			domain.Entry[string]{Key: "leg", Value: "IK"},
		),
	)
	animation := domain.NewAnimationTrait(
		[]domain.Keyframe{{Frame: 1, Pose: "A"}, {Frame: 24, Pose: "B"}},
		1.0,
	)
	texture := domain.NewTextureTrait(domain.NewOrderedMap(
		domain.Entry[string]{Key: "diffuse", Value: "textures/diffuse.png"},
		domain.Entry[string]{Key: "normal", Value: "textures/normal.png"},
	))
	assembly := domain.NewAssemblyTrait([]string{"Model", "Shader", "Rig", "Animation", "Texture"})

	return domain.Compose(SampleName, domain.TraitSet{
		Geometry:  geometry,
		Shader:    shader,
		Rigging:   rigging,
		Animation: animation,
		Texture:   texture,
		Assembly:  assembly,
	})
}
