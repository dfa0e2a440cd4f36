package domain

// Role names a trait held by a specification.
type Role struct {
	Name  string
	Trait Trait
}

// Specification is a composition of traits describing the inputs of one
// pipeline stage. Specifications hold trait pointers, never copies: a trait
// shared by several specifications is the same value in all of them.
type Specification interface {
	Stage() Stage
	Title() string
	// Roles returns the held traits in constructor order.
	Roles() []Role
	// Primary is the trait that reports print for this stage.
	Primary() Trait
}

// ModelSpecification is the specification for a 3D model.
type ModelSpecification struct {
	Geometry *GeometryTrait
}

func NewModelSpecification(geometry *GeometryTrait) *ModelSpecification {
	return &ModelSpecification{Geometry: geometry}
}

func (s *ModelSpecification) Stage() Stage   { return StageModel }
func (s *ModelSpecification) Title() string  { return StageModel.Title() }
func (s *ModelSpecification) Primary() Trait { return s.Geometry }
func (s *ModelSpecification) Roles() []Role {
	return []Role{{Name: "geometry", Trait: s.Geometry}}
}

// ShadingSpecification is the specification for shading.
type ShadingSpecification struct {
	Shader *ShaderTrait
}

func NewShadingSpecification(shader *ShaderTrait) *ShadingSpecification {
	return &ShadingSpecification{Shader: shader}
}

func (s *ShadingSpecification) Stage() Stage   { return StageShading }
func (s *ShadingSpecification) Title() string  { return StageShading.Title() }
func (s *ShadingSpecification) Primary() Trait { return s.Shader }
func (s *ShadingSpecification) Roles() []Role {
	return []Role{{Name: "shader", Trait: s.Shader}}
}

// RiggingSpecification is the specification for rigging.
type RiggingSpecification struct {
	Geometry *GeometryTrait
	Rigging  *RiggingTrait
}

func NewRiggingSpecification(geometry *GeometryTrait, rigging *RiggingTrait) *RiggingSpecification {
	return &RiggingSpecification{Geometry: geometry, Rigging: rigging}
}

func (s *RiggingSpecification) Stage() Stage   { return StageRigging }
func (s *RiggingSpecification) Title() string  { return StageRigging.Title() }
func (s *RiggingSpecification) Primary() Trait { return s.Rigging }
func (s *RiggingSpecification) Roles() []Role {
	return []Role{
		{Name: "geometry", Trait: s.Geometry},
		{Name: "rigging", Trait: s.Rigging},
	}
}

// AnimationSpecification is the specification for animation.
type AnimationSpecification struct {
	Rigging   *RiggingTrait
	Animation *AnimationTrait
}

func NewAnimationSpecification(rigging *RiggingTrait, animation *AnimationTrait) *AnimationSpecification {
	return &AnimationSpecification{Rigging: rigging, Animation: animation}
}

func (s *AnimationSpecification) Stage() Stage   { return StageAnimation }
func (s *AnimationSpecification) Title() string  { return StageAnimation.Title() }
func (s *AnimationSpecification) Primary() Trait { return s.Animation }
func (s *AnimationSpecification) Roles() []Role {
	return []Role{
		{Name: "rigging", Trait: s.Rigging},
		{Name: "animation", Trait: s.Animation},
	}
}

// TexturingSpecification is the specification for texturing.
type TexturingSpecification struct {
	Geometry *GeometryTrait
	Texture  *TextureTrait
}

func NewTexturingSpecification(geometry *GeometryTrait, texture *TextureTrait) *TexturingSpecification {
	return &TexturingSpecification{Geometry: geometry, Texture: texture}
}

func (s *TexturingSpecification) Stage() Stage   { return StageTexturing }
func (s *TexturingSpecification) Title() string  { return StageTexturing.Title() }
func (s *TexturingSpecification) Primary() Trait { return s.Texture }
func (s *TexturingSpecification) Roles() []Role {
	return []Role{
		{Name: "geometry", Trait: s.Geometry},
		{Name: "texture", Trait: s.Texture},
	}
}

// FinalAssemblySpecification is the specification for final asset assembly.
type FinalAssemblySpecification struct {
	Assembly *AssemblyTrait
}

func NewFinalAssemblySpecification(assembly *AssemblyTrait) *FinalAssemblySpecification {
	return &FinalAssemblySpecification{Assembly: assembly}
}

func (s *FinalAssemblySpecification) Stage() Stage   { return StageFinalAssembly }
func (s *FinalAssemblySpecification) Title() string  { return StageFinalAssembly.Title() }
func (s *FinalAssemblySpecification) Primary() Trait { return s.Assembly }
func (s *FinalAssemblySpecification) Roles() []Role {
	return []Role{{Name: "assembly", Trait: s.Assembly}}
}

var (
	_ Specification = (*ModelSpecification)(nil)
	_ Specification = (*ShadingSpecification)(nil)
	_ Specification = (*RiggingSpecification)(nil)
	_ Specification = (*AnimationSpecification)(nil)
	_ Specification = (*TexturingSpecification)(nil)
	_ Specification = (*FinalAssemblySpecification)(nil)
)
