package domain

// TraitKind identifies one of the six trait shapes.
type TraitKind string

const (
	TraitGeometry  TraitKind = "geometry"
	TraitShader    TraitKind = "shader"
	TraitRigging   TraitKind = "rigging"
	TraitAnimation TraitKind = "animation"
	TraitTexture   TraitKind = "texture"
	TraitAssembly  TraitKind = "assembly"
)

// TraitKinds returns all trait kinds in declaration order.
func TraitKinds() []TraitKind {
	return []TraitKind{
		TraitGeometry,
		TraitShader,
		TraitRigging,
		TraitAnimation,
		TraitTexture,
		TraitAssembly,
	}
}

// Trait is a flat, single-purpose data record.
type Trait interface {
	Kind() TraitKind
	// Fields returns the trait's current values in declaration order.
	Fields() Record
}

// ShaderKind names a shading model. The set is open: any string is accepted.
type ShaderKind string

const (
	ShaderPBR     ShaderKind = "PBR"
	ShaderPhong   ShaderKind = "Phong"
	ShaderLambert ShaderKind = "Lambert"
	ShaderUnlit   ShaderKind = "Unlit"
)

// GeometryTrait defines geometric properties.
type GeometryTrait struct {
	Vertices int
	Edges    int
	Faces    int
}

func NewGeometryTrait(vertices, edges, faces int) *GeometryTrait {
	return &GeometryTrait{Vertices: vertices, Edges: edges, Faces: faces}
}

func (t *GeometryTrait) Kind() TraitKind { return TraitGeometry }

func (t *GeometryTrait) Fields() Record {
	return Record{
		{Name: "vertices", Value: t.Vertices},
		{Name: "edges", Value: t.Edges},
		{Name: "faces", Value: t.Faces},
	}
}

// ShaderTrait defines shading properties.
type ShaderTrait struct {
	ShaderType ShaderKind
	Parameters *OrderedMap[float64]
}

func NewShaderTrait(shaderType ShaderKind, parameters *OrderedMap[float64]) *ShaderTrait {
	return &ShaderTrait{ShaderType: shaderType, Parameters: parameters}
}

func (t *ShaderTrait) Kind() TraitKind { return TraitShader }

func (t *ShaderTrait) Fields() Record {
	return Record{
		{Name: "shader_type", Value: string(t.ShaderType)},
		{Name: "parameters", Value: t.Parameters},
	}
}

// RiggingTrait defines rigging properties.
type RiggingTrait struct {
	Bones       []string
	Constraints *OrderedMap[string]
}

func NewRiggingTrait(bones []string, constraints *OrderedMap[string]) *RiggingTrait {
	return &RiggingTrait{Bones: bones, Constraints: constraints}
}

func (t *RiggingTrait) Kind() TraitKind { return TraitRigging }

func (t *RiggingTrait) Fields() Record {
	return Record{
		{Name: "bones", Value: t.Bones},
		{Name: "constraints", Value: t.Constraints},
	}
}

// Keyframe is a single pose at a frame.
type Keyframe struct {
	Frame int
	Pose  string
}

func (k Keyframe) Fields() Record {
	return Record{
		{Name: "frame", Value: k.Frame},
		{Name: "pose", Value: k.Pose},
	}
}

// AnimationTrait defines animation properties.
type AnimationTrait struct {
	Keyframes []Keyframe
	Duration  float64
}

func NewAnimationTrait(keyframes []Keyframe, duration float64) *AnimationTrait {
	return &AnimationTrait{Keyframes: keyframes, Duration: duration}
}

func (t *AnimationTrait) Kind() TraitKind { return TraitAnimation }

func (t *AnimationTrait) Fields() Record {
	frames := make([]Record, 0, len(t.Keyframes))
	for _, k := range t.Keyframes {
		frames = append(frames, k.Fields())
	}
	return Record{
		{Name: "keyframes", Value: frames},
		{Name: "duration", Value: t.Duration},
	}
}

// TextureTrait defines texturing properties: map name -> file path.
type TextureTrait struct {
	TextureMaps *OrderedMap[string]
}

func NewTextureTrait(textureMaps *OrderedMap[string]) *TextureTrait {
	return &TextureTrait{TextureMaps: textureMaps}
}

func (t *TextureTrait) Kind() TraitKind { return TraitTexture }

func (t *TextureTrait) Fields() Record {
	return Record{
		{Name: "texture_maps", Value: t.TextureMaps},
	}
}

// AssemblyTrait defines assembly properties.
type AssemblyTrait struct {
	Components []string
}

func NewAssemblyTrait(components []string) *AssemblyTrait {
	return &AssemblyTrait{Components: components}
}

func (t *AssemblyTrait) Kind() TraitKind { return TraitAssembly }

func (t *AssemblyTrait) Fields() Record {
	return Record{
		{Name: "components", Value: t.Components},
	}
}

var (
	_ Trait = (*GeometryTrait)(nil)
	_ Trait = (*ShaderTrait)(nil)
	_ Trait = (*RiggingTrait)(nil)
	_ Trait = (*AnimationTrait)(nil)
	_ Trait = (*TextureTrait)(nil)
	_ Trait = (*AssemblyTrait)(nil)
)
