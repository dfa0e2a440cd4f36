package yamlpipeline

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
)

type yamlPipeline struct {
	Name           string     `yaml:"name"`
	Traits         yamlTraits `yaml:"traits"`
	Specifications []string   `yaml:"specifications"`
}

type yamlTraits struct {
	Geometry  *yamlGeometry  `yaml:"geometry"`
	Shader    *yamlShader    `yaml:"shader"`
	Rigging   *yamlRigging   `yaml:"rigging"`
	Animation *yamlAnimation `yaml:"animation"`
	Texture   *yamlTexture   `yaml:"texture"`
	Assembly  *yamlAssembly  `yaml:"assembly"`
}

type yamlGeometry struct {
	Vertices int `yaml:"vertices"`
	Edges    int `yaml:"edges"`
	Faces    int `yaml:"faces"`
}

type yamlShader struct {
	ShaderType string                  `yaml:"shader_type"`
	Parameters orderedMapping[float64] `yaml:"parameters"`
}

type yamlRigging struct {
	Bones       []string               `yaml:"bones"`
	Constraints orderedMapping[string] `yaml:"constraints"`
}

type yamlAnimation struct {
	Keyframes []yamlKeyframe `yaml:"keyframes"`
	Duration  float64        `yaml:"duration"`
}

type yamlKeyframe struct {
	Frame int    `yaml:"frame"`
	Pose  string `yaml:"pose"`
}

type yamlTexture struct {
	TextureMaps orderedMapping[string] `yaml:"texture_maps"`
}

type yamlAssembly struct {
	Components []string `yaml:"components"`
}

// orderedMapping decodes a YAML mapping keeping document order.
type orderedMapping[V any] []domain.Entry[V]

func (o *orderedMapping[V]) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		*o = nil
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", n.Line)
	}

	out := make(orderedMapping[V], 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]

		var key string
		if err := kn.Decode(&key); err != nil {
			return err
		}
		var val V
		if err := vn.Decode(&val); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		out = append(out, domain.Entry[V]{Key: key, Value: val})
	}
	*o = out
	return nil
}
