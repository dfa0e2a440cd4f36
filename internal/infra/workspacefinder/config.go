package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFileName marks a traitspec workspace root.
const ConfigFileName = "traitspec.yaml"

// LoadConfig loads traitspec.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Traitspec.Defaults.Pipeline != "" {
		cfg.Defaults.Pipeline = y.Traitspec.Defaults.Pipeline
	}
	if y.Traitspec.Defaults.Format != "" {
		cfg.Defaults.Format = y.Traitspec.Defaults.Format
	}
	if y.Traitspec.Paths.PipelinesDir != "" {
		cfg.Paths.PipelinesDir = y.Traitspec.Paths.PipelinesDir
	}

	return cfg, nil
}

type yamlConfig struct {
	Traitspec struct {
		Defaults struct {
			Pipeline string `yaml:"pipeline"`
			Format   string `yaml:"format"`
		} `yaml:"defaults"`

		Paths struct {
			PipelinesDir string `yaml:"pipelines_dir"`
		} `yaml:"paths"`
	} `yaml:"traitspec"`
}
