package domain

// Config represents the traitspec workspace configuration loaded from traitspec.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
}

type DefaultsConfig struct {
	// Pipeline is the pipeline name used when no --file is given.
	Pipeline string
	// Format is the default output format (repr|json|yaml).
	Format string
}

type PathsConfig struct {
	PipelinesDir string
}

// DefaultConfig provides sane defaults if traitspec.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Pipeline: "sample",
			Format:   "repr",
		},
		Paths: PathsConfig{
			PipelinesDir: "pipelines",
		},
	}
}

// WorkspaceSpec describes where a workspace should be scaffolded.
type WorkspaceSpec struct {
	Root string
}

// PipelineRef is a lightweight reference to a pipeline definition on disk.
type PipelineRef struct {
	Name string
	Path string
}
