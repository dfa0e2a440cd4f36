package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by OpError.Err so callers can use errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrMissingTrait  = errors.New("missing trait")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind classifies pipeline failures. The CLI and the browser map
// kinds to user-facing messages, never error strings.
type ErrorKind string

const (
	// KindNotFound: no workspace above the start directory, or a pipeline
	// name/path that resolves to no file.
	KindNotFound ErrorKind = "not_found"
	// KindInvalidConfig: a pipeline or traitspec.yaml that does not decode,
	// an unknown stage or output format, or a bad JSONPath expression.
	KindInvalidConfig ErrorKind = "invalid_config"
	// KindMissingTrait: a stage was composed without one of the traits its
	// specification requires (texturing without geometry, for example).
	KindMissingTrait ErrorKind = "missing_trait"
	// KindExecution: I/O or cancellation while loading, exporting or
	// initializing a workspace.
	KindExecution ErrorKind = "execution"
)

// OpError carries the failing operation (e.g. "yamlpipeline.load",
// "pipeline.compose"), its kind and the pipeline or config file involved.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is an *OpError of the given kind anywhere in its chain.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
