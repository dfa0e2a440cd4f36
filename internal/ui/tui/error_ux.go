package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
)

var (
	reLine  = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)
	reTrait = regexp.MustCompile(`requires trait (\w+)`)
)

// userMessage turns an error into a one-line toast.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "yamlpipeline") {
				return "Pipeline not found"
			}
			if strings.Contains(oe.Op, "workspacefinder") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindMissingTrait:
			if m := reTrait.FindStringSubmatch(err.Error()); len(m) == 2 {
				return "Missing trait " + m[1]
			}
			return "Missing trait"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid pipeline"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, domain.ErrMissingTrait) {
		return "Missing trait"
	}
	if looksLikeYAMLProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}
	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	if m := reLine.FindStringSubmatch(s); len(m) == 2 {
		return m[1]
	}
	return ""
}
