package ports

import "github.com/satishgoda/OpenAssetIO/internal/domain"

// DocumentExporter renders a pipeline as generic JSON values
// (map[string]any, []any, float64, string, bool, nil) shaped as
// {stage: {role: {field: value}}}.
type DocumentExporter interface {
	Document(p *domain.Pipeline) (any, error)
}
