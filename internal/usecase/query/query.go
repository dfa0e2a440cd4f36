package query

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
	"github.com/satishgoda/OpenAssetIO/internal/ports"
)

// Query evaluates JSONPath expressions against the exported document of a
// pipeline, shaped as {stage: {role: {field: value}}}.
//
//	$.rigging.rigging.bones[0]           -> "spine"
//	$.shading.shader.parameters.metallic -> 0.2
type Query struct {
	docs ports.DocumentExporter
}

func NewQuery(docs ports.DocumentExporter) *Query {
	return &Query{docs: docs}
}

func (uc *Query) Execute(ctx context.Context, p *domain.Pipeline, expr string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, &domain.OpError{
			Op:   "query.eval",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("empty jsonpath expression: %w", domain.ErrInvalidConfig),
		}
	}
	if uc.docs == nil {
		return nil, &domain.OpError{
			Op:   "query.eval",
			Kind: domain.KindExecution,
			Err:  errors.New("document exporter is nil"),
		}
	}

	doc, err := uc.docs.Document(p)
	if err != nil {
		return nil, err
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "query.eval",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%s: %w", expr, err),
		}
	}
	return val, nil
}
