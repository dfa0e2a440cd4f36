package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishgoda/OpenAssetIO/internal/infra/export"
	"github.com/satishgoda/OpenAssetIO/internal/infra/logger"
	"github.com/satishgoda/OpenAssetIO/internal/usecase"
	"github.com/satishgoda/OpenAssetIO/internal/usecase/query"
)

func queryCmd(opts *rootOptions) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "query EXPR",
		Short: "Evaluate a JSONPath expression against the exported pipeline",
		Example: "  traitspec query '$.rigging.rigging.bones[0]'\n" +
			"  traitspec query -f hero '$.shading.shader.parameters'",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}
			defer ws.setupLogging(opts.debug)()

			path, err := resolvePipelinePath(ws, file)
			if err != nil {
				return err
			}

			p, err := usecase.NewDescribePipeline(ws.pipelines).Execute(cmd.Context(), path)
			if err != nil {
				return err
			}

			v, err := query.NewQuery(export.NewDocuments()).Execute(cmd.Context(), p, args[0])
			if err != nil {
				logger.L().Warn("query.failed", "expr", args[0], "err", err)
				return err
			}

			b, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return fmt.Errorf("encode query result: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Pipeline name or path (optional)")
	return c
}
