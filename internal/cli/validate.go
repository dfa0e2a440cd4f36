package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishgoda/OpenAssetIO/internal/infra/logger"
	"github.com/satishgoda/OpenAssetIO/internal/usecase"
)

func validateCmd(opts *rootOptions) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Compose a pipeline and report counts and warnings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}
			defer ws.setupLogging(opts.debug)()

			path, err := resolvePipelinePath(ws, file)
			if err != nil {
				return err
			}

			rep, err := usecase.NewValidatePipeline(ws.pipelines).Execute(cmd.Context(), path)
			if err != nil {
				logger.L().Error("validate.failed", "path", path, "err", err)
				return err
			}
			logger.L().Info("validate", "pipeline", rep.Name, "warnings", len(rep.Warnings))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "OK %s (%d specification(s), %d trait(s))\n", rep.Name, rep.Specifications, rep.Traits)
			for _, w := range rep.Warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Pipeline name or path (optional)")
	return c
}
