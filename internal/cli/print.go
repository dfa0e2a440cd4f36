package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
	"github.com/satishgoda/OpenAssetIO/internal/infra/export"
	"github.com/satishgoda/OpenAssetIO/internal/infra/logger"
	"github.com/satishgoda/OpenAssetIO/internal/infra/reprfmt"
	"github.com/satishgoda/OpenAssetIO/internal/usecase"
)

type printFlags struct {
	file   string
	format string
}

func (f *printFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.file, "file", "f", "", "Pipeline name or path (optional; defaults to the workspace default or the built-in sample)")
	c.Flags().StringVar(&f.format, "format", "", "Output format: repr|json|yaml (defaults to the workspace setting)")
}

func printCmd(opts *rootOptions) *cobra.Command {
	var pf printFlags

	c := &cobra.Command{
		Use:   "print",
		Short: "Print the specification report of a pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrint(cmd, opts, pf)
		},
	}

	pf.register(c)
	return c
}

func runPrint(cmd *cobra.Command, opts *rootOptions, pf printFlags) error {
	ws, err := loadWorkspace(opts.workspace)
	if err != nil {
		return err
	}
	defer ws.setupLogging(opts.debug)()

	format := strings.TrimSpace(pf.format)
	if format == "" {
		format = ws.cfg.Defaults.Format
	}
	if err := checkFormat(format); err != nil {
		return err
	}

	path, err := resolvePipelinePath(ws, pf.file)
	if err != nil {
		return err
	}

	p, err := usecase.NewDescribePipeline(ws.pipelines).Execute(cmd.Context(), path)
	if err != nil {
		logger.L().Error("print.failed", "path", path, "err", err)
		return err
	}
	logger.L().Info("print", "pipeline", p.Name, "path", path, "format", format)

	return printPipeline(cmd.OutOrStdout(), p, format)
}

func printPipeline(w io.Writer, p *domain.Pipeline, format string) error {
	switch format {
	case "repr", "":
		return reprfmt.Report(w, p)
	case "json":
		return export.JSON(w, p)
	case "yaml":
		return export.YAML(w, p)
	default:
		return checkFormat(format)
	}
}

func checkFormat(format string) error {
	switch format {
	case "repr", "json", "yaml", "":
		return nil
	}
	return &domain.OpError{
		Op:   "cli.format",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("unsupported format %q (expected repr|json|yaml): %w", format, domain.ErrInvalidConfig),
	}
}
