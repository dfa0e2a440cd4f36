package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
	"github.com/satishgoda/OpenAssetIO/internal/infra/logger"
	"github.com/satishgoda/OpenAssetIO/internal/ui/tui"
)

func browseCmd(opts *rootOptions) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "browse",
		Short: "Browse specifications and their traits interactively",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return &domain.OpError{
					Op:   "cli.browse",
					Kind: domain.KindExecution,
					Err:  errors.New("browse needs an interactive terminal (use `traitspec print` instead)"),
				}
			}

			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}
			defer ws.setupLogging(opts.debug)()

			path, err := resolvePipelinePath(ws, file)
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				WorkspaceLocator: ws.locator,
				WorkspaceRoot:    ws.root,
				Pipelines:        ws.pipelines,
				PipelinePath:     path,
				Logger:           logger.L(),
				Debug:            opts.debug,
			})
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Pipeline name or path to open (optional)")
	return c
}
