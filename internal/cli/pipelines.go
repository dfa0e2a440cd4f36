package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func pipelinesCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "pipelines",
		Short: "Manage pipeline definitions in a workspace",
	}

	c.AddCommand(pipelinesListCmd(opts))
	return c
}

func pipelinesListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pipelines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}
			if err := ws.requireWorkspace(); err != nil {
				return err
			}

			refs, err := ws.pipelines.ListPipelines(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no pipelines found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, filepath.ToSlash(rel))
			}
			return nil
		},
	}
}
