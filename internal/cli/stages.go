package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
)

func stagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stages",
		Short: "List pipeline stages and the traits each one requires",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, si := range domain.Stages() {
				req := make([]string, 0, len(si.Requires))
				for _, k := range si.Requires {
					req = append(req, string(k))
				}
				fmt.Fprintf(out, "- %-15s %-30s requires: %s\n", si.Stage, si.Title, strings.Join(req, ", "))
			}
			return nil
		},
	}
}
