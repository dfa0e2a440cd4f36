package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	workspace string
	debug     bool
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	var pf printFlags

	cmd := &cobra.Command{
		Use:   "traitspec",
		Short: "Compose asset pipeline specifications from shared traits",
		Long: "traitspec composes 3D asset pipeline specifications (model, shading, rigging,\n" +
			"animation, texturing, final assembly) from shared trait records and prints them.\n" +
			"Without arguments it prints the report for the workspace default pipeline,\n" +
			"or the built-in sample outside a workspace.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrint(cmd, opts, pf)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .traitspec/logs/traitspec.log")
	pf.register(cmd)

	cmd.AddCommand(
		printCmd(opts),
		validateCmd(opts),
		queryCmd(opts),
		stagesCmd(),
		pipelinesCmd(opts),
		browseCmd(opts),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
