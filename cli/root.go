package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the healthcare-optimizer command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "healthcare-optimizer",
		Short:         "Healthcare operations dashboard and analytics calculators",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringSlice("config-path", nil, "directories searched for config.yaml (default ./configs and .)")

	root.AddCommand(newServeCommand())
	root.AddCommand(newEvaluateCommand())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
