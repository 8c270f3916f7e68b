package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "create [resource]",
		Short:        "Create a resource",
		SilenceUsage: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEndpointFlag(cmd)

	cmd.AddCommand(CreateUserCmd())

	return cmd
}
