package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/replicatedhq/usersvc/pkg/apiserver"
	"github.com/replicatedhq/usersvc/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func APICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api",
		Short: "Starts the API server",
		Long:  ``,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			if err := configureLogger(v); err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			params := &apiserver.APIServerParams{
				Port:                     v.GetInt("port"),
				DetailedValidationErrors: v.GetBool("detailed-validation-errors"),
			}
			if err := apiserver.Start(ctx, params); err != nil {
				logger.Error(err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().Int("port", apiserver.DefaultPort, "port to listen on")
	cmd.Flags().Bool("detailed-validation-errors", false, "include the violated constraints in 400 responses")

	return cmd
}
