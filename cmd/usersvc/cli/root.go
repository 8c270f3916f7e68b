package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/replicatedhq/usersvc/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cobra.OnInitialize(initConfig)
}

func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "usersvc",
		Short:         "usersvc serves and queries an in-memory users API",
		Long:          ``,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().String("log-level", "info", "set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "json", "set the log format (json, console)")

	cmd.AddCommand(APICmd())
	cmd.AddCommand(GetCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(VersionCmd())
	cmd.AddCommand(CompletionCmd())

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return cmd
}

func InitAndExecute() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("USERSVC")
	viper.AutomaticEnv()
}

func configureLogger(v *viper.Viper) error {
	if err := logger.SetFormat(v.GetString("log-format")); err != nil {
		return errors.Wrap(err, "failed to set log format")
	}
	if err := logger.SetLevel(v.GetString("log-level")); err != nil {
		return errors.Wrap(err, "failed to set log level")
	}
	return nil
}
