package cli

import (
	"github.com/pkg/errors"
	"github.com/replicatedhq/usersvc/pkg/client"
	"github.com/replicatedhq/usersvc/pkg/logger"
	"github.com/replicatedhq/usersvc/pkg/print"
	usertypes "github.com/replicatedhq/usersvc/pkg/user/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func CreateUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "user",
		Short:         "Create a user",
		Long:          "Create a user. The server validates the record and rejects it if any field is invalid.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: createUserCmd,
	}

	cmd.Flags().Int("id", 0, "user id, must be positive")
	cmd.Flags().String("name", "", "user name, at least 3 characters")
	cmd.Flags().String("email", "", "user email address")
	cmd.Flags().Int("age", 0, "user age, between 18 and 100")
	cmd.Flags().StringP("output", "o", "", "output format. supported values: json")

	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("age")

	return cmd
}

func createUserCmd(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()

	output := v.GetString("output")
	if output != "" && output != "json" {
		return errors.Errorf("invalid output format: %s", output)
	}

	log := logger.NewCLILogger(cmd.ErrOrStderr())
	if output == "json" {
		log.Silence()
	}

	endpoint, err := getEndpoint(v)
	if err != nil {
		return err
	}

	u := usertypes.User{
		ID:    v.GetInt("id"),
		Name:  v.GetString("name"),
		Email: v.GetString("email"),
		Age:   v.GetInt("age"),
	}

	log.ActionWithSpinner("Creating user %d", u.ID)
	created, err := client.New(endpoint).CreateUser(u)
	if err != nil {
		log.FinishSpinnerWithError()
		return err
	}
	log.FinishSpinner()

	print.Users(cmd.OutOrStdout(), []usertypes.User{*created}, output)

	return nil
}
