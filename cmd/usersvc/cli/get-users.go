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

func GetUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "users",
		Aliases:       []string{"user"},
		Short:         "Get users",
		Long:          "",
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: getUsersCmd,
	}

	cmd.Flags().Int("id", 0, "only get the user with this id")
	cmd.Flags().StringP("output", "o", "", "output format. supported values: json")

	return cmd
}

func getUsersCmd(cmd *cobra.Command, args []string) error {
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
	c := client.New(endpoint)

	var users []usertypes.User
	if id := v.GetInt("id"); id != 0 {
		log.ActionWithSpinner("Fetching user %d", id)
		u, err := c.GetUser(id)
		if err != nil {
			log.FinishSpinnerWithError()
			return err
		}
		log.FinishSpinner()
		users = []usertypes.User{*u}
	} else {
		log.ActionWithSpinner("Fetching users")
		list, err := c.ListUsers()
		if err != nil {
			log.FinishSpinnerWithError()
			return err
		}
		log.FinishSpinner()
		users = list
	}

	print.Users(cmd.OutOrStdout(), users, output)

	return nil
}
