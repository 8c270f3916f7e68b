package cli

import (
	"github.com/pkg/errors"
	"github.com/replicatedhq/usersvc/pkg/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultEndpoint = "http://localhost:3000"

func addEndpointFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String("endpoint", defaultEndpoint, "address of the users API")
}

func getEndpoint(v *viper.Viper) (string, error) {
	endpoint := v.GetString("endpoint")
	if !util.IsURL(endpoint) {
		return "", errors.Errorf("invalid endpoint: %q", endpoint)
	}
	return endpoint, nil
}
