package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/replicatedhq/usersvc/pkg/buildversion"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func VersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the current version and exit",
		Long:  `Print the current version and exit`,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()
			out := cmd.OutOrStdout()
			build := buildversion.GetBuild()

			switch v.GetString("output") {
			case "json":
				b, err := json.MarshalIndent(build, "", "    ")
				if err != nil {
					return errors.Wrap(err, "failed to marshal build")
				}
				fmt.Fprintln(out, string(b))
			case "":
				bold := color.New(color.Bold)
				bold.Fprintf(out, "usersvc %s", build.Version)
				if build.GitSHA != "" {
					fmt.Fprintf(out, " (%s)", build.GitSHA)
				}
				fmt.Fprintln(out)
			default:
				return errors.Errorf("unsupported output format %q", v.GetString("output"))
			}

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output format (currently supported: json)")

	return cmd
}
