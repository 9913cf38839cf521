package cmd

import (
	"github.com/spf13/cobra"
)

func logCmds(a *app) []*cobra.Command {
	tokenCmd := &cobra.Command{
		Use:     "log-token CONTAINER_GROUP",
		Aliases: []string{"logs-token"},
		Short:   "Issue a short-lived token for reading a container group's logs",
		Long:    "Issue a short-lived token for reading a container group's logs. Requires a portal session, see login.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.CreateLogToken(cmd.Context(), args[0])
			return a.show(res, err, logTokenView)
		},
	}
	return []*cobra.Command{tokenCmd}
}
