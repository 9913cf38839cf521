package cmd

import (
	"github.com/spf13/cobra"
)

func organizationCmds(a *app) []*cobra.Command {
	gpuCmd := &cobra.Command{
		Use:     "gpu-list",
		Aliases: []string{"gpu-classes"},
		Short:   "List the GPU classes available to the organization",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ListGPUClasses(cmd.Context())
			return a.show(res, err, gpuListView)
		},
	}

	orgCmd := &cobra.Command{
		Use:   "org-list",
		Short: "List the organizations of the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ListOrganizations(cmd.Context())
			return a.show(res, err, organizationListView)
		},
	}

	return []*cobra.Command{gpuCmd, orgCmd}
}
