package cmd

import (
	"github.com/sce-tools/sce/pkg/flags"
	"github.com/spf13/cobra"
)

func containerGroupCmds(a *app) []*cobra.Command {
	listCmd := &cobra.Command{
		Use:     "container-group-list",
		Aliases: []string{"cg-list"},
		Short:   "List the container groups of the project",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ListContainerGroups(cmd.Context())
			return a.show(res, err, containerGroupListView)
		},
	}

	getCmd := &cobra.Command{
		Use:     "container-group-get NAME",
		Aliases: []string{"cg-get"},
		Short:   "Show one container group",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetContainerGroup(cmd.Context(), args[0])
			return a.show(res, err, containerGroupView)
		},
	}

	createCmd := &cobra.Command{
		Use:     "container-group-create FILE",
		Aliases: []string{"cg-create"},
		Short:   "Create a container group from a JSON or YAML file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readDataFile(args[0])
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString(flags.NameFlag.Full)
			if body, err = withName(body, name); err != nil {
				return err
			}
			res, err := a.client.CreateContainerGroup(cmd.Context(), body)
			return a.show(res, err, containerGroupView)
		},
	}
	createCmd.Flags().String(flags.NameFlag.Full, "", "override the name in the data file")

	updateCmd := &cobra.Command{
		Use:     "container-group-update NAME FILE",
		Aliases: []string{"cg-update"},
		Short:   "Apply a JSON merge patch to a container group",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readDataFile(args[1])
			if err != nil {
				return err
			}
			res, err := a.client.UpdateContainerGroup(cmd.Context(), args[0], body)
			return a.show(res, err, containerGroupView)
		},
	}

	deleteCmd := &cobra.Command{
		Use:     "container-group-delete NAME",
		Aliases: []string{"cg-delete"},
		Short:   "Delete a container group",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.DeleteContainerGroup(cmd.Context(), args[0])
			return a.status(res, err)
		},
	}

	startCmd := &cobra.Command{
		Use:     "container-group-start NAME",
		Aliases: []string{"cg-start"},
		Short:   "Start a container group",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.StartContainerGroup(cmd.Context(), args[0])
			return a.status(res, err)
		},
	}

	stopCmd := &cobra.Command{
		Use:     "container-group-stop NAME",
		Aliases: []string{"cg-stop"},
		Short:   "Stop a container group",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.StopContainerGroup(cmd.Context(), args[0])
			return a.status(res, err)
		},
	}

	return []*cobra.Command{listCmd, getCmd, createCmd, updateCmd, deleteCmd, startCmd, stopCmd}
}
