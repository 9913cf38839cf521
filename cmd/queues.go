package cmd

import (
	"github.com/sce-tools/sce/pkg/flags"
	"github.com/spf13/cobra"
)

func queueCmds(a *app) []*cobra.Command {
	listCmd := &cobra.Command{
		Use:     "queue-list",
		Aliases: []string{"q-list"},
		Short:   "List the job queues of the project",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ListQueues(cmd.Context())
			return a.show(res, err, queueListView)
		},
	}

	getCmd := &cobra.Command{
		Use:     "queue-get NAME",
		Aliases: []string{"q-get"},
		Short:   "Show one queue",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetQueue(cmd.Context(), args[0])
			return a.show(res, err, queueView)
		},
	}

	createCmd := &cobra.Command{
		Use:     "queue-create FILE",
		Aliases: []string{"q-create"},
		Short:   "Create a queue from a JSON or YAML file",
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
			res, err := a.client.CreateQueue(cmd.Context(), body)
			return a.show(res, err, queueView)
		},
	}
	createCmd.Flags().String(flags.NameFlag.Full, "", "override the name in the data file")

	updateCmd := &cobra.Command{
		Use:     "queue-update NAME FILE",
		Aliases: []string{"q-update"},
		Short:   "Apply a JSON merge patch to a queue",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readDataFile(args[1])
			if err != nil {
				return err
			}
			res, err := a.client.UpdateQueue(cmd.Context(), args[0], body)
			return a.show(res, err, queueView)
		},
	}

	deleteCmd := &cobra.Command{
		Use:     "queue-delete NAME",
		Aliases: []string{"q-delete"},
		Short:   "Delete a queue",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.DeleteQueue(cmd.Context(), args[0])
			return a.status(res, err)
		},
	}

	return []*cobra.Command{listCmd, getCmd, createCmd, updateCmd, deleteCmd}
}
