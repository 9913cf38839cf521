package cmd

import (
	"net/url"

	"github.com/sce-tools/sce/pkg/flags"
	"github.com/spf13/cobra"
)

func nodeCmds(a *app) []*cobra.Command {
	listCmd := &cobra.Command{
		Use:   "node-list",
		Short: "List nodes through the node API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := url.Values{}
			if state, _ := cmd.Flags().GetString(flags.StateFlag.Full); state != "" {
				filter.Set("state", state)
			}
			if gpu, _ := cmd.Flags().GetString(flags.GPUClassFlag.Full); gpu != "" {
				filter.Set("gpu_class", gpu)
			}
			res, err := a.client.ListNodes(cmd.Context(), filter)
			return a.show(res, err, nodeListView)
		},
	}
	listCmd.Flags().String(flags.StateFlag.Full, "", "only nodes in this state")
	listCmd.Flags().String(flags.GPUClassFlag.Full, "", "only nodes with this GPU class")

	getCmd := &cobra.Command{
		Use:   "node-get ID",
		Short: "Show one node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetNode(cmd.Context(), args[0])
			return a.show(res, err, nodeView)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "node-update ID FILE",
		Short: "Replace a node's settings from a JSON or YAML file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readDataFile(args[1])
			if err != nil {
				return err
			}
			res, err := a.client.UpdateNode(cmd.Context(), args[0], body)
			return a.show(res, err, nodeView)
		},
	}

	return []*cobra.Command{listCmd, getCmd, updateCmd}
}
