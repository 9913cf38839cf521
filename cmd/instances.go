package cmd

import (
	"context"

	"github.com/sce-tools/sce/client"
	"github.com/spf13/cobra"
)

func instanceCmds(a *app) []*cobra.Command {
	listCmd := &cobra.Command{
		Use:     "instance-list CONTAINER_GROUP",
		Aliases: []string{"server-list", "i-list"},
		Short:   "List the instances running a container group",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ListInstances(cmd.Context(), args[0])
			return a.show(res, err, instanceListView)
		},
	}

	actions := []struct {
		name  string
		short string
		call  func(ctx context.Context, containerGroup, machineID string) (client.Result, error)
	}{
		{"reallocate", "Move an instance to a different node", a.reallocate},
		{"restart", "Restart the container on an instance", a.restart},
		{"recreate", "Recreate the container on an instance", a.recreate},
	}

	cmds := []*cobra.Command{listCmd}
	for _, action := range actions {
		action := action
		cmds = append(cmds, &cobra.Command{
			Use:     "instance-" + action.name + " CONTAINER_GROUP MACHINE_ID",
			Aliases: []string{"i-" + action.name},
			Short:   action.short,
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				res, err := action.call(cmd.Context(), args[0], args[1])
				return a.status(res, err)
			},
		})
	}
	return cmds
}

// The client is only built once flags are parsed, so the actions resolve it
// at call time.

func (a *app) reallocate(ctx context.Context, cg, machineID string) (client.Result, error) {
	return a.client.ReallocateInstance(ctx, cg, machineID)
}

func (a *app) restart(ctx context.Context, cg, machineID string) (client.Result, error) {
	return a.client.RestartInstance(ctx, cg, machineID)
}

func (a *app) recreate(ctx context.Context, cg, machineID string) (client.Result, error) {
	return a.client.RecreateInstance(ctx, cg, machineID)
}
