package cmd

import (
	"github.com/spf13/cobra"
)

func jobCmds(a *app) []*cobra.Command {
	listCmd := &cobra.Command{
		Use:     "job-list QUEUE",
		Aliases: []string{"j-list"},
		Short:   "List the jobs of a queue",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ListJobs(cmd.Context(), args[0])
			return a.show(res, err, jobListView)
		},
	}

	getCmd := &cobra.Command{
		Use:     "job-get QUEUE ID",
		Aliases: []string{"j-get"},
		Short:   "Show one job",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetJob(cmd.Context(), args[0], args[1])
			return a.show(res, err, jobView)
		},
	}

	createCmd := &cobra.Command{
		Use:     "job-create QUEUE FILE",
		Aliases: []string{"j-create"},
		Short:   "Submit a job to a queue from a JSON or YAML file",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readDataFile(args[1])
			if err != nil {
				return err
			}
			res, err := a.client.CreateJob(cmd.Context(), args[0], body)
			return a.show(res, err, jobView)
		},
	}

	deleteCmd := &cobra.Command{
		Use:     "job-delete QUEUE ID",
		Aliases: []string{"j-delete"},
		Short:   "Cancel a job",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.DeleteJob(cmd.Context(), args[0], args[1])
			return a.status(res, err)
		},
	}

	return []*cobra.Command{listCmd, getCmd, createCmd, deleteCmd}
}
