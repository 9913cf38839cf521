package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/sce-tools/sce/client"
	"github.com/sce-tools/sce/pkg/output"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

func projectCmds(a *app) []*cobra.Command {
	listCmd := &cobra.Command{
		Use:     "project-list",
		Aliases: []string{"p-list"},
		Short:   "List the projects of the organization",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ListProjects(cmd.Context())
			return a.show(res, err, projectListView)
		},
	}

	statusCmd := &cobra.Command{
		Use:     "project-status",
		Aliases: []string{"p-status"},
		Short:   "Show queues, the container groups attached to them and their instances",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.client.ProjectStatus(cmd.Context())
			if err != nil {
				return err
			}
			if a.cfg.DryRun {
				return nil
			}
			return a.printProjectStatus(status)
		},
	}

	cleanCmd := &cobra.Command{
		Use:     "project-clean",
		Aliases: []string{"p-clean"},
		Short:   "Delete every container group and queue in the project",
		Long: "Delete every container group and then every queue in the project, one at a time.\n" +
			"There is no confirmation prompt. Failed deletes are reported at the end.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.client.CleanProject(cmd.Context())
			if report != nil && len(report.Deletions) > 0 {
				a.printCleanReport(report)
			}
			if err != nil {
				return err
			}
			if err := report.Err(); err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			return nil
		},
	}

	return []*cobra.Command{listCmd, statusCmd, cleanCmd}
}

func (a *app) printProjectStatus(status *client.ProjectStatus) error {
	switch a.printer.Mode {
	case output.JSON:
		data, err := json.Marshal(status)
		if err != nil {
			return errors.Wrap(err, "error encoding project status")
		}
		_, err = a.stdout.Write(pretty.Pretty(data))
		return err

	case output.Table:
		rows := make([][]string, 0, len(status.Queues))
		for _, q := range status.Queues {
			rows = append(rows, []string{q.Name, strings.Join(q.ContainerGroups, " ")})
		}
		a.printer.Table([]string{"QUEUE", "CONTAINER GROUPS"}, rows)

		rows = rows[:0]
		for _, cg := range status.ContainerGroups {
			if len(cg.Instances) == 0 {
				rows = append(rows, []string{cg.Name, cg.Status, "", ""})
			}
			for _, i := range cg.Instances {
				rows = append(rows, []string{cg.Name, cg.Status, i.MachineID, i.State})
			}
		}
		a.printer.Table([]string{"CONTAINER GROUP", "STATUS", "MACHINE ID", "STATE"}, rows)
		return nil
	}

	for _, q := range status.Queues {
		groups := output.Missing
		if len(q.ContainerGroups) > 0 {
			groups = strings.Join(q.ContainerGroups, " ")
		}
		fmt.Fprintf(a.stdout, "queue %s: %s\n", q.Name, groups)
	}
	for _, cg := range status.ContainerGroups {
		a.printer.Line("container-group", cg.Name, cg.Status)
		for _, i := range cg.Instances {
			fmt.Fprintf(a.stdout, "  %s\n", strings.Join([]string{dash(i.MachineID), dash(i.State)}, " "))
		}
	}
	return nil
}

func (a *app) printCleanReport(report *client.CleanReport) {
	if a.printer.Mode == output.JSON {
		for _, d := range report.Deletions {
			entry := struct {
				Kind   string `json:"kind"`
				Name   string `json:"name"`
				Status int    `json:"status"`
				Error  string `json:"error,omitempty"`
			}{Kind: d.Kind, Name: d.Name, Status: d.StatusCode}
			if d.Err != nil {
				entry.Error = d.Err.Error()
			}
			data, _ := json.Marshal(entry)
			fmt.Fprintln(a.stdout, string(data))
		}
		return
	}

	tw := tablewriter.NewWriter(a.stdout)
	tw.SetHeader([]string{"Kind", "Name", "Status", "Result"})
	tw.SetAutoWrapText(false)
	for _, d := range report.Deletions {
		result := "deleted"
		if d.Err != nil {
			result = "failed"
		}
		tw.Append([]string{d.Kind, d.Name, strconv.Itoa(d.StatusCode), result})
	}
	tw.Render()
}

func dash(s string) string {
	if s == "" {
		return output.Missing
	}
	return s
}
