package cmd

import (
	"strconv"

	"github.com/sce-tools/sce/client"
	"github.com/sce-tools/sce/pkg/output"
)

// Field order here is the text output order of each command.

var (
	containerGroupHeader = []string{"ID", "NAME", "STATUS", "DESCRIPTION", "IMAGE", "QUEUE"}
	instanceHeader       = []string{"MACHINE ID", "STATE", "UPDATED", "VERSION"}
	queueHeader          = []string{"ID", "NAME", "DISPLAY NAME", "DESCRIPTION"}
	jobHeader            = []string{"ID", "STATUS", "CREATED", "UPDATED"}
	namedHeader          = []string{"ID", "NAME", "DISPLAY NAME"}
	gpuHeader            = []string{"ID", "NAME", "HIGH DEMAND"}
	userHeader           = []string{"ID", "USERNAME", "EMAIL"}
	logTokenHeader       = []string{"TOKEN", "EXPIRES AT"}
	nodeHeader           = []string{"ID", "NAME", "GPU CLASS", "STATE"}
)

func containerGroupRow(cg client.ContainerGroup) []string {
	return []string{cg.ID, cg.Name, cg.CurrentState.Status, cg.CurrentState.Description, cg.Container.Image, cg.QueueName()}
}

func instanceRow(i client.Instance) []string {
	return []string{i.MachineID, i.State, i.UpdateTime, strconv.Itoa(i.Version)}
}

func queueRow(q client.Queue) []string {
	return []string{q.ID, q.Name, q.DisplayName, q.Description}
}

func jobRow(j client.Job) []string {
	return []string{j.ID, j.Status, j.CreateTime, j.UpdateTime}
}

func projectRow(p client.Project) []string {
	return []string{p.ID, p.Name, p.DisplayName}
}

func organizationRow(o client.Organization) []string {
	return []string{o.ID, o.Name, o.DisplayName}
}

func gpuRow(g client.GPUClass) []string {
	return []string{g.ID, g.Name, strconv.FormatBool(g.IsHighDemand)}
}

func nodeRow(n client.Node) []string {
	return []string{n.ID, n.Name, n.GPUClass, n.State}
}

var (
	containerGroupListView = output.List("items", containerGroupHeader, containerGroupRow)
	containerGroupView     = output.Object(containerGroupHeader, containerGroupRow)
	instanceListView       = output.List("instances", instanceHeader, instanceRow)
	queueListView          = output.List("items", queueHeader, queueRow)
	queueView              = output.Object(queueHeader, queueRow)
	jobListView            = output.List("items", jobHeader, jobRow)
	jobView                = output.Object(jobHeader, jobRow)
	projectListView        = output.List("items", namedHeader, projectRow)
	organizationListView   = output.List("items", namedHeader, organizationRow)
	gpuListView            = output.List("items", gpuHeader, gpuRow)
	nodeListView           = output.List("items", nodeHeader, nodeRow)
	nodeView               = output.Object(nodeHeader, nodeRow)

	userView = output.Object(userHeader, func(u client.User) []string {
		return []string{u.ID, u.Username, u.Email}
	})
	logTokenView = output.Object(logTokenHeader, func(t client.LogToken) []string {
		return []string{t.Token, t.ExpiresAt}
	})
)
