package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type QueueStatus struct {
	Name            string   `json:"name"`
	ContainerGroups []string `json:"container_groups"`
}

type ContainerGroupStatus struct {
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	Instances []Instance `json:"instances"`
}

type ProjectStatus struct {
	Queues          []QueueStatus          `json:"queues"`
	ContainerGroups []ContainerGroupStatus `json:"container_groups"`
}

// ProjectStatus fetches container groups and queues once each and works out
// queue attachments from the container groups' queue connections, since the
// API has no joined view. Instances are then fetched per container group.
func (c *Client) ProjectStatus(ctx context.Context) (*ProjectStatus, error) {
	groups, err := c.containerGroups(ctx)
	if err != nil {
		return nil, err
	}
	queues, err := c.queues(ctx)
	if err != nil {
		return nil, err
	}

	status := &ProjectStatus{
		Queues:          make([]QueueStatus, 0, len(queues)),
		ContainerGroups: make([]ContainerGroupStatus, 0, len(groups)),
	}

	for _, q := range queues {
		qs := QueueStatus{Name: q.Name, ContainerGroups: []string{}}
		for _, cg := range groups {
			if cg.QueueName() == q.Name {
				qs.ContainerGroups = append(qs.ContainerGroups, cg.Name)
			}
		}
		status.Queues = append(status.Queues, qs)
	}

	for _, cg := range groups {
		res, err := c.ListInstances(ctx, cg.Name)
		if err != nil {
			return nil, err
		}
		if err := res.Err(); err != nil {
			return nil, err
		}
		var list InstanceList
		if err := decode(res, &list); err != nil {
			return nil, err
		}
		instances := list.Instances
		if instances == nil {
			instances = []Instance{}
		}
		status.ContainerGroups = append(status.ContainerGroups, ContainerGroupStatus{
			Name:      cg.Name,
			Status:    cg.CurrentState.Status,
			Instances: instances,
		})
	}

	return status, nil
}

const (
	KindContainerGroup = "container-group"
	KindQueue          = "queue"
)

type Deletion struct {
	Kind       string
	Name       string
	StatusCode int
	Err        error
}

type CleanReport struct {
	Deletions []Deletion
}

func (r *CleanReport) Failed() []Deletion {
	var failed []Deletion
	for _, d := range r.Deletions {
		if d.Err != nil {
			failed = append(failed, d)
		}
	}
	return failed
}

// Err summarises every failed deletion, or returns nil.
func (r *CleanReport) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	names := make([]string, 0, len(failed))
	for _, d := range failed {
		names = append(names, fmt.Sprintf("%s %s (%v)", d.Kind, d.Name, d.Err))
	}
	return errors.Errorf("%d of %d deletions failed: %s", len(failed), len(r.Deletions), strings.Join(names, "; "))
}

// CleanProject deletes every container group and then every queue in the
// project, one at a time. A failed delete is recorded and the loop carries on;
// listing failures and transport failures stop it. Nothing is rolled back.
func (c *Client) CleanProject(ctx context.Context) (*CleanReport, error) {
	report := &CleanReport{}

	groups, err := c.containerGroups(ctx)
	if err != nil {
		return report, err
	}
	for _, cg := range groups {
		res, err := c.DeleteContainerGroup(ctx, cg.Name)
		if err != nil {
			return report, err
		}
		report.record(KindContainerGroup, cg.Name, res)
	}

	queues, err := c.queues(ctx)
	if err != nil {
		return report, err
	}
	for _, q := range queues {
		res, err := c.DeleteQueue(ctx, q.Name)
		if err != nil {
			return report, err
		}
		report.record(KindQueue, q.Name, res)
	}

	return report, nil
}

func (r *CleanReport) record(kind, name string, res Result) {
	r.Deletions = append(r.Deletions, Deletion{
		Kind:       kind,
		Name:       name,
		StatusCode: res.StatusCode,
		Err:        res.Err(),
	})
}

func (c *Client) containerGroups(ctx context.Context) ([]ContainerGroup, error) {
	res, err := c.ListContainerGroups(ctx)
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	var list ContainerGroupList
	if err := decode(res, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (c *Client) queues(ctx context.Context) ([]Queue, error) {
	res, err := c.ListQueues(ctx)
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	var list QueueList
	if err := decode(res, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

func decode(res Result, v interface{}) error {
	if res.DryRun || len(res.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(res.Body, v); err != nil {
		return errors.Wrapf(err, "error decoding response from %s %s", res.Method, res.URL)
	}
	return nil
}
