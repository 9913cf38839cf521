package client

import "context"

// ListJobs makes a GET request to fetch the jobs of a queue
func (c *Client) ListJobs(ctx context.Context, queue string) (Result, error) {
	u, err := c.projectURL("queues", queue, "jobs")
	if err != nil {
		return Result{}, err
	}
	return c.Get(ctx, u)
}

func (c *Client) GetJob(ctx context.Context, queue, id string) (Result, error) {
	u, err := c.projectURL("queues", queue, "jobs", id)
	if err != nil {
		return Result{}, err
	}
	return c.Get(ctx, u)
}

func (c *Client) CreateJob(ctx context.Context, queue string, body []byte) (Result, error) {
	u, err := c.projectURL("queues", queue, "jobs")
	if err != nil {
		return Result{}, err
	}
	return c.Post(ctx, u, body)
}

func (c *Client) DeleteJob(ctx context.Context, queue, id string) (Result, error) {
	u, err := c.projectURL("queues", queue, "jobs", id)
	if err != nil {
		return Result{}, err
	}
	return c.Delete(ctx, u)
}
