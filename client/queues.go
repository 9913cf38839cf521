package client

import "context"

// ListQueues makes a GET request to fetch all job queues in the project
func (c *Client) ListQueues(ctx context.Context) (Result, error) {
	u, err := c.projectURL("queues")
	if err != nil {
		return Result{}, err
	}
	return c.Get(ctx, u)
}

func (c *Client) GetQueue(ctx context.Context, name string) (Result, error) {
	u, err := c.projectURL("queues", name)
	if err != nil {
		return Result{}, err
	}
	return c.Get(ctx, u)
}

func (c *Client) CreateQueue(ctx context.Context, body []byte) (Result, error) {
	u, err := c.projectURL("queues")
	if err != nil {
		return Result{}, err
	}
	return c.Post(ctx, u, body)
}

func (c *Client) UpdateQueue(ctx context.Context, name string, body []byte) (Result, error) {
	u, err := c.projectURL("queues", name)
	if err != nil {
		return Result{}, err
	}
	return c.Patch(ctx, u, body, WithHeader("Content-Type", mergePatchType))
}

func (c *Client) DeleteQueue(ctx context.Context, name string) (Result, error) {
	u, err := c.projectURL("queues", name)
	if err != nil {
		return Result{}, err
	}
	return c.Delete(ctx, u)
}
