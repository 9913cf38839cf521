package client

import "context"

// ListInstances makes a GET request to fetch the servers running a container group
func (c *Client) ListInstances(ctx context.Context, containerGroup string) (Result, error) {
	u, err := c.projectURL("containers", containerGroup, "instances")
	if err != nil {
		return Result{}, err
	}
	return c.Get(ctx, u)
}

func (c *Client) ReallocateInstance(ctx context.Context, containerGroup, machineID string) (Result, error) {
	return c.instanceAction(ctx, containerGroup, machineID, "reallocate")
}

func (c *Client) RestartInstance(ctx context.Context, containerGroup, machineID string) (Result, error) {
	return c.instanceAction(ctx, containerGroup, machineID, "restart")
}

func (c *Client) RecreateInstance(ctx context.Context, containerGroup, machineID string) (Result, error) {
	return c.instanceAction(ctx, containerGroup, machineID, "recreate")
}

func (c *Client) instanceAction(ctx context.Context, containerGroup, machineID, action string) (Result, error) {
	u, err := c.projectURL("containers", containerGroup, "instances", machineID, action)
	if err != nil {
		return Result{}, err
	}
	return c.Post(ctx, u, nil)
}
