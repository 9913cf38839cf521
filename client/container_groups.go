package client

import "context"

// ListContainerGroups makes a GET request to fetch all container groups in the project
func (c *Client) ListContainerGroups(ctx context.Context) (Result, error) {
	u, err := c.projectURL("containers")
	if err != nil {
		return Result{}, err
	}
	return c.Get(ctx, u)
}

func (c *Client) GetContainerGroup(ctx context.Context, name string) (Result, error) {
	u, err := c.projectURL("containers", name)
	if err != nil {
		return Result{}, err
	}
	return c.Get(ctx, u)
}

// CreateContainerGroup makes a POST request with a container group definition
func (c *Client) CreateContainerGroup(ctx context.Context, body []byte) (Result, error) {
	u, err := c.projectURL("containers")
	if err != nil {
		return Result{}, err
	}
	return c.Post(ctx, u, body)
}

// UpdateContainerGroup applies body as a JSON merge patch
func (c *Client) UpdateContainerGroup(ctx context.Context, name string, body []byte) (Result, error) {
	u, err := c.projectURL("containers", name)
	if err != nil {
		return Result{}, err
	}
	return c.Patch(ctx, u, body, WithHeader("Content-Type", mergePatchType))
}

func (c *Client) DeleteContainerGroup(ctx context.Context, name string) (Result, error) {
	u, err := c.projectURL("containers", name)
	if err != nil {
		return Result{}, err
	}
	return c.Delete(ctx, u)
}

func (c *Client) StartContainerGroup(ctx context.Context, name string) (Result, error) {
	u, err := c.projectURL("containers", name, "start")
	if err != nil {
		return Result{}, err
	}
	return c.Post(ctx, u, nil)
}

func (c *Client) StopContainerGroup(ctx context.Context, name string) (Result, error) {
	u, err := c.projectURL("containers", name, "stop")
	if err != nil {
		return Result{}, err
	}
	return c.Post(ctx, u, nil)
}
