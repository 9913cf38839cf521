package client

import "context"

// ListProjects makes a GET request to fetch the projects of the organization
func (c *Client) ListProjects(ctx context.Context) (Result, error) {
	u, err := c.orgURL("projects")
	if err != nil {
		return Result{}, err
	}
	return c.Get(ctx, u)
}

// ListGPUClasses makes a GET request to fetch the GPU classes available to the organization
func (c *Client) ListGPUClasses(ctx context.Context) (Result, error) {
	u, err := c.orgURL("gpu-classes")
	if err != nil {
		return Result{}, err
	}
	return c.Get(ctx, u)
}
