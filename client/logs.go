package client

import "context"

// CreateLogToken asks the portal for a short-lived token to read a container
// group's logs.
func (c *Client) CreateLogToken(ctx context.Context, containerGroup string) (Result, error) {
	if c.cfg.Organization == "" {
		return Result{}, ErrMissingOrganization
	}
	if c.cfg.Project == "" {
		return Result{}, ErrMissingProject
	}
	if err := c.requireSession(); err != nil {
		return Result{}, err
	}
	u := c.portalURL("organizations", c.cfg.Organization, "projects", c.cfg.Project,
		"containers", containerGroup, "log-token")
	return c.Post(ctx, u, nil, viaPortal())
}
