package client

import (
	"context"
	"net/url"
)

// ListNodes makes a GET request to the node API. filter is passed as query
// parameters and may be nil.
func (c *Client) ListNodes(ctx context.Context, filter url.Values) (Result, error) {
	u, err := c.nodeURL("nodes")
	if err != nil {
		return Result{}, err
	}
	return c.Get(ctx, u, viaNode(), WithQuery(filter))
}

func (c *Client) GetNode(ctx context.Context, id string) (Result, error) {
	u, err := c.nodeURL("nodes", id)
	if err != nil {
		return Result{}, err
	}
	return c.Get(ctx, u, viaNode())
}

// UpdateNode replaces the node's settings with body
func (c *Client) UpdateNode(ctx context.Context, id string, body []byte) (Result, error) {
	u, err := c.nodeURL("nodes", id)
	if err != nil {
		return Result{}, err
	}
	return c.Put(ctx, u, body, viaNode())
}
