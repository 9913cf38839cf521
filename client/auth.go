package client

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login opens a portal session. On success the session cookie is written to
// the cookie jar file.
func (c *Client) Login(ctx context.Context, email, password string) (Result, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return Result{}, errors.Wrap(err, "error marshaling login request")
	}

	res, err := c.Post(ctx, c.portalURL("users", "login"), body, viaPortal())
	if err != nil || res.DryRun || !res.OK() {
		return res, err
	}
	if err := c.jar.Save(); err != nil {
		return res, err
	}
	return res, nil
}

// Logout ends the portal session and removes the cookie jar file.
func (c *Client) Logout(ctx context.Context) (Result, error) {
	if err := c.requireSession(); err != nil {
		return Result{}, err
	}
	res, err := c.Post(ctx, c.portalURL("users", "logout"), nil, viaPortal())
	if err != nil || res.DryRun {
		return res, err
	}
	return res, c.jar.Remove()
}

func (c *Client) GetCurrentUser(ctx context.Context) (Result, error) {
	if err := c.requireSession(); err != nil {
		return Result{}, err
	}
	return c.Get(ctx, c.portalURL("users", "me"), viaPortal())
}

func (c *Client) ListOrganizations(ctx context.Context) (Result, error) {
	if err := c.requireSession(); err != nil {
		return Result{}, err
	}
	return c.Get(ctx, c.portalURL("organizations"), viaPortal())
}

func (c *Client) requireSession() error {
	if c.cfg.DryRun || !c.jar.Empty() {
		return nil
	}
	return ErrNotLoggedIn
}
