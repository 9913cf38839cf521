package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	apiKeyHeader   = "Salad-Api-Key"
	mergePatchType = "application/merge-patch+json"
)

type RequestOption func(*request)

func WithHeader(key, value string) RequestOption {
	return func(r *request) { r.header.Set(key, value) }
}

func WithQuery(q url.Values) RequestOption {
	return func(r *request) {
		if len(q) == 0 {
			return
		}
		u, err := url.Parse(r.url)
		if err != nil {
			return
		}
		existing := u.Query()
		for k, vs := range q {
			for _, v := range vs {
				existing.Add(k, v)
			}
		}
		u.RawQuery = existing.Encode()
		r.url = u.String()
	}
}

func viaPortal() RequestOption {
	return func(r *request) { r.auth = authPortal }
}

func viaNode() RequestOption {
	return func(r *request) { r.auth = authNode }
}

func withoutAuth() RequestOption {
	return func(r *request) { r.auth = authNone }
}

func (c *Client) Get(ctx context.Context, u string, opts ...RequestOption) (Result, error) {
	return c.send(ctx, http.MethodGet, u, nil, opts)
}

func (c *Client) Post(ctx context.Context, u string, body []byte, opts ...RequestOption) (Result, error) {
	return c.send(ctx, http.MethodPost, u, body, opts)
}

func (c *Client) Patch(ctx context.Context, u string, body []byte, opts ...RequestOption) (Result, error) {
	return c.send(ctx, http.MethodPatch, u, body, opts)
}

func (c *Client) Put(ctx context.Context, u string, body []byte, opts ...RequestOption) (Result, error) {
	return c.send(ctx, http.MethodPut, u, body, opts)
}

func (c *Client) Delete(ctx context.Context, u string, opts ...RequestOption) (Result, error) {
	return c.send(ctx, http.MethodDelete, u, nil, opts)
}

func (c *Client) send(ctx context.Context, method, u string, body []byte, opts []RequestOption) (Result, error) {
	r := &request{
		method: method,
		url:    u,
		header: http.Header{},
		body:   body,
		auth:   authPublic,
	}
	r.header.Set("Accept", "application/json")
	r.header.Set("Content-Type", "application/json")
	for _, opt := range opts {
		opt(r)
	}

	if c.cfg.DryRun {
		fmt.Fprintln(c.diag, "+ "+c.curlCommand(r, false))
		return Result{Method: r.method, URL: r.url, DryRun: true}, nil
	}

	if err := c.authorize(r); err != nil {
		return Result{}, err
	}
	return c.do(ctx, r)
}

func (c *Client) authorize(r *request) error {
	switch r.auth {
	case authPublic:
		if c.cfg.APIKey == "" {
			return ErrMissingAPIKey
		}
		r.header.Set(apiKeyHeader, c.cfg.APIKey)
	case authNode:
		if c.cfg.Node.Token == "" {
			return ErrMissingNodeToken
		}
		if err := checkTokenExpiry(c.cfg.Node.Token); err != nil {
			return err
		}
		r.header.Set("Authorization", "Bearer "+c.cfg.Node.Token)
	}
	return nil
}

// checkTokenExpiry rejects JWT bearer tokens that have already expired. The
// signature is not verified here; the node API does that. Opaque tokens pass.
func checkTokenExpiry(token string) error {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return errors.Errorf("node token expired at %s", claims.ExpiresAt.Time.Format(time.RFC3339))
	}
	return nil
}
