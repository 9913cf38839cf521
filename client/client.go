package client

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
	"github.com/rs/zerolog"
	"github.com/sce-tools/sce/pkg/config"
)

var (
	ErrMissingAPIKey       = errors.New("no api key: set SCE_APIKEY or write it to $SCE_CONFIG_DIR/apikey")
	ErrMissingOrganization = errors.New("no organization: pass -o or set SCE_ORGANIZATION_NAME")
	ErrMissingProject      = errors.New("no project: pass -p or set SCE_PROJECT_NAME")
	ErrMissingNodeURL      = errors.New("no node endpoint: set SCE_NODE_URL")
	ErrMissingNodeToken    = errors.New("no node token: set SCE_NODE_TOKEN")
	ErrNotLoggedIn         = errors.New("no portal session: run login first")
)

// Client issues calls against the public, portal and node APIs. Calls are
// strictly sequential; a Client is not meant to be shared between goroutines.
type Client struct {
	cfg   *config.Config
	http  *http.Client
	jar   *CookieJar
	diag  io.Writer
	log   zerolog.Logger
	stats metrics.Registry
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithDiagnostics sets where verbose echoes and dry-run commands are written.
func WithDiagnostics(w io.Writer) Option {
	return func(c *Client) { c.diag = w }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(cfg *config.Config, opts ...Option) (*Client, error) {
	c := &Client{
		cfg:   cfg,
		http:  &http.Client{},
		diag:  os.Stderr,
		log:   zerolog.Nop(),
		stats: metrics.NewRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}

	jar, err := LoadCookieJar(cfg.CookieJar)
	if err != nil {
		return nil, err
	}
	c.jar = jar

	return c, nil
}

// Summary reports the calls made so far, for verbose output.
func (c *Client) Summary() string {
	timer := metrics.GetOrRegisterTimer(callsMetric, c.stats)
	failed := metrics.GetOrRegisterCounter(failedMetric, c.stats)
	mean := time.Duration(timer.Mean())
	return fmt.Sprintf("%d calls, %d failed, mean %s", timer.Count(), failed.Count(), mean.Round(time.Millisecond))
}

// Calls returns the number of requests that reached the transport.
func (c *Client) Calls() int64 {
	return metrics.GetOrRegisterTimer(callsMetric, c.stats).Count()
}

func joinURL(base string, segments ...string) string {
	escaped := make([]string, 0, len(segments)+1)
	escaped = append(escaped, base)
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	return strings.Join(escaped, "/")
}

func (c *Client) orgURL(segments ...string) (string, error) {
	if c.cfg.Organization == "" {
		return "", ErrMissingOrganization
	}
	return joinURL(c.cfg.PublicURL, append([]string{"organizations", c.cfg.Organization}, segments...)...), nil
}

func (c *Client) projectURL(segments ...string) (string, error) {
	if c.cfg.Organization == "" {
		return "", ErrMissingOrganization
	}
	if c.cfg.Project == "" {
		return "", ErrMissingProject
	}
	return c.orgURL(append([]string{"projects", c.cfg.Project}, segments...)...)
}

func (c *Client) portalURL(segments ...string) string {
	return joinURL(c.cfg.PortalURL, segments...)
}

func (c *Client) nodeURL(segments ...string) (string, error) {
	if c.cfg.Node.URL == "" {
		return "", ErrMissingNodeURL
	}
	return joinURL(c.cfg.Node.URL, segments...), nil
}
