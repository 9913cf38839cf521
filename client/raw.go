package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/utils/strings/slices"
)

// Verbs accepted by Raw
var Verbs = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPatch,
	http.MethodPut,
	http.MethodDelete,
}

// Raw sends an arbitrary call to the public API. path is relative to the
// public base URL unless it is already an absolute URL. The API key is only
// attached when the absolute URL points at the public API host.
func (c *Client) Raw(ctx context.Context, method, path string, body []byte) (Result, error) {
	method = strings.ToUpper(method)
	if !slices.Contains(Verbs, method) {
		return Result{}, errors.Errorf("invalid verb %q, expected one of %s", method, strings.Join(Verbs, ", "))
	}

	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		return c.send(ctx, method, c.cfg.PublicURL+"/"+strings.TrimPrefix(path, "/"), body, nil)
	}

	target, err := url.Parse(path)
	if err != nil {
		return Result{}, errors.Wrapf(err, "invalid url %q", path)
	}
	var opts []RequestOption
	if !sameHost(target, c.cfg.PublicURL) {
		c.log.Debug().Str("host", target.Host).Msg("not the public API host, sending without api key")
		opts = append(opts, withoutAuth())
	}
	return c.send(ctx, method, path, body, opts)
}

func sameHost(target *url.URL, base string) bool {
	b, err := url.Parse(base)
	if err != nil {
		return false
	}
	return strings.EqualFold(target.Scheme, b.Scheme) && strings.EqualFold(target.Host, b.Host)
}
