package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
)

const (
	callsMetric  = "calls"
	failedMetric = "calls.failed"
)

// curl-compatible exit codes for connection-level failures
const (
	ExitGeneric      = 1
	ExitMalformedURL = 3
	ExitResolve      = 6
	ExitConnect      = 7
	ExitTimeout      = 28
	ExitTLS          = 35
	ExitRecv         = 56
	ExitCertificate  = 60
)

var (
	boldWhite   = color.New(color.FgHiWhite, color.Bold).SprintFunc()
	boldYellowf = color.New(color.FgYellow, color.Bold).SprintfFunc()
	green       = color.New(color.FgHiGreen).SprintFunc()
	red         = color.New(color.FgRed).SprintFunc()
	cyan        = color.New(color.FgCyan).SprintFunc()
)

// Result is everything one call produced. A non-success status is not an
// error at this layer; callers decide.
type Result struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Cookies    []*http.Cookie
	// DryRun marks a call that was printed instead of made.
	DryRun bool
}

func (r Result) OK() bool {
	if r.DryRun {
		return true
	}
	switch r.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		return true
	}
	return false
}

// Err returns a *StatusError when the status is outside the success set.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &StatusError{Result: r}
}

// TransportError is a failure to get any HTTP response at all.
type TransportError struct {
	Method   string
	URL      string
	ExitCode int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError carries a response whose status is outside the success set.
type StatusError struct {
	Result Result
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned HTTP %d", e.Result.Method, e.Result.URL, e.Result.StatusCode)
}

type authMode int

const (
	authPublic authMode = iota
	authPortal
	authNode
	// authNone sends no credentials, for hosts other than the configured APIs.
	authNone
)

type request struct {
	method string
	url    string
	header http.Header
	body   []byte
	auth   authMode
}

func (c *Client) do(ctx context.Context, r *request) (Result, error) {
	if c.cfg.Verbose {
		fmt.Fprintln(c.diag, cyan("> ")+c.curlCommand(r, true))
	}

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, r.url, body)
	if err != nil {
		return Result{}, &TransportError{Method: r.method, URL: r.url, ExitCode: ExitMalformedURL, Err: err}
	}
	req.Header = r.header.Clone()
	if r.auth == authPortal {
		for _, ck := range c.jar.Cookies(req.URL) {
			req.AddCookie(ck)
		}
	}

	c.log.Trace().Str("method", r.method).Str("url", r.url).Int("body_bytes", len(r.body)).Msg("sending request")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.GetOrRegisterTimer(callsMetric, c.stats).UpdateSince(start)
	if err != nil {
		terr := &TransportError{Method: r.method, URL: r.url, ExitCode: exitCodeFor(err), Err: err}
		c.log.Debug().Err(err).Int("exit_code", terr.ExitCode).Msg("transport failure")
		return Result{}, terr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &TransportError{Method: r.method, URL: r.url, ExitCode: ExitRecv, Err: errors.Wrap(err, "error reading response body")}
	}

	res := Result{
		Method:     r.method,
		URL:        r.url,
		StatusCode: resp.StatusCode,
		Body:       data,
		Cookies:    resp.Cookies(),
	}
	if !res.OK() {
		metrics.GetOrRegisterCounter(failedMetric, c.stats).Inc(1)
	}
	if r.auth == authPortal && len(res.Cookies) > 0 {
		c.jar.SetCookies(req.URL, res.Cookies)
	}

	latency := time.Since(start)
	c.log.Debug().
		Str("method", r.method).
		Str("url", r.url).
		Int("status", res.StatusCode).
		Dur("latency", latency).
		Msg("request complete")

	if c.cfg.Verbose {
		c.logCall(r.method, req.URL.Path, res.StatusCode, latency)
	}

	return res, nil
}

func (c *Client) logCall(method, path string, status int, latency time.Duration) {
	code := strconv.Itoa(status)
	if strings.HasPrefix(code, "2") {
		code = green(code)
	} else {
		code = red(code)
	}
	fmt.Fprintf(c.diag, "%s %s %s %.2fs\n",
		boldYellowf("%-6s", method),
		boldWhite(path),
		code,
		float64(latency)/float64(time.Second),
	)
}

// curlCommand renders the request as an equivalent curl invocation. The
// secret header is included only when withAuth is set.
func (c *Client) curlCommand(r *request, withAuth bool) string {
	parts := []string{"curl", "-sS", "-X", r.method}

	keys := make([]string, 0, len(r.header))
	for k := range r.header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !withAuth && isSecretHeader(k) {
			continue
		}
		for _, v := range r.header[k] {
			parts = append(parts, "-H", shSingleQuote(k+": "+v))
		}
	}
	if r.auth == authPortal && c.jar.Path() != "" {
		parts = append(parts, "-b", shSingleQuote(c.jar.Path()))
	}
	if r.body != nil {
		parts = append(parts, "-d", shSingleQuote(string(r.body)))
	}
	parts = append(parts, shSingleQuote(r.url))
	return strings.Join(parts, " ")
}

func isSecretHeader(k string) bool {
	k = http.CanonicalHeaderKey(k)
	return k == http.CanonicalHeaderKey(apiKeyHeader) || k == "Authorization"
}

// shSingleQuote wraps s in single quotes and escapes any embedded single quotes for POSIX shells.
func shSingleQuote(s string) string {
	if s == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(s, "'", "'\"'\"'") + "'"
}

func exitCodeFor(err error) int {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ExitResolve
	}

	var unknownAuthority x509.UnknownAuthorityError
	var hostname x509.HostnameError
	var invalid x509.CertificateInvalidError
	if errors.As(err, &unknownAuthority) || errors.As(err, &hostname) || errors.As(err, &invalid) {
		return ExitCertificate
	}

	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return ExitTLS
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ExitTimeout
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return ExitConnect
	}

	return ExitGeneric
}
