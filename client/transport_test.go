package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"github.com/sce-tools/sce/pkg/config"
)

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	return &config.Config{
		Organization: "acme",
		Project:      "render",
		APIKey:       "key-123",
		PublicURL:    baseURL,
		PortalURL:    baseURL + "/portal",
		CookieJar:    filepath.Join(t.TempDir(), "cookie-jar"),
		Node:         config.Node{URL: baseURL + "/node"},
	}
}

func newTestClient(t *testing.T, cfg *config.Config) (*Client, *bytes.Buffer) {
	t.Helper()
	var diag bytes.Buffer
	c, err := New(cfg, WithDiagnostics(&diag), WithHTTPClient(&http.Client{Timeout: 10 * time.Second}))
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return c, &diag
}

// newServerClient talks to srv through the server's own client.
func newServerClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := New(testConfig(t, srv.URL), WithDiagnostics(io.Discard), WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return c
}

func TestResultCapturesStatusAndBody(t *testing.T) {
	var gotKey, gotAccept, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Salad-Api-Key")
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"title":"not found"}`)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, testConfig(t, srv.URL))
	res, err := c.GetContainerGroup(context.Background(), "web")
	if err != nil {
		t.Fatalf("HTTP errors must not be returned as errors, got %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("status %d != 404", res.StatusCode)
	}
	if string(res.Body) != `{"title":"not found"}` {
		t.Errorf("unexpected body %q", res.Body)
	}
	if res.OK() {
		t.Errorf("404 must not be OK")
	}
	var statusErr *StatusError
	if !errors.As(res.Err(), &statusErr) {
		t.Errorf("expected a *StatusError, got %v", res.Err())
	}
	if gotKey != "key-123" {
		t.Errorf("api key header %q != %q", gotKey, "key-123")
	}
	if gotAccept != "application/json" {
		t.Errorf("accept header %q", gotAccept)
	}
	if gotPath != "/organizations/acme/projects/render/containers/web" {
		t.Errorf("unexpected path %q", gotPath)
	}
}

func TestSuccessSet(t *testing.T) {
	for code, ok := range map[int]bool{200: true, 201: true, 202: true, 204: true, 203: false, 301: false, 400: false, 500: false} {
		if got := (Result{StatusCode: code}).OK(); got != ok {
			t.Errorf("status %d: OK() = %v, want %v", code, got, ok)
		}
	}
}

func TestTransportFailureCarriesExitCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, _ := newTestClient(t, testConfig(t, url))
	_, err := c.ListQueues(context.Background())

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
	if terr.ExitCode != ExitConnect {
		t.Errorf("exit code %d != %d", terr.ExitCode, ExitConnect)
	}
}

func TestDryRunMakesNoCall(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ }))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	cfg.DryRun = true
	c, diag := newTestClient(t, cfg)

	res, err := c.CreateQueue(context.Background(), []byte(`{"name":"q1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.DryRun || !res.OK() {
		t.Errorf("expected a dry-run result, got %+v", res)
	}
	if hits != 0 {
		t.Errorf("dry-run made %d calls", hits)
	}
	out := diag.String()
	if !strings.HasPrefix(out, "+ curl -sS -X POST") {
		t.Errorf("unexpected dry-run output %q", out)
	}
	if !strings.Contains(out, srv.URL+"/organizations/acme/projects/render/queues") {
		t.Errorf("dry-run output misses the url: %q", out)
	}
	if strings.Contains(out, "key-123") {
		t.Errorf("dry-run output must not carry the api key: %q", out)
	}
}

func TestVerboseEchoesSecretHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"items":[]}`)
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	cfg.Verbose = true
	c, diag := newTestClient(t, cfg)

	if _, err := c.ListGPUClasses(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(diag.String(), "Salad-Api-Key: key-123") {
		t.Errorf("verbose output should include the api key header: %q", diag.String())
	}
	if !strings.Contains(diag.String(), "/organizations/acme/gpu-classes") {
		t.Errorf("verbose output should include the call line: %q", diag.String())
	}
	if !strings.HasPrefix(c.Summary(), "1 calls, 0 failed") {
		t.Errorf("unexpected summary %q", c.Summary())
	}
}

func TestPreconditionsAreCheckedBeforeCalling(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ }))
	defer srv.Close()

	cases := []struct {
		name   string
		modify func(*config.Config)
		want   error
	}{
		{"api key", func(c *config.Config) { c.APIKey = "" }, ErrMissingAPIKey},
		{"organization", func(c *config.Config) { c.Organization = "" }, ErrMissingOrganization},
		{"project", func(c *config.Config) { c.Project = "" }, ErrMissingProject},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t, srv.URL)
			tc.modify(cfg)
			c, _ := newTestClient(t, cfg)
			if _, err := c.ListContainerGroups(context.Background()); err != tc.want {
				t.Errorf("error %v != %v", err, tc.want)
			}
		})
	}
	if hits != 0 {
		t.Errorf("preconditions failures made %d calls", hits)
	}
}

func TestNodeBearerToken(t *testing.T) {
	var gotAuth string
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, `{"id":"n1"}`)
	}))
	defer srv.Close()

	sign := func(exp time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})
		s, err := token.SignedString([]byte("test"))
		if err != nil {
			t.Fatal(err)
		}
		return s
	}

	cfg := testConfig(t, srv.URL)
	cfg.Node.Token = sign(time.Now().Add(-time.Hour))
	c, _ := newTestClient(t, cfg)
	if _, err := c.GetNode(context.Background(), "n1"); err == nil || !strings.Contains(err.Error(), "expired") {
		t.Errorf("expected expiry error, got %v", err)
	}
	if hits != 0 {
		t.Fatalf("expired token must not be sent")
	}

	valid := sign(time.Now().Add(time.Hour))
	cfg.Node.Token = valid
	if _, err := c.GetNode(context.Background(), "n1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer "+valid {
		t.Errorf("authorization header %q", gotAuth)
	}

	cfg.Node.Token = "opaque-token"
	if _, err := c.GetNode(context.Background(), "n1"); err != nil {
		t.Fatalf("opaque tokens should pass: %v", err)
	}
}

func TestRaw(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
	}))
	defer srv.Close()

	c, _ := newTestClient(t, testConfig(t, srv.URL))
	if _, err := c.Raw(context.Background(), "put", "/organizations/acme", []byte(`{}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/organizations/acme" {
		t.Errorf("unexpected call %s %s", gotMethod, gotPath)
	}
	if _, err := c.Raw(context.Background(), "TRACE", "/", nil); err == nil {
		t.Errorf("expected invalid verb error")
	}
}

func TestRawAbsoluteURLKeepsKeyOnPublicHost(t *testing.T) {
	var publicKey string
	public := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		publicKey = r.Header.Get("Salad-Api-Key")
	}))
	defer public.Close()
	otherCalled := false
	var otherKey string
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		otherCalled = true
		otherKey = r.Header.Get("Salad-Api-Key")
	}))
	defer other.Close()

	c, _ := newTestClient(t, testConfig(t, public.URL))
	if _, err := c.Raw(context.Background(), "GET", public.URL+"/organizations/acme", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if publicKey != "key-123" {
		t.Errorf("public host should get the api key, got %q", publicKey)
	}

	if _, err := c.Raw(context.Background(), "GET", other.URL+"/anything", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !otherCalled {
		t.Fatal("other host was not called")
	}
	if otherKey != "" {
		t.Errorf("api key sent to a foreign host: %q", otherKey)
	}
}

func TestPathSegmentsAreEscaped(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
	}))
	defer srv.Close()

	c, _ := newTestClient(t, testConfig(t, srv.URL))
	if _, err := c.GetJob(context.Background(), "my queue", "a/b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/organizations/acme/projects/render/queues/my%20queue/jobs/a%2Fb" {
		t.Errorf("unexpected path %q", gotPath)
	}
}
