package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestLoginPersistsSession(t *testing.T) {
	var gotCookie string
	var gotLogin loginRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/portal/users/login":
			if err := json.NewDecoder(r.Body).Decode(&gotLogin); err != nil {
				t.Errorf("bad login body: %v", err)
			}
			http.SetCookie(w, &http.Cookie{Name: "auth", Value: "s3ss10n", Path: "/", HttpOnly: true})
			w.WriteHeader(http.StatusOK)
		case "/portal/users/me":
			if ck, err := r.Cookie("auth"); err == nil {
				gotCookie = ck.Value
			}
			io.WriteString(w, `{"id":"u1","username":"ada","email":"ada@example.com"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	c, _ := newTestClient(t, cfg)
	if _, err := c.GetCurrentUser(context.Background()); err != ErrNotLoggedIn {
		t.Fatalf("expected ErrNotLoggedIn before login, got %v", err)
	}

	res, err := c.Login(context.Background(), "ada@example.com", "hunter2")
	if err != nil || !res.OK() {
		t.Fatalf("login failed: %v %d", err, res.StatusCode)
	}
	if gotLogin.Email != "ada@example.com" || gotLogin.Password != "hunter2" {
		t.Errorf("unexpected login body %+v", gotLogin)
	}

	data, err := os.ReadFile(cfg.CookieJar)
	if err != nil {
		t.Fatalf("cookie jar not written: %v", err)
	}
	if !strings.HasPrefix(string(data), cookieFileHeader) || !strings.Contains(string(data), "auth\ts3ss10n") {
		t.Errorf("unexpected cookie jar contents %q", data)
	}
	if info, err := os.Stat(cfg.CookieJar); err == nil && info.Mode().Perm() != 0o600 {
		t.Errorf("cookie jar mode %v", info.Mode().Perm())
	}

	// a fresh client picks the session up from disk
	c2, _ := newTestClient(t, cfg)
	res, err = c2.GetCurrentUser(context.Background())
	if err != nil || !res.OK() {
		t.Fatalf("whoami failed: %v %d", err, res.StatusCode)
	}
	if gotCookie != "s3ss10n" {
		t.Errorf("session cookie %q not sent", gotCookie)
	}
}

func TestLoadCookieJarSkipsExpiredAndComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookie-jar")
	future := time.Now().Add(time.Hour).Unix()
	lines := []string{
		cookieFileHeader,
		"# a comment",
		"",
		strings.Join([]string{"#HttpOnly_portal.example.com", "FALSE", "/", "FALSE", strconv.FormatInt(future, 10), "auth", "live"}, "\t"),
		strings.Join([]string{".example.com", "TRUE", "/", "FALSE", "0", "pref", "dark"}, "\t"),
		strings.Join([]string{"portal.example.com", "FALSE", "/", "FALSE", "1", "old", "gone"}, "\t"),
		"malformed line",
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600); err != nil {
		t.Fatal(err)
	}

	jar, err := LoadCookieJar(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, _ := url.Parse("http://portal.example.com/api/portal/users/me")
	got := map[string]string{}
	for _, ck := range jar.Cookies(u) {
		got[ck.Name] = ck.Value
	}
	if got["auth"] != "live" || got["pref"] != "dark" {
		t.Errorf("missing cookies, got %v", got)
	}
	if _, ok := got["old"]; ok {
		t.Errorf("expired cookie was loaded")
	}
}

func TestLoadCookieJarMissingFile(t *testing.T) {
	jar, err := LoadCookieJar(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing jar should not be an error: %v", err)
	}
	if !jar.Empty() {
		t.Errorf("expected an empty jar")
	}
}

func TestLogoutRemovesJar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	line := strings.Join([]string{"127.0.0.1", "FALSE", "/", "FALSE", "0", "auth", "x"}, "\t")
	if err := os.WriteFile(cfg.CookieJar, []byte(cookieFileHeader+"\n"+line+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	c, _ := newTestClient(t, cfg)
	if _, err := c.Logout(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(cfg.CookieJar); !os.IsNotExist(err) {
		t.Errorf("cookie jar should be removed, stat err = %v", err)
	}
}
