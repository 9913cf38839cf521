package client

import (
	"bufio"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/net/publicsuffix"
)

const (
	cookieFileHeader = "# Netscape HTTP Cookie File"
	httpOnlyPrefix   = "#HttpOnly_"
)

// CookieJar is the portal session store. It is kept in the Netscape cookie
// file format so it stays interchangeable with curl's -b/-c.
type CookieJar struct {
	path    string
	jar     *cookiejar.Jar
	entries []cookieEntry
}

type cookieEntry struct {
	Domain            string
	IncludeSubdomains bool
	Path              string
	Secure            bool
	HTTPOnly          bool
	Expires           time.Time
	Name              string
	Value             string
}

// LoadCookieJar reads path if it exists. A missing file yields an empty jar.
func LoadCookieJar(path string) (*CookieJar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.Wrap(err, "could not create cookie jar")
	}
	cj := &CookieJar{path: path, jar: jar}
	if path == "" {
		return cj, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cj, nil
		}
		return nil, errors.Wrapf(err, "could not open cookie jar %s", path)
	}
	defer f.Close()

	now := time.Now()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		e, ok := parseCookieLine(scanner.Text())
		if !ok {
			continue
		}
		if !e.Expires.IsZero() && e.Expires.Before(now) {
			continue
		}
		cj.add(e)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "could not read cookie jar %s", path)
	}
	return cj, nil
}

func parseCookieLine(line string) (cookieEntry, bool) {
	line = strings.TrimRight(line, "\r\n")
	var e cookieEntry
	if strings.HasPrefix(line, httpOnlyPrefix) {
		e.HTTPOnly = true
		line = strings.TrimPrefix(line, httpOnlyPrefix)
	} else if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
		return e, false
	}

	fields := strings.Split(line, "\t")
	if len(fields) != 7 {
		return e, false
	}
	e.Domain = fields[0]
	e.IncludeSubdomains = strings.EqualFold(fields[1], "TRUE")
	e.Path = fields[2]
	e.Secure = strings.EqualFold(fields[3], "TRUE")
	if exp, err := strconv.ParseInt(fields[4], 10, 64); err == nil && exp > 0 {
		e.Expires = time.Unix(exp, 0)
	}
	e.Name = fields[5]
	e.Value = fields[6]
	return e, true
}

func (e cookieEntry) line() string {
	domain := e.Domain
	if e.HTTPOnly {
		domain = httpOnlyPrefix + domain
	}
	var exp int64
	if !e.Expires.IsZero() {
		exp = e.Expires.Unix()
	}
	return strings.Join([]string{
		domain,
		boolField(e.IncludeSubdomains),
		e.Path,
		boolField(e.Secure),
		strconv.FormatInt(exp, 10),
		e.Name,
		e.Value,
	}, "\t")
}

func boolField(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func (e cookieEntry) url() *url.URL {
	scheme := "http"
	if e.Secure {
		scheme = "https"
	}
	return &url.URL{Scheme: scheme, Host: strings.TrimPrefix(e.Domain, "."), Path: e.Path}
}

func (e cookieEntry) cookie() *http.Cookie {
	ck := &http.Cookie{
		Name:     e.Name,
		Value:    e.Value,
		Path:     e.Path,
		Secure:   e.Secure,
		HttpOnly: e.HTTPOnly,
		Expires:  e.Expires,
	}
	if e.IncludeSubdomains {
		ck.Domain = strings.TrimPrefix(e.Domain, ".")
	}
	return ck
}

func (cj *CookieJar) add(e cookieEntry) {
	for i, existing := range cj.entries {
		if existing.Domain == e.Domain && existing.Path == e.Path && existing.Name == e.Name {
			cj.entries[i] = e
			cj.jar.SetCookies(e.url(), []*http.Cookie{e.cookie()})
			return
		}
	}
	cj.entries = append(cj.entries, e)
	cj.jar.SetCookies(e.url(), []*http.Cookie{e.cookie()})
}

// SetCookies records cookies set by a response from u.
func (cj *CookieJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	now := time.Now()
	for _, ck := range cookies {
		e := cookieEntry{
			Domain:   u.Hostname(),
			Path:     ck.Path,
			Secure:   ck.Secure,
			HTTPOnly: ck.HttpOnly,
			Name:     ck.Name,
			Value:    ck.Value,
		}
		if ck.Domain != "" {
			e.Domain = "." + strings.TrimPrefix(ck.Domain, ".")
			e.IncludeSubdomains = true
		}
		if e.Path == "" {
			e.Path = "/"
		}
		switch {
		case ck.MaxAge > 0:
			e.Expires = now.Add(time.Duration(ck.MaxAge) * time.Second)
		case !ck.Expires.IsZero():
			e.Expires = ck.Expires
		}
		cj.add(e)
	}
}

// Cookies returns the cookies to send to u.
func (cj *CookieJar) Cookies(u *url.URL) []*http.Cookie {
	return cj.jar.Cookies(u)
}

func (cj *CookieJar) Path() string {
	return cj.path
}

func (cj *CookieJar) Empty() bool {
	return len(cj.entries) == 0
}

// Save writes the jar to its file, readable only by the owner.
func (cj *CookieJar) Save() error {
	if cj.path == "" {
		return errors.New("no cookie jar path configured")
	}
	if err := os.MkdirAll(filepath.Dir(cj.path), 0o700); err != nil {
		return errors.Wrapf(err, "could not create %s", filepath.Dir(cj.path))
	}

	var b strings.Builder
	fmt.Fprintln(&b, cookieFileHeader)
	for _, e := range cj.entries {
		fmt.Fprintln(&b, e.line())
	}
	if err := os.WriteFile(cj.path, []byte(b.String()), 0o600); err != nil {
		return errors.Wrapf(err, "could not write cookie jar %s", cj.path)
	}
	return nil
}

// Remove deletes the jar file and forgets every cookie.
func (cj *CookieJar) Remove() error {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return errors.Wrap(err, "could not reset cookie jar")
	}
	cj.jar = jar
	cj.entries = nil
	if cj.path == "" {
		return nil
	}
	if err := os.Remove(cj.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "could not remove cookie jar %s", cj.path)
	}
	return nil
}
