package siasisten

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL = "https://siasisten.cs.ui.ac.id"
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.6533.100 Safari/537.36"
	acceptHTML     = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	formMIME       = "application/x-www-form-urlencoded"
)

// Client talks to one SIASISTEN instance. It never follows redirects: the
// login flow needs to see the 302 itself, and an authenticated page that
// redirects means the session is gone.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func NewClient(baseURL string, log zerolog.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return c
}

type request struct {
	op      string
	method  string
	path    string
	cookie  string
	referer string
	csrf    string
	form    url.Values
}

// do sends req and returns the response with its body still open. Transport
// failures are wrapped in ErrRemoteFetch; status handling is left to callers.
func (c *Client) do(ctx context.Context, req request) (*http.Response, error) {
	target := c.baseURL + req.path

	var body io.Reader
	if req.form != nil {
		body = strings.NewReader(req.form.Encode())
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%s: membuat request: %w", req.op, err)
	}

	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Accept", acceptHTML)
	httpReq.Header.Set("Accept-Language", "en-US")
	httpReq.Header.Set("Upgrade-Insecure-Requests", "1")
	if req.referer != "" {
		httpReq.Header.Set("Referer", req.referer)
	}
	if req.form != nil {
		httpReq.Header.Set("Content-Type", formMIME)
		httpReq.Header.Set("Origin", c.baseURL)
	}
	if req.cookie != "" {
		httpReq.Header.Set("Cookie", req.cookie)
	}
	if req.csrf != "" {
		httpReq.Header.Set("X-CSRFToken", req.csrf)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	PortalRequestDuration.WithLabelValues(req.op).Observe(time.Since(start).Seconds())
	if err != nil {
		PortalRequestsTotal.WithLabelValues(req.op, "transport").Inc()
		c.log.Warn().Err(err).Str("op", req.op).Str("url", target).Msg("request ke siasisten gagal")
		return nil, remoteError(req.op, err)
	}
	c.log.Debug().Str("op", req.op).Str("url", target).Int("status", resp.StatusCode).Msg("siasisten")
	return resp, nil
}

// fetchPage GETs an authenticated HTML page and hands its body to parse.
// Same-host redirects (Django's APPEND_SLASH) are followed a few times; a
// redirect to the login page means the session has expired.
func (c *Client) fetchPage(ctx context.Context, op, path string, creds Credentials, parse func(io.Reader) error) error {
	if !creds.Valid() {
		return ErrSessionMissing
	}

	for hops := 0; ; hops++ {
		resp, err := c.do(ctx, request{
			op:      op,
			method:  http.MethodGet,
			path:    path,
			cookie:  creds.CookieHeader(),
			referer: c.baseURL,
		})
		if err != nil {
			return err
		}

		if isRedirect(resp.StatusCode) && hops < maxPageRedirects {
			next, err := c.redirectPath(resp)
			resp.Body.Close()
			if err == nil && strings.HasPrefix(next, loginPath) {
				PortalRequestsTotal.WithLabelValues(op, "expired").Inc()
				return fmt.Errorf("%s: %w: sesi siasisten kedaluwarsa", op, ErrSessionMissing)
			}
			if err == nil {
				c.log.Debug().Str("op", op).Str("from", path).Str("to", next).Msg("mengikuti redirect siasisten")
				path = next
				continue
			}
			PortalRequestsTotal.WithLabelValues(op, "status").Inc()
			return remoteStatusError(op, resp.StatusCode, c.baseURL+path)
		}

		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			PortalRequestsTotal.WithLabelValues(op, "status").Inc()
			return remoteStatusError(op, resp.StatusCode, c.baseURL+path)
		}
		PortalRequestsTotal.WithLabelValues(op, "ok").Inc()
		return parse(resp.Body)
	}
}

const maxPageRedirects = 3

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

// redirectPath returns the path+query a redirect points to. Redirects off the
// portal's host are refused.
func (c *Client) redirectPath(resp *http.Response) (string, error) {
	loc, err := resp.Location()
	if err != nil {
		return "", err
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	if loc.Host != base.Host {
		return "", fmt.Errorf("redirect ke host lain: %s", loc.Host)
	}
	next := loc.RequestURI()
	if prefix := strings.TrimRight(base.Path, "/"); prefix != "" {
		next = strings.TrimPrefix(next, prefix)
	}
	return next, nil
}

// submit POSTs a state-changing form. The response body is not inspected;
// any status below 400 counts as accepted.
func (c *Client) submit(ctx context.Context, op, path string, creds Credentials, form url.Values) error {
	if !creds.Valid() {
		return ErrSessionMissing
	}
	form.Set("csrfmiddlewaretoken", creds.CSRFToken)
	resp, err := c.do(ctx, request{
		op:      op,
		method:  http.MethodPost,
		path:    path,
		cookie:  creds.CookieHeader(),
		referer: c.baseURL + path,
		csrf:    creds.CSRFToken,
		form:    form,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		PortalRequestsTotal.WithLabelValues(op, "status").Inc()
		return remoteStatusError(op, resp.StatusCode, c.baseURL+path)
	}
	PortalRequestsTotal.WithLabelValues(op, "ok").Inc()
	return nil
}
