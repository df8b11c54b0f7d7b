package siasisten

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"regexp"
)

const loginPath = "/login/"

var reFormToken = regexp.MustCompile(`name=['"]csrfmiddlewaretoken['"] value=['"]([^'"]+)['"]`)

// Login runs the portal's double-submit login: read the csrftoken cookie and
// the hidden form token from the login page, post the credentials back and
// pick the sessionid cookie off the 302. The pre-login csrftoken is what the
// returned session keeps using.
func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	resp, err := c.do(ctx, request{op: "login_page", method: http.MethodGet, path: loginPath})
	if err != nil {
		return Session{}, err
	}
	page, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return Session{}, remoteError("login_page", err)
	}
	if resp.StatusCode != http.StatusOK {
		PortalRequestsTotal.WithLabelValues("login_page", "status").Inc()
		return Session{}, remoteStatusError("login_page", resp.StatusCode, c.baseURL+loginPath)
	}
	PortalRequestsTotal.WithLabelValues("login_page", "ok").Inc()

	csrfToken := findCookie(resp, cookieCSRF)
	if csrfToken == "" {
		return Session{}, &AuthError{Reason: "no csrf cookie"}
	}
	match := reFormToken.FindSubmatch(page)
	if match == nil {
		return Session{}, &AuthError{Reason: "no csrf form token"}
	}

	payload := url.Values{}
	payload.Set("csrfmiddlewaretoken", string(match[1]))
	payload.Set("username", username)
	payload.Set("password", password)
	payload.Set("next", "")

	resp, err = c.do(ctx, request{
		op:      "login_submit",
		method:  http.MethodPost,
		path:    loginPath,
		cookie:  (&http.Cookie{Name: cookieCSRF, Value: csrfToken}).String(),
		referer: c.baseURL + loginPath,
		form:    payload,
	})
	if err != nil {
		return Session{}, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		PortalRequestsTotal.WithLabelValues("login_submit", "status").Inc()
		return Session{}, remoteStatusError("login_submit", resp.StatusCode, c.baseURL+loginPath)
	}
	PortalRequestsTotal.WithLabelValues("login_submit", "ok").Inc()

	// the portal answers a rejected login with the form again (200)
	if resp.StatusCode != http.StatusFound {
		c.log.Info().Str("username", username).Int("status", resp.StatusCode).Msg("login ditolak siasisten")
		return Session{}, &AuthError{Reason: "invalid credentials"}
	}

	sessionID := findCookie(resp, cookieSession)
	if sessionID == "" {
		return Session{}, &AuthError{Reason: "no session cookie"}
	}

	return Session{Username: username, SessionID: sessionID, CSRFToken: csrfToken}, nil
}
