package siasisten

import (
	"net/http"
	"strings"
)

const (
	cookieSession = "sessionid"
	cookieCSRF    = "csrftoken"
)

// Credentials is the cookie pair the portal expects on every authenticated
// request.
type Credentials struct {
	SessionID string
	CSRFToken string
}

func (c Credentials) Valid() bool {
	return c.SessionID != "" && c.CSRFToken != ""
}

// CookieHeader renders the pair as a Cookie header value.
func (c Credentials) CookieHeader() string {
	return (&http.Cookie{Name: cookieSession, Value: c.SessionID}).String() + "; " +
		(&http.Cookie{Name: cookieCSRF, Value: c.CSRFToken}).String()
}

// ParseCookieHeader reads sessionid and csrftoken out of a Cookie header.
// Each "; " segment is read on its own, so a malformed or unrelated cookie
// next to the pair does not hide it. The first non-empty value wins.
func ParseCookieHeader(header string) (Credentials, error) {
	var creds Credentials
	for _, part := range strings.Split(header, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		if value == "" {
			continue
		}
		switch strings.TrimSpace(name) {
		case cookieSession:
			if creds.SessionID == "" {
				creds.SessionID = value
			}
		case cookieCSRF:
			if creds.CSRFToken == "" {
				creds.CSRFToken = value
			}
		}
	}
	if !creds.Valid() {
		return Credentials{}, ErrSessionMissing
	}
	return creds, nil
}

func findCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name && c.Value != "" {
			return c.Value
		}
	}
	return ""
}
