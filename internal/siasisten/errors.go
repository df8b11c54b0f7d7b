package siasisten

import (
	"errors"
	"fmt"
)

var (
	ErrAuth           = errors.New("autentikasi siasisten gagal")
	ErrSessionMissing = errors.New("sessionid atau csrftoken tidak ditemukan")
	ErrRemoteFetch    = errors.New("gagal berkomunikasi dengan siasisten")
	ErrParse          = errors.New("struktur html siasisten tidak dikenali")
	ErrInvalidInput   = errors.New("input tidak valid")
)

// AuthError is returned by Login for every failure after the portal answered.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "login gagal: " + e.Reason
}

func (e *AuthError) Unwrap() error { return ErrAuth }

// ParseError points at the page, row and field where the markup did not match
// the expected shape. Row is 1-based over data rows; 0 means the table itself.
type ParseError struct {
	Page   PageKind
	Row    int
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	switch {
	case e.Row == 0 && e.Field == "":
		return fmt.Sprintf("%s: %s", e.Page, e.Reason)
	case e.Field == "":
		return fmt.Sprintf("%s baris %d: %s", e.Page, e.Row, e.Reason)
	default:
		return fmt.Sprintf("%s baris %d kolom %q: %s", e.Page, e.Row, e.Field, e.Reason)
	}
}

func (e *ParseError) Unwrap() error { return ErrParse }

func remoteError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrRemoteFetch, err)
}

func remoteStatusError(op string, status int, url string) error {
	return fmt.Errorf("%s: %w: status %d tidak terduga dari %s", op, ErrRemoteFetch, status, url)
}
