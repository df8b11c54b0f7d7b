package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"siasistenApi/internal/finance"
	"siasistenApi/internal/siasisten"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps known error kinds to a status and a message that is safe
// to show in the dashboard's toast. Anything else is logged and hidden.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	code, msg := resolveError(err)
	if code >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request gagal")
	}
	c.AbortWithStatusJSON(code, errorResponse{Error: msg})
}

func resolveError(err error) (int, string) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return http.StatusBadRequest, validationMessage(ve)
	}

	var ae *siasisten.AuthError
	var pe *siasisten.ParseError
	switch {
	case errors.As(err, &ae):
		return http.StatusUnauthorized, ae.Error()
	case errors.Is(err, siasisten.ErrSessionMissing):
		return http.StatusUnauthorized, "sesi tidak ditemukan, silakan login ulang"
	case errors.Is(err, siasisten.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &pe):
		return http.StatusBadGateway, "halaman siasisten tidak bisa dibaca: " + pe.Error()
	case errors.Is(err, siasisten.ErrRemoteFetch):
		return http.StatusBadGateway, "gagal berkomunikasi dengan siasisten, coba lagi nanti"
	case errors.Is(err, finance.ErrCache):
		return http.StatusInternalServerError, "cache pembayaran gagal"
	}
	return http.StatusInternalServerError, "internal server error"
}
