package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"siasistenApi/internal/finance"
	"siasistenApi/internal/overlap"
	"siasistenApi/internal/siasisten"
)

const (
	defaultHistoryMonths = 12
	maxHistoryMonths     = 24
)

// The portal cookie does not say whose it is, so the payment cache key comes
// from the caller.
var errMissingUsername = fmt.Errorf("%w: username wajib diisi (field username atau header %s)", siasisten.ErrInvalidInput, headerUsername)

// Portal is the subset of *siasisten.Client the handlers use.
type Portal interface {
	Login(ctx context.Context, username, password string) (siasisten.Session, error)
	ListVacancies(ctx context.Context, creds siasisten.Credentials) ([]siasisten.Vacancy, error)
	ListLogs(ctx context.Context, creds siasisten.Credentials, vacancyID string) (siasisten.LogPage, error)
	ListActiveLogs(ctx context.Context, creds siasisten.Credentials) (siasisten.ActiveLogs, error)
	CreateLog(ctx context.Context, creds siasisten.Credentials, createID string, form siasisten.LogForm) error
	UpdateLog(ctx context.Context, creds siasisten.Credentials, logID string, form siasisten.LogForm) error
	DeleteLog(ctx context.Context, creds siasisten.Credentials, logID string) error
}

// Payments is the subset of *finance.Service the handlers use.
type Payments interface {
	GetMonth(ctx context.Context, username string, creds siasisten.Credentials, year, month int) ([]siasisten.FinanceRecord, error)
	History(ctx context.Context, username string, creds siasisten.Credentials, months int) ([]siasisten.FinanceRecord, error)
}

type Handler struct {
	portal   Portal
	payments Payments
	log      zerolog.Logger
}

func NewHandler(portal Portal, payments Payments, log zerolog.Logger) *Handler {
	return &Handler{portal: portal, payments: payments, log: log}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Success bool              `json:"success"`
	User    siasisten.Session `json:"user"`
}

type LoginFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type FinanceRequest struct {
	Username string `json:"username"`
	Year     int    `json:"year" binding:"required,min=2000,max=2100"`
	Month    int    `json:"month" binding:"required,min=1,max=12"`
}

type ActiveLogsResponse struct {
	siasisten.ActiveLogs
	Overlaps []overlap.Pair `json:"overlaps"`
}

// @Summary Login ke SIASISTEN
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Kredensial SSO"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} LoginFailure
// @Failure 401 {object} LoginFailure
// @Failure 502 {object} LoginFailure
// @Router /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, LoginFailure{Error: "username dan password wajib diisi"})
		return
	}

	h.log.Info().Str("username", req.Username).Msg("mencoba login ke siasisten")
	sess, err := h.portal.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		code, msg := resolveError(err)
		if code >= http.StatusInternalServerError {
			h.log.Error().Err(err).Str("username", req.Username).Msg("login gagal")
		}
		c.JSON(code, LoginFailure{Error: msg})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Success: true, User: sess})
}

// @Summary Daftar lowongan asisten
// @Tags Log
// @Produce json
// @Success 200 {array} siasisten.Vacancy
// @Failure 401 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /vacancies [get]
// @Security SessionCookie
func (h *Handler) ListVacancies(c *gin.Context) {
	vacancies, err := h.portal.ListVacancies(c.Request.Context(), credentials(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, vacancies)
}

// @Summary Log sebuah lowongan
// @Tags Log
// @Produce json
// @Param id path string true "LogID lowongan"
// @Success 200 {object} siasisten.LogPage
// @Failure 401 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /logs/{id} [get]
// @Security SessionCookie
func (h *Handler) ListLogs(c *gin.Context) {
	page, err := h.portal.ListLogs(c.Request.Context(), credentials(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Semua log semester aktif beserta jadwal yang bertabrakan
// @Tags Log
// @Produce json
// @Success 200 {object} ActiveLogsResponse
// @Failure 401 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /logs [get]
// @Security SessionCookie
func (h *Handler) ListActiveLogs(c *gin.Context) {
	active, err := h.portal.ListActiveLogs(c.Request.Context(), credentials(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	pairs, err := overlap.Find(active.Logs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if active.Logs == nil {
		active.Logs = []siasisten.ActivityLog{}
	}
	c.JSON(http.StatusOK, ActiveLogsResponse{ActiveLogs: active, Overlaps: pairs})
}

// @Summary Pasangan log yang waktunya bertabrakan
// @Tags Log
// @Produce json
// @Success 200 {array} overlap.Pair
// @Failure 401 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /logs/overlaps [get]
// @Security SessionCookie
func (h *Handler) ListOverlaps(c *gin.Context) {
	active, err := h.portal.ListActiveLogs(c.Request.Context(), credentials(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	pairs, err := overlap.Find(active.Logs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, pairs)
}

// @Summary Buat log baru
// @Tags Log
// @Accept json
// @Produce json
// @Param id path string true "Create Log Link ID"
// @Param body body siasisten.LogForm true "Isi log"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /logs/{id} [post]
// @Security SessionCookie
func (h *Handler) CreateLog(c *gin.Context) {
	form, ok := h.bindLogForm(c)
	if !ok {
		return
	}
	if err := h.portal.CreateLog(c.Request.Context(), credentials(c), c.Param("id"), form); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Ubah log
// @Tags Log
// @Accept json
// @Produce json
// @Param id path string true "LogID"
// @Param body body siasisten.LogForm true "Isi log"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /logs/{id} [put]
// @Security SessionCookie
func (h *Handler) UpdateLog(c *gin.Context) {
	form, ok := h.bindLogForm(c)
	if !ok {
		return
	}
	if err := h.portal.UpdateLog(c.Request.Context(), credentials(c), c.Param("id"), form); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Hapus log
// @Tags Log
// @Produce json
// @Param id path string true "LogID"
// @Success 200 {object} map[string]bool
// @Failure 502 {object} errorResponse
// @Router /logs/{id} [delete]
// @Security SessionCookie
func (h *Handler) DeleteLog(c *gin.Context) {
	if err := h.portal.DeleteLog(c.Request.Context(), credentials(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) bindLogForm(c *gin.Context) (siasisten.LogForm, bool) {
	var form siasisten.LogForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "JSON tidak valid: " + err.Error()})
		return form, false
	}
	if err := form.Validate(); err != nil {
		respondError(c, h.log, err)
		return form, false
	}
	return form, true
}

// @Summary Pembayaran satu bulan
// @Tags Finance
// @Accept json
// @Produce json
// @Param body body FinanceRequest true "Tahun dan bulan"
// @Success 200 {array} siasisten.FinanceRecord
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /finance [post]
// @Security SessionCookie
func (h *Handler) GetFinance(c *gin.Context) {
	var req FinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "tahun dan bulan wajib diisi dengan benar"})
		return
	}
	username := req.Username
	if username == "" {
		username = c.GetString(ctxUsername)
	}
	if username == "" {
		respondError(c, h.log, errMissingUsername)
		return
	}

	rows, err := h.payments.GetMonth(c.Request.Context(), username, credentials(c), req.Year, req.Month)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Riwayat pembayaran beberapa bulan terakhir
// @Tags Finance
// @Produce json
// @Param months query int false "Jumlah bulan (default 12, maks 24)"
// @Success 200 {array} siasisten.FinanceRecord
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /finance/history [get]
// @Security SessionCookie
func (h *Handler) GetFinanceHistory(c *gin.Context) {
	rows, ok := h.history(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Ringkasan pembayaran
// @Tags Finance
// @Produce json
// @Param months query int false "Jumlah bulan (default 12, maks 24)"
// @Success 200 {object} finance.Stats
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /finance/stats [get]
// @Security SessionCookie
func (h *Handler) GetFinanceStats(c *gin.Context) {
	rows, ok := h.history(c)
	if !ok {
		return
	}
	stats, err := finance.Summarize(rows)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) history(c *gin.Context) ([]siasisten.FinanceRecord, bool) {
	months := defaultHistoryMonths
	if raw := c.Query("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryMonths {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "months harus antara 1 dan 24"})
			return nil, false
		}
		months = n
	}

	username := c.GetString(ctxUsername)
	if username == "" {
		respondError(c, h.log, errMissingUsername)
		return nil, false
	}

	rows, err := h.payments.History(c.Request.Context(), username, credentials(c), months)
	if err != nil {
		respondError(c, h.log, err)
		return nil, false
	}
	return rows, true
}
