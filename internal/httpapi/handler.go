// Package httpapi exposes the emotion engine over a JSON HTTP API:
// analyze, history, stats, and clear-history.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/SanketKumarKar/FeelBack/internal/core/domain"
	apperrors "github.com/SanketKumarKar/FeelBack/internal/core/errors"
	"github.com/SanketKumarKar/FeelBack/internal/engine"
	"github.com/SanketKumarKar/FeelBack/internal/platform/config"
	"github.com/SanketKumarKar/FeelBack/internal/platform/observability"
)

const headerContentType = "Content-Type"

// Clear-history response messages.
const (
	msgStoreDisabled  = "History store is not enabled."
	msgHistoryCleared = "Emotion history cleared."
	msgNothingToClear = "No emotion history to clear."
)

// Handler routes the emotion API.
type Handler struct {
	cfg    *config.Config
	engine *engine.Engine
	logger *zerolog.Logger

	// IP-based rate limiting on the analyze endpoint.
	limiters   map[string]*rate.Limiter
	limitersMu sync.Mutex
}

// NewHandler creates the API handler.
func NewHandler(cfg *config.Config, eng *engine.Engine, logger *zerolog.Logger) *Handler {
	componentLogger := logger.With().Str("component", "httpapi").Logger()

	return &Handler{
		cfg:      cfg,
		engine:   eng,
		logger:   &componentLogger,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Router returns the HTTP mux for the emotion API.
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /emotions/analyze", h.instrument("analyze", h.handleAnalyze))
	mux.HandleFunc("GET /emotions/history", h.instrument("history", h.handleHistory))
	mux.HandleFunc("GET /emotions/stats", h.instrument("stats", h.handleStats))
	mux.HandleFunc("POST /emotions/clear-history", h.instrument("clear_history", h.handleClearHistory))

	return mux
}

// instrument wraps a handler with request metrics.
func (h *Handler) instrument(endpoint string, next func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(recorder, r)

		observability.APIRequests.WithLabelValues(endpoint, strconv.Itoa(recorder.status)).Inc()
		observability.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}

type analyzeRequest struct {
	Text   string `json:"text"`
	UserID string `json:"userId,omitempty"`
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !h.allowRequest(clientIP(r)) {
		h.writeError(w, http.StatusTooManyRequests, "too many requests")

		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")

		return
	}

	if req.UserID != "" {
		if _, err := uuid.Parse(req.UserID); err != nil {
			h.writeError(w, http.StatusBadRequest, "userId must be a valid UUID")

			return
		}
	}

	result, err := h.engine.Analyze(r.Context(), req.Text, req.UserID)
	if err != nil {
		h.writeAnalyzeError(w, err)

		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) writeAnalyzeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("analysis failed")
		h.writeError(w, http.StatusInternalServerError, "emotion analysis failed")
	}
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	userID := query.Get("userId")

	limit := h.cfg.HistoryDefaultLimit
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.writeError(w, http.StatusBadRequest, "limit must be a positive integer")

			return
		}

		limit = parsed
	}

	since, until, err := parseTimeBounds(query.Get("since"), query.Get("until"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	entries, err := h.engine.GetHistory(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("history fetch failed")
		h.writeError(w, http.StatusInternalServerError, "history fetch failed")

		return
	}

	h.writeJSON(w, http.StatusOK, filterByTime(entries, since, until))
}

// parseTimeBounds parses the optional since/until filters. Any format
// dateparse understands is accepted.
func parseTimeBounds(sinceRaw, untilRaw string) (time.Time, time.Time, error) {
	var since, until time.Time

	if sinceRaw != "" {
		parsed, err := dateparse.ParseAny(sinceRaw)
		if err != nil {
			return since, until, errors.New("since is not a recognizable date")
		}

		since = parsed
	}

	if untilRaw != "" {
		parsed, err := dateparse.ParseAny(untilRaw)
		if err != nil {
			return since, until, errors.New("until is not a recognizable date")
		}

		until = parsed
	}

	return since, until, nil
}

func filterByTime(entries []domain.HistoryEntry, since, until time.Time) []domain.HistoryEntry {
	if since.IsZero() && until.IsZero() {
		return entries
	}

	filtered := make([]domain.HistoryEntry, 0, len(entries))

	for _, entry := range entries {
		if !since.IsZero() && entry.Timestamp.Before(since) {
			continue
		}

		if !until.IsZero() && entry.Timestamp.After(until) {
			continue
		}

		filtered = append(filtered, entry)
	}

	return filtered
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	userID := query.Get("userId")
	if userID == "" {
		h.writeError(w, http.StatusBadRequest, "userId is required")

		return
	}

	days := h.cfg.StatsDefaultDays

	if raw := query.Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.writeError(w, http.StatusBadRequest, "days must be a positive integer")

			return
		}

		days = parsed
	}

	stats, err := h.engine.UserStats(r.Context(), userID, days)
	if err != nil {
		h.logger.Error().Err(err).Msg("stats aggregation failed")
		h.writeError(w, http.StatusInternalServerError, "stats aggregation failed")

		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

type clearHistoryRequest struct {
	UserID string `json:"userId,omitempty"`
}

type clearHistoryResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

func (h *Handler) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	var req clearHistoryRequest

	// An empty body means "clear everything".
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")

		return
	}

	if !h.engine.StoreEnabled() {
		h.writeJSON(w, http.StatusOK, clearHistoryResponse{Message: msgStoreDisabled, DeletedCount: 0})

		return
	}

	deleted := h.engine.ClearHistory(r.Context(), req.UserID)

	message := msgHistoryCleared
	if deleted == 0 {
		message = msgNothingToClear
	}

	h.writeJSON(w, http.StatusOK, clearHistoryResponse{Message: message, DeletedCount: deleted})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set(headerContentType, "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn().Err(err).Msg("write response failed")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// allowRequest applies a per-client token bucket.
func (h *Handler) allowRequest(clientIP string) bool {
	h.limitersMu.Lock()
	defer h.limitersMu.Unlock()

	limiter, ok := h.limiters[clientIP]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(h.cfg.RateLimitRPS), h.cfg.RateLimitBurst)
		h.limiters[clientIP] = limiter
	}

	return limiter.Allow()
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")

		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
