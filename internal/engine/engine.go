// Package engine orchestrates emotion analysis: normalization, classification,
// confidence resolution, the optional result cache, and the history log.
//
// The engine exclusively owns the decision to read or write the store. Cache
// and history writes are best-effort: a store failure is logged and swallowed,
// never surfaced to the analyze caller.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SanketKumarKar/FeelBack/internal/classify"
	"github.com/SanketKumarKar/FeelBack/internal/core/domain"
	apperrors "github.com/SanketKumarKar/FeelBack/internal/core/errors"
	"github.com/SanketKumarKar/FeelBack/internal/core/ports"
	"github.com/SanketKumarKar/FeelBack/internal/platform/config"
	"github.com/SanketKumarKar/FeelBack/internal/platform/observability"
	"github.com/SanketKumarKar/FeelBack/internal/textprep"
)

const (
	statusComputed = "computed"
	statusCached   = "cached"
	statusError    = "error"

	logFieldUserID = "user_id"
	logFieldKey    = "key"
)

// Engine composes the normalizer, classifier, and resolver with the optional
// key-value store behind cache and history.
type Engine struct {
	cfg        *config.Config
	classifier *classify.Classifier
	store      ports.KeyValueStore
	logger     *zerolog.Logger
}

// New creates an engine. store may be nil, in which case every call degrades
// to stateless per-call analysis: no cache, no history.
func New(cfg *config.Config, classifier *classify.Classifier, store ports.KeyValueStore, logger *zerolog.Logger) *Engine {
	componentLogger := logger.With().Str("component", "engine").Logger()

	return &Engine{
		cfg:        cfg,
		classifier: classifier,
		store:      store,
		logger:     &componentLogger,
	}
}

// StoreEnabled reports whether a store is wired in.
func (e *Engine) StoreEnabled() bool {
	return e.store != nil
}

// Analyze runs one full analysis. Empty or oversized text fails with
// ErrInvalidInput; classifier failures surface as ErrAnalysisFailed. Store
// problems never fail the call.
func (e *Engine) Analyze(ctx context.Context, text, userID string) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text must be a non-empty string", apperrors.ErrInvalidInput)
	}

	if e.cfg.MaxTextLength > 0 && len([]rune(text)) > e.cfg.MaxTextLength {
		return nil, fmt.Errorf("%w: text exceeds %d characters", apperrors.ErrInvalidInput, e.cfg.MaxTextLength)
	}

	processed := textprep.Preprocess(text)
	features := textprep.ExtractFeatures(text)
	cacheKey := cacheKey(processed, userID)

	if cached := e.cacheLookup(ctx, cacheKey); cached != nil {
		observability.CacheHits.Inc()
		observability.AnalysesTotal.WithLabelValues(string(cached.Emotion), statusCached).Inc()

		return cached, nil
	}

	if e.StoreEnabled() {
		observability.CacheMisses.Inc()
	}

	result, err := e.compute(processed, features)
	if err != nil {
		observability.AnalysesTotal.WithLabelValues("", statusError).Inc()

		return nil, err
	}

	e.cacheStore(ctx, cacheKey, result)
	e.recordHistory(ctx, text, userID, result)

	observability.AnalysesTotal.WithLabelValues(string(result.Emotion), statusComputed).Inc()

	return result, nil
}

// compute runs the classifier and resolver on already-normalized input.
func (e *Engine) compute(processed string, features domain.FeatureVector) (*domain.AnalysisResult, error) {
	start := time.Now()

	scores, err := e.classifier.Classify(processed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrAnalysisFailed, err)
	}

	observability.ClassifyDuration.Observe(time.Since(start).Seconds())

	top := scores[0]

	allEmotions := make(map[domain.Label]float64, len(scores))
	for _, score := range scores {
		allEmotions[score.Label] = classify.Round2(score.Value)
	}

	confidence, intensity := classify.Resolve(top.Value, features)

	return &domain.AnalysisResult{
		Prediction: domain.Prediction{
			Emotion:     top.Label,
			Confidence:  confidence,
			AllEmotions: allEmotions,
			Intensity:   intensity,
		},
		ProcessedText: processed,
		Timestamp:     time.Now().UTC(),
		Cached:        false,
	}, nil
}

// cacheLookup returns a deep copy of the cached result with Cached flipped,
// or nil on miss, store failure, or disabled store.
func (e *Engine) cacheLookup(ctx context.Context, key string) *domain.AnalysisResult {
	if !e.StoreEnabled() {
		return nil
	}

	storeCtx, cancel := e.storeContext(ctx)
	defer cancel()

	raw, err := e.store.Get(storeCtx, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrCacheNotFound) {
			observability.StoreErrors.WithLabelValues("get").Inc()
			e.logger.Warn().Err(err).Str(logFieldKey, key).Msg("cache lookup failed")
		}

		return nil
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		e.logger.Warn().Err(err).Str(logFieldKey, key).Msg("corrupt cache entry ignored")

		return nil
	}

	result.Cached = true

	return &result
}

func (e *Engine) cacheStore(ctx context.Context, key string, result *domain.AnalysisResult) {
	if !e.StoreEnabled() {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		e.logger.Warn().Err(err).Msg("marshal result for cache failed")

		return
	}

	storeCtx, cancel := e.storeContext(ctx)
	defer cancel()

	if err := e.store.SetWithTTL(storeCtx, key, raw, e.cfg.CacheTTL); err != nil {
		observability.StoreErrors.WithLabelValues("set").Inc()
		e.logger.Warn().Err(err).Str(logFieldKey, key).Msg("cache write failed")
	}
}

// recordHistory appends one history entry. The entry ID is generated at write
// time; history outlives the cache so statistics keep working.
func (e *Engine) recordHistory(ctx context.Context, text, userID string, result *domain.AnalysisResult) {
	if !e.StoreEnabled() {
		return
	}

	entry := domain.HistoryEntry{
		ID:            uuid.NewString(),
		UserID:        userID,
		Text:          text,
		ProcessedText: result.ProcessedText,
		Emotion:       result.Emotion,
		Confidence:    result.Confidence,
		Intensity:     result.Intensity,
		AllEmotions:   result.AllEmotions,
		Timestamp:     result.Timestamp,
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		e.logger.Warn().Err(err).Msg("marshal history entry failed")

		return
	}

	key := historyKey(userID, entry.Timestamp, entry.ID)

	storeCtx, cancel := e.storeContext(ctx)
	defer cancel()

	if err := e.store.SetWithTTL(storeCtx, key, raw, e.cfg.HistoryTTL()); err != nil {
		observability.StoreErrors.WithLabelValues("set").Inc()
		e.logger.Warn().Err(err).Str(logFieldUserID, userID).Msg("history write failed")

		return
	}

	observability.HistoryEntriesWritten.Inc()
}

// GetHistory returns up to limit most-recent entries, newest first, filtered
// by user when userID is non-empty. An unavailable store yields an empty
// list, not an error.
func (e *Engine) GetHistory(ctx context.Context, userID string, limit int) ([]domain.HistoryEntry, error) {
	if !e.StoreEnabled() {
		return []domain.HistoryEntry{}, nil
	}

	if limit <= 0 {
		limit = e.cfg.HistoryDefaultLimit
	}

	keys := e.historyKeys(ctx, userID)

	entries := make([]domain.HistoryEntry, 0, limit)

	for _, key := range keys {
		if len(entries) >= limit {
			break
		}

		entry, ok := e.fetchHistoryEntry(ctx, key)
		if !ok {
			continue
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// historyKeys lists history keys for the user (or all users), newest first.
// Store failures degrade to an empty list.
func (e *Engine) historyKeys(ctx context.Context, userID string) []string {
	storeCtx, cancel := e.storeContext(ctx)
	defer cancel()

	keys, err := e.store.KeysByPrefix(storeCtx, historyPrefix(userID))
	if err != nil {
		observability.StoreErrors.WithLabelValues("keys").Inc()
		e.logger.Warn().Err(err).Str(logFieldUserID, userID).Msg("history key scan failed")

		return nil
	}

	sortHistoryKeysDesc(keys)

	return keys
}

func (e *Engine) fetchHistoryEntry(ctx context.Context, key string) (domain.HistoryEntry, bool) {
	storeCtx, cancel := e.storeContext(ctx)
	defer cancel()

	raw, err := e.store.Get(storeCtx, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrCacheNotFound) {
			observability.StoreErrors.WithLabelValues("get").Inc()
			e.logger.Warn().Err(err).Str(logFieldKey, key).Msg("history read failed")
		}

		return domain.HistoryEntry{}, false
	}

	var entry domain.HistoryEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		e.logger.Warn().Err(err).Str(logFieldKey, key).Msg("corrupt history entry skipped")

		return domain.HistoryEntry{}, false
	}

	return entry, true
}

// ClearHistory deletes all history entries for the user, or every entry when
// userID is empty. Zero matches and a disabled or failing store both yield a
// zero count, never an error.
func (e *Engine) ClearHistory(ctx context.Context, userID string) int64 {
	if !e.StoreEnabled() {
		return 0
	}

	storeCtx, cancel := e.storeContext(ctx)
	defer cancel()

	keys, err := e.store.KeysByPrefix(storeCtx, historyPrefix(userID))
	if err != nil {
		observability.StoreErrors.WithLabelValues("keys").Inc()
		e.logger.Warn().Err(err).Str(logFieldUserID, userID).Msg("history key scan failed")

		return 0
	}

	if len(keys) == 0 {
		return 0
	}

	deleteCtx, cancelDelete := e.storeContext(ctx)
	defer cancelDelete()

	deleted, err := e.store.DeleteMany(deleteCtx, keys)
	if err != nil {
		observability.StoreErrors.WithLabelValues("delete").Inc()
		e.logger.Warn().Err(err).Str(logFieldUserID, userID).Msg("history delete failed")

		return 0
	}

	observability.HistoryEntriesDeleted.Add(float64(deleted))

	return deleted
}

// storeContext bounds a store round trip so a slow store cannot block
// analysis indefinitely.
func (e *Engine) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := e.cfg.StoreTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	return context.WithTimeout(ctx, timeout)
}
