package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanketKumarKar/FeelBack/internal/classify"
	"github.com/SanketKumarKar/FeelBack/internal/core/domain"
	apperrors "github.com/SanketKumarKar/FeelBack/internal/core/errors"
	"github.com/SanketKumarKar/FeelBack/internal/core/ports"
	"github.com/SanketKumarKar/FeelBack/internal/core/ports/mocks"
	"github.com/SanketKumarKar/FeelBack/internal/platform/config"
)

var errStoreDown = errors.New("store down")

func testConfig() *config.Config {
	return &config.Config{
		CacheTTL:            time.Hour,
		HistoryTTLFactor:    24,
		StoreTimeout:        2 * time.Second,
		MaxTextLength:       5000,
		HistoryDefaultLimit: 50,
		StatsDefaultDays:    7,
		StatsFetchLimit:     1000,
	}
}

func newTestEngine(t *testing.T, store ports.KeyValueStore) *Engine {
	t.Helper()

	logger := zerolog.Nop()

	return New(testConfig(), classify.New(), store, &logger)
}

func TestAnalyzeInvalidInput(t *testing.T) {
	engine := newTestEngine(t, mocks.NewKeyValueStore())

	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace only", text: "   \t  "},
		{name: "too long", text: string(make([]rune, 5001))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Analyze(context.Background(), tt.text, "")

			assert.Nil(t, result)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}

func TestAnalyzeComputesResult(t *testing.T) {
	engine := newTestEngine(t, mocks.NewKeyValueStore())

	result, err := engine.Analyze(context.Background(), "I am so happy today!", "")
	require.NoError(t, err)

	assert.Equal(t, domain.Joy, result.Emotion)
	assert.False(t, result.Cached)
	assert.Equal(t, "i am so happy today!", result.ProcessedText)
	assert.Greater(t, result.Confidence, 0.5)
	assert.Len(t, result.AllEmotions, len(domain.TrainedLabels()))
	assert.False(t, result.Timestamp.IsZero())
}

func TestAnalyzeScenarios(t *testing.T) {
	engine := newTestEngine(t, nil)

	tests := []struct {
		name          string
		input         string
		emotion       domain.Label
		minConfidence float64
		intensity     domain.Intensity
	}{
		{
			name:          "devastated and heartbroken",
			input:         "I am so devastated and heartbroken",
			emotion:       domain.Sadness,
			minConfidence: 0.5,
		},
		{
			name:          "furious and livid",
			input:         "I am absolutely furious and livid!",
			emotion:       domain.Anger,
			minConfidence: 0.5,
			intensity:     domain.IntensityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Analyze(context.Background(), tt.input, "")
			require.NoError(t, err)

			assert.Equal(t, tt.emotion, result.Emotion)
			assert.Greater(t, result.Confidence, tt.minConfidence)

			if tt.intensity != "" {
				assert.Equal(t, tt.intensity, result.Intensity)
			}
		})
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	// No store, so every call recomputes from scratch.
	engine := newTestEngine(t, nil)

	first, err := engine.Analyze(context.Background(), "I am so happy but a little scared", "")
	require.NoError(t, err)

	second, err := engine.Analyze(context.Background(), "I am so happy but a little scared", "")
	require.NoError(t, err)

	assert.Equal(t, first.Emotion, second.Emotion)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.Intensity, second.Intensity)
	assert.Equal(t, first.AllEmotions, second.AllEmotions)
}

func TestAnalyzeCacheRoundTrip(t *testing.T) {
	store := mocks.NewKeyValueStore()
	engine := newTestEngine(t, store)

	first, err := engine.Analyze(context.Background(), "I am so happy today!", "")
	require.NoError(t, err)
	require.False(t, first.Cached)

	second, err := engine.Analyze(context.Background(), "I am so happy today!", "")
	require.NoError(t, err)

	assert.True(t, second.Cached)
	assert.Equal(t, first.Emotion, second.Emotion)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.ProcessedText, second.ProcessedText)
}

func TestAnalyzeCacheIsolatedPerUser(t *testing.T) {
	store := mocks.NewKeyValueStore()
	engine := newTestEngine(t, store)

	_, err := engine.Analyze(context.Background(), "I am so happy today!", "user-a")
	require.NoError(t, err)

	other, err := engine.Analyze(context.Background(), "I am so happy today!", "user-b")
	require.NoError(t, err)

	assert.False(t, other.Cached, "different users must not share cache entries")
}

func TestAnalyzeStoreFailuresAreSwallowed(t *testing.T) {
	store := mocks.NewKeyValueStore()
	store.GetFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, errStoreDown)
	}
	store.SetWithTTLFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		return fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, errStoreDown)
	}

	engine := newTestEngine(t, store)

	result, err := engine.Analyze(context.Background(), "I am so happy today!", "")
	require.NoError(t, err)

	assert.Equal(t, domain.Joy, result.Emotion)
	assert.False(t, result.Cached)
}

func TestAnalyzeWithoutStore(t *testing.T) {
	engine := newTestEngine(t, nil)

	assert.False(t, engine.StoreEnabled())

	result, err := engine.Analyze(context.Background(), "I am so happy today!", "")
	require.NoError(t, err)
	assert.Equal(t, domain.Joy, result.Emotion)

	again, err := engine.Analyze(context.Background(), "I am so happy today!", "")
	require.NoError(t, err)
	assert.False(t, again.Cached, "no store means no cache hits")
}

func TestGetHistoryNewestFirst(t *testing.T) {
	store := mocks.NewKeyValueStore()
	engine := newTestEngine(t, store)

	inputs := []string{
		"I am so happy today!",
		"I feel so sad and heartbroken",
		"I am furious and angry right now",
	}

	for _, input := range inputs {
		_, err := engine.Analyze(context.Background(), input, "user-a")
		require.NoError(t, err)
		// History keys embed write nanos; spacing avoids same-instant entries.
		time.Sleep(2 * time.Millisecond)
	}

	entries, err := engine.GetHistory(context.Background(), "user-a", 10)
	require.NoError(t, err)
	require.Len(t, entries, len(inputs))

	assert.Equal(t, domain.Anger, entries[0].Emotion)
	assert.Equal(t, domain.Sadness, entries[1].Emotion)
	assert.Equal(t, domain.Joy, entries[2].Emotion)

	for _, entry := range entries {
		assert.Equal(t, "user-a", entry.UserID)
		assert.NotEmpty(t, entry.ID)
		assert.NotEmpty(t, entry.Text)
	}
}

func TestGetHistoryRespectsLimit(t *testing.T) {
	store := mocks.NewKeyValueStore()
	engine := newTestEngine(t, store)

	for i := 0; i < 5; i++ {
		_, err := engine.Analyze(context.Background(), fmt.Sprintf("I am so happy today number %d!", i), "user-a")
		require.NoError(t, err)
	}

	entries, err := engine.GetHistory(context.Background(), "user-a", 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestGetHistoryScopesByUser(t *testing.T) {
	store := mocks.NewKeyValueStore()
	engine := newTestEngine(t, store)

	_, err := engine.Analyze(context.Background(), "I am so happy today!", "user-a")
	require.NoError(t, err)

	_, err = engine.Analyze(context.Background(), "I feel so sad today", "user-b")
	require.NoError(t, err)

	entries, err := engine.GetHistory(context.Background(), "user-a", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "user-a", entries[0].UserID)

	all, err := engine.GetHistory(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetHistoryStoreFailureReturnsEmpty(t *testing.T) {
	store := mocks.NewKeyValueStore()
	store.KeysByPrefixFn = func(_ context.Context, _ string) ([]string, error) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, errStoreDown)
	}

	engine := newTestEngine(t, store)

	entries, err := engine.GetHistory(context.Background(), "user-a", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetHistoryWithoutStore(t *testing.T) {
	engine := newTestEngine(t, nil)

	entries, err := engine.GetHistory(context.Background(), "user-a", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClearHistory(t *testing.T) {
	store := mocks.NewKeyValueStore()
	engine := newTestEngine(t, store)

	_, err := engine.Analyze(context.Background(), "I am so happy today!", "user-a")
	require.NoError(t, err)

	_, err = engine.Analyze(context.Background(), "I feel so sad today", "user-b")
	require.NoError(t, err)

	deleted := engine.ClearHistory(context.Background(), "user-a")
	assert.Equal(t, int64(1), deleted)

	remaining, err := engine.GetHistory(context.Background(), "", 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "user-b", remaining[0].UserID)
}

func TestClearHistoryAllUsers(t *testing.T) {
	store := mocks.NewKeyValueStore()
	engine := newTestEngine(t, store)

	_, err := engine.Analyze(context.Background(), "I am so happy today!", "user-a")
	require.NoError(t, err)

	_, err = engine.Analyze(context.Background(), "I feel so sad today", "")
	require.NoError(t, err)

	deleted := engine.ClearHistory(context.Background(), "")
	assert.Equal(t, int64(2), deleted)
}

func TestClearHistoryNothingToClear(t *testing.T) {
	engine := newTestEngine(t, mocks.NewKeyValueStore())

	assert.Zero(t, engine.ClearHistory(context.Background(), "user-a"))
}

func TestClearHistoryStoreFailure(t *testing.T) {
	store := mocks.NewKeyValueStore()
	store.DeleteManyFn = func(_ context.Context, _ []string) (int64, error) {
		return 0, fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, errStoreDown)
	}

	engine := newTestEngine(t, store)

	_, err := engine.Analyze(context.Background(), "I am so happy today!", "user-a")
	require.NoError(t, err)

	assert.Zero(t, engine.ClearHistory(context.Background(), "user-a"))
}

func TestClearHistoryKeepsCache(t *testing.T) {
	store := mocks.NewKeyValueStore()
	engine := newTestEngine(t, store)

	_, err := engine.Analyze(context.Background(), "I am so happy today!", "user-a")
	require.NoError(t, err)

	engine.ClearHistory(context.Background(), "user-a")

	result, err := engine.Analyze(context.Background(), "I am so happy today!", "user-a")
	require.NoError(t, err)
	assert.True(t, result.Cached, "clearing history must not evict cache entries")
}
