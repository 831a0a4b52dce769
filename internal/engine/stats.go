package engine

import (
	"context"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/SanketKumarKar/FeelBack/internal/classify"
	"github.com/SanketKumarKar/FeelBack/internal/core/domain"
)

const (
	hoursPerDay     = 24
	topEmotionsMax  = 5
	percentageScale = 100
)

// UserStats reduces the user's history over the last days days into
// distribution and ranking summaries. With no matching entries every
// distribution is empty and the average confidence is zero.
func (e *Engine) UserStats(ctx context.Context, userID string, days int) (*domain.UserStats, error) {
	if days <= 0 {
		days = e.cfg.StatsDefaultDays
	}

	// Over-fetch beyond the window so TTL-surviving entries outside it can be
	// filtered out without a second round trip.
	entries, err := e.GetHistory(ctx, userID, e.cfg.StatsFetchLimit)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-time.Duration(days) * hoursPerDay * time.Hour)

	recent := entries[:0]

	for _, entry := range entries {
		if entry.Timestamp.After(cutoff) {
			recent = append(recent, entry)
		}
	}

	return aggregate(recent), nil
}

func aggregate(entries []domain.HistoryEntry) *domain.UserStats {
	stats := &domain.UserStats{
		TotalAnalyses:         len(entries),
		EmotionDistribution:   map[domain.Label]float64{},
		TopEmotions:           []domain.EmotionCount{},
		IntensityDistribution: map[domain.Intensity]float64{},
	}

	if len(entries) == 0 {
		return stats
	}

	total := float64(len(entries))
	confidences := make([]float64, 0, len(entries))
	emotionCounts := make(map[domain.Label]int)
	intensityCounts := make(map[domain.Intensity]int)

	for _, entry := range entries {
		confidences = append(confidences, entry.Confidence)
		emotionCounts[entry.Emotion]++
		intensityCounts[entry.Intensity]++
	}

	for label, count := range emotionCounts {
		stats.EmotionDistribution[label] = classify.Round2(float64(count) / total)
	}

	for intensity, count := range intensityCounts {
		stats.IntensityDistribution[intensity] = classify.Round2(float64(count) / total)
	}

	stats.AverageConfidence = classify.Round2(stat.Mean(confidences, nil))
	stats.TopEmotions = rankEmotions(emotionCounts, len(entries))

	return stats
}

// rankEmotions returns the top labels by raw count with an integer share of
// the total. Equal counts order alphabetically so the ranking is stable.
func rankEmotions(counts map[domain.Label]int, total int) []domain.EmotionCount {
	ranked := make([]domain.EmotionCount, 0, len(counts))

	for label, count := range counts {
		ranked = append(ranked, domain.EmotionCount{
			Emotion:    label,
			Count:      count,
			Percentage: count * percentageScale / total,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}

		return ranked[i].Emotion < ranked[j].Emotion
	})

	if len(ranked) > topEmotionsMax {
		ranked = ranked[:topEmotionsMax]
	}

	return ranked
}
