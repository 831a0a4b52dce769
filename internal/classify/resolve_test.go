package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SanketKumarKar/FeelBack/internal/core/domain"
)

func TestResolveConfidence(t *testing.T) {
	tests := []struct {
		name     string
		rawScore float64
		features domain.FeatureVector
		expected float64
	}{
		{
			name:     "no features no change",
			rawScore: 0.5,
			features: domain.FeatureVector{WordCount: 5},
			expected: 0.5,
		},
		{
			name:     "exclamation boost",
			rawScore: 0.5,
			features: domain.FeatureVector{HasExclamation: true, WordCount: 5},
			expected: 0.6,
		},
		{
			name:     "capitals boost",
			rawScore: 0.5,
			features: domain.FeatureVector{HasCapitalsRun: true, WordCount: 5},
			expected: 0.55,
		},
		{
			name:     "intensifier boost",
			rawScore: 0.5,
			features: domain.FeatureVector{HasIntensifier: true, WordCount: 5},
			expected: 0.6,
		},
		{
			name:     "emotional word boost",
			rawScore: 0.5,
			features: domain.FeatureVector{HasEmotionalWord: true, WordCount: 5},
			expected: 0.65,
		},
		{
			name:     "all boosts stack",
			rawScore: 0.5,
			features: domain.FeatureVector{
				HasExclamation:   true,
				HasCapitalsRun:   true,
				HasIntensifier:   true,
				HasEmotionalWord: true,
				WordCount:        5,
			},
			expected: 0.9,
		},
		{
			name:     "clamped at one",
			rawScore: 0.9,
			features: domain.FeatureVector{
				HasExclamation:   true,
				HasCapitalsRun:   true,
				HasIntensifier:   true,
				HasEmotionalWord: true,
				WordCount:        5,
			},
			expected: 1.0,
		},
		{
			name:     "short text penalty",
			rawScore: 0.5,
			features: domain.FeatureVector{WordCount: 2},
			expected: 0.4,
		},
		{
			name:     "penalty applies after clamp",
			rawScore: 0.95,
			features: domain.FeatureVector{HasExclamation: true, WordCount: 2},
			expected: 0.8,
		},
		{
			name:     "rounded to two decimals",
			rawScore: 0.333333,
			features: domain.FeatureVector{WordCount: 5},
			expected: 0.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confidence, _ := Resolve(tt.rawScore, tt.features)
			assert.InDelta(t, tt.expected, confidence, 1e-9)
		})
	}
}

func TestResolveIntensity(t *testing.T) {
	tests := []struct {
		name     string
		rawScore float64
		features domain.FeatureVector
		expected domain.Intensity
	}{
		{
			name:     "low without signals",
			rawScore: 0.5,
			features: domain.FeatureVector{WordCount: 5},
			expected: domain.IntensityLow,
		},
		{
			name:     "medium at threshold",
			rawScore: 0.5,
			features: domain.FeatureVector{HasExclamation: true, WordCount: 5},
			expected: domain.IntensityMedium,
		},
		{
			name:     "high with stacked signals",
			rawScore: 0.5,
			features: domain.FeatureVector{
				HasExclamation:   true,
				HasIntensifier:   true,
				HasEmotionalWord: true,
				WordCount:        5,
			},
			expected: domain.IntensityHigh,
		},
		{
			name:     "intensifier outweighs its confidence boost",
			rawScore: 0.5,
			features: domain.FeatureVector{HasIntensifier: true, WordCount: 5},
			expected: domain.IntensityHigh,
		},
		{
			name:     "short text penalty carries into intensity",
			rawScore: 0.7,
			features: domain.FeatureVector{WordCount: 2},
			expected: domain.IntensityLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, intensity := Resolve(tt.rawScore, tt.features)
			assert.Equal(t, tt.expected, intensity)
		})
	}
}
