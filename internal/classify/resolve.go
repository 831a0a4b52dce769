package classify

import (
	"math"

	"github.com/SanketKumarKar/FeelBack/internal/core/domain"
)

// Confidence adjustment boosts.
const (
	confExclamationBoost = 0.10
	confCapitalsBoost    = 0.05
	confIntensifierBoost = 0.10
	confEmotionalBoost   = 0.15
	shortTextPenalty     = 0.8
	shortTextWordCount   = 3
)

// Intensity score boosts and tier thresholds. These deliberately differ from
// the confidence boosts: confidence measures how sure the model is, intensity
// how strong the expressed emotion is.
const (
	intensityExclamationBoost = 0.10
	intensityCapitalsBoost    = 0.10
	intensityIntensifierBoost = 0.20
	intensityEmotionalBoost   = 0.15
	intensityHighThreshold    = 0.8
	intensityMediumThreshold  = 0.6
)

// Resolve adjusts the classifier's raw top score with the feature vector and
// buckets the result into an intensity tier. Pure function, no side effects.
//
// The short-text penalty applies after the additive boosts, not before.
func Resolve(rawScore float64, features domain.FeatureVector) (float64, domain.Intensity) {
	confidence := adjustConfidence(rawScore, features)

	return confidence, calculateIntensity(confidence, features)
}

func adjustConfidence(rawScore float64, features domain.FeatureVector) float64 {
	confidence := rawScore

	if features.HasExclamation {
		confidence += confExclamationBoost
	}

	if features.HasCapitalsRun {
		confidence += confCapitalsBoost
	}

	if features.HasIntensifier {
		confidence += confIntensifierBoost
	}

	if features.HasEmotionalWord {
		confidence += confEmotionalBoost
	}

	confidence = clamp01(confidence)

	if features.WordCount < shortTextWordCount {
		confidence *= shortTextPenalty
	}

	return Round2(confidence)
}

// calculateIntensity scores intensity from the adjusted confidence. Unlike
// the confidence adjustment there is no short-text penalty here.
func calculateIntensity(confidence float64, features domain.FeatureVector) domain.Intensity {
	score := confidence

	if features.HasExclamation {
		score += intensityExclamationBoost
	}

	if features.HasCapitalsRun {
		score += intensityCapitalsBoost
	}

	if features.HasIntensifier {
		score += intensityIntensifierBoost
	}

	if features.HasEmotionalWord {
		score += intensityEmotionalBoost
	}

	switch {
	case score >= intensityHighThreshold:
		return domain.IntensityHigh
	case score >= intensityMediumThreshold:
		return domain.IntensityMedium
	default:
		return domain.IntensityLow
	}
}

func clamp01(value float64) float64 {
	if value > 1 {
		return 1
	}

	if value < 0 {
		return 0
	}

	return value
}

// Round2 rounds to two decimal places, matching the precision of every
// exposed score.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
