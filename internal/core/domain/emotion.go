package domain

import "time"

// Label identifies one emotion category. Labels are process-wide constants;
// the classifier is trained on the primary subset listed in TrainedLabels.
type Label string

// Primary emotions covered by the trained model.
const (
	Joy      Label = "joy"
	Sadness  Label = "sadness"
	Anger    Label = "anger"
	Fear     Label = "fear"
	Surprise Label = "surprise"
	Love     Label = "love"
	Neutral  Label = "neutral"
)

// Extended taxonomy. These labels are part of the public vocabulary but have
// no training data yet, so the classifier never emits them.
const (
	Disgust        Label = "disgust"
	Excitement     Label = "excitement"
	Contentment    Label = "contentment"
	Hope           Label = "hope"
	Pride          Label = "pride"
	Gratitude      Label = "gratitude"
	Anxiety        Label = "anxiety"
	Frustration    Label = "frustration"
	Disappointment Label = "disappointment"
	Loneliness     Label = "loneliness"
	Guilt          Label = "guilt"
	Shame          Label = "shame"
	Confusion      Label = "confusion"
	Curiosity      Label = "curiosity"
)

// TrainedLabels returns the labels the classifier scores, in training
// enumeration order. This order is also the tie-break priority.
func TrainedLabels() []Label {
	return []Label{Joy, Sadness, Anger, Fear, Surprise, Love, Neutral}
}

// Intensity is the bucketed strength of a detected emotion.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// FeatureVector holds lexical and stylistic signals extracted from one input
// text. Case and punctuation flags are computed on the original text, word
// flags on the normalized text. Never persisted; recomputed per request.
type FeatureVector struct {
	HasExclamation   bool
	HasQuestion      bool
	HasCapitalsRun   bool
	WordCount        int
	HasNegation      bool
	HasIntensifier   bool
	HasEmotionalWord bool
}

// Prediction is the combined output of the classifier and the resolver.
//
// AllEmotions carries the raw per-label scores; the score stored under
// Emotion is the raw top score, while Confidence is the feature-adjusted
// value and need not match it.
type Prediction struct {
	Emotion     Label             `json:"emotion"`
	Confidence  float64           `json:"confidence"`
	AllEmotions map[Label]float64 `json:"allEmotions"`
	Intensity   Intensity         `json:"intensity"`
}

// AnalysisResult is the caller-facing outcome of one analysis. Immutable
// after creation; cached copies are returned with Cached set to true.
type AnalysisResult struct {
	Prediction

	ProcessedText string    `json:"processedText"`
	Timestamp     time.Time `json:"timestamp"`
	Cached        bool      `json:"cached"`
}

// HistoryEntry is one recorded analysis. Written once per successful analyze
// call, never mutated, removed only by explicit clear or TTL expiry.
type HistoryEntry struct {
	ID            string            `json:"id"`
	UserID        string            `json:"userId,omitempty"`
	Text          string            `json:"text"`
	ProcessedText string            `json:"processedText"`
	Emotion       Label             `json:"emotion"`
	Confidence    float64           `json:"confidence"`
	Intensity     Intensity         `json:"intensity"`
	AllEmotions   map[Label]float64 `json:"allEmotions"`
	Timestamp     time.Time         `json:"timestamp"`
}

// EmotionCount is one entry of a top-emotions ranking.
type EmotionCount struct {
	Emotion    Label `json:"emotion"`
	Count      int   `json:"count"`
	Percentage int   `json:"percentage"`
}

// UserStats aggregates a user's history over a time window.
type UserStats struct {
	TotalAnalyses         int                   `json:"totalAnalyses"`
	EmotionDistribution   map[Label]float64     `json:"emotionDistribution"`
	AverageConfidence     float64               `json:"averageConfidence"`
	TopEmotions           []EmotionCount        `json:"topEmotions"`
	IntensityDistribution map[Intensity]float64 `json:"intensityDistribution"`
}
