// Package classify scores normalized text against the fixed emotion label set
// and resolves the raw top score into an adjusted confidence and an intensity
// tier.
//
// The classifier is a multinomial naive Bayes model trained once on a
// hand-authored corpus. Training is lazy: the first Classify call triggers it,
// and concurrent first calls share a single training pass.
package classify

import (
	"fmt"
	"sync"

	"github.com/SanketKumarKar/FeelBack/internal/core/domain"
	apperrors "github.com/SanketKumarKar/FeelBack/internal/core/errors"
	"github.com/SanketKumarKar/FeelBack/internal/textprep"
)

// Score is one label with its normalized posterior.
type Score struct {
	Label domain.Label
	Value float64
}

// Classifier is a trainable multi-class text classifier over the emotion
// taxonomy. Safe for concurrent use after construction; the trained model is
// shared read-only.
type Classifier struct {
	once   sync.Once
	labels []domain.Label
	model  *naiveBayes
}

// New creates an untrained classifier. Call Initialize to train eagerly, or
// let the first Classify call train it.
func New() *Classifier {
	return &Classifier{labels: domain.TrainedLabels()}
}

// Initialize trains the model on the fixed corpus. Idempotent; concurrent
// callers await the same in-flight training rather than re-triggering it.
func (c *Classifier) Initialize() {
	c.once.Do(c.train)
}

func (c *Classifier) train() {
	model := newNaiveBayes(c.labels)

	for _, doc := range trainingCorpus() {
		model.train(document{text: textprep.Preprocess(doc.text), label: doc.label})
	}

	c.model = model
}

// Classify scores normalized text against every trained label. The returned
// slice is ordered by descending score; equal scores keep training
// enumeration order, so results are reproducible. Every value lies in (0, 1].
func (c *Classifier) Classify(normalizedText string) ([]Score, error) {
	c.Initialize()

	byLabel := c.model.scores(normalizedText)
	if len(byLabel) == 0 {
		return nil, fmt.Errorf("%w: model produced no scores", apperrors.ErrAnalysisFailed)
	}

	ordered := make([]Score, 0, len(c.labels))

	for _, label := range c.labels {
		value, ok := byLabel[label]
		if !ok {
			continue
		}

		ordered = append(ordered, Score{Label: label, Value: value})
	}

	// Insertion sort keeps the priority order stable for tied scores.
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j].Value > ordered[j-1].Value; j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}

	return ordered, nil
}
