package classify

import (
	"math"
	"strings"
	"unicode"

	"github.com/SanketKumarKar/FeelBack/internal/core/domain"
)

// document is a labeled training sample.
type document struct {
	text  string
	label domain.Label
}

// naiveBayes implements a multinomial naive Bayes model with Laplace
// smoothing. Inference is fully deterministic: scores are computed per label
// in training enumeration order and no map iteration affects the output.
type naiveBayes struct {
	labels      []domain.Label
	docCounts   map[domain.Label]int
	tokenCounts map[domain.Label]map[string]int
	totalTokens map[domain.Label]int
	vocabulary  map[string]struct{}
	totalDocs   int
}

func newNaiveBayes(labels []domain.Label) *naiveBayes {
	return &naiveBayes{
		labels:      labels,
		docCounts:   make(map[domain.Label]int),
		tokenCounts: make(map[domain.Label]map[string]int),
		totalTokens: make(map[domain.Label]int),
		vocabulary:  make(map[string]struct{}),
	}
}

// train ingests one labeled document and updates internal counts.
func (nb *naiveBayes) train(doc document) {
	nb.totalDocs++
	nb.docCounts[doc.label]++

	if _, ok := nb.tokenCounts[doc.label]; !ok {
		nb.tokenCounts[doc.label] = make(map[string]int)
	}

	for _, token := range tokenize(doc.text) {
		nb.vocabulary[token] = struct{}{}
		nb.tokenCounts[doc.label][token]++
		nb.totalTokens[doc.label]++
	}
}

// scores returns the per-label posterior, normalized so every value lies in
// (0, 1]. The shift by the max log-posterior keeps the exponentiation stable.
func (nb *naiveBayes) scores(text string) map[domain.Label]float64 {
	tokens := tokenize(text)
	vocabSize := float64(len(nb.vocabulary))

	logProbs := make(map[domain.Label]float64, len(nb.labels))
	maxLog := math.Inf(-1)

	for _, label := range nb.labels {
		docCount := nb.docCounts[label]
		if docCount == 0 {
			continue
		}

		logProb := math.Log(float64(docCount) / float64(nb.totalDocs))
		totalTokens := float64(nb.totalTokens[label])

		for _, token := range tokens {
			tokenCount := float64(nb.tokenCounts[label][token])
			logProb += math.Log((tokenCount + 1) / (totalTokens + vocabSize))
		}

		logProbs[label] = logProb

		if logProb > maxLog {
			maxLog = logProb
		}
	}

	var sum float64

	shifted := make(map[domain.Label]float64, len(logProbs))

	for _, label := range nb.labels {
		logProb, ok := logProbs[label]
		if !ok {
			continue
		}

		value := math.Exp(logProb - maxLog)
		shifted[label] = value
		sum += value
	}

	if sum == 0 {
		return shifted
	}

	for label, value := range shifted {
		shifted[label] = value / sum
	}

	return shifted
}

// tokenize splits normalized text into lowercase word tokens with surrounding
// punctuation trimmed. Empty tokens are dropped.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))

	for _, field := range fields {
		token := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if token != "" {
			tokens = append(tokens, token)
		}
	}

	return tokens
}
