// Package textprep normalizes raw user text into the canonical lowercase form
// the classifier is trained on and extracts the lexical and stylistic features
// used for confidence adjustment.
//
// Both functions are pure and deterministic; they do no I/O and hold no state
// across calls.
package textprep

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/SanketKumarKar/FeelBack/internal/core/domain"
)

var (
	urlPattern        = regexp.MustCompile(`https?://\S+`)
	emailPattern      = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	mentionPattern    = regexp.MustCompile(`@\w+`)
	hashtagPattern    = regexp.MustCompile(`#(\w+)`)
	exclamationRuns   = regexp.MustCompile(`!{2,}`)
	questionRuns      = regexp.MustCompile(`\?{2,}`)
	ellipsisRuns      = regexp.MustCompile(`\.{3,}`)
	whitespaceRuns    = regexp.MustCompile(`\s+`)
	disallowedChars   = regexp.MustCompile(`[^a-z0-9 .,!?'"()]`)
	capitalsRun       = regexp.MustCompile(`[A-Z]{2,}`)
	contractionTokens *regexp.Regexp
)

// contractions maps English contractions to their expanded forms. Matching is
// whole-word on the lowercased text.
var contractions = map[string]string{
	"ain't":     "am not",
	"aren't":    "are not",
	"can't":     "cannot",
	"couldn't":  "could not",
	"didn't":    "did not",
	"doesn't":   "does not",
	"don't":     "do not",
	"hadn't":    "had not",
	"hasn't":    "has not",
	"haven't":   "have not",
	"he's":      "he is",
	"i'm":       "i am",
	"i've":      "i have",
	"i'll":      "i will",
	"i'd":       "i would",
	"isn't":     "is not",
	"it's":      "it is",
	"let's":     "let us",
	"shouldn't": "should not",
	"that's":    "that is",
	"there's":   "there is",
	"they're":   "they are",
	"they've":   "they have",
	"we're":     "we are",
	"we've":     "we have",
	"weren't":   "were not",
	"what's":    "what is",
	"where's":   "where is",
	"who's":     "who is",
	"won't":     "will not",
	"wouldn't":  "would not",
	"you're":    "you are",
	"you've":    "you have",
	"you'll":    "you will",
	"you'd":     "you would",
}

func init() {
	keys := make([]string, 0, len(contractions))
	for key := range contractions {
		keys = append(keys, regexp.QuoteMeta(key))
	}

	contractionTokens = regexp.MustCompile(`\b(` + strings.Join(keys, "|") + `)\b`)
}

// Word lists for feature extraction, matched whole-word against the
// normalized text.
var (
	negationWords = []string{"not", "no", "never", "nothing", "nowhere", "nobody", "none"}

	intensifierWords = []string{"very", "really", "extremely", "incredibly", "absolutely", "totally", "completely"}

	emotionalWords = []string{
		"love", "hate", "amazing", "terrible", "wonderful", "awful", "fantastic", "horrible",
		"excited", "devastated", "thrilled", "disappointed", "overjoyed", "heartbroken",
	}
)

// Preprocess cleans raw input into the canonical form used for classification
// and cache keying. Empty input yields an empty string, never an error.
//
// The pipeline order is fixed: lowercase, strip URLs/emails/mentions, unwrap
// hashtags, expand contractions, collapse punctuation runs, collapse
// whitespace, fold accents, then drop characters outside the allowed set.
func Preprocess(text string) string {
	if text == "" {
		return ""
	}

	processed := strings.ToLower(text)

	processed = urlPattern.ReplaceAllString(processed, "")
	processed = emailPattern.ReplaceAllString(processed, "")
	processed = mentionPattern.ReplaceAllString(processed, "")
	processed = hashtagPattern.ReplaceAllString(processed, "$1")

	processed = contractionTokens.ReplaceAllStringFunc(processed, func(match string) string {
		return contractions[match]
	})

	processed = exclamationRuns.ReplaceAllString(processed, "!")
	processed = questionRuns.ReplaceAllString(processed, "?")
	processed = ellipsisRuns.ReplaceAllString(processed, "...")

	processed = whitespaceRuns.ReplaceAllString(processed, " ")
	processed = strings.TrimSpace(processed)

	processed = foldAccents(processed)
	processed = disallowedChars.ReplaceAllString(processed, "")

	return processed
}

// foldAccents decomposes accented letters and drops the combining marks, so
// "café" survives the character filter as "cafe" instead of losing a letter.
func foldAccents(text string) string {
	decomposed := norm.NFD.String(text)

	var b strings.Builder
	b.Grow(len(decomposed))

	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// ExtractFeatures inspects both the original text (case and punctuation
// signals are lost after normalization) and the normalized text (word lists
// and word count).
func ExtractFeatures(text string) domain.FeatureVector {
	processed := Preprocess(text)
	words := tokenSet(processed)

	return domain.FeatureVector{
		HasExclamation:   strings.Contains(text, "!"),
		HasQuestion:      strings.Contains(text, "?"),
		HasCapitalsRun:   capitalsRun.MatchString(text),
		WordCount:        wordCount(processed),
		HasNegation:      containsAny(words, negationWords),
		HasIntensifier:   containsAny(words, intensifierWords),
		HasEmotionalWord: containsAny(words, emotionalWords),
	}
}

// wordCount counts non-empty whitespace-separated tokens.
func wordCount(text string) int {
	return len(strings.Fields(text))
}

// tokenSet splits normalized text into words with surrounding punctuation
// trimmed, for whole-word list matching.
func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})

	for _, field := range strings.Fields(text) {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word != "" {
			set[word] = struct{}{}
		}
	}

	return set
}

func containsAny(set map[string]struct{}, words []string) bool {
	for _, word := range words {
		if _, ok := set[word]; ok {
			return true
		}
	}

	return false
}
