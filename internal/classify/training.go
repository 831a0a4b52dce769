package classify

import "github.com/SanketKumarKar/FeelBack/internal/core/domain"

// Hand-authored training corpus, twenty short phrases per label. Phrases are
// run through the normalizer before training so the model vocabulary matches
// what Classify receives at inference time.

var joyExamples = []string{
	"I am so happy today!", "This is amazing!", "I feel fantastic!", "What a wonderful day!",
	"I love this!", "I am thrilled!", "This brings me so much joy!", "I am overjoyed!",
	"Best day ever!", "I am feeling great!", "This makes me smile!", "Pure happiness!",
	"I am ecstatic!", "This is incredible!", "I feel amazing!", "So much joy!",
	"Feeling blessed!", "This is perfect!", "I am delighted!", "Absolutely wonderful!",
}

var sadnessExamples = []string{
	"I feel so sad", "This is heartbreaking", "I am devastated", "Feeling down today",
	"This makes me cry", "I am so disappointed", "Feeling lonely", "I miss them so much",
	"This hurts so much", "I feel empty inside", "So much pain", "I am heartbroken",
	"Feeling blue", "This is depressing", "I feel lost", "So much grief",
	"I am mourning", "This is tragic", "Feeling melancholy", "Deep sorrow",
}

var angerExamples = []string{
	"I am so angry!", "This is infuriating!", "I am furious!", "This makes me mad!",
	"I hate this!", "This is outrageous!", "I am livid!", "This is unacceptable!",
	"I am enraged!", "This pisses me off!", "I am boiling with anger!", "This is ridiculous!",
	"I am fed up!", "This is annoying!", "I am irritated!", "This drives me crazy!",
	"I am steaming!", "This is aggravating!", "I am irate!", "This is maddening!",
}

var fearExamples = []string{
	"I am so scared", "This terrifies me", "I am anxious", "This worries me",
	"I am afraid", "This is frightening", "I feel nervous", "This gives me anxiety",
	"I am worried sick", "This is alarming", "I feel panicked", "This is scary",
	"I am terrified", "This makes me nervous", "I feel uneasy", "This is disturbing",
	"I am fearful", "This is intimidating", "I feel threatened", "This is concerning",
}

var surpriseExamples = []string{
	"What a surprise!", "I am shocked!", "This is unexpected!", "I am amazed!",
	"This is astonishing!", "I cannot believe this!", "This is incredible!", "What?!",
	"This is mind-blowing!", "I am stunned!", "This is remarkable!", "Unbelievable!",
	"This is extraordinary!", "I am dumbfounded!", "This is phenomenal!", "Wow!",
	"This is breathtaking!", "I am flabbergasted!", "This is startling!", "Amazing!",
}

var loveExamples = []string{
	"I love you so much", "You mean everything to me", "I adore you", "You are my everything",
	"I am in love", "You are amazing", "I cherish you", "You make me complete",
	"I care about you deeply", "You are wonderful", "I treasure you", "You are my heart",
	"I am devoted to you", "You are my soulmate", "I worship you", "You are my life",
	"I am passionate about you", "You are my world", "I am fond of you", "You are precious",
}

var neutralExamples = []string{
	"The weather is okay", "This is fine", "It is what it is", "That is normal",
	"This is average", "Nothing special", "It is alright", "This is typical",
	"That is standard", "This is ordinary", "It is acceptable", "This is regular",
	"That is usual", "This is common", "It is decent", "This is moderate",
	"That is conventional", "This is adequate", "It is satisfactory", "This is basic",
}

// trainingCorpus returns the full labeled corpus in training enumeration
// order. That order doubles as the tie-break priority between equal scores.
func trainingCorpus() []document {
	groups := []struct {
		label    domain.Label
		examples []string
	}{
		{domain.Joy, joyExamples},
		{domain.Sadness, sadnessExamples},
		{domain.Anger, angerExamples},
		{domain.Fear, fearExamples},
		{domain.Surprise, surpriseExamples},
		{domain.Love, loveExamples},
		{domain.Neutral, neutralExamples},
	}

	var docs []document

	for _, group := range groups {
		for _, example := range group.examples {
			docs = append(docs, document{text: example, label: group.label})
		}
	}

	return docs
}
