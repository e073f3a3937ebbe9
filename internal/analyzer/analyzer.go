package analyzer

import (
	"strings"
	"unicode"

	"pulseboard/internal/models"
)

// Annotation is the result of analyzing a piece of post text.
type Annotation struct {
	Sentiment string   // positive | neutral | negative
	IsToxic   bool
	Tags      []string
}

// TextAnalyzer derives annotations from raw text. Implementations must be
// pure: same text in, same annotation out, no side effects.
type TextAnalyzer interface {
	Analyze(text string) Annotation
}

// LexiconAnalyzer scores sentiment from an embedded word lexicon, flags
// profanity against an embedded wordlist, and emits keyword tags.
type LexiconAnalyzer struct {
	lexicon   map[string]int
	profanity map[string]struct{}
}

// Ensure interface compliance at compile time.
var _ TextAnalyzer = (*LexiconAnalyzer)(nil)

func NewLexiconAnalyzer() *LexiconAnalyzer {
	prof := make(map[string]struct{}, len(profanityWords))
	for _, w := range profanityWords {
		prof[w] = struct{}{}
	}
	return &LexiconAnalyzer{lexicon: sentimentLexicon, profanity: prof}
}

// keywordTags maps keyword sets to the tag they emit; slice order is the
// emission order.
var keywordTags = []struct {
	keywords []string
	tag      string
}{
	{[]string{"love"}, "love"},
	{[]string{"sad", "depress"}, "support"},
	{[]string{"job", "work"}, "work"},
	{[]string{"study", "exam"}, "study"},
}

// Analyze maps text to {sentiment, toxicity, tags}. Empty text yields a
// neutral, non-toxic annotation with no tags.
func (a *LexiconAnalyzer) Analyze(text string) Annotation {
	lower := strings.ToLower(text)
	words := tokenize(lower)

	score := 0
	toxic := false
	for _, w := range words {
		score += a.lexicon[w]
		if _, ok := a.profanity[w]; ok {
			toxic = true
		}
	}

	var tags []string
	for _, kt := range keywordTags {
		for _, kw := range kt.keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, kt.tag)
				break
			}
		}
	}

	return Annotation{
		Sentiment: classifyScore(score),
		IsToxic:   toxic,
		Tags:      tags,
	}
}

// classifyScore maps the summed lexicon score to a sentiment class.
// Scores of exactly 1 or -1 stay neutral.
func classifyScore(score int) string {
	switch {
	case score > 1:
		return models.SentimentPositive
	case score < -1:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// tokenize splits lowercased text into word tokens on any non-letter,
// non-digit rune, keeping apostrophes inside words ("can't").
func tokenize(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}
