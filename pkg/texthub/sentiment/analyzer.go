// Package sentiment provides a unit that scores text against fixed
// positive and negative keyword sets.
package sentiment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cognicore/texthub/pkg/texthub"
	"github.com/cognicore/texthub/pkg/texthub/internalerr"
)

// Default keyword sets. Matching is exact-string against lower-cased
// whitespace-split tokens; a word carrying trailing punctuation
// ("amazing.") does not match.
var (
	defaultPositive = []string{"good", "great", "excellent", "amazing", "wonderful"}
	defaultNegative = []string{"bad", "poor", "terrible", "awful", "horrible"}
)

// Analyzer is a texthub.Unit scoring text by keyword membership.
type Analyzer struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// New creates an analyzer with the default keyword sets.
func New() *Analyzer {
	return NewWithLexicon(defaultPositive, defaultNegative)
}

// NewWithLexicon creates an analyzer with custom keyword sets. Words
// are lowercased; a word present in both sets contributes net zero.
func NewWithLexicon(positive, negative []string) *Analyzer {
	a := &Analyzer{
		positive: make(map[string]struct{}, len(positive)),
		negative: make(map[string]struct{}, len(negative)),
	}
	for _, w := range positive {
		a.positive[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range negative {
		a.negative[strings.ToLower(w)] = struct{}{}
	}
	return a
}

// Transform scores the input text.
//
// Result keys: "text_length" (int, rune count of the raw input),
// "word_count" (int, tokens after lower-casing and splitting on
// whitespace runs), "sentiment_score" (int, positive matches minus
// negative matches). Never fails for string input.
func (a *Analyzer) Transform(input any) (texthub.Result, error) {
	text, ok := input.(string)
	if !ok {
		return nil, fmt.Errorf("sentiment: want string input, got %T: %w", input, internalerr.ErrInvalidInput)
	}

	words := strings.Fields(strings.ToLower(text))

	score := 0
	for _, w := range words {
		if _, ok := a.positive[w]; ok {
			score++
		}
		if _, ok := a.negative[w]; ok {
			score--
		}
	}

	return texthub.Result{
		"text_length":     utf8.RuneCountInString(text),
		"word_count":      len(words),
		"sentiment_score": score,
	}, nil
}
