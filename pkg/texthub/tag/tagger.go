package tag

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/texthub/pkg/texthub/internalerr"
)

// TaggedToken pairs a token with its part-of-speech tag.
type TaggedToken struct {
	Token string
	Tag   string
}

// Tagger produces tokens and part-of-speech tags for raw text.
// The tagged sequence is aligned 1:1 with the token sequence.
type Tagger interface {
	Tag(text string) (tokens []string, tagged []TaggedToken, err error)
}

// LexiconTagger tags tokens from a word→tag lexicon, falling back to
// suffix and shape heuristics for unknown words. Punctuation is emitted
// as standalone tokens and tagged as itself.
type LexiconTagger struct {
	tags map[string]string
}

// New creates a tagger backed by the given word→tag lexicon.
// Keys are lowercased. A nil or empty lexicon leaves the tagger
// uninitialized; Tag then fails with ErrDependencyUnavailable.
func New(lexicon map[string]string) *LexiconTagger {
	if len(lexicon) == 0 {
		return &LexiconTagger{}
	}
	tags := make(map[string]string, len(lexicon))
	for word, t := range lexicon {
		tags[strings.ToLower(word)] = t
	}
	return &LexiconTagger{tags: tags}
}

// Default returns a tagger seeded with a small built-in lexicon of
// closed-class English words. Open-class words fall through to the
// heuristics in tagWord.
func Default() *LexiconTagger {
	return New(defaultLexicon)
}

// LoadLexicon loads a word→tag lexicon from a YAML file.
//
// Expected format:
//
//	tags:
//	  the: DT
//	  run: VB
//	  quickly: RB
func LoadLexicon(path string) (*LexiconTagger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config struct {
		Tags map[string]string `yaml:"tags"`
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("load tag lexicon: %w", err)
	}
	if len(config.Tags) == 0 {
		return nil, fmt.Errorf("load tag lexicon %s: no tags: %w", path, internalerr.ErrMalformedData)
	}

	return New(config.Tags), nil
}

// Tag splits text into tokens and assigns a part-of-speech tag to each.
// Fails with ErrDependencyUnavailable when no lexicon has been loaded.
func (t *LexiconTagger) Tag(text string) ([]string, []TaggedToken, error) {
	if t == nil || t.tags == nil {
		return nil, nil, fmt.Errorf("tagger: lexicon not loaded: %w", internalerr.ErrDependencyUnavailable)
	}

	tokens := Tokenize(text)
	tagged := make([]TaggedToken, len(tokens))
	for i, tok := range tokens {
		tagged[i] = TaggedToken{Token: tok, Tag: t.tagWord(tok)}
	}
	return tokens, tagged, nil
}

// Tokenize splits text into word and punctuation tokens. Word tokens are
// maximal runs of letters, digits, hyphens and apostrophes; every other
// non-space rune becomes its own token. Case is preserved.
func Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '\'':
			current.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()

	return tokens
}

func (t *LexiconTagger) tagWord(token string) string {
	lower := strings.ToLower(token)
	if tag, ok := t.tags[lower]; ok {
		return tag
	}

	runes := []rune(token)
	if !unicode.IsLetter(runes[0]) && !unicode.IsNumber(runes[0]) {
		// Punctuation tags as itself, Penn-style.
		return token
	}
	if isNumeric(lower) {
		return "CD"
	}

	switch {
	case strings.HasSuffix(lower, "ing") && len(lower) > 4:
		return "VBG"
	case strings.HasSuffix(lower, "ed") && len(lower) > 3:
		return "VBD"
	case strings.HasSuffix(lower, "ly") && len(lower) > 3:
		return "RB"
	case unicode.IsUpper(runes[0]):
		return "NNP"
	case strings.HasSuffix(lower, "s") && len(lower) > 2:
		return "NNS"
	default:
		return "NN"
	}
}

// isNumeric returns true if the token contains only digits, hyphens,
// dots and commas.
func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '-' && r != '.' && r != ',' {
			return false
		}
	}
	return true
}

// defaultLexicon covers frequent closed-class words so Default taggers
// produce reasonable output without an external lexicon file.
var defaultLexicon = map[string]string{
	"the": "DT", "a": "DT", "an": "DT", "this": "DT", "that": "DT",
	"these": "DT", "those": "DT",
	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP",
	"we": "PRP", "they": "PRP",
	"my": "PRP$", "your": "PRP$", "his": "PRP$", "her": "PRP$",
	"its": "PRP$", "our": "PRP$", "their": "PRP$",
	"is": "VBZ", "are": "VBP", "was": "VBD", "were": "VBD",
	"be": "VB", "been": "VBN", "am": "VBP",
	"have": "VBP", "has": "VBZ", "had": "VBD", "do": "VBP",
	"does": "VBZ", "did": "VBD",
	"will": "MD", "would": "MD", "can": "MD", "could": "MD",
	"may": "MD", "might": "MD", "shall": "MD", "should": "MD",
	"must": "MD",
	"and": "CC", "or": "CC", "but": "CC", "nor": "CC",
	"in": "IN", "on": "IN", "at": "IN", "by": "IN", "for": "IN",
	"with": "IN", "from": "IN", "to": "TO", "of": "IN",
	"as": "IN", "if": "IN",
	"not": "RB", "very": "RB", "too": "RB",
	"what": "WP", "who": "WP", "which": "WDT", "when": "WRB",
	"where": "WRB", "how": "WRB", "why": "WRB",
}
