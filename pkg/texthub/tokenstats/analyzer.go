// Package tokenstats provides a unit that reports token and
// part-of-speech statistics, delegating the linguistics to a tag.Tagger.
package tokenstats

import (
	"fmt"

	"github.com/cognicore/texthub/pkg/texthub"
	"github.com/cognicore/texthub/pkg/texthub/internalerr"
	"github.com/cognicore/texthub/pkg/texthub/tag"
)

// Analyzer is a texthub.Unit backed by an external tokenizer/tagger.
type Analyzer struct {
	tagger tag.Tagger
}

// New creates an analyzer delegating to the given tagger.
func New(tagger tag.Tagger) *Analyzer {
	return &Analyzer{tagger: tagger}
}

// Transform tokenizes and tags the input text.
//
// Result keys: "tokens" ([]string), "pos_tags" ([]tag.TaggedToken,
// aligned 1:1 with tokens), "word_count" (int, always len(tokens),
// punctuation tokens included). Fails with ErrDependencyUnavailable
// when the tagger is missing or uninitialized; tagger errors propagate
// unchanged.
func (a *Analyzer) Transform(input any) (texthub.Result, error) {
	text, ok := input.(string)
	if !ok {
		return nil, fmt.Errorf("tokenstats: want string input, got %T: %w", input, internalerr.ErrInvalidInput)
	}

	if a.tagger == nil {
		return nil, fmt.Errorf("tokenstats: no tagger: %w", internalerr.ErrDependencyUnavailable)
	}

	tokens, tagged, err := a.tagger.Tag(text)
	if err != nil {
		return nil, err
	}

	return texthub.Result{
		"tokens":     tokens,
		"pos_tags":   tagged,
		"word_count": len(tokens),
	}, nil
}
