// Package tokenize wraps the external linguistic collaborators used by the
// classifier: a trained sentence splitter and a word tokenizer / POS tagger.
package tokenize

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// TaggedToken pairs a token's surface (or lemma) form with its
// part-of-speech tag from the tagger's tagset (Penn Treebank).
type TaggedToken struct {
	Text string
	Tag  string
}

// SentenceSplitter segments a document into ordered sentence strings.
type SentenceSplitter interface {
	Sentences(text string) ([]string, error)
}

// WordTokenizer splits a single sentence into ordered token strings.
// Punctuation marks are tokens of their own.
type WordTokenizer interface {
	Tokenize(sentence string) ([]string, error)
}

// Tagger assigns exactly one part-of-speech tag per token. It consumes the
// whole sentence so tags are assigned with sentence context; the returned
// tokens match what Tokenize produces for the same sentence, in order.
type Tagger interface {
	TagSentence(sentence string) ([]TaggedToken, error)
}

// EnglishSplitter segments text with the pretrained English punkt data
// shipped by neurosnap/sentences. Safe for reuse across documents.
type EnglishSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewEnglishSplitter loads the English sentence-boundary model.
func NewEnglishSplitter() (*EnglishSplitter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load english sentence data: %w", err)
	}
	return &EnglishSplitter{tokenizer: tok}, nil
}

// Sentences returns the trimmed, non-empty sentences of text in order.
func (s *EnglishSplitter) Sentences(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var out []string
	for _, sent := range s.tokenizer.Tokenize(text) {
		t := strings.TrimSpace(sent.Text)
		if t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}

// ProseTokenizer tokenizes and tags single sentences with the pretrained
// jdkato/prose model. It implements both WordTokenizer and Tagger; both
// paths run the same prose tokenizer, so tagged and untagged views see
// identical token sequences.
type ProseTokenizer struct{}

func NewProseTokenizer() *ProseTokenizer {
	return &ProseTokenizer{}
}

// Tokenize splits sentence into tokens without tagging.
func (p *ProseTokenizer) Tokenize(sentence string) ([]string, error) {
	doc, err := prose.NewDocument(sentence,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("tokenize sentence: %w", err)
	}
	toks := doc.Tokens()
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Text)
	}
	return out, nil
}

// TagSentence tokenizes and POS-tags sentence as a unit.
func (p *ProseTokenizer) TagSentence(sentence string) ([]TaggedToken, error) {
	doc, err := prose.NewDocument(sentence,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("tag sentence: %w", err)
	}
	toks := doc.Tokens()
	out := make([]TaggedToken, 0, len(toks))
	for _, tok := range toks {
		out = append(out, TaggedToken{Text: tok.Text, Tag: tok.Tag})
	}
	return out, nil
}
