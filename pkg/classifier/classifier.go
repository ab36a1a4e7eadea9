// Package classifier computes lexical and readability statistics over a
// single in-memory document: sentence and word segmentation, POS tagging,
// lemmatization, syllable counting, Flesch reading ease, lexical density,
// word frequency, and type-token ratio.
package classifier

import (
	"fmt"
	"io"

	"textlex/config"
	"textlex/internal/textutil"
	"textlex/pkg/lemma"
	"textlex/pkg/pronounce"
	"textlex/pkg/tokenize"
)

// TaggedToken is a (surface-or-lemma form, POS tag) pair.
type TaggedToken = tokenize.TaggedToken

// TextClassifier wraps one immutable document string plus the linguistic
// collaborators it delegates to. Every view and metric recomputes fresh
// from the document; nothing is cached, so results are deterministic
// given deterministic collaborators.
type TextClassifier struct {
	text      string
	splitter  tokenize.SentenceSplitter
	tokenizer tokenize.WordTokenizer
	tagger    tokenize.Tagger
	lemmas    lemma.Lemmatizer
	dict      *pronounce.Dict
}

// Option overrides one of the classifier's collaborators, mainly so tests
// can substitute fixture resources.
type Option func(*TextClassifier)

func WithSplitter(s tokenize.SentenceSplitter) Option {
	return func(c *TextClassifier) { c.splitter = s }
}

func WithTokenizer(t tokenize.WordTokenizer) Option {
	return func(c *TextClassifier) { c.tokenizer = t }
}

func WithTagger(t tokenize.Tagger) Option {
	return func(c *TextClassifier) { c.tagger = t }
}

func WithLemmatizer(l lemma.Lemmatizer) Option {
	return func(c *TextClassifier) { c.lemmas = l }
}

func WithDictionary(d *pronounce.Dict) Option {
	return func(c *TextClassifier) { c.dict = d }
}

// New builds a classifier over text with the default English resources:
// the pretrained sentence splitter, the prose tokenizer/tagger, the
// embedded lemma dictionary, and the embedded pronouncing dictionary.
func New(text string, opts ...Option) (*TextClassifier, error) {
	proseTok := tokenize.NewProseTokenizer()
	c := &TextClassifier{
		text:      text,
		tokenizer: proseTok,
		tagger:    proseTok,
		lemmas:    lemma.Default(),
		dict:      pronounce.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.splitter == nil {
		splitter, err := tokenize.NewEnglishSplitter()
		if err != nil {
			return nil, err
		}
		c.splitter = splitter
	}
	return c, nil
}

// NewFromReader ingests a document from r, cleaning BOMs, invalid UTF-8,
// and typographic punctuation before construction.
func NewFromReader(r io.Reader, opts ...Option) (*TextClassifier, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	text, err := textutil.Clean(raw)
	if err != nil {
		return nil, err
	}
	return New(text, opts...)
}

// NewFromConfig builds a classifier whose resources come from cfg: an
// on-disk pronouncing dictionary and lemma resources override the
// embedded defaults when configured. Explicit opts still win.
func NewFromConfig(text string, cfg *config.Config, opts ...Option) (*TextClassifier, error) {
	var fromCfg []Option
	if cfg != nil {
		if path := cfg.Resources.PronouncingDict; path != "" {
			d, err := pronounce.LoadFile(path)
			if err != nil {
				return nil, err
			}
			fromCfg = append(fromCfg, WithDictionary(d))
		}
		if cfg.HasLemmaResources() {
			r := cfg.Resources
			d, err := lemma.LoadFiles(r.VerbExceptions, r.NounExceptions, r.VerbList, r.NounList)
			if err != nil {
				return nil, err
			}
			fromCfg = append(fromCfg, WithLemmatizer(d))
		}
	}
	return New(text, append(fromCfg, opts...)...)
}

// Text returns the document exactly as the classifier holds it.
func (c *TextClassifier) Text() string {
	return c.text
}
