package classifier

import (
	"strings"

	"textlex/pkg/lemma"
)

// preprocess is the single pass behind every view: split the document
// into sentences, tokenize each one, strip whitespace from tokens and
// drop the empties, then optionally tag and/or lemmatize. Tagging always
// runs over a whole sentence so tags get sentence context. Sentence order
// and within-sentence token order are preserved.
func (c *TextClassifier) preprocess(tagged, lemmatized bool) ([][]TaggedToken, error) {
	if strings.TrimSpace(c.text) == "" {
		return nil, nil
	}
	sents, err := c.splitter.Sentences(c.text)
	if err != nil {
		return nil, err
	}

	out := make([][]TaggedToken, 0, len(sents))
	for _, sent := range sents {
		var toks []TaggedToken
		if tagged {
			pairs, err := c.tagger.TagSentence(sent)
			if err != nil {
				return nil, err
			}
			toks = stripTokens(pairs)
			if lemmatized {
				for i := range toks {
					toks[i].Text = c.lemmatize(toks[i].Text)
				}
			}
		} else {
			words, err := c.tokenizer.Tokenize(sent)
			if err != nil {
				return nil, err
			}
			toks = make([]TaggedToken, 0, len(words))
			for _, word := range words {
				word = strings.TrimSpace(word)
				if word == "" {
					continue
				}
				if lemmatized {
					word = c.lemmatize(word)
				}
				toks = append(toks, TaggedToken{Text: word})
			}
		}
		out = append(out, toks)
	}
	return out, nil
}

// lemmatize tries the verb lemma first and falls back to the noun lemma
// when the dictionary echoes the word back unchanged.
func (c *TextClassifier) lemmatize(word string) string {
	return lemma.BaseForm(c.lemmas, word)
}

func stripTokens(pairs []TaggedToken) []TaggedToken {
	out := make([]TaggedToken, 0, len(pairs))
	for _, pair := range pairs {
		pair.Text = strings.TrimSpace(pair.Text)
		if pair.Text == "" {
			continue
		}
		out = append(out, pair)
	}
	return out
}

// Sents returns the document's sentences, each as an ordered token slice.
func (c *TextClassifier) Sents(lemmatized bool) ([][]string, error) {
	sents, err := c.preprocess(false, lemmatized)
	if err != nil {
		return nil, err
	}
	out := make([][]string, 0, len(sents))
	for _, sent := range sents {
		words := make([]string, 0, len(sent))
		for _, tok := range sent {
			words = append(words, tok.Text)
		}
		out = append(out, words)
	}
	return out, nil
}

// TaggedSents returns the document's sentences as POS-tagged token slices.
func (c *TextClassifier) TaggedSents(lemmatized bool) ([][]TaggedToken, error) {
	return c.preprocess(true, lemmatized)
}

// Words returns the document's tokens flattened across sentences.
func (c *TextClassifier) Words(lemmatized bool) ([]string, error) {
	sents, err := c.preprocess(false, lemmatized)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, sent := range sents {
		for _, tok := range sent {
			out = append(out, tok.Text)
		}
	}
	return out, nil
}

// TaggedWords returns the document's POS-tagged tokens flattened across
// sentences.
func (c *TextClassifier) TaggedWords(lemmatized bool) ([]TaggedToken, error) {
	sents, err := c.preprocess(true, lemmatized)
	if err != nil {
		return nil, err
	}
	var out []TaggedToken
	for _, sent := range sents {
		out = append(out, sent...)
	}
	return out, nil
}
