package classifier

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
)

var vowels = map[rune]bool{
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true, 'y': true,
}

// CountSyllables estimates the syllable count of a single word. Words in
// the pronouncing dictionary count the stress-marked vowel phones of the
// first pronunciation variant; unknown words fall back to counting vowel
// letters (with "y" as a vowel). Never fails.
func (c *TextClassifier) CountSyllables(word string) int {
	word = strings.ToLower(word)
	if phones, ok := c.dict.Phones(word); ok {
		count := 0
		for _, phone := range phones {
			if phone != "" && unicode.IsDigit(rune(phone[len(phone)-1])) {
				count++
			}
		}
		return count
	}
	count := 0
	for _, r := range word {
		if vowels[r] {
			count++
		}
	}
	return count
}

// SentenceReadingEase computes the Flesch reading-ease formula per
// sentence over alphabetic tokens only and sums the per-sentence scores.
// The sum grows with sentence count; it is deliberately not the standard
// single-document Flesch score (see DocumentReadingEase for that).
// Sentences without alphabetic tokens contribute nothing; an empty
// document yields 0.
func (c *TextClassifier) SentenceReadingEase() (float64, error) {
	sents, err := c.Sents(false)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, sent := range sents {
		words := alphabeticOnly(sent)
		if len(words) == 0 {
			continue
		}
		syllables := 0
		for _, word := range words {
			syllables += c.CountSyllables(word)
		}
		n := float64(len(words))
		total += 206.835 - 1.015*n - 84.6*(float64(syllables)/n)
	}
	return total, nil
}

// DocumentReadingEase computes the standard single-document Flesch
// reading-ease score over alphabetic tokens. Sentences without alphabetic
// tokens are excluded from the sentence count. Empty document yields 0.
func (c *TextClassifier) DocumentReadingEase() (float64, error) {
	sents, err := c.Sents(false)
	if err != nil {
		return 0, err
	}
	totalWords, totalSyllables, sentCount := 0, 0, 0
	for _, sent := range sents {
		words := alphabeticOnly(sent)
		if len(words) == 0 {
			continue
		}
		sentCount++
		totalWords += len(words)
		for _, word := range words {
			totalSyllables += c.CountSyllables(word)
		}
	}
	if sentCount == 0 || totalWords == 0 {
		return 0, nil
	}
	w, s := float64(totalWords), float64(sentCount)
	return 206.835 - 1.015*(w/s) - 84.6*(float64(totalSyllables)/w), nil
}

// LexicalDensityByTags returns the percentage of tagged words whose tag
// is in tags, rounded to three decimals. Returns ErrEmptyDocument when
// the document has no words.
func (c *TextClassifier) LexicalDensityByTags(tags map[string]bool) (float64, error) {
	words, err := c.TaggedWords(false)
	if err != nil {
		return 0, err
	}
	if len(words) == 0 {
		return 0, fmt.Errorf("lexical density: %w", ErrEmptyDocument)
	}
	matches := 0
	for _, word := range words {
		if tags[word.Tag] {
			matches++
		}
	}
	return round3(float64(matches) / float64(len(words)) * 100), nil
}

// WordFrequency returns the per-mille share of document words that are
// members of words, rounded to three decimals. Matching is exact on the
// surface form. Returns ErrEmptyDocument when the document has no words.
func (c *TextClassifier) WordFrequency(words map[string]bool) (float64, error) {
	all, err := c.Words(false)
	if err != nil {
		return 0, err
	}
	if len(all) == 0 {
		return 0, fmt.Errorf("word frequency: %w", ErrEmptyDocument)
	}
	matches := 0
	for _, word := range all {
		if words[word] {
			matches++
		}
	}
	return round3(float64(matches) / float64(len(all)) * 1000), nil
}

// TypeTokenRatio returns distinct lemmatized lower-cased words over total
// lemmatized words. Returns ErrEmptyDocument when the document has no
// words.
func (c *TextClassifier) TypeTokenRatio() (float64, error) {
	words, err := c.Words(true)
	if err != nil {
		return 0, err
	}
	if len(words) == 0 {
		return 0, fmt.Errorf("type-token ratio: %w", ErrEmptyDocument)
	}
	distinct := make(map[string]struct{}, len(words))
	for _, word := range words {
		distinct[strings.ToLower(word)] = struct{}{}
	}
	return float64(len(distinct)) / float64(len(words)), nil
}

// HasPeculiarExpression reports whether pattern matches anywhere in the
// raw document, case-insensitively. An invalid pattern fails with an
// error naming it.
func (c *TextClassifier) HasPeculiarExpression(pattern string) (bool, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return false, fmt.Errorf("invalid expression %q: %w", pattern, err)
	}
	return re.MatchString(c.text), nil
}

// SentenceCount returns the number of sentences in the document.
func (c *TextClassifier) SentenceCount() (int, error) {
	sents, err := c.Sents(false)
	if err != nil {
		return 0, err
	}
	return len(sents), nil
}

// WordCount returns the number of tokens in the document.
func (c *TextClassifier) WordCount() (int, error) {
	words, err := c.Words(false)
	if err != nil {
		return 0, err
	}
	return len(words), nil
}

// MeanSentenceLength returns the mean token count per sentence. Returns
// ErrEmptyDocument when the document has no sentences.
func (c *TextClassifier) MeanSentenceLength() (float64, error) {
	sents, err := c.Sents(false)
	if err != nil {
		return 0, err
	}
	if len(sents) == 0 {
		return 0, fmt.Errorf("mean sentence length: %w", ErrEmptyDocument)
	}
	tokens := 0
	for _, sent := range sents {
		tokens += len(sent)
	}
	return float64(tokens) / float64(len(sents)), nil
}

func alphabeticOnly(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		if isAlphabetic(tok) {
			out = append(out, tok)
		}
	}
	return out
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
