package classifier

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textlex/pkg/lemma"
	"textlex/pkg/pronounce"
	"textlex/pkg/tokenize"
)

// lineSplitter treats each input line as one sentence, so tests control
// segmentation exactly.
type lineSplitter struct{}

func (lineSplitter) Sentences(text string) ([]string, error) {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

// fieldsTokenizer splits sentences on whitespace.
type fieldsTokenizer struct{}

func (fieldsTokenizer) Tokenize(sentence string) ([]string, error) {
	return strings.Fields(sentence), nil
}

// mapTagger assigns tags from a fixed lookup table.
type mapTagger map[string]string

func (m mapTagger) TagSentence(sentence string) ([]tokenize.TaggedToken, error) {
	var out []tokenize.TaggedToken
	for _, word := range strings.Fields(sentence) {
		out = append(out, tokenize.TaggedToken{Text: word, Tag: m[word]})
	}
	return out, nil
}

func fixtureDict(t *testing.T, entries string) *pronounce.Dict {
	t.Helper()
	d, err := pronounce.Load(strings.NewReader(entries))
	require.NoError(t, err)
	return d
}

func newFixtureClassifier(t *testing.T, text string, opts ...Option) *TextClassifier {
	t.Helper()
	base := []Option{
		WithSplitter(lineSplitter{}),
		WithTokenizer(fieldsTokenizer{}),
	}
	c, err := New(text, append(base, opts...)...)
	require.NoError(t, err)
	return c
}

func TestWordsTokenization(t *testing.T) {
	c, err := New("The cats are running.")
	require.NoError(t, err)

	words, err := c.Words(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"The", "cats", "are", "running", "."}, words)
}

func TestViewsAreIdempotent(t *testing.T) {
	c, err := New("The cats are running. Dogs jump over the lazy fox.")
	require.NoError(t, err)

	first, err := c.Words(false)
	require.NoError(t, err)
	second, err := c.Words(false)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	taggedFirst, err := c.TaggedWords(false)
	require.NoError(t, err)
	taggedSecond, err := c.TaggedWords(false)
	require.NoError(t, err)
	assert.Equal(t, taggedFirst, taggedSecond)
}

func TestWordsEqualFlattenedSents(t *testing.T) {
	c, err := New("The cats are running. Dogs jump over the lazy fox. It was fun!")
	require.NoError(t, err)

	words, err := c.Words(false)
	require.NoError(t, err)
	sents, err := c.Sents(false)
	require.NoError(t, err)

	total := 0
	for _, sent := range sents {
		total += len(sent)
	}
	assert.Equal(t, len(words), total)

	count, err := c.WordCount()
	require.NoError(t, err)
	assert.Equal(t, len(words), count)

	sentCount, err := c.SentenceCount()
	require.NoError(t, err)
	assert.Equal(t, len(sents), sentCount)

	mean, err := c.MeanSentenceLength()
	require.NoError(t, err)
	assert.InDelta(t, float64(total)/float64(len(sents)), mean, 1e-9)
}

func TestEmptyDocument(t *testing.T) {
	c := newFixtureClassifier(t, "")

	sents, err := c.Sents(false)
	require.NoError(t, err)
	assert.Empty(t, sents)

	words, err := c.Words(true)
	require.NoError(t, err)
	assert.Empty(t, words)

	score, err := c.SentenceReadingEase()
	require.NoError(t, err)
	assert.Zero(t, score)

	_, err = c.LexicalDensityByTags(map[string]bool{"NN": true})
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = c.WordFrequency(map[string]bool{"the": true})
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = c.TypeTokenRatio()
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = c.MeanSentenceLength()
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestCountSyllables(t *testing.T) {
	dict := fixtureDict(t, "CAT K AE1 T\nBANANA B AH0 N AE1 N AH0\n")
	c := newFixtureClassifier(t, "irrelevant", WithDictionary(dict))

	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"Cat", 1}, // lookup lower-cases
		{"banana", 3},
		{"zzxqv", 0},        // out of dictionary, no vowels
		{"strawberry", 3},   // out of dictionary: a, e, y
		{"rhythm", 1},       // out of dictionary: y counts as a vowel
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.CountSyllables(tt.word), "word %q", tt.word)
	}
}

func TestSentenceReadingEaseSumsPerSentence(t *testing.T) {
	dict := fixtureDict(t, "THE DH AH0\nCAT K AE1 T\nSAT S AE1 T\n")

	// 206.835 - 1.015*3 - 84.6*(3/3) = 119.19 per sentence.
	single := newFixtureClassifier(t, "The cat sat .", WithDictionary(dict))
	score, err := single.SentenceReadingEase()
	require.NoError(t, err)
	assert.InDelta(t, 119.19, score, 1e-9)

	// Two identical sentences double the score: the metric sums
	// per-sentence values instead of averaging over the document.
	double := newFixtureClassifier(t, "The cat sat .\nThe cat sat .", WithDictionary(dict))
	score, err = double.SentenceReadingEase()
	require.NoError(t, err)
	assert.InDelta(t, 238.38, score, 1e-9)

	// A sentence with no alphabetic tokens contributes nothing.
	punct := newFixtureClassifier(t, "The cat sat .\n. ! ?", WithDictionary(dict))
	score, err = punct.SentenceReadingEase()
	require.NoError(t, err)
	assert.InDelta(t, 119.19, score, 1e-9)
}

func TestDocumentReadingEase(t *testing.T) {
	dict := fixtureDict(t, "THE DH AH0\nCAT K AE1 T\nSAT S AE1 T\n")
	c := newFixtureClassifier(t, "The cat sat .\nThe cat sat .", WithDictionary(dict))

	// 206.835 - 1.015*(6/2) - 84.6*(6/6) = 119.19 for the whole document.
	score, err := c.DocumentReadingEase()
	require.NoError(t, err)
	assert.InDelta(t, 119.19, score, 1e-9)

	empty := newFixtureClassifier(t, "", WithDictionary(dict))
	score, err = empty.DocumentReadingEase()
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestLexicalDensityByTags(t *testing.T) {
	tagger := mapTagger{"Cats": "NNS", "run": "VBP", ".": "."}
	c := newFixtureClassifier(t, "Cats run .", WithTagger(tagger))

	tests := []struct {
		name string
		tags map[string]bool
		want float64
	}{
		{"open classes", map[string]bool{"NNS": true, "VBP": true}, 66.667},
		{"nouns only", map[string]bool{"NNS": true}, 33.333},
		{"no matches", map[string]bool{"JJ": true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.LexicalDensityByTags(tt.tags)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestWordFrequency(t *testing.T) {
	c := newFixtureClassifier(t, "the cat sat on the mat .")

	got, err := c.WordFrequency(map[string]bool{"the": true})
	require.NoError(t, err)
	assert.InDelta(t, 285.714, got, 1e-9) // 2/7 * 1000, rounded to 3

	got, err = c.WordFrequency(map[string]bool{"zebra": true})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestTypeTokenRatio(t *testing.T) {
	// "." repeats, so the ratio drops below 1.0 once tokens collapse.
	c := newFixtureClassifier(t, "Cats run .\nDogs jump .")
	got, err := c.TypeTokenRatio()
	require.NoError(t, err)
	assert.InDelta(t, 5.0/6.0, got, 1e-9)

	distinct := newFixtureClassifier(t, "Cats run")
	got, err = distinct.TypeTokenRatio()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-9)

	// Lower-casing collapses case variants of the same lemma.
	cased := newFixtureClassifier(t, "The the")
	got, err = cased.TypeTokenRatio()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestTaggedWordsLemmatized(t *testing.T) {
	tagger := mapTagger{"Cats": "NNS", "running": "VBG", ".": "."}
	c := newFixtureClassifier(t, "Cats running .", WithTagger(tagger))

	words, err := c.TaggedWords(true)
	require.NoError(t, err)
	assert.Equal(t, []TaggedToken{
		{Text: "cat", Tag: "NNS"},
		{Text: "run", Tag: "VBG"},
		{Text: ".", Tag: "."},
	}, words)
}

func TestHasPeculiarExpression(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    bool
		wantErr bool
	}{
		{"literal match", "Well, hello there!", "hello", true, false},
		{"no match", "Goodbye", "hello", false, false},
		{"case insensitive", "Say HELLO", "hello", true, false},
		{"regex syntax", "howdy partner", `how(dy)?\s+part`, true, false},
		{"invalid pattern", "anything", "(", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newFixtureClassifier(t, tt.text)
			got, err := c.HasPeculiarExpression(tt.pattern)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.pattern)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFromReaderCleansDocument(t *testing.T) {
	input := "\uFEFFsaid \u201Chello\u201D"
	c, err := NewFromReader(strings.NewReader(input),
		WithSplitter(lineSplitter{}), WithTokenizer(fieldsTokenizer{}))
	require.NoError(t, err)
	assert.Equal(t, `said "hello"`, c.Text())
}

func TestErrEmptyDocumentIsWrapped(t *testing.T) {
	c := newFixtureClassifier(t, "")
	_, err := c.TypeTokenRatio()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyDocument))
	assert.Contains(t, err.Error(), "empty document")
}

// Guard against the defaults silently swapping out: the embedded lemma
// dictionary must feed lemmatized views when no override is given.
func TestDefaultLemmatizerWiredIn(t *testing.T) {
	c := newFixtureClassifier(t, "Cats running .")
	require.IsType(t, &lemma.Dict{}, lemma.Default())

	words, err := c.Words(true)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "run", "."}, words)
}
