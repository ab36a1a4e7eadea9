// Package lemma maps inflected English words to their dictionary base
// forms. Lookups check an irregular-form table first, then try
// suffix-detachment candidates validated against a base-form lexicon.
package lemma

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	_ "embed"
)

// PartOfSpeech selects the exception table and detachment rules used for
// a lookup.
type PartOfSpeech string

const (
	Verb PartOfSpeech = "v"
	Noun PartOfSpeech = "n"
)

// Lemmatizer maps an inflected word to its base form under a
// part-of-speech hint. Implementations return the word unchanged when no
// lemma is known, so callers can detect a miss by equality.
type Lemmatizer interface {
	Lemma(word string, pos PartOfSpeech) string
}

// BaseForm lemmatizes word as a verb and, when the dictionary echoes the
// word back unchanged, retries as a noun. This is the canonical two-pass
// fallback used by the classifier's lemmatized views.
func BaseForm(l Lemmatizer, word string) string {
	lemma := l.Lemma(word, Verb)
	if lemma == word {
		lemma = l.Lemma(word, Noun)
	}
	return lemma
}

// detachment is a candidate suffix substitution. A candidate is accepted
// only when the base lexicon contains it.
type detachment struct {
	suffix, replacement string
}

var detachments = map[PartOfSpeech][]detachment{
	Verb: {
		{"ies", "y"},
		{"ied", "y"},
		{"ing", "e"},
		{"ing", ""},
		{"es", "e"},
		{"es", ""},
		{"ed", "e"},
		{"ed", ""},
		{"s", ""},
	},
	Noun: {
		{"ches", "ch"},
		{"shes", "sh"},
		{"ses", "s"},
		{"xes", "x"},
		{"zes", "z"},
		{"ies", "y"},
		{"ves", "f"},
		{"men", "man"},
		{"s", ""},
	},
}

//go:embed data/verb.exc
var verbExceptions string

//go:embed data/noun.exc
var nounExceptions string

//go:embed data/verbs.txt
var verbBase string

//go:embed data/nouns.txt
var nounBase string

// Dict is a dictionary-backed Lemmatizer. Immutable after construction.
type Dict struct {
	exceptions map[PartOfSpeech]map[string]string
	base       map[PartOfSpeech]map[string]struct{}
}

// New builds a Dict from exception lists ("inflected lemma" per line) and
// base-form word lists (one word per line). Blank lines and lines starting
// with "#" are ignored in all four resources.
func New(verbExc, nounExc, verbs, nouns io.Reader) (*Dict, error) {
	d := &Dict{
		exceptions: map[PartOfSpeech]map[string]string{
			Verb: {}, Noun: {},
		},
		base: map[PartOfSpeech]map[string]struct{}{
			Verb: {}, Noun: {},
		},
	}
	if err := readExceptions(verbExc, d.exceptions[Verb]); err != nil {
		return nil, fmt.Errorf("verb exceptions: %w", err)
	}
	if err := readExceptions(nounExc, d.exceptions[Noun]); err != nil {
		return nil, fmt.Errorf("noun exceptions: %w", err)
	}
	if err := readWordList(verbs, d.base[Verb]); err != nil {
		return nil, fmt.Errorf("verb list: %w", err)
	}
	if err := readWordList(nouns, d.base[Noun]); err != nil {
		return nil, fmt.Errorf("noun list: %w", err)
	}
	return d, nil
}

// LoadFiles builds a Dict from resource files on disk, in the same
// formats New accepts.
func LoadFiles(verbExcPath, nounExcPath, verbListPath, nounListPath string) (*Dict, error) {
	readers := make([]io.Reader, 0, 4)
	for _, path := range []string{verbExcPath, nounExcPath, verbListPath, nounListPath} {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open lemma resource: %w", err)
		}
		defer f.Close()
		readers = append(readers, f)
	}
	return New(readers[0], readers[1], readers[2], readers[3])
}

var (
	defaultDict *Dict
	defaultOnce sync.Once
)

// Default returns the process-wide lemmatizer backed by the embedded
// English resources. Loaded once, never mutated.
func Default() *Dict {
	defaultOnce.Do(func() {
		d, err := New(
			strings.NewReader(verbExceptions),
			strings.NewReader(nounExceptions),
			strings.NewReader(verbBase),
			strings.NewReader(nounBase),
		)
		if err != nil {
			panic(fmt.Sprintf("lemma: embedded resources are malformed: %v", err))
		}
		defaultDict = d
	})
	return defaultDict
}

// Lemma returns the base form of word under pos, or word unchanged when
// no lemma is known. Lookups are case-insensitive; found lemmas come back
// lower-cased.
func (d *Dict) Lemma(word string, pos PartOfSpeech) string {
	lower := strings.ToLower(word)
	if lemma, ok := d.exceptions[pos][lower]; ok {
		return lemma
	}
	if _, ok := d.base[pos][lower]; ok {
		return lower
	}
	for _, rule := range detachments[pos] {
		if len(lower) <= len(rule.suffix) || !strings.HasSuffix(lower, rule.suffix) {
			continue
		}
		candidate := lower[:len(lower)-len(rule.suffix)] + rule.replacement
		if _, ok := d.base[pos][candidate]; ok {
			return candidate
		}
	}
	return word
}

func readExceptions(r io.Reader, into map[string]string) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return fmt.Errorf("malformed exception line %q", line)
		}
		into[strings.ToLower(fields[0])] = strings.ToLower(fields[1])
	}
	return sc.Err()
}

func readWordList(r io.Reader, into map[string]struct{}) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		into[strings.ToLower(line)] = struct{}{}
	}
	return sc.Err()
}
