// Package pronounce loads CMU pronouncing-dictionary data: each word maps
// to one or more pronunciation variants, each an ordered list of ARPABET
// phone codes. Vowel phones carry a trailing stress digit, which is what
// syllable counting keys on.
package pronounce

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	_ "embed"

	log "github.com/sirupsen/logrus"
)

//go:embed data/cmudict_core.txt
var coreVocabulary string

// Dict is an immutable pronunciation lookup keyed by lower-cased word.
type Dict struct {
	entries map[string][][]string
}

// Load parses cmudict-format data: one "WORD PHONE PHONE ..." entry per
// line, ";;;" comment lines, and "WORD(1)" style indices for alternate
// pronunciations of the same word.
func Load(r io.Reader) (*Dict, error) {
	entries := make(map[string][][]string)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			log.WithField("line", lineNo).Warn("pronounce: skipping malformed dictionary entry")
			continue
		}
		word := strings.ToLower(fields[0])
		if i := strings.IndexByte(word, '('); i > 0 {
			word = word[:i]
		}
		entries[word] = append(entries[word], fields[1:])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pronouncing dictionary: %w", err)
	}
	return &Dict{entries: entries}, nil
}

// LoadFile loads a cmudict-format file from disk, e.g. the full cmudict
// distribution when the embedded core vocabulary is not enough.
func LoadFile(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pronouncing dictionary: %w", err)
	}
	defer f.Close()
	d, err := Load(f)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"path": path, "entries": d.Len()}).
		Debug("pronounce: loaded dictionary file")
	return d, nil
}

// Phones returns the first pronunciation variant of word, if the word is
// in the dictionary. Lookup is case-insensitive.
func (d *Dict) Phones(word string) ([]string, bool) {
	variants, ok := d.entries[strings.ToLower(word)]
	if !ok || len(variants) == 0 {
		return nil, false
	}
	return variants[0], true
}

// Variants returns every pronunciation of word, in dictionary order.
func (d *Dict) Variants(word string) ([][]string, bool) {
	variants, ok := d.entries[strings.ToLower(word)]
	return variants, ok
}

// Len reports the number of distinct words in the dictionary.
func (d *Dict) Len() int {
	return len(d.entries)
}

var (
	defaultDict *Dict
	defaultOnce sync.Once
)

// Default returns the process-wide dictionary built from the embedded
// core vocabulary. It is loaded exactly once and never mutated, so it is
// safe to share across classifiers.
func Default() *Dict {
	defaultOnce.Do(func() {
		d, err := Load(strings.NewReader(coreVocabulary))
		if err != nil {
			panic(fmt.Sprintf("pronounce: embedded vocabulary is malformed: %v", err))
		}
		log.WithField("entries", d.Len()).Debug("pronounce: loaded embedded vocabulary")
		defaultDict = d
	})
	return defaultDict
}
