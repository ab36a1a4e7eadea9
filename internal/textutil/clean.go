package textutil

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// charReplacements normalizes Windows-1252 leftovers and typographic
// punctuation that confuse tokenizers trained on plain ASCII quotes.
var charReplacements = map[string]string{
	"\u2018": "'", "\u2019": "'", "\u201C": "\"", "\u201D": "\"",
	"\u2013": "-", "\u2014": "--", "\u2026": "...", "\u00a0": " ",
	"\u0091": "'", "\u0092": "'", "\u0093": "\"", "\u0094": "\"",
}

// Clean strips a UTF-8 BOM, repairs invalid UTF-8, and normalizes
// typographic punctuation before a document enters the classifier.
func Clean(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	if !utf8.Valid(raw) {
		log.Warn("textutil: document contains invalid UTF-8, replacing bad sequences")
		raw = bytes.ToValidUTF8(raw, []byte(string(utf8.RuneError)))
	}

	str := string(raw)
	for bad, good := range charReplacements {
		str = strings.ReplaceAll(str, bad, good)
	}

	if !utf8.ValidString(str) {
		return "", fmt.Errorf("document still invalid UTF-8 after cleanup")
	}
	return str, nil
}
