package filter

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/wordfreq/pkg/types"
)

// MaxLemmaLength is the longest accepted lemma. 45 characters is the length
// of the longest English dictionary word; anything longer is a tokenizer
// artifact.
const MaxLemmaLength = 45

// Filter maps one linguistic unit to accept-with-lemma or reject.
// The zero value is not usable; construct with New or NewWithLists.
type Filter struct {
	vowelless map[string]struct{} // vowel-less words that are still valid English
	excluded  map[string]struct{} // known tokenizer/lemmatizer artifacts
	fallback  map[string]string   // surface -> lemma repairs for known model misses
}

// New returns a filter backed by the embedded word lists.
func New() *Filter {
	return &Filter{
		vowelless: mustLoadList("data/vowelless.txt"),
		excluded:  mustLoadList("data/excluded.txt"),
		fallback:  mustLoadPairs("data/fallback_lemmas.txt"),
	}
}

// NewWithLists returns a filter with caller-supplied word lists. Nil maps
// are treated as empty.
func NewWithLists(vowelless, excluded map[string]struct{}, fallback map[string]string) *Filter {
	if vowelless == nil {
		vowelless = map[string]struct{}{}
	}
	if excluded == nil {
		excluded = map[string]struct{}{}
	}
	if fallback == nil {
		fallback = map[string]string{}
	}
	return &Filter{vowelless: vowelless, excluded: excluded, fallback: fallback}
}

// Apply returns the normalized lemma and true if the unit counts as a real
// English word, or "" and false otherwise. It is pure and side-effect free.
func (f *Filter) Apply(u types.Unit) (string, bool) {
	if u.IsPunct || u.IsSpace || u.IsNumber || u.IsEntity || u.IsStop {
		return "", false
	}

	lemma := strings.ToLower(strings.TrimSpace(u.Lemma))

	// An unchanged lemma on a known-bad surface form means the engine's
	// lemmatizer failed; repair from the fixed table.
	if strings.EqualFold(u.Lemma, u.Text) {
		if fixed, ok := f.fallback[strings.ToLower(strings.TrimSpace(u.Text))]; ok {
			lemma = fixed
		}
	}

	if lemma == "" || utf8.RuneCountInString(lemma) > MaxLemmaLength {
		return "", false
	}

	if !isASCIILetters(lemma) {
		return "", false
	}

	if !hasVowel(lemma) {
		if _, ok := f.vowelless[lemma]; !ok {
			return "", false
		}
	}

	// No English word repeats a letter three times in a row.
	if hasTripledLetter(lemma) {
		return "", false
	}

	if _, ok := f.excluded[lemma]; ok {
		return "", false
	}

	return lemma, true
}

// isASCIILetters reports whether s consists only of a-z. s is already
// lower-cased, so anything outside that range (digits, symbols, diacritics,
// non-Latin scripts) fails.
func isASCIILetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func hasVowel(s string) bool {
	return strings.ContainsAny(s, "aeiou")
}

func hasTripledLetter(s string) bool {
	for i := 2; i < len(s); i++ {
		if s[i] == s[i-1] && s[i] == s[i-2] {
			return true
		}
	}
	return false
}
