package types

// POS is a coarse part-of-speech tag for a linguistic unit.
type POS string

const (
	POSNoun    POS = "NOUN"
	POSVerb    POS = "VERB"
	POSAdj     POS = "ADJ"
	POSAdv     POS = "ADV"
	POSNum     POS = "NUM"
	POSPunct   POS = "PUNCT"
	POSSym     POS = "SYM"
	POSSpace   POS = "SPACE"
	POSUnknown POS = "X"
)

// Unit is one token-level result from the NLP engine. The surface text and
// offsets refer to the chunk the unit was produced from, not the whole input.
type Unit struct {
	// Content
	Text  string // surface form as it appeared in the chunk
	Lemma string // dictionary base form, engine's best effort

	// Classification
	POS      POS
	IsEntity bool // part of a named entity
	IsPunct  bool
	IsStop   bool
	IsNumber bool // digit token or number-like ("3rd", "1,200")
	IsSpace  bool // whitespace-only

	// Location (byte offsets within the chunk)
	Start int
	End   int
}

// Tally maps an accepted word to its occurrence count within one batch.
type Tally map[string]int64

// Add increments the count for word.
func (t Tally) Add(word string) {
	t[word]++
}

// MergeFrom folds other into t. Merging is commutative and associative, so
// tallies may be combined in any grouping without changing totals.
func (t Tally) MergeFrom(other Tally) {
	for word, n := range other {
		t[word] += n
	}
}

// Total returns the sum of all counts in the tally.
func (t Tally) Total() int64 {
	var total int64
	for _, n := range t {
		total += n
	}
	return total
}
