// Package nlp defines the capability boundary to the tokenization and
// lemmatization engine, and provides a rule-based default implementation.
//
// The Engine interface is intentionally narrow: a batch of chunk texts in,
// one ordered slice of types.Unit per chunk out. Anything that can produce
// that shape — a transformer model behind an ONNX runtime, a remote
// service, or the built-in RuleEngine — can be swapped in without touching
// the token filter or the aggregation store.
//
// # RuleEngine
//
// RuleEngine scans each chunk by rune class (letters, digits, whitespace,
// punctuation), flags stop words from an embedded English list, marks
// capitalized mid-sentence tokens as entity candidates, and lemmatizes with
// an irregular-form lexicon, plural suffix rules, and Porter2 stemming
// (kljensen/snowball) for -ing/-ed forms.
//
// Chunks within a batch are processed in parallel by a bounded errgroup
// pool; results always come back in input order, so downstream counts stay
// deterministic regardless of the worker count.
package nlp
