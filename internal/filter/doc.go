// Package filter decides whether a linguistic unit counts as a real English
// word and, if so, produces its normalized lemma.
//
// The decision is a pure function over the unit and the filter's word lists.
// Rejection is a value, never an error: a bad rule silently undercounts
// instead of crashing, which is why this package carries the densest tests
// in the repository.
//
// Rules are checked in a fixed short-circuit order:
//
//  1. classification flags (punctuation, whitespace, number, named entity,
//     stop word)
//  2. empty lemma or lemma longer than MaxLemmaLength
//  3. characters outside a-z after lower-casing
//  4. no vowel (a, e, i, o, u) and not on the vowel-less whitelist
//  5. a letter repeated three times in a row, or membership in the
//     exclusion set of known tokenizer artifacts
//
// All predicates are independent, so the order affects only cost, not the
// accepted set.
//
// The vowel-less whitelist, the exclusion set, and the fallback lemma table
// are versioned data files embedded at build time; LoadList and LoadPairs
// read replacements from any io.Reader.
package filter
