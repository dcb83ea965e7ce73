// Package chunker splits input text into bounded-size chunks that never cut
// a word in half.
//
// The scanner reads forward a target number of characters, then extends the
// chunk to the next whitespace boundary and absorbs the whitespace run that
// follows it. Two invariants hold for every input and every valid size:
//
//   - Concatenating the Text of all chunks reproduces the input exactly.
//   - No chunk boundary falls inside a maximal run of non-whitespace
//     characters, so a downstream tokenizer never sees a truncated word.
//
// A chunk may exceed the target size by one word plus its trailing
// whitespace; that overrun is the price of the boundary guarantee.
//
// # Basic Usage
//
//	sc, err := chunker.NewScanner(text, 500_000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for sc.Scan() {
//	    process(sc.Chunk())
//	}
//
// Sizes are counted in runes, not bytes, so multi-byte input is safe.
// Non-positive sizes are rejected as a configuration error.
package chunker
