package chunker

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/wordfreq/pkg/types"
)

// Chunk is a bounded substring of the source text.
//
// Byte-offset invariant: for every Chunk c produced from input text,
// text[c.Start:c.Start+len(c.Text)] == c.Text.
type Chunk struct {
	Text  string // chunk content, including its trailing whitespace run
	Start int    // byte offset in the original string (inclusive)
	Index int    // zero-based chunk index
}

// String returns a debug representation, e.g. Chunk(0)[0:42](42 bytes).
func (c Chunk) String() string {
	return fmt.Sprintf("Chunk(%d)[%d:%d](%d bytes)", c.Index, c.Start, c.Start+len(c.Text), len(c.Text))
}

// Scanner produces a lazy, forward-only sequence of chunks. It follows the
// bufio.Scanner idiom:
//
//	for sc.Scan() {
//	    c := sc.Chunk()
//	}
type Scanner struct {
	text  string
	size  int // target chunk size in runes
	pos   int // byte offset of the next unread character
	index int
	cur   Chunk
}

// NewScanner returns a scanner over text emitting chunks of roughly size
// runes. A non-positive size is a configuration error.
func NewScanner(text string, size int) (*Scanner, error) {
	if size <= 0 {
		return nil, types.ErrChunkSizeInvalid
	}
	return &Scanner{text: text, size: size}, nil
}

// Scan advances to the next chunk. It returns false when the input is
// exhausted.
func (s *Scanner) Scan() bool {
	if s.pos >= len(s.text) {
		return false
	}

	start := s.pos
	end := s.pos

	// Read forward the target number of runes.
	for n := 0; end < len(s.text) && n < s.size; n++ {
		_, w := utf8.DecodeRuneInString(s.text[end:])
		end += w
	}

	// Extend to the next whitespace so no word is cut. If none exists before
	// end of input, the chunk runs to the end.
	for end < len(s.text) {
		r, w := utf8.DecodeRuneInString(s.text[end:])
		if unicode.IsSpace(r) {
			break
		}
		end += w
	}

	// Absorb the whitespace run. The next chunk then starts on a word, and
	// concatenating all chunks reproduces the input exactly.
	for end < len(s.text) {
		r, w := utf8.DecodeRuneInString(s.text[end:])
		if !unicode.IsSpace(r) {
			break
		}
		end += w
	}

	s.cur = Chunk{Text: s.text[start:end], Start: start, Index: s.index}
	s.index++
	s.pos = end
	return true
}

// Chunk returns the chunk produced by the most recent call to Scan.
func (s *Scanner) Chunk() Chunk {
	return s.cur
}

// Split eagerly collects all chunks of text. It is a convenience wrapper
// around Scanner for inputs known to be small.
func Split(text string, size int) ([]Chunk, error) {
	sc, err := NewScanner(text, size)
	if err != nil {
		return nil, err
	}
	var chunks []Chunk
	for sc.Scan() {
		chunks = append(chunks, sc.Chunk())
	}
	return chunks, nil
}

// EstimateCount returns the expected number of chunks for progress
// reporting. The real count can differ slightly because chunks snap to
// whitespace boundaries.
func EstimateCount(text string, size int) int {
	if size <= 0 {
		return 0
	}
	runes := utf8.RuneCountInString(text)
	return (runes + size - 1) / size
}
