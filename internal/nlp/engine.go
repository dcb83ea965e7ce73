package nlp

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/wordfreq/pkg/types"
)

// RuleEngine is the built-in Engine: a rune-class tokenizer with stop-word
// flagging, a capitalization entity heuristic, and rule-based lemmatization.
type RuleEngine struct {
	processes int
}

// NewRuleEngine returns an engine that tokenizes up to processes chunks of
// a batch concurrently.
func NewRuleEngine(processes int) (*RuleEngine, error) {
	if processes <= 0 {
		return nil, types.ErrProcessesInvalid
	}
	return &RuleEngine{processes: processes}, nil
}

// Analyze tokenizes every chunk in the batch. Results are positioned by
// input index, so unit order is stable no matter how the pool schedules the
// work.
func (e *RuleEngine) Analyze(ctx context.Context, chunks []string) ([][]types.Unit, error) {
	results := make([][]types.Unit, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.processes)

	for i, chunk := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if !utf8.ValidString(chunk) {
				return fmt.Errorf("chunk %d: %w", i, ErrMalformedText)
			}
			results[i] = tokenize(chunk)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// tokenize scans one chunk into units. Maximal runs of letters form words,
// digit runs form numbers, whitespace runs collapse into one unit, and
// every other rune stands alone as punctuation.
func tokenize(chunk string) []types.Unit {
	units := make([]types.Unit, 0, len(chunk)/5)
	sentenceStart := true

	for i := 0; i < len(chunk); {
		r, w := utf8.DecodeRuneInString(chunk[i:])

		switch {
		case unicode.IsSpace(r):
			end := i + w
			for end < len(chunk) {
				nr, nw := utf8.DecodeRuneInString(chunk[end:])
				if !unicode.IsSpace(nr) {
					break
				}
				end += nw
			}
			text := chunk[i:end]
			units = append(units, types.Unit{
				Text: text, Lemma: text, POS: types.POSSpace,
				IsSpace: true, Start: i, End: end,
			})
			i = end

		case unicode.IsLetter(r):
			end := i + w
			for end < len(chunk) {
				nr, nw := utf8.DecodeRuneInString(chunk[end:])
				if !unicode.IsLetter(nr) {
					break
				}
				end += nw
			}
			units = append(units, wordUnit(chunk[i:end], i, end, r, sentenceStart))
			sentenceStart = false
			i = end

		case unicode.IsDigit(r):
			end := i + w
			for end < len(chunk) {
				nr, nw := utf8.DecodeRuneInString(chunk[end:])
				// Allow separators between digits: 1,200 and 3.14.
				if !unicode.IsDigit(nr) && !(nr == ',' || nr == '.') {
					break
				}
				if (nr == ',' || nr == '.') && !digitFollows(chunk[end+nw:]) {
					break
				}
				end += nw
			}
			text := chunk[i:end]
			units = append(units, types.Unit{
				Text: text, Lemma: text, POS: types.POSNum,
				IsNumber: true, Start: i, End: end,
			})
			sentenceStart = false
			i = end

		default:
			text := chunk[i : i+w]
			units = append(units, types.Unit{
				Text: text, Lemma: text, POS: punctPOS(r),
				IsPunct: true, Start: i, End: i + w,
			})
			if r == '.' || r == '!' || r == '?' {
				sentenceStart = true
			}
			i += w
		}
	}

	return units
}

// wordUnit classifies a letter run. A capitalized word that does not open a
// sentence is flagged as an entity candidate; stop words come from the
// embedded list; the lemma is computed over the lower-cased surface.
func wordUnit(text string, start, end int, first rune, sentenceStart bool) types.Unit {
	lower := strings.ToLower(text)
	return types.Unit{
		Text:     text,
		Lemma:    Lemmatize(lower),
		POS:      types.POSUnknown,
		IsEntity: unicode.IsUpper(first) && !sentenceStart,
		IsStop:   IsStopWord(lower),
		Start:    start,
		End:      end,
	}
}

func digitFollows(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsDigit(r)
}

func punctPOS(r rune) types.POS {
	if unicode.IsPunct(r) {
		return types.POSPunct
	}
	return types.POSSym
}
