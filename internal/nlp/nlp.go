package nlp

import (
	"context"
	"errors"

	"github.com/dshills/wordfreq/pkg/types"
)

// ErrMalformedText is returned when a chunk is not valid UTF-8. The batch
// coordinator treats it as a per-batch failure: logged, counted, skipped.
var ErrMalformedText = errors.New("malformed text: not valid UTF-8")

// Engine is the NLP capability boundary. Analyze takes one batch of chunk
// texts and returns one ordered unit sequence per chunk, in input order.
// An error poisons the whole batch; partial results are never returned.
type Engine interface {
	Analyze(ctx context.Context, chunks []string) ([][]types.Unit, error)
}
