package types

import "errors"

// Configuration errors reported before any processing begins
var (
	ErrChunkSizeInvalid = errors.New("chunk size must be positive")
	ErrBatchSizeInvalid = errors.New("batch size must be positive")
	ErrProcessesInvalid = errors.New("process count must be positive")
)

// Config holds the run configuration shared by the chunker, the NLP engine,
// and the batch coordinator.
type Config struct {
	ChunkSize int // target chunk size in characters (runes)
	BatchSize int // chunks per NLP invocation
	Processes int // parallel NLP workers
}

// DefaultConfig returns the default run configuration.
func DefaultConfig() Config {
	return Config{
		ChunkSize: 500_000,
		BatchSize: 4,
		Processes: 2,
	}
}

// Validate reports the first invalid configuration field.
func (c Config) Validate() error {
	if c.ChunkSize <= 0 {
		return ErrChunkSizeInvalid
	}
	if c.BatchSize <= 0 {
		return ErrBatchSizeInvalid
	}
	if c.Processes <= 0 {
		return ErrProcessesInvalid
	}
	return nil
}
