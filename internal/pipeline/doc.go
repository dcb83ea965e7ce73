// Package pipeline coordinates the run: it drives the NLP engine over
// successive chunk batches, filters every unit, tallies the accepted words,
// and merges each batch tally into the aggregation store.
//
// Batches are processed and merged strictly in input order, so counts are
// reproducible for a fixed input and configuration. Parallelism happens
// only inside the engine; the coordinator blocks on each batch.
//
// Failure policy follows the error taxonomy of the system:
//
//   - configuration errors fail before any processing starts;
//   - an engine failure poisons only its batch — logged, counted, skipped;
//   - a storage failure aborts the run, preserving everything already
//     merged (WAL durability means no global rollback).
//
// After every batch the coordinator forces a garbage collection pass.
// Engines that wrap transformer models retain large per-document buffers,
// and bounding memory across very large inputs matters more here than the
// cost of an extra GC cycle per batch.
package pipeline
