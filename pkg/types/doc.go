// Package types provides shared type definitions for the wordfreq pipeline.
//
// This package defines the domain types that flow between the pipeline
// components: linguistic units produced by the NLP engine, per-batch
// frequency tallies, and the run configuration consumed by every stage.
//
// # Core Types
//
// Unit represents one token-level result from the NLP engine, carrying the
// surface form, the lemma, and the classification flags the token filter
// inspects:
//
//	unit := types.Unit{
//	    Text:  "ran",
//	    Lemma: "run",
//	    POS:   types.POSVerb,
//	}
//
// Tally is a per-batch word to count map. It is created fresh for every
// batch, merged into the aggregation store, and discarded:
//
//	tally := types.Tally{}
//	tally.Add("cat")
//	tally.Add("cat")
//	// tally["cat"] == 2
//
// Config holds the knobs shared by the chunker, the NLP engine, and the
// batch coordinator. Validate reports the first invalid field so a run can
// fail fast before any processing begins.
package types
