// Package processor contains the per-bundle proof processing strategies.
//
// Each bundle selects a Processor that reshapes the raw extracted claim
// parameters into the output the portal forwards to applications. The set of
// processors is closed and dispatched through a lookup table; unknown bundle
// ids fall back to the default processor, so Get never fails.
package processor
