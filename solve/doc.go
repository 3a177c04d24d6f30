// Package solve defines the surface between the compilers and an external
// sampling backend, plus a small exhaustive reference sampler.
//
// The compilers hand a sampler two things: the coefficient map and the
// energy offset. The sampler hands back a SampleSet — candidate binary
// assignments ranked by energy (offset included). Nothing in this module
// assumes how many samples come back or how the backend breaks ties; the
// helpers here (First, Lowest, Aggregate) impose deterministic order after
// the fact so results are reproducible in tests and caches.
//
// Exhaustive enumerates all 2^n assignments and is the in-module stand-in
// for an exact solver: exact, deterministic, and only sane for small n
// (it refuses more than MaxVars variables with ErrTooManyVars). Real
// workloads plug in an annealer behind the Sampler interface instead.
package solve
