// Package instance loads problem instances from disk: plain integer lists
// (one integer per line) and DIMACS-style undirected edge lists.
//
// DIMACS format, as consumed here:
//
//	c <comment>      – ignored, as are empty lines and "p" problem lines
//	e <u> <v>        – an undirected edge between integer node IDs u and v
//
// All validation happens eagerly at load time; the compilers downstream
// never see a malformed instance. A missing file is distinguishable from a
// malformed one so callers can branch on the error kind.
//
// Errors (sentinel):
//
//   - ErrNotFound      – the referenced input file does not exist.
//   - ErrBadInteger    – a non-empty line is not a valid integer.
//   - ErrMalformedEdge – an "e" line does not carry exactly two integer
//     endpoints, or describes a self-loop.
package instance
