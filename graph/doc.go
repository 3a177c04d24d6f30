// Package graph provides the minimal undirected simple graph the QUBO
// compilers consume: a stable, orderable set of integer node identifiers,
// a deterministic edge iterator, and a per-node degree query.
//
// Design:
//
//   - Nodes are plain ints; the variable indexer (package vars) sorts them,
//     so any orderable identity scheme works.
//   - The graph is simple: self-loops are rejected with ErrSelfLoop and
//     parallel edges collapse silently. A self-loop has no meaning in any of
//     the penalty formulations built on top of this package.
//   - All getters return data in a fixed sorted order (Nodes ascending,
//     Edges lexicographic with U < V inside each pair), which the compilers
//     rely on for reproducible coefficient maps.
//   - Reads and writes are guarded by a sync.RWMutex, so a loaded graph may
//     be compiled concurrently by several goroutines; compilation itself
//     only ever takes the read side.
//
// Errors (sentinel):
//
//   - ErrSelfLoop      if AddEdge is called with identical endpoints.
//   - ErrNodeNotFound  if Degree or Neighbors references an unknown node.
package graph
