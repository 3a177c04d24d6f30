// Package qubo compiles combinatorial-optimization problems into canonical
// Quadratic Unconstrained Binary Optimization (QUBO) form — a sparse
// coefficient map over binary decision variables whose minimum-energy
// assignment encodes a feasible, optimal solution of the original problem.
//
// 🚀 What is qubo?
//
//	A deterministic compilation layer that brings together:
//		• Coefficient maps: sparse upper-triangular quadratic forms with exact energy evaluation
//		• Variable indexing: stable entity→index bijections and composite (node × group) arithmetic
//		• Constraint encoders: completeness/one-hot, edge structure terms, auxiliary-bit inequalities
//		• Problem compilers: k-clique, graph coloring, N-queens, min vertex cover, 0/1 knapsack
//		• Instance loading: DIMACS edge lists and plain integer lists
//		• Solver surface: ranked sample sets plus an exhaustive reference sampler
//
// ✨ Why choose qubo?
//
//   - Reproducible – identical inputs always produce bit-for-bit identical maps
//   - Pure – compilers are side-effect-free; fresh map per call, safe to run in parallel
//   - Grounded – every compiler returns the closed-form offset that zeroes its ground state
//   - Pure Go – no cgo, no solver lock-in; any annealer that eats (map, offset) plugs in
//
// Everything is organized under flat subpackages:
//
//	coeff/       — the shared Coefficient Map type and energy evaluation
//	vars/        — entity→index bijection and composite index arithmetic
//	graph/       — minimal thread-safe undirected simple graph (nodes, edges, degrees)
//	encode/      — reusable penalty encoders shared by the compilers
//	clique/      — does the graph contain a clique of size k?
//	coloring/    — proper k-coloring of a graph
//	queens/      — N-queens via an attack-conflict graph
//	vertexcover/ — minimum vertex cover
//	knapsack/    — 0/1 knapsack, simple and auxiliary-bit formulations
//	instance/    — DIMACS and integer-list file loading
//	solve/       — sampler interface, sample sets, exhaustive reference sampler
//
// Quick start: build a QUBO for a 3-clique and score a candidate selection.
//
//	g := graph.New()
//	g.AddEdge(0, 1)
//	g.AddEdge(0, 2)
//	g.AddEdge(1, 2)
//	m, offset, err := clique.Build(g, 3, clique.WithAlpha(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Energy([]int{1, 1, 1}) + offset) // 0 — a real 3-clique
//
// See each subpackage's doc.go for formulas, invariants and complexity.
package qubo
