package graph

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")
)

// Edge is an undirected edge stored canonically with U < V.
type Edge struct {
	U, V int
}

// Graph is a thread-safe undirected simple graph over int node IDs.
// The zero value is not usable; construct with New.
type Graph struct {
	mu       sync.RWMutex
	adj      map[int]map[int]struct{}
	numEdges int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{adj: make(map[int]map[int]struct{})}
}

// AddNode inserts an isolated node. Adding an existing node is a no-op.
func (g *Graph) AddNode(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(id)
}

// AddEdge inserts the undirected edge (u, v), creating missing endpoints.
// Returns ErrSelfLoop when u == v; adding an existing edge is a no-op.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return fmt.Errorf("%w: (%d, %d)", ErrSelfLoop, u, v)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(u)
	g.ensureNode(v)
	if _, dup := g.adj[u][v]; dup {
		return nil
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.numEdges++

	return nil
}

// ensureNode must be called with the write lock held.
func (g *Graph) ensureNode(id int) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[int]struct{})
	}
}

// HasNode reports whether id exists in the graph.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]

	return ok
}

// HasEdge reports whether the undirected edge (u, v) exists.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[u][v]

	return ok
}

// Degree returns the number of neighbors of id,
// or ErrNodeNotFound for an unknown node.
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return len(nbrs), nil
}

// Neighbors returns the neighbors of id in ascending order,
// or ErrNodeNotFound for an unknown node.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	out := make([]int, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Ints(out)

	return out, nil
}

// Nodes returns every node ID in ascending order.
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// Edges returns every undirected edge exactly once, canonicalized with
// U < V and sorted lexicographically.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.numEdges)
	for u, nbrs := range g.adj {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].U != out[b].U {
			return out[a].U < out[b].U
		}

		return out[a].V < out[b].V
	})

	return out
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// NumEdges returns the undirected edge count.
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numEdges
}
