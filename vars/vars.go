// Package vars provides the variable indexer: a deterministic bijection from
// problem entities (graph nodes, item slots) onto the dense index range
// 0..n-1, plus the composite index arithmetic used when one entity owns a
// group of variables (node × color).
//
// Entities are sorted by their numeric identity before indices are assigned,
// so the same input always produces the same variable order — the foundation
// of the module-wide reproducibility guarantee.
package vars

import (
	"fmt"
	"sort"
)

// Index is an order-preserving bijection entity ID → {0..n-1}.
// The zero value is an empty index; construct with NewIndex.
type Index struct {
	ids []int
	pos map[int]int
}

// NewIndex builds the bijection for the given entity IDs. Input order is
// irrelevant and duplicates collapse: indices follow the ascending ID order.
// An empty input yields an empty (but usable) index.
// Complexity: O(n log n).
func NewIndex(ids []int) *Index {
	uniq := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		uniq[id] = struct{}{}
	}
	sorted := make([]int, 0, len(uniq))
	for id := range uniq {
		sorted = append(sorted, id)
	}
	sort.Ints(sorted)

	pos := make(map[int]int, len(sorted))
	for i, id := range sorted {
		pos[id] = i
	}

	return &Index{ids: sorted, pos: pos}
}

// Len returns the number of indexed entities.
func (ix *Index) Len() int { return len(ix.ids) }

// IndexOf returns the dense index of id and whether id is known.
func (ix *Index) IndexOf(id int) (int, bool) {
	i, ok := ix.pos[id]

	return i, ok
}

// IDOf returns the entity ID at index idx and whether idx is in range.
func (ix *Index) IDOf(idx int) (int, bool) {
	if idx < 0 || idx >= len(ix.ids) {
		return 0, false
	}

	return ix.ids[idx], true
}

// IDs returns a copy of the indexed entity IDs in ascending (index) order.
func (ix *Index) IDs() []int {
	out := make([]int, len(ix.ids))
	copy(out, ix.ids)

	return out
}

// Composite maps (entityIdx, sub) within groups of groupSize onto a single
// flat variable index: entityIdx·groupSize + sub. SplitComposite inverts it
// exactly. Panics when groupSize < 1 or sub is outside [0, groupSize):
// those never describe a valid variable and indicate a caller bug.
func Composite(entityIdx, sub, groupSize int) int {
	if groupSize < 1 {
		panic(fmt.Sprintf("vars: group size must be ≥ 1, got %d", groupSize))
	}
	if sub < 0 || sub >= groupSize {
		panic(fmt.Sprintf("vars: sub-index %d outside group of size %d", sub, groupSize))
	}
	if entityIdx < 0 {
		panic(fmt.Sprintf("vars: negative entity index %d", entityIdx))
	}

	return entityIdx*groupSize + sub
}

// SplitComposite inverts Composite: idx → (entityIdx, sub).
// Panics when groupSize < 1 or idx is negative.
func SplitComposite(idx, groupSize int) (entityIdx, sub int) {
	if groupSize < 1 {
		panic(fmt.Sprintf("vars: group size must be ≥ 1, got %d", groupSize))
	}
	if idx < 0 {
		panic(fmt.Sprintf("vars: negative composite index %d", idx))
	}

	return idx / groupSize, idx % groupSize
}
