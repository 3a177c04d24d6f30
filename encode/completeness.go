package encode

import "github.com/katalvlaran/qubo/coeff"

// Completeness adds the expansion of alpha·(Σ x − k)² over the given group
// of variable indices to m: alpha·(1 − 2k) on every member's diagonal and
// 2·alpha between every unordered pair. The dropped constant alpha·k² is the
// caller's offset contribution.
//
// The group slice lists flat variable indices; an empty group writes nothing.
// Complexity: O(g²) for a group of size g.
func Completeness(m coeff.Map, group []int, k int, alpha float64) {
	for a, i := range group {
		m.Add(i, i, alpha*(1-2*float64(k)))
		for _, j := range group[a+1:] {
			m.Add(i, j, 2*alpha)
		}
	}
}
