package encode

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/qubo/coeff"
)

// SlackBits returns the binary slack representation for a capacity bound:
// numBits power-of-two bits weighted 2⁰..2^(numBits−1) plus one remainder
// bit weighted remainder = capacity − (2^numBits − 1). Together they
// represent every integer in [0, capacity] exactly.
//
// numBits = ⌊log₂ capacity⌋, so numBits == 0 is valid (capacity 1 needs only
// the remainder bit). Returns ErrBadCapacity when capacity < 1.
func SlackBits(capacity int) (numBits, remainder int, err error) {
	if capacity < 1 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	numBits = bits.Len(uint(capacity)) - 1
	remainder = capacity - (1<<numBits - 1)

	return numBits, remainder, nil
}

// Inequality encodes Σ(weights[i]·x_i) ≤ capacity into m as the squared
// equality penalty alpha·(Σ weights[i]·x_i − S)², where the slack value
// S = Σ 2^k·s_k + remainder·s_r is carried by auxiliary bits appended after
// the item variables: bit k lives at index n+k, the remainder bit at
// n+numBits (n = len(weights)).
//
// Expansion, with W = Σ w_i x_i and S the slack form (the constant term of
// (W − S)² is zero, so this penalty contributes nothing to the offset):
//
//	item diagonal        +alpha·w_i²
//	item × item          +2·alpha·w_i·w_j            (i < j)
//	item × bit k         −2·alpha·w_i·2^k
//	item × remainder     −2·alpha·w_i·remainder
//	bit k diagonal       +alpha·2^(2k)
//	bit k × bit l        +alpha·2^(k+l+1)            (k < l)
//	bit k × remainder    +alpha·2^(k+1)·remainder
//	remainder diagonal   +alpha·remainder²
//
// Any feasible item selection (W ≤ capacity) admits a slack setting with
// S = W, zeroing the penalty; an infeasible one exceeds every representable
// S, so its penalty stays strictly positive.
//
// Fails fast (before writing any coefficient) on capacity < 1 or a
// non-positive weight. Complexity: O((n + numBits)²).
func Inequality(m coeff.Map, weights []int, capacity int, alpha float64) error {
	numBits, remainder, err := SlackBits(capacity)
	if err != nil {
		return err
	}
	for _, w := range weights {
		if w <= 0 {
			return fmt.Errorf("%w: got %d", ErrBadWeight, w)
		}
	}

	n := len(weights)
	rem := n + numBits // index of the remainder bit

	// Slack bit weights as floats; 2^(2k) style products are formed in
	// float64 so wide capacities cannot overflow integer shifts.
	pow := make([]float64, numBits)
	for k := range pow {
		pow[k] = float64(int64(1) << k)
	}
	r := float64(remainder)

	// Item terms and item × slack cross terms.
	for i, wi := range weights {
		w := float64(wi)
		m.Add(i, i, alpha*w*w)
		for j := i + 1; j < n; j++ {
			m.Add(i, j, 2*alpha*w*float64(weights[j]))
		}
		for k := 0; k < numBits; k++ {
			m.Add(i, n+k, -2*alpha*w*pow[k])
		}
		m.Add(i, rem, -2*alpha*w*r)
	}

	// Slack-only terms.
	for k := 0; k < numBits; k++ {
		m.Add(n+k, n+k, alpha*pow[k]*pow[k])
		for l := k + 1; l < numBits; l++ {
			m.Add(n+k, n+l, 2*alpha*pow[k]*pow[l])
		}
		m.Add(n+k, rem, 2*alpha*pow[k]*r)
	}
	m.Add(rem, rem, alpha*r*r)

	return nil
}
