package solve

import "sort"

// First returns the lowest-energy sample and whether the set is non-empty.
func (s SampleSet) First() (Sample, bool) {
	if len(s.Samples) == 0 {
		return Sample{}, false
	}
	best := s.Samples[0]
	for _, smp := range s.Samples[1:] {
		if smp.Energy < best.Energy {
			best = smp
		}
	}

	return best, true
}

// Lowest returns the subset of samples tied at the minimum energy,
// in deterministic order.
func (s SampleSet) Lowest() SampleSet {
	first, ok := s.First()
	if !ok {
		return SampleSet{}
	}
	out := SampleSet{}
	for _, smp := range s.Samples {
		if smp.Energy == first.Energy {
			out.Samples = append(out.Samples, smp)
		}
	}
	out.sortDeterministic()

	return out
}

// Aggregate merges samples with identical assignments (summing their
// occurrence counts) and returns the result ranked by energy; ties are
// broken by lexicographic bit order so the output is deterministic
// regardless of the backend's tie-breaking.
func (s SampleSet) Aggregate() SampleSet {
	type key string
	merged := make(map[key]*Sample, len(s.Samples))
	order := make([]key, 0, len(s.Samples))
	for _, smp := range s.Samples {
		k := make([]byte, len(smp.Bits))
		for i, b := range smp.Bits {
			if b != 0 {
				k[i] = '1'
			} else {
				k[i] = '0'
			}
		}
		kk := key(k)
		if m, ok := merged[kk]; ok {
			m.Occurrences += occurrences(smp)

			continue
		}
		cp := smp
		cp.Bits = append([]int(nil), smp.Bits...)
		cp.Occurrences = occurrences(smp)
		merged[kk] = &cp
		order = append(order, kk)
	}

	out := SampleSet{Samples: make([]Sample, 0, len(order))}
	for _, kk := range order {
		out.Samples = append(out.Samples, *merged[kk])
	}
	out.sortDeterministic()

	return out
}

// occurrences treats an unset count as a single read.
func occurrences(s Sample) int {
	if s.Occurrences < 1 {
		return 1
	}

	return s.Occurrences
}

// sortDeterministic orders by energy, then lexicographically by bits.
func (s *SampleSet) sortDeterministic() {
	sort.Slice(s.Samples, func(a, b int) bool {
		sa, sb := s.Samples[a], s.Samples[b]
		if sa.Energy != sb.Energy {
			return sa.Energy < sb.Energy
		}
		for i := 0; i < len(sa.Bits) && i < len(sb.Bits); i++ {
			if sa.Bits[i] != sb.Bits[i] {
				return sa.Bits[i] < sb.Bits[i]
			}
		}

		return len(sa.Bits) < len(sb.Bits)
	})
}
