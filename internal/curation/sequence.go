package curation

import (
	"math"
	"sort"
)

// openingPercentile positions the opening track: energetic but not peak.
const openingPercentile = 0.6

// SequenceByEnergy reorders the selection into a smooth energy progression.
//
// The tracks are sorted ascending by energy, the output opens at the 60th
// percentile position, and the chain then repeatedly appends the remaining
// track whose energy is numerically closest to the last-placed one (ties go
// to the first found). The result is a permutation of the input that
// minimizes local energy jumps without combinatorial search; O(n²) over the
// remaining-index set, fine for the playlist sizes this targets.
func SequenceByEnergy(tracks []ScoredTrack) []ScoredTrack {
	if len(tracks) <= 1 {
		return append([]ScoredTrack(nil), tracks...)
	}

	byEnergy := append([]ScoredTrack(nil), tracks...)
	sort.SliceStable(byEnergy, func(i, j int) bool {
		return byEnergy[i].EnergyValue() < byEnergy[j].EnergyValue()
	})

	used := make([]bool, len(byEnergy))
	ordered := make([]ScoredTrack, 0, len(byEnergy))

	seed := int(float64(len(byEnergy)) * openingPercentile)
	ordered = append(ordered, byEnergy[seed])
	used[seed] = true
	current := byEnergy[seed].EnergyValue()

	for len(ordered) < len(byEnergy) {
		best := -1
		bestDist := math.Inf(1)
		for i := range byEnergy {
			if used[i] {
				continue
			}
			dist := math.Abs(byEnergy[i].EnergyValue() - current)
			if dist < bestDist {
				bestDist = dist
				best = i
			}
		}
		ordered = append(ordered, byEnergy[best])
		used[best] = true
		current = byEnergy[best].EnergyValue()
	}

	return ordered
}
