package detour

import "github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"

// RealStopCount returns how many entries of line are real stops.
func RealStopCount(line []domain.Stop) int {
	count := 0
	for _, stop := range line {
		if stop.RealStop {
			count++
		}
	}
	return count
}

// MaxUsefulCap returns the smallest cap for which CreateQueryPairs
// enumerates every pair of real stops.
func MaxUsefulCap(line []domain.Stop) int {
	if n := RealStopCount(line); n > 2 {
		return n - 2
	}
	return 0
}

// CreateQueryPairs selects the real-stop pairs whose direct route should be
// queried. A pair is accepted when the target is at least
// RealStopCount(line)-cap real stops away from the source, counting both ends.
// Cap 0 yields the single pair spanning the line; negative caps yield nothing.
func CreateQueryPairs(line []domain.Stop, cap int) []domain.QueryPair {
	pairs := make([]domain.QueryPair, 0)
	gap := RealStopCount(line) - cap

	for i, source := range line {
		if !source.RealStop {
			continue
		}
		seen := 1
		for j := i + 1; j < len(line); j++ {
			target := line[j]
			if !target.RealStop {
				continue
			}
			seen++
			if seen >= gap {
				pairs = append(pairs, domain.QueryPair{
					Source:      source,
					Target:      target,
					SourceIndex: i,
					TargetIndex: j,
				})
			}
		}
	}

	return pairs
}
