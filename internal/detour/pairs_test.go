package detour_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/detour"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
)

// eightEntryLine has real stops at 0, 2, 3, 5 and 7.
func eightEntryLine() []domain.Stop {
	realAt := map[int]bool{0: true, 2: true, 3: true, 5: true, 7: true}
	line := make([]domain.Stop, 8)
	for i := range line {
		line[i] = domain.Stop{
			Name:     fmt.Sprintf("Stop %d", i),
			Lat:      49.79 + float64(i)*0.001,
			Lng:      9.95 + float64(i)*0.001,
			RealStop: realAt[i],
		}
	}
	return line
}

func TestCreateQueryPairs(t *testing.T) {
	line := eightEntryLine()

	t.Run("cap zero spans the line", func(t *testing.T) {
		pairs := detour.CreateQueryPairs(line, 0)
		require.Len(t, pairs, 1)
		assert.Equal(t, 0, pairs[0].SourceIndex)
		assert.Equal(t, 7, pairs[0].TargetIndex)
		assert.Equal(t, "Stop 0", pairs[0].Source.Name)
		assert.Equal(t, "Stop 7", pairs[0].Target.Name)
	})

	t.Run("cap three", func(t *testing.T) {
		pairs := detour.CreateQueryPairs(line, 3)
		require.Len(t, pairs, 10)
		assert.Equal(t, 2, pairs[4].SourceIndex)
		assert.Equal(t, 3, pairs[4].TargetIndex)
	})

	t.Run("negative cap yields nothing", func(t *testing.T) {
		pairs := detour.CreateQueryPairs(line, -1)
		assert.NotNil(t, pairs)
		assert.Empty(t, pairs)
		assert.Empty(t, detour.CreateQueryPairs(line, -100))
	})

	t.Run("oversized cap enumerates all pairs", func(t *testing.T) {
		assert.Len(t, detour.CreateQueryPairs(line, 3), 10)
		assert.Len(t, detour.CreateQueryPairs(line, 100), 10)
	})

	t.Run("intermediate caps grow monotonically", func(t *testing.T) {
		previous := 0
		for cap := 0; cap <= 4; cap++ {
			n := len(detour.CreateQueryPairs(line, cap))
			assert.GreaterOrEqual(t, n, previous, "cap %d", cap)
			previous = n
		}
		assert.Len(t, detour.CreateQueryPairs(line, 1), 3)
		assert.Len(t, detour.CreateQueryPairs(line, 2), 6)
	})

	t.Run("waypoints are never endpoints", func(t *testing.T) {
		for cap := -1; cap <= 6; cap++ {
			for _, p := range detour.CreateQueryPairs(line, cap) {
				assert.True(t, line[p.SourceIndex].RealStop)
				assert.True(t, line[p.TargetIndex].RealStop)
				assert.Less(t, p.SourceIndex, p.TargetIndex)
			}
		}
	})

	t.Run("fewer than two real stops", func(t *testing.T) {
		single := []domain.Stop{{RealStop: true}, {RealStop: false}, {RealStop: false}}
		assert.Empty(t, detour.CreateQueryPairs(single, 0))
		assert.Empty(t, detour.CreateQueryPairs(single, 5))
		assert.Empty(t, detour.CreateQueryPairs(nil, 0))
	})

	t.Run("first and last real stop for any line", func(t *testing.T) {
		l := []domain.Stop{{RealStop: false}, {RealStop: true}, {RealStop: false}, {RealStop: true}, {RealStop: true}, {RealStop: false}}
		pairs := detour.CreateQueryPairs(l, 0)
		require.Len(t, pairs, 1)
		assert.Equal(t, 1, pairs[0].SourceIndex)
		assert.Equal(t, 4, pairs[0].TargetIndex)
	})
}

func TestMaxUsefulCap(t *testing.T) {
	line := eightEntryLine()
	assert.Equal(t, 5, detour.RealStopCount(line))
	assert.Equal(t, 3, detour.MaxUsefulCap(line))
	assert.Equal(t, 0, detour.MaxUsefulCap(line[:1]))
}
