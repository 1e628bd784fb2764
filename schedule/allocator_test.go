package schedule_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/masterlist/schedule"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func items(weights ...int) []schedule.AllocationItem {
	out := make([]schedule.AllocationItem, len(weights))
	for i, w := range weights {
		out[i] = schedule.AllocationItem{ID: string(rune('A' + i)), Weight: w}
	}
	return out
}

// =============================================================================
// SCENARIOS
// =============================================================================

func TestAllocate_Empty(t *testing.T) {
	assert.Empty(t, schedule.Allocate(nil, 10, 2))
}

func TestAllocate_SingleItemGetsEverything(t *testing.T) {
	for _, w := range []int{0, 1, 7, 1000} {
		got := schedule.Allocate(items(w), 113, 3)
		assert.Equal(t, schedule.DurationMap{"A": 113}, got, "weight %d", w)
	}
}

func TestAllocate_ProportionalWithTieBreak(t *testing.T) {
	// GIVEN: A weighs 3, B weighs 1, 10 days, minimum 2
	// WHEN: Exact shares are 7.5 and 2.5
	// THEN: Bases 7 and 2, the spare day goes to A (tie, first in order)

	got := schedule.Allocate(items(3, 1), 10, 2)

	assert.Equal(t, schedule.DurationMap{"A": 8, "B": 2}, got)
}

func TestAllocate_MinimumShrinksWhenInfeasible(t *testing.T) {
	// GIVEN: 3 single-row groups, 5 days, minimum 3 (3×3 > 5)
	// THEN: Effective minimum is floor(5/3) = 1 and the total is exactly 5

	detail := schedule.AllocateDetailed(items(1, 1, 1), 5, 3)

	assert.Equal(t, 1, detail.EffectiveMin)
	assert.Equal(t, schedule.DurationMap{"A": 2, "B": 2, "C": 1}, detail.Durations)
	assert.Zero(t, detail.Unallocated)
}

func TestAllocate_SurplusGoesToLargestFraction(t *testing.T) {
	// exact shares A=1.5 B=3.0 C=5.5; one spare day, A and C tie on .5, A is first
	got := schedule.Allocate(items(3, 6, 11), 10, 1)
	assert.Equal(t, 10, got.Total())
	assert.Equal(t, 3, got["B"])
	assert.Equal(t, 2, got["A"])
	assert.Equal(t, 5, got["C"])
}

func TestAllocate_DeficitReclaimedInItemOrder(t *testing.T) {
	// GIVEN: Weights 5,5,1,1 over 12 days, minimum 2
	// WHEN: Bases are 5,5,2,2 (14 > 12)
	// THEN: One day each comes back from A then B

	got := schedule.Allocate(items(5, 5, 1, 1), 12, 2)

	assert.Equal(t, schedule.DurationMap{"A": 4, "B": 4, "C": 2, "D": 2}, got)
}

func TestAllocate_DeficitLargerThanFivePasses(t *testing.T) {
	// GIVEN: One dominant group and 19 tiny ones clamped up to the minimum
	// WHEN: The only reducible group must give back 55 days
	// THEN: The total still lands exactly on the budget

	weights := []int{981}
	for i := 0; i < 19; i++ {
		weights = append(weights, 1)
	}

	detail := schedule.AllocateDetailed(items(weights...), 100, 3)

	assert.Equal(t, 100, detail.Durations.Total())
	assert.Equal(t, 43, detail.Durations["A"])
	for _, s := range detail.Shares[1:] {
		assert.Equal(t, 3, s.Days)
	}
	assert.Zero(t, detail.Unallocated)
}

func TestAllocate_ZeroWeightStillGetsMinimum(t *testing.T) {
	got := schedule.Allocate(items(0, 10), 20, 4)
	assert.GreaterOrEqual(t, got["A"], 4)
	assert.Equal(t, 20, got.Total())
}

func TestAllocate_FractionUsesUnclampedShare(t *testing.T) {
	// A's exact share 7/3 ≈ 2.33 is clamped up to 3, but its fraction stays .33
	detail := schedule.AllocateDetailed(items(1, 2), 7, 3)
	require.Len(t, detail.Shares, 2)

	a := detail.Shares[0]
	assert.Equal(t, 3, a.Base)
	assert.True(t, a.Frac.Equal(a.Exact.Sub(decimal.NewFromInt(2))))
	assert.Equal(t, schedule.DurationMap{"A": 3, "B": 4}, detail.Durations)
}

func TestAllocate_EqualWeightsDifferByAtMostOne(t *testing.T) {
	for n := 2; n <= 9; n++ {
		for total := n; total <= 50; total++ {
			ws := make([]int, n)
			for i := range ws {
				ws[i] = 4
			}
			got := schedule.Allocate(items(ws...), total, 1)

			lo, hi := total, 0
			for _, d := range got {
				lo = min(lo, d)
				hi = max(hi, d)
			}
			assert.LessOrEqual(t, hi-lo, 1, "n=%d total=%d", n, total)
		}
	}
}

// =============================================================================
// INVARIANTS
// =============================================================================

func TestAllocate_SumAndMinimumInvariants(t *testing.T) {
	weightSets := [][]int{
		{1},
		{3, 1},
		{1, 1, 1},
		{10, 1, 1, 1, 1},
		{2, 7, 1, 0, 5, 3},
		{50, 1, 1, 1, 1, 1, 1, 1},
		{-2, 4, 9},
	}

	for _, ws := range weightSets {
		for total := len(ws); total <= 120; total += 7 {
			for minDays := 1; minDays <= 6; minDays++ {
				name := fmt.Sprintf("w=%v/total=%d/min=%d", ws, total, minDays)
				detail := schedule.AllocateDetailed(items(ws...), total, minDays)

				want := schedule.EffectiveMin(len(ws), total, minDays)
				assert.Equal(t, want, detail.EffectiveMin, name)
				assert.Equal(t, total, detail.Durations.Total(), name)
				for id, d := range detail.Durations {
					assert.GreaterOrEqual(t, d, want, "%s item %s", name, id)
				}
			}
		}
	}
}

func TestEffectiveMin(t *testing.T) {
	tests := []struct {
		n, total, min, want int
	}{
		{n: 3, total: 5, min: 3, want: 1},
		{n: 3, total: 9, min: 3, want: 3},
		{n: 4, total: 10, min: 3, want: 2},
		{n: 10, total: 5, min: 2, want: 1},
		{n: 2, total: 10, min: 0, want: 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, schedule.EffectiveMin(tt.n, tt.total, tt.min), "%+v", tt)
	}
}
