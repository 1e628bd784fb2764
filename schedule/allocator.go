/*
allocator.go - Proportional day allocation with largest-remainder rounding

PURPOSE:
  Splits a fixed budget of calendar days across weighted items (WBS groups,
  weighted by row count) so that every item gets a whole number of days,
  no item gets less than a minimum, and the total is exactly the budget.

ALGORITHM:
  1. Effective minimum: if min × n does not fit in the budget, shrink it to
     max(1, budget / n) so the constraint is always satisfiable.
  2. Exact share: weight / totalWeight × budget (decimal, no float drift).
  3. Base: max(effectiveMin, floor(exact)). The fractional part of the
     unclamped exact share is kept for tie-breaking.
  4. Surplus (base sum < budget): hand out one day at a time, largest
     fractional part first (stable on ties), wrapping as often as needed.
  5. Deficit (base sum > budget): take one day at a time, round-robin in item
     order, from items still above the effective minimum.

INVARIANTS (when budget >= n):
  - Σ days == budget
  - every item gets >= effective minimum

EXAMPLE:
  Allocate([{A,3},{B,1}], 10, 2)
    exact: A=7.5 B=2.5 → base A=7 B=2 → surplus 1 → tie on .5, A first
    result: A=8 B=2

SEE ALSO:
  - builder.go: Feeds group sizes in and lays the durations on a calendar
*/
package schedule

import (
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TYPES
// =============================================================================

// AllocationItem is one weighted claim on the day budget. IDs must be unique.
type AllocationItem struct {
	ID     string
	Weight int // non-positive weights count as 1
}

// DurationMap maps an item ID to its allocated days (inclusive).
type DurationMap map[string]int

// Total returns the sum of all allocated days.
func (m DurationMap) Total() int {
	total := 0
	for _, d := range m {
		total += d
	}
	return total
}

// Share records how a single item's allocation was derived.
type Share struct {
	ID     string
	Weight int
	Exact  decimal.Decimal // proportional share before rounding
	Frac   decimal.Decimal // Exact − floor(Exact), used for tie-breaking
	Base   int             // max(effective minimum, floor(Exact))
	Days   int             // final allocation
}

// Allocation is the full result of an allocation run.
type Allocation struct {
	TotalDays    int
	EffectiveMin int
	TotalWeight  int
	Shares       []Share // in item order
	Durations    DurationMap

	// Unallocated is TotalDays − Σ Days. Zero whenever TotalDays >= len(items).
	Unallocated int
}

// =============================================================================
// ALLOCATION
// =============================================================================

// Allocate distributes totalDays across items proportionally to weight.
// See AllocateDetailed for the derivation of each share.
func Allocate(items []AllocationItem, totalDays, minDaysPerItem int) DurationMap {
	return AllocateDetailed(items, totalDays, minDaysPerItem).Durations
}

// AllocateDetailed is Allocate with per-item diagnostics.
func AllocateDetailed(items []AllocationItem, totalDays, minDaysPerItem int) *Allocation {
	result := &Allocation{TotalDays: totalDays, Durations: DurationMap{}}
	n := len(items)
	if n == 0 {
		return result
	}

	result.EffectiveMin = EffectiveMin(n, totalDays, minDaysPerItem)
	result.TotalWeight = totalWeight(items)

	budget := decimal.NewFromInt(int64(totalDays))
	weightSum := decimal.NewFromInt(int64(result.TotalWeight))

	allocated := 0
	result.Shares = make([]Share, n)
	for i, item := range items {
		w := weightOf(item)
		exact := decimal.NewFromInt(int64(w)).Mul(budget).Div(weightSum)
		floor := exact.Floor()
		base := max(result.EffectiveMin, int(floor.IntPart()))

		result.Shares[i] = Share{
			ID:     item.ID,
			Weight: w,
			Exact:  exact,
			Frac:   exact.Sub(floor),
			Base:   base,
			Days:   base,
		}
		allocated += base
	}

	remaining := totalDays - allocated
	switch {
	case remaining > 0:
		distributeSurplus(result.Shares, remaining)
	case remaining < 0:
		reclaimDeficit(result.Shares, remaining, result.EffectiveMin)
	}

	for _, s := range result.Shares {
		result.Durations[s.ID] = s.Days
	}
	result.Unallocated = totalDays - result.Durations.Total()
	return result
}

// EffectiveMin is the per-item minimum after shrinking it to keep n items
// within totalDays.
func EffectiveMin(n, totalDays, minDaysPerItem int) int {
	minDays := max(1, minDaysPerItem)
	if n > 0 && minDays*n > totalDays {
		return max(1, totalDays/n)
	}
	return minDays
}

func weightOf(item AllocationItem) int {
	if item.Weight <= 0 {
		return 1
	}
	return item.Weight
}

func totalWeight(items []AllocationItem) int {
	total := 0
	for _, item := range items {
		total += weightOf(item)
	}
	if total == 0 {
		return len(items)
	}
	return total
}

// distributeSurplus adds one day at a time, largest fractional part first.
func distributeSurplus(shares []Share, remaining int) {
	order := make([]int, len(shares))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return shares[order[a]].Frac.GreaterThan(shares[order[b]].Frac)
	})

	for i := 0; remaining > 0; i++ {
		shares[order[i%len(order)]].Days++
		remaining--
	}
}

// reclaimDeficit removes one day at a time, round-robin in item order, from
// items above the minimum. It stops once a full pass frees nothing.
func reclaimDeficit(shares []Share, remaining, minDays int) {
	var reducible []int
	for i, s := range shares {
		if s.Days > minDays {
			reducible = append(reducible, i)
		}
	}

	for remaining < 0 {
		progressed := false
		for _, i := range reducible {
			if remaining == 0 {
				break
			}
			if shares[i].Days > minDays {
				shares[i].Days--
				remaining++
				progressed = true
			}
		}
		if !progressed {
			return
		}
	}
}
