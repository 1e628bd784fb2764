package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/warp/masterlist/schedule"
)

func newAllocateCmd(a *app) *cobra.Command {
	var days, minDays int

	cmd := &cobra.Command{
		Use:   "allocate ID[=WEIGHT]...",
		Short: "Split a day budget across weighted items and show the derivation",
		Long: `allocate runs the group day allocator on the given items. A weight
defaults to 1. Without --days the budget is the configured schedule window.`,
		Example: "  masterlist allocate --days 10 --min 2 A=3 B=1",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItems(args)
			if err != nil {
				return err
			}
			if days <= 0 {
				start, end, err := schedule.ParseRange(a.cfg.Schedule.StartDate, a.cfg.Schedule.EndDate)
				if err != nil {
					return err
				}
				days = schedule.InclusiveDays(start, end)
			}
			if minDays <= 0 {
				minDays = a.cfg.Schedule.MinGroupDays
			}

			alloc := schedule.AllocateDetailed(items, days, minDays)
			printAllocation(cmd, alloc)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "total days to allocate")
	cmd.Flags().IntVar(&minDays, "min", 0, "minimum days per item")
	return cmd
}

func parseItems(args []string) ([]schedule.AllocationItem, error) {
	items := make([]schedule.AllocationItem, 0, len(args))
	seen := make(map[string]bool, len(args))
	for _, arg := range args {
		id, weight, hasWeight := strings.Cut(arg, "=")
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("item %q: empty id", arg)
		}
		if seen[id] {
			return nil, fmt.Errorf("item %q: duplicate id", id)
		}
		seen[id] = true

		w := 1
		if hasWeight {
			n, err := strconv.Atoi(strings.TrimSpace(weight))
			if err != nil {
				return nil, fmt.Errorf("item %q: weight: %w", arg, err)
			}
			w = n
		}
		items = append(items, schedule.AllocationItem{ID: id, Weight: w})
	}
	return items, nil
}

func printAllocation(cmd *cobra.Command, alloc *schedule.Allocation) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Total days: %d  Effective min: %d  Total weight: %d\n\n",
		alloc.TotalDays, alloc.EffectiveMin, alloc.TotalWeight)
	fmt.Fprintf(w, "%-20s %7s %9s %6s %5s\n", "ID", "WEIGHT", "EXACT", "BASE", "DAYS")
	for _, s := range alloc.Shares {
		fmt.Fprintf(w, "%-20s %7d %9s %6d %5d\n", s.ID, s.Weight, s.Exact.StringFixed(2), s.Base, s.Days)
	}
	if alloc.Unallocated != 0 {
		fmt.Fprintf(w, "\nUnallocated: %d (budget smaller than item count)\n", alloc.Unallocated)
	}
}
