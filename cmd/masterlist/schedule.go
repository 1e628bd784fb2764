package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/warp/masterlist/schedule"
)

func newScheduleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Print the per-group schedule without writing any file",
		Args:  cobra.NoArgs,
		RunE:  a.runSchedule,
	}
}

func (a *app) runSchedule(cmd *cobra.Command, _ []string) error {
	sc := a.cfg.Schedule
	start, end, err := schedule.ParseRange(sc.StartDate, sc.EndDate)
	if err != nil {
		return err
	}

	table, err := a.readInput()
	if err != nil {
		return err
	}
	sched, err := a.buildSchedule(table.Rows)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Window: %s .. %s (%d days)\n", start, end, schedule.InclusiveDays(start, end))
	if len(sched.Groups) == 0 {
		fmt.Fprintln(w, "No rows to schedule")
		return nil
	}

	fmt.Fprintf(w, "%-30s %5s  %-10s  %-10s %5s\n", "GROUP", "ROWS", "START", "END", "DAYS")
	for _, g := range sched.Groups {
		fmt.Fprintf(w, "%-30s %5d  %-10s  %-10s %5d\n",
			g.Name, len(g.Rows), g.Range.Start, g.Range.End, g.Range.Days())
	}
	if sched.Duplicates > 0 {
		fmt.Fprintf(w, "\nDuplicate rows: %d\n", sched.Duplicates)
	}
	return nil
}
