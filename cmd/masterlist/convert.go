package main

import (
	"github.com/spf13/cobra"

	"github.com/warp/masterlist/classify"
	"github.com/warp/masterlist/masterlist"
	"github.com/warp/masterlist/schedule"
	"github.com/warp/masterlist/wbs"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Write the master list (default command)",
		Args:  cobra.NoArgs,
		RunE:  a.runConvert,
	}
}

func (a *app) runConvert(cmd *cobra.Command, _ []string) error {
	cfg := a.cfg

	// Bad dates are fatal even when the input turns out to be empty.
	if cfg.Schedule.Enabled {
		if _, _, err := schedule.ParseRange(cfg.Schedule.StartDate, cfg.Schedule.EndDate); err != nil {
			return err
		}
	}

	table, err := a.readInput()
	if err != nil {
		return err
	}

	var sched *schedule.Schedule
	if cfg.Schedule.Enabled {
		if sched, err = a.buildSchedule(table.Rows); err != nil {
			return err
		}
	}

	conv, err := a.converter()
	if err != nil {
		return err
	}
	sheet := conv.Convert(table.Rows, sched)

	out := masterlist.Output{
		CSVPath:   cfg.OutputFile,
		XLSXPath:  cfg.XLSXFile,
		SheetName: cfg.Layout.SheetName,
	}
	if err := masterlist.Save(sheet, out); err != nil {
		return err
	}

	a.log.Info("master list written",
		"file", cfg.OutputFile,
		"xlsx", cfg.XLSXFile,
		"rows", len(sheet.Rows),
		"first_row", sheet.FirstRow,
	)
	return nil
}

func (a *app) readInput() (*wbs.Table, error) {
	table, err := wbs.ReadFile(a.cfg.InputFile)
	if err != nil {
		return nil, err
	}
	a.log.Info("wbs loaded", "file", a.cfg.InputFile, "rows", len(table.Rows))
	if table.Skipped > 0 {
		a.log.Warn("skipped short records", "count", table.Skipped)
	}
	return table, nil
}

func (a *app) buildSchedule(rows []wbs.Row) (*schedule.Schedule, error) {
	sc := a.cfg.Schedule
	sched, err := schedule.Build(rows, sc.StartDate, sc.EndDate, sc.MinGroupDays)
	if err != nil {
		return nil, err
	}
	if sched.Duplicates > 0 {
		a.log.Warn("duplicate wbs rows share one schedule entry", "count", sched.Duplicates)
	}
	if alloc := sched.Allocation; alloc != nil {
		a.log.Debug("days allocated",
			"total_days", alloc.TotalDays,
			"effective_min", alloc.EffectiveMin,
			"groups", len(alloc.Shares),
		)
		if alloc.Unallocated != 0 {
			a.log.Warn("schedule window shorter than group count",
				"total_days", alloc.TotalDays,
				"groups", len(alloc.Shares),
				"unallocated", alloc.Unallocated,
			)
		}
	}
	if span, ok := sched.Span(); ok {
		a.log.Info("schedule built", "groups", len(sched.Groups), "span", span.String())
	}
	return sched, nil
}

func (a *app) converter() (*masterlist.Converter, error) {
	cfg := a.cfg

	rules := classify.DefaultRules()
	if cfg.RulesFile != "" {
		var err error
		if rules, err = classify.LoadFile(cfg.RulesFile); err != nil {
			return nil, err
		}
		a.log.Info("classification rules loaded", "file", cfg.RulesFile,
			"teams", len(rules.Teams), "notes", len(rules.Notes))
	}
	classifier, err := classify.New(rules)
	if err != nil {
		return nil, err
	}

	cols := make([]masterlist.Column, len(cfg.Layout.Columns))
	for i, c := range cfg.Layout.Columns {
		cols[i] = masterlist.Column{Name: c.Name, Spacers: c.Spacers}
	}
	layout, err := masterlist.NewLayout(cols)
	if err != nil {
		return nil, err
	}

	return masterlist.NewConverter(layout, classifier, masterlist.Options{
		Defaults: masterlist.Defaults{
			Tag:      cfg.Defaults.Tag,
			Status:   cfg.Defaults.Status,
			Priority: cfg.Defaults.Priority,
			Person:   cfg.Defaults.Person,
			Notes:    cfg.Defaults.Notes,
		},
		HeaderRow:  cfg.HeaderRow,
		DoneStatus: cfg.Layout.DoneStatus,
	}), nil
}
