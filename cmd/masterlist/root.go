package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/warp/masterlist/config"
	"github.com/warp/masterlist/logging"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *logging.Logger
}

// flagKeys maps persistent flags to the config keys they override.
var flagKeys = map[string]string{
	"input":      "input_file",
	"output":     "output_file",
	"xlsx":       "xlsx_file",
	"rules":      "rules_file",
	"header-row": "header_row",
	"start":      "schedule.start_date",
	"end":        "schedule.end_date",
	"min-days":   "schedule.min_group_days",
	"schedule":   "schedule.enabled",
	"log-level":  "logging.level",
	"log-mode":   "logging.mode",
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "masterlist",
		Short: "Convert a WBS features table into a scheduled master list",
		Long: `masterlist reads a work-breakdown-structure CSV (feature group, feature,
sub-feature), spreads the configured calendar window across the feature
groups in proportion to their size, and writes a master list ready to paste
into the project spreadsheet.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.close() },
		RunE:              a.runConvert,
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "config file (YAML, TOML or JSON)")
	flags.StringP("input", "i", "", "WBS features CSV")
	flags.StringP("output", "o", "", "master list CSV to write")
	flags.String("xlsx", "", "also write the master list as an XLSX workbook")
	flags.String("rules", "", "YAML file replacing the built-in team and notes rules")
	flags.Int("header-row", 0, "sheet row of the master list header")
	flags.String("start", "", "schedule start date (YYYY-MM-DD)")
	flags.String("end", "", "schedule end date (YYYY-MM-DD, inclusive)")
	flags.Int("min-days", 0, "minimum days per feature group")
	flags.Bool("schedule", true, "fill Start Date and Deadline")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.String("log-mode", "", "development or production")
	bindFlags(a.v, flags)

	root.AddCommand(newConvertCmd(a), newScheduleCmd(a), newAllocateCmd(a))
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for name, key := range flagKeys {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if err := config.ReadFile(a.v, path); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Logging.Mode, cfg.Logging.Level)
	if err != nil {
		return err
	}
	a.log = logger
	a.log.Debug("configuration loaded", "config_file", path, "input", cfg.InputFile, "output", cfg.OutputFile)
	return nil
}

func (a *app) close() {
	if a.log != nil {
		a.log.Sync()
	}
}
