/*
main.go - Application entry point

PURPOSE:
  Converts a WBS features export into the project master list. Reads the
  feature table, lays the feature groups out on the configured calendar,
  infers the owning team and a note for every task, and writes the master
  list CSV (and optionally an XLSX copy).

RUN SEQUENCE:
  1. Load configuration (defaults, config file, MASTERLIST_* env, flags)
  2. Validate the schedule dates
  3. Read the WBS CSV
  4. Allocate days per group and build the schedule
  5. Convert rows using the column layout and classification rules
  6. Render every output in memory, then replace the files

COMMANDS:
  masterlist [convert]   Full conversion (default)
  masterlist schedule    Print the group plan without writing files
  masterlist allocate    Run the day allocator on ad-hoc weights

EXAMPLES:
  # Convert with the built-in defaults
  ./masterlist

  # Different window, workbook copy, custom rules
  ./masterlist --start 2025-09-01 --end 2025-12-19 --xlsx master.xlsx --rules rules.yaml

  # How would 30 days split over groups of 12, 5 and 1 rows?
  ./masterlist allocate --days 30 --min 3 Design=12 Build=5 Launch=1

ENVIRONMENT:
  Every config key can be set as MASTERLIST_<KEY>, dots replaced by
  underscores, e.g. MASTERLIST_SCHEDULE_START_DATE=2025-09-01.

SEE ALSO:
  - root.go:     Flags and configuration loading
  - convert.go:  Conversion pipeline
  - schedule/:   Allocation and calendar layout
  - masterlist/: Layout, formula and output writers
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
