package masterlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/masterlist/classify"
	"github.com/warp/masterlist/masterlist"
	"github.com/warp/masterlist/schedule"
	"github.com/warp/masterlist/wbs"
)

func newConverter(t *testing.T, classifier *classify.Classifier) *masterlist.Converter {
	t.Helper()
	l, err := masterlist.NewLayout(defaultColumns())
	require.NoError(t, err)
	return masterlist.NewConverter(l, classifier, masterlist.Options{
		Defaults: masterlist.Defaults{
			Tag:      "Vakav Website",
			Status:   "To Do",
			Priority: "2. Medium",
			Person:   "Unassigned",
			Notes:    "",
		},
		HeaderRow:  28,
		DoneStatus: "Done",
	})
}

func TestConvert_FullRow(t *testing.T) {
	// GIVEN: Two rows scheduled over 2025-07-20 .. 2025-07-22
	// WHEN: Converting with the default layout and header on row 28
	// THEN: Cells land on their layout positions and the formula points at row 29/30

	rows := []wbs.Row{
		{Group: "Account", Feature: "Login page", SubFeature: "Password reset", Index: 0},
		{Group: "Kickoff", Feature: "Workshop", Index: 1},
	}
	sched, err := schedule.Build(rows, "2025-07-20", "2025-07-22", 1)
	require.NoError(t, err)

	c := newConverter(t, classify.MustNew(classify.DefaultRules()))
	sheet := c.Convert(rows, sched)

	assert.Equal(t, []string{
		"Checkbox", "Task", "", "", "Tag", "WBS Group", "", "Start Date", "Deadline",
		"Days Left", "Priority", "Status", "Person In Charge", "Notes",
	}, sheet.Header)
	assert.Equal(t, 29, sheet.FirstRow)
	assert.Equal(t, 9, sheet.FormulaColumn)
	require.Len(t, sheet.Rows, 2)

	first := sheet.Rows[0]
	assert.Equal(t, []string{
		"FALSE", "Password reset", "", "", "Vakav Website", "Account > Login page", "",
		"7/20/2025", "7/21/2025",
		`=IF(OR(I29="",L29="Done"),"",I29-TODAY())`,
		"2. Medium", "To Do", "Frontend, Backend", "Security review required",
	}, first)

	second := sheet.Rows[1]
	assert.Equal(t, "Workshop", second[1])
	assert.Equal(t, "Kickoff", second[5])
	assert.Equal(t, "7/22/2025", second[7])
	assert.Equal(t, "7/22/2025", second[8])
	assert.Equal(t, `=IF(OR(I30="",L30="Done"),"",I30-TODAY())`, second[9])
	assert.Equal(t, "Unassigned", second[12])
	assert.Equal(t, "", second[13])
}

func TestConvert_NoSchedule(t *testing.T) {
	rows := []wbs.Row{{Group: "A", Feature: "B", SubFeature: "C"}}

	sheet := newConverter(t, nil).Convert(rows, nil)

	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, "", sheet.Rows[0][7])
	assert.Equal(t, "", sheet.Rows[0][8])
	assert.Equal(t, "Unassigned", sheet.Rows[0][12])
}

func TestDaysLeftFormula_FollowsLayout(t *testing.T) {
	l, err := masterlist.NewLayout([]masterlist.Column{
		{Name: masterlist.ColTask, Spacers: 25},
		{Name: masterlist.ColStatus},
		{Name: masterlist.ColDeadline},
		{Name: masterlist.ColDaysLeft},
	})
	require.NoError(t, err)

	c := masterlist.NewConverter(l, nil, masterlist.Options{HeaderRow: 3, DoneStatus: `Done "ok"`})

	assert.Equal(t, `=IF(OR(AB7="",AA7="Done ""ok"""),"",AB7-TODAY())`, c.DaysLeftFormula(7))
}

func TestConvert_OrderMatchesInput(t *testing.T) {
	rows := []wbs.Row{
		{Group: "B", Feature: "one"},
		{Group: "A", Feature: "two"},
		{Group: "B", Feature: "three"},
	}

	sheet := newConverter(t, nil).Convert(rows, nil)

	var tasks []string
	for _, r := range sheet.Rows {
		tasks = append(tasks, r[1])
	}
	assert.Equal(t, []string{"one", "two", "three"}, tasks)
}
