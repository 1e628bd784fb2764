/*
Package wbs holds the work-breakdown-structure data model and its CSV reader.

KEY CONCEPTS:
  Row:  One parsed WBS record: feature group → feature → sub-feature.
  Key:  Composite address of a row, used to look up its schedule entry.

ROW IDENTITY:
  Two rows with the same (group, feature, sub-feature) text share one Key.
  Index keeps the source position so callers can still tell them apart.

SEE ALSO:
  - reader.go: CSV parsing into Rows
  - schedule/builder.go: Maps Keys to date ranges
*/
package wbs

import "strings"

// DefaultGroup is used for rows whose group field is blank.
const DefaultGroup = "General"

// =============================================================================
// ROW
// =============================================================================

// Row is a single WBS record. Rows are immutable once parsed.
type Row struct {
	Group      string
	Feature    string
	SubFeature string
	Index      int // 0-based position among data records
}

// GroupName returns the normalized group name, DefaultGroup when blank.
func (r Row) GroupName() string {
	g := strings.TrimSpace(r.Group)
	if g == "" {
		return DefaultGroup
	}
	return g
}

// Task is the leaf label of the row: the sub-feature when present, else the feature.
func (r Row) Task() string {
	if r.SubFeature != "" {
		return r.SubFeature
	}
	return r.Feature
}

// Path is the breadcrumb shown in the master list: "group > feature" when the
// feature is not already the task, else just the group.
func (r Row) Path() string {
	if r.Feature != "" && r.Feature != r.Task() {
		return r.Group + " > " + r.Feature
	}
	return r.Group
}

// Key returns the composite schedule key of the row.
func (r Row) Key() Key {
	return Key{
		Group:      r.GroupName(),
		Feature:    strings.TrimSpace(r.Feature),
		SubFeature: strings.TrimSpace(r.SubFeature),
	}
}

// =============================================================================
// KEY
// =============================================================================

// Key is the composite group/feature/sub-feature address of a row.
// It is a comparable struct, so field text can never collide with a separator.
type Key struct {
	Group      string
	Feature    string
	SubFeature string
}

func (k Key) String() string {
	return k.Group + "||" + k.Feature + "||" + k.SubFeature
}
