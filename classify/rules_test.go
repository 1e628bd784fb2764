package classify_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/masterlist/classify"
	"github.com/warp/masterlist/wbs"
)

func TestDefaultRules_Compile(t *testing.T) {
	_, err := classify.New(classify.DefaultRules())
	require.NoError(t, err)
}

func TestClassifier_Teams_MultiLabel(t *testing.T) {
	c := classify.MustNew(classify.DefaultRules())

	tests := []struct {
		name string
		row  wbs.Row
		want []string
	}{
		{
			name: "frontend and backend",
			row:  wbs.Row{Group: "Account", Feature: "Login page", SubFeature: ""},
			want: []string{"Frontend", "Backend"},
		},
		{
			name: "payment rules dedupe to one backend label",
			row:  wbs.Row{Group: "Shop", Feature: "Checkout", SubFeature: "Stripe API"},
			want: []string{"Backend"},
		},
		{
			name: "case insensitive",
			row:  wbs.Row{Group: "BRANDING", Feature: "LOGO"},
			want: []string{"Design"},
		},
		{
			name: "no match",
			row:  wbs.Row{Group: "Kickoff", Feature: "Stakeholder meeting"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Teams(tt.row))
		})
	}
}

func TestClassifier_Team_Fallback(t *testing.T) {
	c := classify.MustNew(classify.DefaultRules())

	assert.Equal(t, "PM", c.Team(wbs.Row{Group: "Kickoff"}, "PM"))
	assert.Equal(t, "Frontend, Backend", c.Team(wbs.Row{Group: "Account", Feature: "Login page"}, "PM"))
}

func TestClassifier_Note_FirstMatchWins(t *testing.T) {
	c := classify.MustNew(classify.DefaultRules())

	// Both the payment and API note rules match; payment comes first
	row := wbs.Row{Group: "Shop", Feature: "Checkout", SubFeature: "Payment API"}
	assert.Equal(t, "Coordinate with payment provider; test in sandbox first", c.Note(row, ""))

	assert.Equal(t, "n/a", c.Note(wbs.Row{Group: "Kickoff"}, "n/a"))
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := classify.New(classify.RuleSet{Teams: []classify.Rule{{Pattern: "(unclosed", Result: "X"}}})
	assert.ErrorIs(t, err, classify.ErrInvalidRule)

	_, err = classify.New(classify.RuleSet{Notes: []classify.Rule{{Pattern: "  ", Result: "X"}}})
	assert.ErrorIs(t, err, classify.ErrInvalidRule)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	doc := `teams:
  - pattern: 'mobile'
    result: Mobile
  - pattern: 'push'
    result: Backend
notes:
  - pattern: 'store listing'
    result: Needs App Store assets
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	rs, err := classify.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, rs.Teams, 2)
	require.Len(t, rs.Notes, 1)

	c, err := classify.New(rs)
	require.NoError(t, err)

	row := wbs.Row{Group: "Mobile", Feature: "Push notifications", SubFeature: "Store listing copy"}
	assert.Equal(t, []string{"Mobile", "Backend"}, c.Teams(row))
	assert.Equal(t, "Needs App Store assets", c.Note(row, ""))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := classify.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
