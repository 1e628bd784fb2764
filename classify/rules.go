/*
Package classify infers the owning team and a note for a WBS row.

RULE TABLES:
  Both lookups are ordered lists of (pattern, result) rules, evaluated
  against "group feature sub-feature" case-insensitively:

    Teams: every matching rule contributes its team (multi-label), in rule
           order, without repeats.
    Notes: the first matching rule wins.

  The tables are data. DefaultRules ships a general web-project table;
  LoadFile replaces it with a YAML document of the same shape:

    teams:
      - pattern: '\b(api|database|auth)\b'
        result: Backend
    notes:
      - pattern: 'payment|checkout'
        result: Coordinate with payment provider
*/
package classify

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/warp/masterlist/wbs"
)

// ErrInvalidRule is returned when a rule pattern does not compile.
var ErrInvalidRule = errors.New("invalid classification rule")

// Rule maps a pattern to a result.
type Rule struct {
	Pattern string `yaml:"pattern"`
	Result  string `yaml:"result"`
}

// RuleSet holds both rule tables.
type RuleSet struct {
	Teams []Rule `yaml:"teams"`
	Notes []Rule `yaml:"notes"`
}

type compiledRule struct {
	re     *regexp.Regexp
	result string
}

func (r compiledRule) matches(text string) bool { return r.re.MatchString(text) }

// Classifier evaluates a compiled RuleSet. It is immutable and safe to share.
type Classifier struct {
	teams []compiledRule
	notes []compiledRule
}

// New compiles rs. Patterns are matched case-insensitively.
func New(rs RuleSet) (*Classifier, error) {
	teams, err := compile("teams", rs.Teams)
	if err != nil {
		return nil, err
	}
	notes, err := compile("notes", rs.Notes)
	if err != nil {
		return nil, err
	}
	return &Classifier{teams: teams, notes: notes}, nil
}

// MustNew is New for rule tables known to be valid, such as DefaultRules.
func MustNew(rs RuleSet) *Classifier {
	c, err := New(rs)
	if err != nil {
		panic(err)
	}
	return c
}

func compile(table string, rules []Rule) ([]compiledRule, error) {
	out := make([]compiledRule, 0, len(rules))
	for i, r := range rules {
		if strings.TrimSpace(r.Pattern) == "" {
			return nil, fmt.Errorf("%w: %s[%d]: empty pattern", ErrInvalidRule, table, i)
		}
		re, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %s[%d] %q: %v", ErrInvalidRule, table, i, r.Pattern, err)
		}
		out = append(out, compiledRule{re: re, result: r.Result})
	}
	return out, nil
}

// LoadFile reads a YAML rule table.
func LoadFile(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("read rules: %w", err)
	}
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return RuleSet{}, fmt.Errorf("parse rules %s: %w", path, err)
	}
	return rs, nil
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Teams returns every team whose rule matches the row, in rule order.
func (c *Classifier) Teams(row wbs.Row) []string {
	text := matchText(row)
	var teams []string
	seen := make(map[string]bool)
	for _, r := range c.teams {
		if r.matches(text) && !seen[r.result] {
			seen[r.result] = true
			teams = append(teams, r.result)
		}
	}
	return teams
}

// Team returns the matching teams joined with ", ", or fallback when none match.
func (c *Classifier) Team(row wbs.Row, fallback string) string {
	teams := c.Teams(row)
	if len(teams) == 0 {
		return fallback
	}
	return strings.Join(teams, ", ")
}

// Note returns the result of the first matching note rule, or fallback.
func (c *Classifier) Note(row wbs.Row, fallback string) string {
	text := matchText(row)
	for _, r := range c.notes {
		if r.matches(text) {
			return r.result
		}
	}
	return fallback
}

func matchText(row wbs.Row) string {
	return strings.Join([]string{row.Group, row.Feature, row.SubFeature}, " ")
}
