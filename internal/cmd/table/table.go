// Package table builds table data for the CLI views: league rosters, the
// scraped rankings, and the matched team summary.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dynastydash/dynastydash/internal/cmd/output"
	"github.com/dynastydash/dynastydash/pkg/matcher"
	"github.com/dynastydash/dynastydash/pkg/roster"
	"github.com/dynastydash/dynastydash/pkg/valuation"
)

// noMatchLabel is shown for roster players absent from the rankings.
const noMatchLabel = "No Match"

// Rosters converts league roster entries to table format.
func Rosters(entries []roster.Entry) output.Data {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Owner,
			strconv.Itoa(e.RosterID),
			joinOrDash(e.Players),
			joinOrDash(e.Taxi),
			joinOrDash(e.Reserve),
		})
	}
	return output.Data{
		Headers: []string{"Owner", "Roster", "Players", "Taxi Squad", "Reserve"},
		Rows:    rows,
	}
}

// Rankings converts valuation records to table format.
func Rankings(records []valuation.Record) output.Data {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Rank, r.Name, r.Team, r.Position, r.Age, r.Value})
	}
	return output.Data{
		Headers: []string{"Rank", "Name", "Team", "Position", "Age", "Value"},
		Rows:    rows,
		ColumnAlignment: []output.Align{
			output.AlignRight, output.AlignLeft, output.AlignLeft,
			output.AlignLeft, output.AlignLeft, output.AlignRight,
		},
	}
}

// Team converts match results to the per-player team view. Unmatched
// players stay visible as labeled rows rather than disappearing.
func Team(results []matcher.Result) output.Data {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		matched, position, age, value := noMatchLabel, "-", "-", "-"
		if r.Matched() {
			matched = r.Record.Name
			position = r.Record.Position
			age = r.Record.Age
			value = r.Record.Value
		}
		rows = append(rows, []string{r.Player, matched, string(r.Kind), position, age, value})
	}
	return output.Data{
		Headers: []string{"Player", "Ranked As", "Match", "Position", "Age", "Value"},
		Rows:    rows,
		ColumnAlignment: []output.Align{
			output.AlignLeft, output.AlignLeft, output.AlignLeft,
			output.AlignLeft, output.AlignLeft, output.AlignRight,
		},
	}
}

// Summary converts the aggregate team view to a key-value table.
func Summary(s valuation.Summary) output.Data {
	return output.Data{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Value", fmt.Sprintf("%.0f", s.TotalValue)},
			{"Average Age", fmt.Sprintf("%.1f", s.AverageAge)},
			{"Contention Status", string(s.Classification)},
			{"Players", strconv.Itoa(s.Players)},
		},
	}
}

// joinOrDash renders a name list as one cell, or a dash when empty.
func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
