package table

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dynastydash/dynastydash/internal/cmd/output"
	"github.com/dynastydash/dynastydash/pkg/constants"
	"github.com/dynastydash/dynastydash/pkg/matcher"
)

// Chart builds a horizontal bar chart of the top players by value, rendered
// as a table column of repeated runes. Bars scale against the highest value
// shown. Ties in value keep roster order.
func Chart(results []matcher.Result, top int) output.Data {
	if top <= 0 {
		top = constants.TopPlayersChartSize
	}

	sorted := make([]matcher.Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})
	if len(sorted) > top {
		sorted = sorted[:top]
	}

	max := 0.0
	for _, r := range sorted {
		if r.Value > max {
			max = r.Value
		}
	}

	rows := make([][]string, 0, len(sorted))
	for _, r := range sorted {
		rows = append(rows, []string{
			r.Player,
			fmt.Sprintf("%.0f", r.Value),
			bar(r.Value, max),
		})
	}
	return output.Data{
		Headers: []string{"Player", "Value", ""},
		Rows:    rows,
		ColumnAlignment: []output.Align{
			output.AlignLeft, output.AlignRight, output.AlignLeft,
		},
	}
}

// bar renders a value as a run of block runes scaled to the chart width.
// Any positive value shows at least one block.
func bar(value, max float64) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	width := int(value / max * constants.ChartBarWidth)
	if width < 1 {
		width = 1
	}
	return strings.Repeat("█", width)
}
