package valuation

// Classification is the heuristic team-state label derived from aggregate
// value and age.
type Classification string

const (
	// Contender marks a high-value, older roster built to win now.
	Contender Classification = "Contender"
	// Tweener marks a roster that is neither clearly contending nor rebuilding.
	Tweener Classification = "Tweener"
	// Rebuild marks a low-value, young roster accumulating future assets.
	Rebuild Classification = "Rebuild"
)

// Classification thresholds. Tunable constants, not derived from data.
const (
	// ContenderMinValue is the total value a contending roster must exceed.
	ContenderMinValue = 110000.0
	// ContenderMinAge is the average age a contending roster must exceed.
	ContenderMinAge = 25.0
	// RebuildMaxValue is the total value a rebuilding roster must stay under.
	RebuildMaxValue = 90000.0
	// RebuildMaxAge is the average age a rebuilding roster must stay under.
	RebuildMaxAge = 24.0
)

// Summary aggregates the matched roster into the numbers the team view
// displays.
type Summary struct {
	TotalValue     float64        `json:"total_value"`
	AverageAge     float64        `json:"average_age"`
	Classification Classification `json:"classification"`
	Players        int            `json:"players"`
}

// Classify applies the fixed thresholds to a total value and average age.
func Classify(totalValue, averageAge float64) Classification {
	switch {
	case totalValue > ContenderMinValue && averageAge > ContenderMinAge:
		return Contender
	case totalValue < RebuildMaxValue && averageAge < RebuildMaxAge:
		return Rebuild
	default:
		return Tweener
	}
}

// Summarize computes the aggregate view over per-player (value, age) pairs.
// The average age of an empty roster is reported as 0 rather than NaN.
func Summarize(values, ages []float64) Summary {
	var total, ageSum float64
	for _, v := range values {
		total += v
	}
	for _, a := range ages {
		ageSum += a
	}

	avg := 0.0
	if len(ages) > 0 {
		avg = ageSum / float64(len(ages))
	}

	return Summary{
		TotalValue:     total,
		AverageAge:     avg,
		Classification: Classify(total, avg),
		Players:        len(values),
	}
}
