// Package valuation carries dynasty valuation records and the numeric
// aggregation over a matched roster.
package valuation

// Record is one ranked player as scraped from the rankings site. Age and
// Value stay in their raw text form ("25.7 y.o.", "9,500") until a summary
// needs them as numbers.
type Record struct {
	Rank     string `json:"rank"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position"`
	Age      string `json:"age"`
	Value    string `json:"value"`
}
