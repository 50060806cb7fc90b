// Package matcher reconciles roster player names against a batch of
// valuation records. Lookup is exact on normalized name keys first, with a
// fuzzy similarity fallback for names the two sources spell differently.
package matcher

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/dynastydash/dynastydash/pkg/normalize"
	"github.com/dynastydash/dynastydash/pkg/valuation"
)

// MinFuzzyScore is the score a fuzzy candidate must strictly exceed to be
// accepted. Scores are in [0,100].
const MinFuzzyScore = 80

// Kind states how a roster name was resolved.
type Kind string

const (
	// KindExact means the normalized name key hit the index directly.
	KindExact Kind = "exact"
	// KindFuzzy means the name was resolved by similarity scoring.
	KindFuzzy Kind = "fuzzy"
	// KindNone means no valuation record could be matched.
	KindNone Kind = "none"
)

// Result pairs one roster player with the valuation record it resolved to,
// or records that no match was found. Value and Age are parsed eagerly so
// downstream aggregation never deals with raw text.
type Result struct {
	Player string            `json:"player"`
	Record *valuation.Record `json:"record,omitempty"`
	Kind   Kind              `json:"kind"`
	Score  int               `json:"score,omitempty"`
	Value  float64           `json:"value"`
	Age    float64           `json:"age"`
}

// Matched reports whether the result carries a valuation record.
func (r Result) Matched() bool {
	return r.Kind != KindNone
}

// Matcher indexes one valuation batch for repeated roster lookups.
type Matcher struct {
	records []valuation.Record
	index   map[normalize.Key]int
}

// New builds a matcher over a valuation batch. The key index is built once;
// when two records normalize to the same key the later one wins, a known
// ambiguity inherited from the ranking site listing players once per format.
func New(records []valuation.Record) *Matcher {
	index := make(map[normalize.Key]int, len(records))
	for i, rec := range records {
		index[normalize.NameKey(rec.Name)] = i
	}
	return &Matcher{records: records, index: index}
}

// Match resolves a single roster display name.
func (m *Matcher) Match(name string) Result {
	if i, ok := m.index[normalize.NameKey(name)]; ok {
		return m.result(name, i, KindExact, 0)
	}

	best, score := m.closest(name)
	if best >= 0 && score > MinFuzzyScore {
		return m.result(name, best, KindFuzzy, score)
	}

	return Result{Player: name, Kind: KindNone}
}

// MatchAll resolves every roster name in order, one result per name.
func (m *Matcher) MatchAll(names []string) []Result {
	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, m.Match(name))
	}
	return results
}

// closest scores the raw name against every record name and returns the
// index and score of the single best candidate. Ties keep the record seen
// first, so repeated runs over the same batch resolve identically.
func (m *Matcher) closest(name string) (int, int) {
	best, bestScore := -1, -1
	for i, rec := range m.records {
		if score := fuzzy.WRatio(name, rec.Name); score > bestScore {
			best, bestScore = i, score
		}
	}
	return best, bestScore
}

func (m *Matcher) result(name string, i int, kind Kind, score int) Result {
	rec := &m.records[i]
	return Result{
		Player: name,
		Record: rec,
		Kind:   kind,
		Score:  score,
		Value:  valuation.ParseValue(rec.Value),
		Age:    valuation.ParseAge(rec.Age),
	}
}

// Summarize aggregates match results into the team summary. Unmatched
// players contribute 0 to both value and age.
func Summarize(results []Result) valuation.Summary {
	values := make([]float64, len(results))
	ages := make([]float64, len(results))
	for i, r := range results {
		values[i] = r.Value
		ages[i] = r.Age
	}
	return valuation.Summarize(values, ages)
}
