package valuation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"comma grouped", "12,345", 12345.0},
		{"plain integer", "9500", 9500.0},
		{"decimal", "123.5", 123.5},
		{"surrounding whitespace", " 7,999 ", 7999.0},
		{"non numeric", "abc", 0.0},
		{"empty", "", 0.0},
		{"mixed garbage", "12a45", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseValue(tt.input))
		})
	}
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"typical age string", "25.7 y.o.", 25.7},
		{"integer age", "23 y.o.", 23.0},
		{"bare number", "21.4", 21.4},
		{"no digits", "N/A", 0.0},
		{"empty", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAge(tt.input))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		age   float64
		want  Classification
	}{
		{"high value and old", 120000, 26, Contender},
		{"low value and young", 80000, 22, Rebuild},
		{"middle of the road", 100000, 25, Tweener},
		{"high value but young", 120000, 23, Tweener},
		{"old but low value", 80000, 27, Tweener},
		{"contender boundary is strict", 110000, 25, Tweener},
		{"rebuild boundary is strict", 90000, 24, Tweener},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.total, tt.age))
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Run("empty roster", func(t *testing.T) {
		s := Summarize(nil, nil)
		assert.Equal(t, 0.0, s.TotalValue)
		assert.Equal(t, 0.0, s.AverageAge)
		assert.Equal(t, Rebuild, s.Classification)
		assert.Zero(t, s.Players)
	})

	t.Run("matched and unmatched mix", func(t *testing.T) {
		s := Summarize([]float64{9500, 0}, []float64{24.1, 0})
		assert.Equal(t, 9500.0, s.TotalValue)
		assert.InDelta(t, 12.05, s.AverageAge, 1e-9)
		assert.Equal(t, 2, s.Players)
	})
}

func TestSummarizeOrderInvariant(t *testing.T) {
	values := []float64{5200, 9500, 0, 1100, 300, 7800}
	ages := []float64{24.1, 25.7, 0, 22.3, 29.9, 21.0}

	base := Summarize(values, ages)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		perm := r.Perm(len(values))
		shuffledValues := make([]float64, len(values))
		shuffledAges := make([]float64, len(ages))
		for j, p := range perm {
			shuffledValues[j] = values[p]
			shuffledAges[j] = ages[p]
		}
		got := Summarize(shuffledValues, shuffledAges)
		assert.InDelta(t, base.TotalValue, got.TotalValue, 1e-9)
		assert.InDelta(t, base.AverageAge, got.AverageAge, 1e-9)
		assert.Equal(t, base.Classification, got.Classification)
	}
}
