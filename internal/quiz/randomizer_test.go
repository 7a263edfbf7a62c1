package quiz

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerm_IsPermutation(t *testing.T) {
	rnd := NewRandomizer(42)
	for n := 0; n <= 8; n++ {
		p := rnd.Perm(n)
		require.Len(t, p, n)

		sorted := slices.Clone(p)
		slices.Sort(sorted)
		for i, v := range sorted {
			assert.Equal(t, i, v, "n=%d", n)
		}
	}
}

func TestPerm_SameSeedSameOrder(t *testing.T) {
	a, b := NewRandomizer(99), NewRandomizer(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Perm(6), b.Perm(6))
	}
}

func TestSingleChoice_CorrectPositionUniform(t *testing.T) {
	const (
		trials  = 20000
		options = 4
	)

	rnd := NewRandomizer(2024)
	counts := make([]int, options)
	for i := 0; i < trials; i++ {
		q, err := NewSingleChoice(rnd, "Which book features HAL-9000?",
			"2001: A Space Odyssey",
			"Do Androids Dream of Electric Sheep?", "Robot", "There Will Come Soft Rains")
		require.NoError(t, err)
		counts[q.correct]++
	}

	// Chi-squared against the uniform distribution; 16.27 is the p=0.001
	// critical value for 3 degrees of freedom.
	expected := float64(trials) / options
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	assert.Less(t, chi2, 16.27, "correct-answer positions %v are not uniform", counts)

	for pos, c := range counts {
		assert.InDelta(t, 0.25, float64(c)/trials, 0.03, "position %d", pos)
	}
}

func TestMultiSelect_PositionsUniform(t *testing.T) {
	const trials = 12000

	rnd := NewRandomizer(7)
	first := map[string]int{}
	for i := 0; i < trials; i++ {
		q, err := NewMultiSelect(rnd, "Pick", []string{"A", "B"}, []string{"C"})
		require.NoError(t, err)
		first[q.Options()[0]]++
	}

	for _, opt := range []string{"A", "B", "C"} {
		share := float64(first[opt]) / trials
		assert.False(t, math.Abs(share-1.0/3) > 0.03, "option %s leads %.3f of the time", opt, share)
	}
}
