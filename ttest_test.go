package cornstats

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flagFrame(g0, g1 []float64) *Frame {
	var yield, flag []float64
	for _, y := range g0 {
		yield = append(yield, y)
		flag = append(flag, 0)
	}
	for _, y := range g1 {
		yield = append(yield, y)
		flag = append(flag, 1)
	}

	yCol, _ := NewColumn(ColYield, DTfloat, yield)
	fCol, _ := NewColumn(ColHighPrecision, DTflag, flag)
	fr, _ := NewFrame(yCol, fCol)

	return fr
}

func TestWelchTTest(t *testing.T) {
	fr := flagFrame([]float64{10, 20, 30}, []float64{40, 50})

	res, e := WelchTTest(fr)
	require.Nil(t, e)

	assert.InDelta(t, -25.0, res.Estimate, 1e-9)
	assert.InDelta(t, 20.0, res.Mean0, 1e-9)
	assert.InDelta(t, 45.0, res.Mean1, 1e-9)
	assert.InDelta(t, -3.2733, res.Statistic, 1e-3)

	// Welch-Satterthwaite df, not the pooled n0+n1-2 = 3
	assert.InDelta(t, 2.8824, res.DF, 1e-3)
	assert.InDelta(t, 0.0487, res.PValue, 1e-3)

	assert.Less(t, res.ConfLow, res.Estimate)
	assert.Greater(t, res.ConfHigh, res.Estimate)
	assert.Equal(t, "Welch Two Sample t-test", res.Method)
	assert.Equal(t, "two.sided", res.Alternative)
}

func TestWelchTTestExcludesMissing(t *testing.T) {
	yCol, _ := NewColumn(ColYield, DTfloat, []float64{10, 20, 30, math.NaN(), 40, 50})
	fCol, _ := NewColumn(ColHighPrecision, DTflag, []float64{0, 0, 0, 1, 1, 1})
	fr, _ := NewFrame(yCol, fCol)

	res, e := WelchTTest(fr)
	require.Nil(t, e)
	assert.Equal(t, 3, res.N0)
	assert.Equal(t, 2, res.N1)
}

func TestWelchTTestInsufficient(t *testing.T) {
	fr := flagFrame([]float64{10, 20, 30}, []float64{40})

	_, e := WelchTTest(fr)

	var insErr *InsufficientDataError
	require.True(t, errors.As(e, &insErr))
	assert.Equal(t, 1, insErr.N)
}

// The headline comparison: adopter counties averaging 162.95 bu/acre against
// 146.37 for non-adopters gives a difference of 16.58 with a tiny p-value.
func TestWelchTTestHeadline(t *testing.T) {
	offsets := []float64{-8, -4, 0, 4, 8}

	var g0, g1 []float64
	for ind := 0; ind < 60; ind++ {
		g0 = append(g0, 146.37+offsets[ind%len(offsets)])
	}
	for ind := 0; ind < 40; ind++ {
		g1 = append(g1, 162.95+offsets[ind%len(offsets)])
	}

	res, e := WelchTTest(flagFrame(g0, g1))
	require.Nil(t, e)

	assert.InDelta(t, -16.58, res.Estimate, 1e-9)
	assert.Less(t, res.PValue, 1e-12)
}
