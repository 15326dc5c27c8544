package cornstats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptives(t *testing.T) {
	yield, _ := NewColumn(ColYield, DTfloat, []float64{100, 200})
	mid, _ := NewColumn(ColUsageMidpoint, DTfloat, []float64{12.5, math.NaN()})
	fr, e := NewFrame(yield, mid)
	require.Nil(t, e)

	tbl, e1 := Descriptives(fr)
	require.Nil(t, e1)
	require.Equal(t, 2, len(tbl.Rows))

	// yield: mean 150, sample sd 70.71
	assert.Equal(t, 2, tbl.Rows[0][2])
	assert.InDelta(t, 150.0, tbl.Rows[0][3].(float64), 1e-9)
	assert.InDelta(t, 70.71, tbl.Rows[0][4].(float64), 0.01)

	// midpoint has one observation: sd undefined but no panic
	assert.Equal(t, 1, tbl.Rows[1][2])
	assert.True(t, math.IsNaN(tbl.Rows[1][4].(float64)))
}

func TestMissingnessOrder(t *testing.T) {
	a, _ := NewColumn("a", DTfloat, []float64{1, math.NaN(), math.NaN()})
	b, _ := NewColumn("b", DTfloat, []float64{1, 2, 3})
	c, _ := NewColumn("c", DTstring, []string{"", "", ""})
	d, _ := NewColumn("d", DTfloat, []float64{math.NaN(), math.NaN(), 3})
	fr, e := NewFrame(a, b, c, d)
	require.Nil(t, e)

	tbl := Missingness(fr)

	var names []string
	var counts []int
	for _, row := range tbl.Rows {
		names = append(names, row[0].(string))
		counts = append(counts, row[1].(int))
	}

	// descending count; a before d since ties keep column order
	assert.Equal(t, []string{"c", "a", "d", "b"}, names)
	assert.Equal(t, []int{3, 2, 2, 0}, counts)
}

func TestProfile(t *testing.T) {
	fr := loadClean(t)
	tbl := Profile(fr)

	// one row per numeric column
	assert.Equal(t, len(FloatColumns)+len(FlagColumns), len(tbl.Rows))

	for _, row := range tbl.Rows {
		if row[0].(string) != ColYield {
			continue
		}
		assert.Equal(t, 20, row[1])
		assert.Equal(t, 1, row[2])
		min, max := row[5].(float64), row[9].(float64)
		assert.InDelta(t, 144.6, min, 1e-9)
		assert.InDelta(t, 188.1, max, 1e-9)
	}
}
