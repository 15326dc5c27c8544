package cornstats

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrame(t *testing.T) {
	a, _ := NewColumn("a", DTfloat, []float64{1, 2})
	b, _ := NewColumn("b", DTstring, []string{"x", "y"})

	fr, e := NewFrame(a, b)
	require.Nil(t, e)
	assert.Equal(t, 2, fr.RowCount())
	assert.Equal(t, []string{"a", "b"}, fr.ColumnNames())

	short, _ := NewColumn("c", DTfloat, []float64{1})
	_, e1 := NewFrame(a, short)
	assert.NotNil(t, e1)

	dup, _ := NewColumn("a", DTfloat, []float64{3, 4})
	_, e2 := NewFrame(a, dup)
	assert.NotNil(t, e2)
}

func TestColumnMissing(t *testing.T) {
	a, _ := NewColumn("a", DTfloat, []float64{1, math.NaN(), 3})
	assert.Equal(t, 1, a.MissingCount())
	assert.Equal(t, []float64{1, 3}, a.Observed())

	s, _ := NewColumn("s", DTstring, []string{"x", "", "z"})
	assert.True(t, s.Missing(1))
	assert.False(t, s.Missing(0))
}

func TestFrameWhere(t *testing.T) {
	a, _ := NewColumn("a", DTfloat, []float64{1, 2, 3})
	b, _ := NewColumn("b", DTstring, []string{"x", "y", "z"})
	fr, _ := NewFrame(a, b)

	sub := fr.Where([]bool{true, false, true})
	assert.Equal(t, 2, sub.RowCount())

	col, _ := sub.Column("b")
	assert.Equal(t, []string{"x", "z"}, col.AsString())

	// source frame is untouched
	assert.Equal(t, 3, fr.RowCount())
}

func TestFrameCopyIndependent(t *testing.T) {
	a, _ := NewColumn("a", DTfloat, []float64{1, 2})
	fr, _ := NewFrame(a)

	cp := fr.Copy()
	col, _ := cp.Column("a")
	col.AsFloat()[0] = 99

	orig, _ := fr.Column("a")
	assert.Equal(t, 1.0, orig.AsFloat()[0])
}

func TestFrameString(t *testing.T) {
	a, _ := NewColumn("a", DTfloat, []float64{1.5, math.NaN()})
	fr, _ := NewFrame(a)

	s := fr.String()
	assert.True(t, strings.HasPrefix(s, "2 rows x 1 columns"))
	assert.Contains(t, s, "NA")
}
