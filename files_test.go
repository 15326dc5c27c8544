package cornstats

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = "testdata/precision_ag_sample.csv"

func TestFilesLoad(t *testing.T) {
	fr, e := NewFiles().Load(sampleFile)
	require.Nil(t, e)

	assert.Equal(t, 24, fr.RowCount())
	assert.Equal(t, 13, fr.ColumnCount())

	// every canonical column is present
	for _, name := range append(append([]string{ColCounty, ColState, ColCommodity, ColUsageRange},
		FloatColumns...), FlagColumns...) {
		assert.True(t, fr.HasColumn(name), name)
	}

	// loader leaves everything as strings
	col, e1 := fr.Column(ColYield)
	require.Nil(t, e1)
	assert.Equal(t, DTstring, col.DataType())
}

func TestFilesLoadMissingFile(t *testing.T) {
	_, e := NewFiles().Load("testdata/no_such_file.csv")

	var ioErr *IOError
	require.True(t, errors.As(e, &ioErr))
	assert.Equal(t, StageLoad, ioErr.Stage)
}

func TestFilesLoadBadHeader(t *testing.T) {
	dir := t.TempDir()

	dup := filepath.Join(dir, "dup.csv")
	require.Nil(t, os.WriteFile(dup, []byte("a,A!,b\n1,2,3\n"), 0o644))

	var schemaErr *SchemaError
	_, e := NewFiles().Load(dup)
	require.True(t, errors.As(e, &schemaErr))

	blank := filepath.Join(dir, "blank.csv")
	require.Nil(t, os.WriteFile(blank, []byte("a, ,b\n1,2,3\n"), 0o644))

	_, e1 := NewFiles().Load(blank)
	require.True(t, errors.As(e1, &schemaErr))

	empty := filepath.Join(dir, "empty.csv")
	require.Nil(t, os.WriteFile(empty, nil, 0o644))

	_, e2 := NewFiles().Load(empty)
	require.True(t, errors.As(e2, &schemaErr))
}

func TestWriteFrameRoundTrip(t *testing.T) {
	fr, e := NewFiles().Load(sampleFile)
	require.Nil(t, e)

	clean, e1 := Clean(fr)
	require.Nil(t, e1)

	path := filepath.Join(t.TempDir(), "processed", "clean.csv")
	require.Nil(t, NewFiles().WriteFrame(path, clean, StageClean))

	back, e2 := NewFiles().Load(path)
	require.Nil(t, e2)
	back, e3 := Clean(back)
	require.Nil(t, e3)

	assert.Equal(t, clean.RowCount(), back.RowCount())
	for _, name := range clean.ColumnNames() {
		c1, _ := clean.Column(name)
		c2, e4 := back.Column(name)
		require.Nil(t, e4, name)
		assert.Equal(t, c1.DataType(), c2.DataType(), name)
	}
}
