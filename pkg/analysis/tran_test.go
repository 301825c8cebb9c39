package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tranText = `time v(out) v1#branch
0.000000e+00 0.000000e+00 0.000000e+00
1.000000e-06 3.934693e-01 -3.934693e-04
2.000000e-06 6.321206e-01 -6.321206e-04
`

func TestParseTransient(t *testing.T) {
	res := ParseTransient(tranText)
	require.NotNil(t, res)
	assert.Equal(t, []string{"time", "v(out)", "v1_branch"}, res.Columns)
	require.Len(t, res.Points, 3)
	assert.InDelta(t, 1e-6, res.Points[1]["time"], 1e-18)
	assert.InDelta(t, 0.3934693, res.Points[1]["v(out)"], 1e-9)
	assert.InDelta(t, -3.934693e-4, res.Points[1]["v1_branch"], 1e-12)
}

func TestParseTransientFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tran.out")
	require.NoError(t, os.WriteFile(path, []byte(tranText), 0o644))

	res := ParseTransientFile(path)
	require.NotNil(t, res)
	assert.Len(t, res.Points, 3)
}

func TestParseTransientFileMissing(t *testing.T) {
	assert.Nil(t, ParseTransientFile(filepath.Join(t.TempDir(), "nope.out")))
}

func TestParseTransientEmptyOrHeaderOnly(t *testing.T) {
	assert.Nil(t, ParseTransient(""))
	assert.Nil(t, ParseTransient("time v(out)\n"))
	assert.Nil(t, ParseTransient("\n\n"))
}
