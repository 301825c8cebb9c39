package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const acText = `AC analysis

frequency       vm(out)         vp(out)
----------------------------------------
1.000000e+00	1.000000e+00	-0.5729
1.000000e+01	9.950372e-01	-5.7106
1.000000e+02	7.071068e-01	-45.000
`

func TestParseAC(t *testing.T) {
	res := ParseAC(acText)
	require.NotNil(t, res)
	assert.Equal(t, []float64{1, 10, 100}, res.Frequencies)
	require.Contains(t, res.Magnitude, "out")
	require.Contains(t, res.Phase, "out")
	assert.InDelta(t, 0.7071068, res.Magnitude["out"][2], 1e-6)
	assert.InDelta(t, -45.0, res.Phase["out"][2], 1e-9)
	assert.Len(t, res.Magnitude["out"], len(res.Frequencies))
}

func TestParseACSuffixConvention(t *testing.T) {
	text := "FREQ  V(out)_MAG  V(out)_PHASE\n1e3  0.5  -90\n"
	res := ParseAC(text)
	require.NotNil(t, res)
	assert.Equal(t, []float64{0.5}, res.Magnitude["v(out)"])
	assert.Equal(t, []float64{-90.0}, res.Phase["v(out)"])
}

func TestParseACNoData(t *testing.T) {
	assert.Nil(t, ParseAC(""))
	assert.Nil(t, ParseAC("frequency vm(out) vp(out)\n"))
	assert.Nil(t, ParseAC("no table here\n"))
}
