package schematic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/analysis"
	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/device"
)

const dividerTOML = `
title = "voltage divider"

[[component]]
id = "V1"
type = "voltage"
value = "10"

[[component]]
id = "R1"
type = "resistor"
value = "1k"

[[component]]
id = "R2"
type = "resistor"
value = "1k"

[[component]]
id = "GND1"
type = "ground"

[[wire]]
from = { component = "V1", pin = 0 }
to = { component = "R1", pin = 0 }

[[wire]]
from = { component = "R1", pin = 1 }
to = { component = "R2", pin = 0 }

[[wire]]
from = { component = "R2", pin = 1 }
to = { component = "GND1", pin = 0 }

[[wire]]
from = { component = "V1", pin = 1 }
to = { component = "GND1", pin = 0 }

[[label]]
component = "R1"
pin = 1
name = "vout"

[analysis]
type = "op"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "circuit.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDivider(t *testing.T) {
	ckt, err := Load(writeTemp(t, dividerTOML))
	require.NoError(t, err)

	assert.Equal(t, "voltage divider", ckt.Title)
	assert.Len(t, ckt.Components, 4)
	assert.Equal(t, analysis.OP, ckt.Analysis.Type)

	mid, ok := ckt.Graph.NodeFor(device.Terminal{Component: "R2", Pin: 0})
	require.True(t, ok)
	assert.Equal(t, "vout", mid.Label())

	bottom, ok := ckt.Graph.NodeFor(device.Terminal{Component: "R2", Pin: 1})
	require.True(t, ok)
	assert.True(t, bottom.IsGround())
}

func TestBuildValidation(t *testing.T) {
	base := func() File {
		return File{
			Components: []ComponentDecl{
				{ID: "R1", Type: "resistor", Value: "1k"},
				{ID: "R2", Type: "resistor", Value: "2k"},
			},
			Wires: []WireDecl{{
				From: EndpointDecl{Component: "R1", Pin: 0},
				To:   EndpointDecl{Component: "R2", Pin: 0},
			}},
		}
	}

	t.Run("ok", func(t *testing.T) {
		f := base()
		_, err := f.Build()
		assert.NoError(t, err)
	})

	t.Run("duplicate id", func(t *testing.T) {
		f := base()
		f.Components[1].ID = "R1"
		_, err := f.Build()
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("unknown type", func(t *testing.T) {
		f := base()
		f.Components[0].Type = "varistor"
		_, err := f.Build()
		assert.ErrorIs(t, err, ErrUnknownType)
	})

	t.Run("bad id shape", func(t *testing.T) {
		f := base()
		f.Components[0].ID = "1R"
		_, err := f.Build()
		assert.ErrorIs(t, err, ErrBadID)
	})

	t.Run("prefix mismatch", func(t *testing.T) {
		f := base()
		f.Components[0].ID = "C1"
		_, err := f.Build()
		assert.ErrorIs(t, err, ErrBadID)
	})

	t.Run("wire to unknown component", func(t *testing.T) {
		f := base()
		f.Wires[0].To.Component = "R9"
		_, err := f.Build()
		assert.ErrorIs(t, err, ErrUnknownComponent)
	})

	t.Run("terminal out of range", func(t *testing.T) {
		f := base()
		f.Wires[0].To.Pin = 2
		_, err := f.Build()
		assert.ErrorIs(t, err, ErrBadTerminal)
	})

	t.Run("bad label", func(t *testing.T) {
		f := base()
		f.Labels = []LabelDecl{{Component: "R1", Pin: 0, Name: "v out"}}
		_, err := f.Build()
		assert.ErrorIs(t, err, ErrBadLabel)
	})

	t.Run("bad analysis type", func(t *testing.T) {
		f := base()
		f.Analysis.Type = "smoke test"
		_, err := f.Build()
		assert.ErrorIs(t, err, ErrUnknownType)
	})
}

func TestWaveformIDPrefix(t *testing.T) {
	f := File{Components: []ComponentDecl{{ID: "V1", Type: "waveform", Value: "SIN(0 1 1k)"}}}
	_, err := f.Build()
	assert.NoError(t, err)

	f = File{Components: []ComponentDecl{{ID: "I2", Type: "waveform", Value: "PULSE(0 1 0 1n 1n 1u 2u)"}}}
	_, err = f.Build()
	assert.NoError(t, err)

	f = File{Components: []ComponentDecl{{ID: "W1", Type: "waveform", Value: "SIN(0 1 1k)"}}}
	_, err = f.Build()
	assert.ErrorIs(t, err, ErrBadID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
