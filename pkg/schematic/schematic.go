// Package schematic loads TOML circuit descriptions and validates
// them before anything downstream runs. The node graph and the netlist
// generator both assume structurally valid input; this package is
// where that assumption is enforced.
package schematic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/analysis"
	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/circuit"
	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/device"
)

// File is the on-disk circuit description.
type File struct {
	Title        string          `toml:"title"`
	Components   []ComponentDecl `toml:"component"`
	Wires        []WireDecl      `toml:"wire"`
	Labels       []LabelDecl     `toml:"label"`
	Analysis     AnalysisDecl    `toml:"analysis"`
	Measurements []string        `toml:"measurements"`
}

type ComponentDecl struct {
	ID    string `toml:"id"`
	Type  string `toml:"type"`
	Value string `toml:"value"`
}

type EndpointDecl struct {
	Component string `toml:"component"`
	Pin       int    `toml:"pin"`
}

type WireDecl struct {
	From EndpointDecl `toml:"from"`
	To   EndpointDecl `toml:"to"`
}

// LabelDecl names the net containing the given terminal.
type LabelDecl struct {
	Component string `toml:"component"`
	Pin       int    `toml:"pin"`
	Name      string `toml:"name"`
}

type AnalysisDecl struct {
	Type   string            `toml:"type"`
	Params map[string]string `toml:"params"`
}

// Circuit is a loaded, validated schematic ready for compilation.
type Circuit struct {
	Title        string
	Components   []device.Component
	Graph        *circuit.Graph
	Analysis     analysis.Spec
	Measurements []string
}

// Load reads and validates a circuit file.
func Load(path string) (*Circuit, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("reading schematic: %w", err)
	}
	return f.Build()
}

var labelRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Build validates the declarations and constructs the component list
// and node graph. All validation lives here: downstream packages
// treat out-of-range terminals and malformed labels as precondition
// violations, not errors.
func (f *File) Build() (*Circuit, error) {
	comps := make([]device.Component, 0, len(f.Components))
	byID := make(map[string]device.Component, len(f.Components))

	for _, decl := range f.Components {
		t, err := device.ParseType(decl.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: component %q has type %q", ErrUnknownType, decl.ID, decl.Type)
		}
		if !device.ValidID(decl.ID) {
			return nil, fmt.Errorf("%w: %q", ErrBadID, decl.ID)
		}
		if err := checkPrefix(decl.ID, t); err != nil {
			return nil, err
		}
		if _, dup := byID[decl.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, decl.ID)
		}
		c := device.Component{ID: decl.ID, Type: t, Value: decl.Value}
		byID[decl.ID] = c
		comps = append(comps, c)
	}

	g := circuit.New()
	for _, c := range comps {
		g.AddComponent(c)
	}

	for i, w := range f.Wires {
		a, err := f.terminal(byID, w.From)
		if err != nil {
			return nil, fmt.Errorf("wire %d: %w", i, err)
		}
		b, err := f.terminal(byID, w.To)
		if err != nil {
			return nil, fmt.Errorf("wire %d: %w", i, err)
		}
		g.AddWire(device.Wire{A: a, B: b})
	}

	for _, l := range f.Labels {
		if !labelRe.MatchString(l.Name) {
			return nil, fmt.Errorf("%w: %q", ErrBadLabel, l.Name)
		}
		t, err := f.terminal(byID, EndpointDecl{Component: l.Component, Pin: l.Pin})
		if err != nil {
			return nil, fmt.Errorf("label %q: %w", l.Name, err)
		}
		if !g.SetLabel(t, l.Name) {
			return nil, fmt.Errorf("label %q: terminal %s is not on any net", l.Name, t)
		}
	}

	spec := analysis.Spec{Type: analysis.OP, Params: f.Analysis.Params}
	if f.Analysis.Type != "" {
		at, err := analysis.ParseType(f.Analysis.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: analysis %q", ErrUnknownType, f.Analysis.Type)
		}
		spec.Type = at
	}

	return &Circuit{
		Title:        f.Title,
		Components:   comps,
		Graph:        g,
		Analysis:     spec,
		Measurements: f.Measurements,
	}, nil
}

func (f *File) terminal(byID map[string]device.Component, e EndpointDecl) (device.Terminal, error) {
	c, ok := byID[e.Component]
	if !ok {
		return device.Terminal{}, fmt.Errorf("%w: %q", ErrUnknownComponent, e.Component)
	}
	if e.Pin < 0 || e.Pin >= c.Type.TerminalCount() {
		return device.Terminal{}, fmt.Errorf("%w: %s pin %d (type %s has %d)",
			ErrBadTerminal, e.Component, e.Pin, c.Type, c.Type.TerminalCount())
	}
	return device.Terminal{Component: e.Component, Pin: e.Pin}, nil
}

// checkPrefix enforces that an ID's letters start with the element
// letter the netlist syntax keys off. Ground and op-amps are exempt
// (no element line / instance letter added at emission); waveform
// sources may be voltage or current flavored.
func checkPrefix(id string, t device.Type) error {
	first := strings.ToUpper(id[:1])
	switch t {
	case device.Ground, device.OpAmp:
		return nil
	case device.WaveformSource:
		if first == "V" || first == "I" {
			return nil
		}
		return fmt.Errorf("%w: %q must start with V or I", ErrBadID, id)
	default:
		if first == t.Prefix() {
			return nil
		}
		return fmt.Errorf("%w: %q must start with %s for type %s", ErrBadID, id, t.Prefix(), t)
	}
}
