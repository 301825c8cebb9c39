package analysis

// OPResult holds steady-state values keyed by lower-cased node or
// device reference.
type OPResult struct {
	NodeVoltages   map[string]float64
	BranchCurrents map[string]float64
}

// SweepResult is a DC or temperature sweep table: one header per
// column and one row of floats per sweep point.
type SweepResult struct {
	Headers []string
	Rows    [][]float64
}

// ACResult splits the sweep table into per-node magnitude and phase
// series aligned by index with Frequencies.
type ACResult struct {
	Frequencies []float64
	Magnitude   map[string][]float64
	Phase       map[string][]float64
}

// TransientResult carries the dumped vector file: column names (after
// key sanitizing) and one map per time point.
type TransientResult struct {
	Columns []string
	Points  []map[string]float64
}

// NoiseResult holds the output/input noise spectra and, when printed,
// the integrated totals.
type NoiseResult struct {
	Frequencies []float64
	OutputNoise []float64
	InputNoise  []float64
	TotalOutput *float64
	TotalInput  *float64
}

// SensitivityEntry is one row of a .sens report.
type SensitivityEntry struct {
	Element               string
	Value                 float64
	Sensitivity           float64
	NormalizedSensitivity float64
}

type SensitivityResult struct {
	Entries []SensitivityEntry
}

// PZPoint is one pole or zero in the complex plane. FrequencyHz is the
// magnitude expressed in Hz; Unstable marks right-half-plane points.
type PZPoint struct {
	Real        float64
	Imag        float64
	FrequencyHz float64
	Unstable    bool
}

type PoleZeroResult struct {
	Poles []PZPoint
	Zeros []PZPoint
}

// TFResult is a .tf report. The impedances are optional because some
// simulator builds omit them.
type TFResult struct {
	Gain            float64
	OutputImpedance *float64
	InputImpedance  *float64
}
