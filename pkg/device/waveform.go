package device

import (
	"fmt"
	"strings"
)

// Waveform kinds accepted for time-varying sources.
var waveformKinds = map[string]bool{
	"SIN":   true,
	"PULSE": true,
	"PWL":   true,
	"EXP":   true,
	"AC":    true,
}

// ParseWaveform splits a function-call-like source value such as
// "SIN(0 1 1k)" into its kind and arguments. Parentheses are padded
// with spaces before splitting so "SIN(0 1 1k)" and "SIN ( 0 1 1k )"
// read the same.
func ParseWaveform(value string) (kind string, args []string, err error) {
	s := strings.ReplaceAll(value, "(", " ( ")
	s = strings.ReplaceAll(s, ")", " ) ")
	words := strings.Fields(s)
	if len(words) == 0 {
		return "", nil, fmt.Errorf("empty waveform spec")
	}

	kind = strings.ToUpper(words[0])
	if !waveformKinds[kind] {
		return "", nil, fmt.Errorf("unsupported waveform type: %s", words[0])
	}

	for _, w := range words[1:] {
		if w == "(" || w == ")" {
			continue
		}
		args = append(args, w)
	}
	if len(args) == 0 {
		return "", nil, fmt.Errorf("waveform %s has no parameters", kind)
	}
	return kind, args, nil
}

// NormalizeWaveform re-renders a waveform value in canonical
// "KIND(a b c)" form for netlist emission.
func NormalizeWaveform(value string) (string, error) {
	kind, args, err := ParseWaveform(value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s)", kind, strings.Join(args, " ")), nil
}
