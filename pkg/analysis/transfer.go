package analysis

import (
	"regexp"
	"strconv"
)

var (
	tfGainRe = regexp.MustCompile(`(?i)transfer[_\s]+function\s*[:=]?\s*(` + numberPattern + `)`)
	tfZoutRe = regexp.MustCompile(`(?i)output\s*_?\s*impedance[^:=\n]*[:=]\s*(` + numberPattern + `)`)
	tfZinRe  = regexp.MustCompile(`(?i)input\s*_?\s*impedance[^:=\n]*[:=]\s*(` + numberPattern + `)`)
)

// ParseTransferFunc scrapes a .tf report. The gain line is the anchor;
// without it there is no data. Impedance lines are optional.
func ParseTransferFunc(text string) *TFResult {
	m := tfGainRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	gain, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}

	res := &TFResult{Gain: gain}
	if m := tfZoutRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			res.OutputImpedance = &v
		}
	}
	if m := tfZinRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			res.InputImpedance = &v
		}
	}
	return res
}
