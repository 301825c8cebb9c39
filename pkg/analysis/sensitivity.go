package analysis

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

var (
	sensAnchorRe = regexp.MustCompile(`(?i)sensitivit`)
	sensRowRe    = regexp.MustCompile(`(?i)^\s*([a-z]\w*)\s+(` + numberPattern + `)\s+(` +
		numberPattern + `)\s+(` + numberPattern + `)\s*$`)
)

// ParseSensitivity scrapes a .sens report: an anchor line mentioning
// sensitivities, then rows of element / value / sensitivity /
// normalized sensitivity. Returns nil when the anchor phrase never
// appears or no row parses.
func ParseSensitivity(text string) *SensitivityResult {
	if !sensAnchorRe.MatchString(text) {
		return nil
	}

	res := &SensitivityResult{}
	scanner := bufio.NewScanner(strings.NewReader(text))
	anchored := false
	for scanner.Scan() {
		line := scanner.Text()
		if !anchored {
			anchored = sensAnchorRe.MatchString(line)
			continue
		}
		m := sensRowRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value, err1 := strconv.ParseFloat(m[2], 64)
		sens, err2 := strconv.ParseFloat(m[3], 64)
		norm, err3 := strconv.ParseFloat(m[4], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		res.Entries = append(res.Entries, SensitivityEntry{
			Element:               strings.ToLower(m[1]),
			Value:                 value,
			Sensitivity:           sens,
			NormalizedSensitivity: norm,
		})
	}

	if len(res.Entries) == 0 {
		return nil
	}
	return res
}
