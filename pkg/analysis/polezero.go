package analysis

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var pzRe = regexp.MustCompile(`(?i)\b(pole|zero)\s*\(\s*\d+\s*\)\s*[=:]?\s*(` +
	numberPattern + `)\s*[,\s]\s*(` + numberPattern + `)`)

// ParsePoleZero scrapes pole(n)/zero(n) lines into complex-plane
// points. The frequency is the point's magnitude in Hz; a point in the
// right half-plane is flagged unstable. Returns nil when neither a
// pole nor a zero appears.
func ParsePoleZero(text string) *PoleZeroResult {
	matches := pzRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	res := &PoleZeroResult{}
	for _, m := range matches {
		re, err1 := strconv.ParseFloat(m[2], 64)
		im, err2 := strconv.ParseFloat(m[3], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		point := PZPoint{
			Real:        re,
			Imag:        im,
			FrequencyHz: math.Hypot(re, im) / (2 * math.Pi),
			Unstable:    re > 0,
		}
		if strings.EqualFold(m[1], "pole") {
			res.Poles = append(res.Poles, point)
		} else {
			res.Zeros = append(res.Zeros, point)
		}
	}

	if len(res.Poles) == 0 && len(res.Zeros) == 0 {
		return nil
	}
	return res
}
