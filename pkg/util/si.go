package util

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Suffix multipliers for component values and simulator numbers.
// Bare "M" is intentionally absent: mega is spelled MEG so it can
// never be confused with milli.
var unitMap = map[string]float64{
	"T":   1e12,
	"G":   1e9,
	"MEG": 1e6,
	"Meg": 1e6,
	"meg": 1e6,
	"K":   1e3,
	"k":   1e3,
	"m":   1e-3,
	"u":   1e-6,
	"n":   1e-9,
	"p":   1e-12,
	"f":   1e-15,
}

// Multi-character suffixes must be tried before single-character ones,
// otherwise "meg" would match "m" and come out a factor 1e9 off.
var valueRe = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)\s*(MEG|Meg|meg|[TGKkmunpf])?[a-zA-Z]*$`)

// ParseValue converts an SI-suffixed magnitude like "10k" or "2.2u"
// to a float. Trailing unit letters ("1kHz", "100nF") are ignored.
func ParseValue(val string) (float64, error) {
	matches := valueRe.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}

	if matches[2] != "" {
		if multiplier, ok := unitMap[matches[2]]; ok {
			num *= multiplier
		}
	}

	return num, nil
}

var siPrefixes = []struct {
	factor float64
	prefix string
}{
	{1e12, "T"},
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
	{1, ""},
	{1e-3, "m"},
	{1e-6, "u"},
	{1e-9, "n"},
	{1e-12, "p"},
	{1e-15, "f"},
}

// FormatSI renders a value with the nearest engineering prefix between
// femto and tera, two decimals. Zero is special-cased so it never picks
// up a prefix; anything outside the prefix range falls back to
// scientific notation.
func FormatSI(value float64, unit string) string {
	if value == 0 {
		return fmt.Sprintf("0.00 %s", unit)
	}

	absValue := math.Abs(value)
	if absValue >= 1e15 || absValue < 1e-15 {
		return fmt.Sprintf("%.2e %s", value, unit)
	}

	for _, p := range siPrefixes {
		if absValue >= p.factor {
			return fmt.Sprintf("%.2f %s%s", value/p.factor, p.prefix, unit)
		}
	}
	return fmt.Sprintf("%.2e %s", value, unit)
}
