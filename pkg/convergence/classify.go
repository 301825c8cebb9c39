// Package convergence classifies simulator failures and decides
// whether a relaxed-tolerance retry is worth attempting.
package convergence

import "regexp"

// Category is the closed set of failure classes.
type Category int

const (
	Unknown Category = iota
	DCConvergence
	TimestepTooSmall
	SingularMatrix
	SourceSteppingFailed
)

var categoryNames = map[Category]string{
	Unknown:              "unknown",
	DCConvergence:        "dc convergence failure",
	TimestepTooSmall:     "timestep too small",
	SingularMatrix:       "singular matrix",
	SourceSteppingFailed: "source stepping failed",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Retriable reports whether a relaxed-tolerance rerun can plausibly
// help. A singular matrix is a topology problem; looser tolerances
// cannot fix it.
func (c Category) Retriable() bool {
	switch c {
	case DCConvergence, TimestepTooSmall, SourceSteppingFailed:
		return true
	}
	return false
}

// Ordered classification table; the first matching pattern wins. The
// order carries meaning: singular-matrix output usually also mentions
// convergence, so its pattern must run before the generic one or such
// a message would be misread as a plain convergence failure.
var classifyPatterns = []struct {
	re       *regexp.Regexp
	category Category
}{
	{regexp.MustCompile(`(?i)singular\s+matrix`), SingularMatrix},
	{regexp.MustCompile(`(?i)time\s*step\s+too\s+small`), TimestepTooSmall},
	{regexp.MustCompile(`(?i)(source|gmin)\s+stepping\s+(failed|completed\s+with\s+error)`), SourceSteppingFailed},
	{regexp.MustCompile(`(?i)(no\s+convergence|failed\s+to\s+converge|convergence\s+(problem|failure|failed))`), DCConvergence},
}

// Classify maps combined stderr-then-stdout text to a failure
// category; anything unrecognized (including empty output) is Unknown.
func Classify(output string) Category {
	for _, p := range classifyPatterns {
		if p.re.MatchString(output) {
			return p.category
		}
	}
	return Unknown
}
