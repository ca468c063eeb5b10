package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/MotorDesk/policy-extraction-backend/types"
)

var (
	ncbSpaceRe = regexp.MustCompile(`[\s\-]+`)
	ncbNumRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(%)?`)
)

// Spelled-out NCB slab names. Multi-word phrases come first so that
// "twenty five" is never shadowed by the bare "twenty" slab.
var ncbPhrases = []struct {
	phrase string
	value  int
}{
	{"twenty five", 25},
	{"thirty five", 35},
	{"forty five", 45},
	{"twenty", 20},
	{"fifty", 50},
	{"nil", 0},
	{"none", 0},
	{"zero", 0},
}

// CleanNCB parses a No Claim Bonus percentage out of free text. Spelled-out
// slab names are checked first; otherwise every numeric token is considered and
// the maximum value inside [0, 100] wins. A bare number below 1 is treated as a
// fraction unless percent-marked.
func CleanNCB(s string) *int {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}

	norm := ncbSpaceRe.ReplaceAllString(s, " ")
	for _, p := range ncbPhrases {
		if strings.Contains(norm, p.phrase) {
			v := p.value
			return &v
		}
	}

	var best *int
	for _, m := range ncbNumRe.FindAllStringSubmatch(s, -1) {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		v := n
		if m[2] == "" && n < 1 {
			v = n * 100
		}
		if v < 0 || v > 100 {
			continue
		}
		r := int(math.Round(v))
		if best == nil || r > *best {
			best = &r
		}
	}
	return best
}

// CleanNCBFloat normalizes a numeric NCB: a value in (0, 1] is a fraction and
// scales to a percentage, anything else is used as-is when inside [0, 100].
func CleanNCBFloat(f float64) *int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	v := f
	if v > 0 && v <= 1 {
		v *= 100
	}
	r := int(math.Round(v))
	if r < 0 || r > 100 {
		return nil
	}
	return &r
}

// CleanNCBValue dispatches on the original JSON kind of an NCB field.
func CleanNCBValue(v types.StringOrNumber) *int {
	if !v.Valid {
		return nil
	}
	if v.IsNumber {
		return CleanNCBFloat(v.Num)
	}
	return CleanNCB(v.Str)
}
