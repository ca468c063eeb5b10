package normalize

import (
	"math"
	"regexp"
	"strings"

	"github.com/MotorDesk/policy-extraction-backend/types"
)

const (
	gvwNumPat  = `(?:(?:\d{1,3}(?:[,\s_]\d{3})+|\d+)(?:\.\d+)?|\.\d+)`
	gvwUnitPat = `(?:kgs?|kilograms?|tonnes?|tons?|t|mt|metric\s*tons?|lbs?|pounds?|quintals?|q)`
)

var (
	gvwNumUnitRe  = regexp.MustCompile(`(?i)(` + gvwNumPat + `)\s*(` + gvwUnitPat + `)`)
	gvwUnitNumRe  = regexp.MustCompile(`(?i)(` + gvwUnitPat + `)\s*(` + gvwNumPat + `)`)
	gvwPlainIntRe = regexp.MustCompile(`\d{3,}`)
	gvwUnitWsRe   = regexp.MustCompile(`\s+`)
)

var gvwScaleKg = map[string]float64{
	"kg": 1, "kgs": 1, "kilogram": 1, "kilograms": 1,
	"t": 1000, "ton": 1000, "tons": 1000, "tonne": 1000, "tonnes": 1000,
	"mt": 1000, "metrictons": 1000, "metricton": 1000,
	"lb": 0.45359237, "lbs": 0.45359237, "pound": 0.45359237, "pounds": 0.45359237,
	"q": 100, "quintal": 100, "quintals": 100,
}

func isWordOrDot(b byte) bool {
	return b == '.' || b == '_' ||
		(b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// CleanGVW parses a gross vehicle weight into whole kilograms. Unit tokens may
// precede or follow the number ("GVW 3.5T", "kg 3500"); with no unit token the
// largest bare integer of three or more digits, at least 500, is assumed to be
// kilograms already.
func CleanGVW(s string) *int {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	s = hardSpaceRe.ReplaceAllString(s, " ")

	var vals []float64
	collect := func(numTok, unitTok string) {
		base, ok := parseNumberToken(numTok)
		if !ok {
			return
		}
		unitKey := gvwUnitWsRe.ReplaceAllString(strings.ToLower(unitTok), "")
		if mul, known := gvwScaleKg[unitKey]; known {
			vals = append(vals, base*mul)
		}
	}

	for _, m := range gvwNumUnitRe.FindAllStringSubmatch(s, -1) {
		collect(m[1], m[2])
	}
	for _, m := range gvwUnitNumRe.FindAllStringSubmatch(s, -1) {
		collect(m[2], m[1])
	}

	if len(vals) == 0 {
		// Bare-integer fallback. RE2 has no lookaround, so the "not part of a
		// word or decimal" boundary is checked on the neighbouring bytes.
		for _, loc := range gvwPlainIntRe.FindAllStringIndex(s, -1) {
			if loc[0] > 0 && isWordOrDot(s[loc[0]-1]) {
				continue
			}
			if loc[1] < len(s) && isWordOrDot(s[loc[1]]) {
				continue
			}
			if v, ok := parseNumberToken(s[loc[0]:loc[1]]); ok && v >= 500 {
				vals = append(vals, v)
			}
		}
	}

	if len(vals) == 0 {
		return nil
	}
	best := vals[0]
	for _, v := range vals[1:] {
		if v > best {
			best = v
		}
	}
	r := int(math.Round(best))
	return &r
}

// CleanGVWValue normalizes a weight field that arrived as either a JSON number
// (already kilograms) or a free-text string.
func CleanGVWValue(v types.StringOrNumber) *int {
	if !v.Valid {
		return nil
	}
	if v.IsNumber {
		if v.Num <= 0 || math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			return nil
		}
		r := int(math.Round(v.Num))
		return &r
	}
	return CleanGVW(v.Str)
}
