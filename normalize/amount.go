// Package normalize converts the extraction provider's messy free-text output
// into canonical typed values. Every function is total: unparsable input yields
// the zero value (nil pointer or empty string), never an error.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MotorDesk/policy-extraction-backend/types"
)

var (
	hardSpaceRe = regexp.MustCompile("[   ]")
	currencyRe  = regexp.MustCompile(`(?i)(inr|rs\.?|rupees?|₹|/-)`)
	numSepRe    = regexp.MustCompile(`[,\s_]`)

	// A number in plain or Indian-grouped form, optionally followed by a
	// magnitude suffix (k, lakh, crore, million, ...).
	numScaleRe = regexp.MustCompile(`(?i)((?:\d{1,3}(?:[,\s_]\d{2,3})+(?:\.\d+)?)|(?:\d+(?:\.\d+)?)|(?:\.\d+))\s*(cr(?:ores?)?|crore|l(?:akhs?|acs?)?|lac|lakh|k|thousand|m(?:n)?|million|b(?:n)?|billion)?\.?`)
)

var amountScale = map[string]float64{
	"k": 1_000, "thousand": 1_000,
	"l": 100_000, "lac": 100_000, "lacs": 100_000, "lakh": 100_000, "lakhs": 100_000,
	"cr": 10_000_000, "crore": 10_000_000, "crores": 10_000_000,
	"m": 1_000_000, "mn": 1_000_000, "million": 1_000_000,
	"b": 1_000_000_000, "bn": 1_000_000_000, "billion": 1_000_000_000,
}

// Round2 rounds a monetary value to two decimal places.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func parseNumberToken(s string) (float64, bool) {
	s = numSepRe.ReplaceAllString(s, "")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// CleanAmount parses messy INR amounts like "₹4,50,000", "IDV 3.2 lakh",
// "0.45 cr", "Rs 12,34,567/-" or "50k". Every number+suffix token is scaled
// and the maximum candidate wins: extraction noise tends to produce partial
// or duplicate tokens, and the largest plausible value is the best estimate.
func CleanAmount(s string) *float64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	t := hardSpaceRe.ReplaceAllString(s, " ")
	t = currencyRe.ReplaceAllString(t, "")

	var best *float64
	for _, m := range numScaleRe.FindAllStringSubmatch(t, -1) {
		base, ok := parseNumberToken(m[1])
		if !ok {
			continue
		}
		mul := 1.0
		if key := strings.TrimSuffix(strings.ToLower(m[2]), "."); key != "" {
			if scale, known := amountScale[key]; known {
				mul = scale
			}
		}
		v := base * mul
		if best == nil || v > *best {
			best = &v
		}
	}
	if best == nil {
		return nil
	}
	r := Round2(*best)
	return &r
}

// CleanAmountValue normalizes an amount field that arrived as either a JSON
// number or a free-text string. Numeric input passes through with rounding;
// negative numeric input is rejected.
func CleanAmountValue(v types.StringOrNumber) *float64 {
	if !v.Valid {
		return nil
	}
	if v.IsNumber {
		if v.Num < 0 || math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			return nil
		}
		r := Round2(v.Num)
		return &r
	}
	return CleanAmount(v.Str)
}
