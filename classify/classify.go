// Package classify derives policy taxonomy (type, category, product category)
// from normalized coverage dates and premium presence.
package classify

import (
	"strings"

	"github.com/MotorDesk/policy-extraction-backend/types"
)

// DurationYears is the coverage duration in whole years, computed from the
// calendar-year difference only. Elapsed time is deliberately ignored; a cover
// from 2024-03-01 to 2025-02-28 still counts as one year.
func DurationYears(start, end *types.Date) int {
	if start == nil || end == nil {
		return 0
	}
	d := end.Year() - start.Year()
	if d < 0 {
		return 0
	}
	return d
}

// IsPresent reports whether a normalized premium amount is meaningfully set:
// non-nil and non-zero.
func IsPresent(v *float64) bool {
	return v != nil && *v != 0
}

// AnyPresent reports whether any of the normalized amounts is present.
func AnyPresent(vs ...*float64) bool {
	for _, v := range vs {
		if IsPresent(v) {
			return true
		}
	}
	return false
}

// Inputs carries the derived signals the classifier operates on.
type Inputs struct {
	ODDurationYears int
	TPDurationYears int
	RawPolicyType   string // provider free text, e.g. "Third Party Motor Policy"
	HasODPremium    bool
	HasTPPremium    bool
	Fallback        types.PolicyType // static provider-table default, may be ""
}

func (in Inputs) packageOrBundled() types.PolicyType {
	if in.ODDurationYears == in.TPDurationYears {
		return types.PolicyPackage
	}
	return types.PolicyBundled
}

// CalcPolicyType resolves the policy type. Resolution order: provider free
// text ("third party", "package"), then premium presence, then the static
// provider-table default.
func CalcPolicyType(in Inputs) types.PolicyType {
	raw := strings.ToLower(in.RawPolicyType)
	switch {
	case strings.Contains(raw, "third party"):
		return types.PolicyTP
	case strings.Contains(raw, "package"):
		return in.packageOrBundled()
	case in.HasODPremium && in.HasTPPremium:
		return in.packageOrBundled()
	case in.HasODPremium:
		return types.PolicyOD
	case in.HasTPPremium:
		return types.PolicyTP
	default:
		return in.Fallback
	}
}

// Exact (OD, TP) duration pairs with a defined package category. Unlisted
// pairs have no category.
var packagePairs = map[[2]int]types.PolicyCategory{
	{1, 1}: types.Package11,
	{1, 3}: types.Package13,
	{1, 5}: types.Package15,
	{3, 3}: types.Package33,
	{5, 5}: types.Package55,
}

// CalcPolicyCategory maps the resolved policy type and coverage durations to a
// duration-pair category. TP duration 2 has no defined standalone category and
// yields "".
func CalcPolicyCategory(policyType types.PolicyType, odYears, tpYears int) types.PolicyCategory {
	switch policyType {
	case types.PolicyOD:
		switch odYears {
		case 1:
			return types.SAOD1
		case 2:
			return types.SAOD2
		case 3:
			return types.SAOD3
		}
		return ""
	case types.PolicyTP:
		switch tpYears {
		case 1:
			return types.SATP1
		case 3:
			return types.SATP3
		}
		return ""
	default:
		return packagePairs[[2]int{odYears, tpYears}]
	}
}

// ProductCategoryFromSeating derives the wheeler class from seating capacity:
// 2 seats is a two-wheeler, 3 a three-wheeler, 4-8 the four-wheeler class.
func ProductCategoryFromSeating(seats *int) types.ProductCategory {
	if seats == nil {
		return ""
	}
	switch {
	case *seats == 2:
		return types.CategoryTwoWheeler
	case *seats == 3:
		return types.CategoryThreeWheeler
	case *seats >= 4 && *seats < 9:
		return types.CategoryFourWheeler
	}
	return ""
}

// ProductCategoryFromSubType is the provider-table fallback used when seating
// capacity is unknown: two-wheeler products map to 2W, passenger carriers to 4W.
func ProductCategoryFromSubType(subType types.ProductSubType) types.ProductCategory {
	switch subType {
	case types.SubTypeTW:
		return types.CategoryTwoWheeler
	case types.SubTypePCV:
		return types.CategoryFourWheeler
	}
	return ""
}
