package normalize

import (
	"regexp"
	"strings"
)

var (
	nonAlnumRe = regexp.MustCompile(`[^A-Za-z0-9]`)

	// Bharat-series plates: 22BH1234AB. "BH" is recorded as the second
	// component as a sentinel; it is not a real RTO code.
	bharatPlateRe = regexp.MustCompile(`^(\d{2})BH(\d{4})([A-Z]{1,2})$`)

	// Standard plates: MH12AB1234.
	standardPlateRe = regexp.MustCompile(`^([A-Z]{2})(\d{2})([A-Z]{1,3})(\d{4})$`)

	rtaDigitsRe  = regexp.MustCompile(`^\d{2}$`)
	rtaLettersRe = regexp.MustCompile(`^[A-Z]{2}$`)
)

// RegistrationParts are the four components of a decomposed vehicle number:
// state code, RTO code, series and serial for standard plates.
type RegistrationParts [4]string

// IsBharat reports whether the parts came from a Bharat-series plate.
func (p RegistrationParts) IsBharat() bool { return p[1] == "BH" }

// String reassembles the normalized plate without separators.
func (p RegistrationParts) String() string {
	return p[0] + p[1] + p[2] + p[3]
}

// BreakVehicleNumber decomposes a vehicle registration string into its four
// components, tolerating separators, case and a leading "IND" marker.
func BreakVehicleNumber(vehicleNumber string) (RegistrationParts, bool) {
	s := strings.ToUpper(nonAlnumRe.ReplaceAllString(vehicleNumber, ""))
	if strings.HasPrefix(s, "IND") && len(s) > 3 {
		s = s[3:]
	}
	if m := bharatPlateRe.FindStringSubmatch(s); m != nil {
		return RegistrationParts{m[1], "BH", m[2], m[3]}, true
	}
	if m := standardPlateRe.FindStringSubmatch(s); m != nil {
		return RegistrationParts{m[1], m[2], m[3], m[4]}, true
	}
	return RegistrationParts{}, false
}

// VehicleNumberToState resolves the registration state from a plate. Bharat-
// series plates are not tied to a state, so they resolve to "".
func VehicleNumberToState(vehicleNumber string) string {
	parts, ok := BreakVehicleNumber(vehicleNumber)
	if !ok || parts.IsBharat() {
		return ""
	}
	return StateCodeToState(parts[0])
}

// VehicleNumberToRTA derives the "<state code> <RTO digits>" registration
// authority. Bharat-series plates carry no RTO, so it is recovered from the
// separately supplied raw RTO-code string (e.g. "RJ14"); "" when malformed.
func VehicleNumberToRTA(vehicleNumber, rtoCode string) string {
	parts, ok := BreakVehicleNumber(vehicleNumber)

	if ok && parts.IsBharat() {
		code := strings.ToUpper(nonAlnumRe.ReplaceAllString(rtoCode, ""))
		if len(code) < 4 {
			return ""
		}
		st, num := code[:2], code[2:4]
		if rtaLettersRe.MatchString(st) && rtaDigitsRe.MatchString(num) {
			return st + " " + num
		}
		return ""
	}

	if ok && rtaLettersRe.MatchString(parts[0]) && rtaDigitsRe.MatchString(parts[1]) {
		return parts[0] + " " + parts[1]
	}
	return ""
}
