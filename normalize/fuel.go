package normalize

import (
	"strings"

	"github.com/MotorDesk/policy-extraction-backend/types"
)

var fuelByName = map[string]types.FuelType{
	"PETROL":          types.FuelPetrol,
	"DIESEL":          types.FuelDiesel,
	"CNG":             types.FuelCNG,
	"LPG":             types.FuelLPG,
	"ELECTRIC":        types.FuelElectric,
	"HYBRID_ELECTRIC": types.FuelHybridElectric,
	"HYDROGEN":        types.FuelHydrogen,
}

var fuelAliases = map[string]types.FuelType{
	"petrol": types.FuelPetrol, "gasoline": types.FuelPetrol,
	"diesel": types.FuelDiesel, "cng": types.FuelCNG, "lpg": types.FuelLPG,
	"ev": types.FuelElectric, "electric": types.FuelElectric, "bev": types.FuelElectric,
	"phev": types.FuelHybridElectric, "hybrid": types.FuelHybridElectric,
	"hybridelectric": types.FuelHybridElectric,
	"h2":             types.FuelHydrogen, "hydrogen": types.FuelHydrogen,
}

// CleanFuelType resolves a free-text fuel description to the canonical
// enumeration: exact name match, then value match, then alias table.
// Returns "" when nothing matches.
func CleanFuelType(s string) types.FuelType {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	nameKey := strings.ReplaceAll(strings.ToUpper(s), " ", "_")
	if ft, ok := fuelByName[nameKey]; ok {
		return ft
	}

	lower := strings.ToLower(s)
	for _, ft := range types.FuelTypes {
		if strings.ToLower(string(ft)) == lower {
			return ft
		}
	}

	var norm strings.Builder
	for _, ch := range lower {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') {
			norm.WriteRune(ch)
		}
	}
	return fuelAliases[norm.String()]
}
