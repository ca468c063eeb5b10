package services

import (
	"fmt"

	"github.com/MotorDesk/policy-extraction-backend/types"
)

// ProviderTable maps the opaque template IDs returned by the extraction
// provider to the insurer and product classification they imply. Fields left
// zero in an entry mean the template does not pin that attribute and it must
// be derived from the extracted document instead.
type ProviderTable struct {
	entries map[types.ProviderID]types.ProviderInfo
}

// defaultProviderEntries is the known template catalogue of the Novoup
// extraction provider.
var defaultProviderEntries = map[types.ProviderID]types.ProviderInfo{
	"68678b51df5a5abb9e504573": {
		Insurer:     types.InsurerCHOLA,
		Product:     types.ProductMotor,
		ProductType: types.ProductTypeCommercial,
		PolicyType:  types.PolicyTP,
	},
	"68678aab8d822bc79808357e": {
		Insurer:        types.InsurerMAGMA,
		Product:        types.ProductMotor,
		ProductType:    types.ProductTypeCommercial,
		ProductSubType: types.SubTypeGCV,
		PolicyType:     types.PolicyPackage,
	},
	"68678af2df5a5abb9e504569": {
		Insurer:     types.InsurerSHRIRAM,
		Product:     types.ProductMotor,
		ProductType: types.ProductTypeCommercial,
	},
	"68676ee08d822bc79808354b": {
		Insurer: types.InsurerTATA,
		Product: types.ProductMotor,
	},
	"68678ac18d822bc798083584": {
		Insurer:        types.InsurerUIIC,
		Product:        types.ProductMotor,
		ProductType:    types.ProductTypeCommercial,
		ProductSubType: types.SubTypeGCV,
		PolicyType:     types.PolicyPackage,
	},
	"68678ae18d822bc79808358a": {
		Insurer: types.InsurerBAJAJ,
		Product: types.ProductHealth,
	},
	"68678a5d8d822bc798083570": {
		Insurer:        types.InsurerNIC,
		Product:        types.ProductMotor,
		ProductType:    types.ProductTypePrivate,
		ProductSubType: types.SubTypePC,
		PolicyType:     types.PolicyTP,
	},
	"68678a7ddf5a5abb9e504561": {
		Insurer:        types.InsurerGO,
		Product:        types.ProductMotor,
		ProductType:    types.ProductTypePrivate,
		ProductSubType: types.SubTypeTW,
		PolicyType:     types.PolicyPackage,
	},
	"68678a4bdf5a5abb9e50455b": {
		Insurer:        types.InsurerICICI,
		Product:        types.ProductMotor,
		ProductType:    types.ProductTypePrivate,
		ProductSubType: types.SubTypePC,
		PolicyType:     types.PolicyPackage,
	},
	"68678a99df5a5abb9e504565": {
		Insurer:        types.InsurerSBI,
		Product:        types.ProductMotor,
		ProductType:    types.ProductTypePrivate,
		ProductSubType: types.SubTypePC,
		PolicyType:     types.PolicyTP,
	},
	"68678b1adf5a5abb9e50456d": {
		Insurer:        types.InsurerUSGI,
		Product:        types.ProductMotor,
		ProductSubType: types.SubTypeMisc,
	},
	"68678b028d822bc798083592": {
		Insurer:        types.InsurerKTKM,
		Product:        types.ProductMotor,
		ProductType:    types.ProductTypePrivate,
		ProductSubType: types.SubTypePC,
		PolicyType:     types.PolicyTP,
	},
}

// NewProviderTable builds the default template catalogue and validates every
// entry.
func NewProviderTable() (*ProviderTable, error) {
	return NewProviderTableWithEntries(defaultProviderEntries)
}

// NewProviderTableWithEntries validates the given entries and builds a table
// from them. Every entry must name a known insurer and a product line; the
// classification fields are optional but must hold valid values when set.
func NewProviderTableWithEntries(entries map[types.ProviderID]types.ProviderInfo) (*ProviderTable, error) {
	table := make(map[types.ProviderID]types.ProviderInfo, len(entries))
	for id, info := range entries {
		if id == "" {
			return nil, fmt.Errorf("provider table: empty template ID")
		}
		if err := validateProviderInfo(id, info); err != nil {
			return nil, err
		}
		table[id] = info
	}
	return &ProviderTable{entries: table}, nil
}

func validateProviderInfo(id types.ProviderID, info types.ProviderInfo) error {
	if info.Insurer == "" {
		return fmt.Errorf("provider table: template %s has no insurer", id)
	}
	if _, ok := types.InsurerFromCode(string(info.Insurer)); !ok {
		return fmt.Errorf("provider table: template %s names unknown insurer %q", id, info.Insurer)
	}
	if info.Product == "" {
		return fmt.Errorf("provider table: template %s has no product line", id)
	}
	switch info.ProductType {
	case "", types.ProductTypePrivate, types.ProductTypeCommercial:
	default:
		return fmt.Errorf("provider table: template %s has invalid product type %q", id, info.ProductType)
	}
	switch info.ProductSubType {
	case "", types.SubTypePC, types.SubTypeTW, types.SubTypeGCV, types.SubTypePCV, types.SubTypeMisc:
	default:
		return fmt.Errorf("provider table: template %s has invalid product sub type %q", id, info.ProductSubType)
	}
	switch info.PolicyType {
	case "", types.PolicyPackage, types.PolicyOD, types.PolicyTP, types.PolicyBundled:
	default:
		return fmt.Errorf("provider table: template %s has invalid policy type %q", id, info.PolicyType)
	}
	return nil
}

// Lookup returns the classification pinned by the given template ID.
func (t *ProviderTable) Lookup(id types.ProviderID) (types.ProviderInfo, bool) {
	info, ok := t.entries[id]
	return info, ok
}

// Len reports the number of known templates.
func (t *ProviderTable) Len() int {
	return len(t.entries)
}
