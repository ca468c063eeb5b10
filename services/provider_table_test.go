package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MotorDesk/policy-extraction-backend/types"
)

func TestProviderTable_DefaultCatalogue(t *testing.T) {
	table, err := NewProviderTable()
	require.NoError(t, err)
	assert.Equal(t, 12, table.Len())

	info, ok := table.Lookup("68678a4bdf5a5abb9e50455b")
	require.True(t, ok)
	assert.Equal(t, types.InsurerICICI, info.Insurer)
	assert.Equal(t, types.ProductMotor, info.Product)
	assert.Equal(t, types.ProductTypePrivate, info.ProductType)
	assert.Equal(t, types.SubTypePC, info.ProductSubType)
	assert.Equal(t, types.PolicyPackage, info.PolicyType)

	// Templates may leave classification fields open.
	info, ok = table.Lookup("68676ee08d822bc79808354b")
	require.True(t, ok)
	assert.Equal(t, types.InsurerTATA, info.Insurer)
	assert.Empty(t, info.ProductType)
	assert.Empty(t, info.ProductSubType)
	assert.Empty(t, info.PolicyType)

	_, ok = table.Lookup("unknown-template")
	assert.False(t, ok)
}

func TestNewProviderTableWithEntries_Validation(t *testing.T) {
	cases := []struct {
		name    string
		entries map[types.ProviderID]types.ProviderInfo
	}{
		{
			name: "empty template id",
			entries: map[types.ProviderID]types.ProviderInfo{
				"": {Insurer: types.InsurerTATA, Product: types.ProductMotor},
			},
		},
		{
			name: "missing insurer",
			entries: map[types.ProviderID]types.ProviderInfo{
				"abc": {Product: types.ProductMotor},
			},
		},
		{
			name: "unknown insurer",
			entries: map[types.ProviderID]types.ProviderInfo{
				"abc": {Insurer: "NOPE", Product: types.ProductMotor},
			},
		},
		{
			name: "missing product",
			entries: map[types.ProviderID]types.ProviderInfo{
				"abc": {Insurer: types.InsurerTATA},
			},
		},
		{
			name: "invalid sub type",
			entries: map[types.ProviderID]types.ProviderInfo{
				"abc": {Insurer: types.InsurerTATA, Product: types.ProductMotor, ProductSubType: "XYZ"},
			},
		},
		{
			name: "invalid policy type",
			entries: map[types.ProviderID]types.ProviderInfo{
				"abc": {Insurer: types.InsurerTATA, Product: types.ProductMotor, PolicyType: "Comprehensive"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProviderTableWithEntries(tc.entries)
			assert.Error(t, err)
		})
	}
}
