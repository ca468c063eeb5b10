package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MotorDesk/policy-extraction-backend/types"
)

func TestCleanGVW(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"2500 kg", 2500},
		{"2,500 kgs", 2500},
		{"3.5 T", 3500},
		{"3.5 tonnes", 3500},
		{"2 tons", 2000},
		{"12 MT", 12000},
		{"kg 3500", 3500},
		{"25 quintals", 2500},
		{"7716 lbs", 3500},
		{"GVW 12500", 12500},
		{"gross weight: 2500", 2500},
	}
	for _, tc := range cases {
		got := CleanGVW(tc.in)
		require.NotNil(t, got, "input %q", tc.in)
		assert.Equal(t, tc.want, *got, "input %q", tc.in)
	}
}

func TestCleanGVW_BareIntegerGuards(t *testing.T) {
	// Below the plausibility floor.
	assert.Nil(t, CleanGVW("350"))
	// Digits glued to a word or a decimal are not a weight.
	assert.Nil(t, CleanGVW("ABC1234X"))
	assert.Nil(t, CleanGVW("3.1415"))
	assert.Nil(t, CleanGVW(""))
	assert.Nil(t, CleanGVW("not stated"))
}

func TestCleanGVW_LargestCandidateWins(t *testing.T) {
	got := CleanGVW("laden 3.5 t unladen 1.2 t")
	require.NotNil(t, got)
	assert.Equal(t, 3500, *got)
}

func TestCleanGVWValue(t *testing.T) {
	got := CleanGVWValue(types.NumberValue(2500))
	require.NotNil(t, got)
	assert.Equal(t, 2500, *got)

	got = CleanGVWValue(types.StringValue("3.5 T"))
	require.NotNil(t, got)
	assert.Equal(t, 3500, *got)

	assert.Nil(t, CleanGVWValue(types.NumberValue(0)))
	assert.Nil(t, CleanGVWValue(types.StringOrNumber{}))
}
