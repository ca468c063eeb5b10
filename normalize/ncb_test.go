package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MotorDesk/policy-extraction-backend/types"
)

func TestCleanNCB(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"25", 25},
		{"25%", 25},
		{"35 %", 35},
		{"twenty five percent", 25},
		{"twenty-five", 25},
		{"Twenty", 20},
		{"fifty", 50},
		{"nil", 0},
		{"none", 0},
		{"zero", 0},
		{"0.35", 35},
		{"0.5", 50},
		{"NCB 20-25%", 25},
		{"20.0", 20},
	}
	for _, tc := range cases {
		got := CleanNCB(tc.in)
		require.NotNil(t, got, "input %q", tc.in)
		assert.Equal(t, tc.want, *got, "input %q", tc.in)
	}
}

func TestCleanNCB_OutOfRange(t *testing.T) {
	assert.Nil(t, CleanNCB("150%"))
	assert.Nil(t, CleanNCB("101"))
	assert.Nil(t, CleanNCB(""))
	assert.Nil(t, CleanNCB("not applicable"))
}

func TestCleanNCBFloat(t *testing.T) {
	got := CleanNCBFloat(0.35)
	require.NotNil(t, got)
	assert.Equal(t, 35, *got)

	got = CleanNCBFloat(25)
	require.NotNil(t, got)
	assert.Equal(t, 25, *got)

	// 1 is read as a fraction, the 100% slab.
	got = CleanNCBFloat(1)
	require.NotNil(t, got)
	assert.Equal(t, 100, *got)

	assert.Nil(t, CleanNCBFloat(150))
	assert.Nil(t, CleanNCBFloat(-5))
}

func TestCleanNCBValue(t *testing.T) {
	got := CleanNCBValue(types.NumberValue(0.35))
	require.NotNil(t, got)
	assert.Equal(t, 35, *got)

	got = CleanNCBValue(types.StringValue("0.35"))
	require.NotNil(t, got)
	assert.Equal(t, 35, *got)

	assert.Nil(t, CleanNCBValue(types.StringOrNumber{}))
}
