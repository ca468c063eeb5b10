package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakVehicleNumber_Standard(t *testing.T) {
	cases := []struct {
		in   string
		want RegistrationParts
	}{
		{"MH12AB1234", RegistrationParts{"MH", "12", "AB", "1234"}},
		{"MH 12 AB 1234", RegistrationParts{"MH", "12", "AB", "1234"}},
		{"mh-12-ab-1234", RegistrationParts{"MH", "12", "AB", "1234"}},
		{"KA01M9999", RegistrationParts{"KA", "01", "M", "9999"}},
		{"DL05CAB1234", RegistrationParts{"DL", "05", "CAB", "1234"}},
		{"IND MH12AB1234", RegistrationParts{"MH", "12", "AB", "1234"}},
	}
	for _, tc := range cases {
		got, ok := BreakVehicleNumber(tc.in)
		require.True(t, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
		assert.False(t, got.IsBharat())
	}
}

func TestBreakVehicleNumber_BharatSeries(t *testing.T) {
	got, ok := BreakVehicleNumber("22BH1234AB")
	require.True(t, ok)
	assert.Equal(t, RegistrationParts{"22", "BH", "1234", "AB"}, got)
	assert.True(t, got.IsBharat())
	assert.Equal(t, "22BH1234AB", got.String())

	got, ok = BreakVehicleNumber("22 BH 1234 A")
	require.True(t, ok)
	assert.Equal(t, RegistrationParts{"22", "BH", "1234", "A"}, got)
}

func TestBreakVehicleNumber_Invalid(t *testing.T) {
	for _, in := range []string{"", "MH12", "1234567890", "MHAB1234", "MH12AB12345"} {
		_, ok := BreakVehicleNumber(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestVehicleNumberToState(t *testing.T) {
	assert.Equal(t, "Maharashtra", VehicleNumberToState("MH12AB1234"))
	assert.Equal(t, "Karnataka", VehicleNumberToState("KA01M9999"))
	// Bharat plates are not tied to a state.
	assert.Empty(t, VehicleNumberToState("22BH1234AB"))
	assert.Empty(t, VehicleNumberToState("bogus"))
}

func TestVehicleNumberToRTA(t *testing.T) {
	assert.Equal(t, "MH 12", VehicleNumberToRTA("MH12AB1234", ""))
	// Bharat plates recover the RTO from the separate code field.
	assert.Equal(t, "RJ 14", VehicleNumberToRTA("22BH1234AB", "RJ14"))
	assert.Equal(t, "RJ 14", VehicleNumberToRTA("22BH1234AB", "rj-14-xx"))
	assert.Empty(t, VehicleNumberToRTA("22BH1234AB", ""))
	assert.Empty(t, VehicleNumberToRTA("22BH1234AB", "14"))
	assert.Empty(t, VehicleNumberToRTA("bogus", "RJ14"))
}
