package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9876543210", "+91 9876543210"},
		{"09876543210", "+91 9876543210"},
		{"+91-98765-43210", "+91 9876543210"},
		{"091-98765 43210", "+91 9876543210"},
		{"0091 9876543210", "+91 9876543210"},
		{"(987) 654-3210", "+91 9876543210"},
		{"+44 7911 123456", "+44 7911123456"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CleanPhone(tc.in), "input %q", tc.in)
	}
}

func TestCleanPhone_Rejects(t *testing.T) {
	for _, in := range []string{"", "12345", "98765", "phone"} {
		assert.Empty(t, CleanPhone(in), "input %q", in)
	}
}
