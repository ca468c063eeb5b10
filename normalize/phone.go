package normalize

import (
	"regexp"
	"strings"
)

const defaultCountryCode = "91"

var nonDigitRe = regexp.MustCompile(`\D+`)

// CleanPhone canonicalizes a phone number to "+<cc> <10-digit subscriber>".
// The last ten digits are the subscriber number; any remaining leading digits
// become the country code (default "91"). Returns "" when fewer than ten
// digits survive.
func CleanPhone(s string) string {
	if s == "" {
		return ""
	}
	d := nonDigitRe.ReplaceAllString(s, "")
	d = strings.TrimPrefix(d, "00")
	if len(d) < 10 {
		return ""
	}
	sub := d[len(d)-10:]
	cc := strings.TrimLeft(d[:len(d)-10], "0")
	if cc == "" {
		cc = defaultCountryCode
	}
	return "+" + cc + " " + sub
}
