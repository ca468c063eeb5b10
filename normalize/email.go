package normalize

import (
	"net/mail"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

var (
	zeroWidthRe = regexp.MustCompile("[\u200B-\u200D\uFEFF\u2060]")
	atTokenRe   = regexp.MustCompile(`(?i)\s*[\(\[]?at[\)\]]\s*`)
	dotTokenRe  = regexp.MustCompile(`(?i)\s*[\(\[]?dot[\)\]]\s*`)
	localWsRe   = regexp.MustCompile(`\s+`)

	// Conservative RFC 5322 subset: dot-atom local part, LDH domain labels.
	emailRe = regexp.MustCompile("^[A-Za-z0-9.!#$%&'*+/=?^_\x60{|}~-]+@(?:[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?\\.)+[A-Za-z]{2,63}$")
)

// CleanEmail extracts and validates an email address from noisy text: RFC
// mailbox parsing, zero-width character stripping, bracketed "(at)"/"(dot)"
// substitution when no literal "@" is present, and IDNA encoding of the
// domain. Returns "" on any failure.
func CleanEmail(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	a := s
	if parsed, err := mail.ParseAddress(s); err == nil && parsed.Address != "" {
		a = parsed.Address
	}
	a = strings.TrimSpace(zeroWidthRe.ReplaceAllString(a, ""))

	if !strings.Contains(a, "@") {
		a = atTokenRe.ReplaceAllString(a, "@")
		a = dotTokenRe.ReplaceAllString(a, ".")
	}
	at := strings.LastIndex(a, "@")
	if at < 0 {
		return ""
	}

	local := localWsRe.ReplaceAllString(strings.TrimSpace(a[:at]), "")
	domain := strings.ToLower(strings.TrimRight(strings.TrimSpace(a[at+1:]), "."))
	domain, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return ""
	}

	e := local + "@" + domain
	if !emailRe.MatchString(e) {
		return ""
	}
	return e
}
