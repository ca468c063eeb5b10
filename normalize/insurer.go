package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/MotorDesk/policy-extraction-backend/types"
)

var (
	insurerNonAlnumRe = regexp.MustCompile(`[^a-zA-Z0-9]+`)
	insurerWsRe       = regexp.MustCompile(`\s+`)

	// NFKD fold followed by combining-mark removal approximates Python's
	// ascii-ignore transliteration for accented insurer names.
	asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
)

// insurerRule requires every token to be present in the normalized name.
// The list is ordered: earlier rules encode precedence among overlapping
// tokens (bare "kotak" resolves differently than "kotak"+"mahindra"), so it
// must stay a priority list, never a set.
type insurerRule struct {
	code   types.Insurer
	tokens []string
}

var insurerRules = []insurerRule{
	{types.InsurerBAJAJ, []string{"bajaj", "allianz"}},
	{types.InsurerTATA, []string{"tata", "aig"}},
	{types.InsurerICICI, []string{"icici", "lombard"}},
	{types.InsurerHDFC, []string{"hdfc", "ergo"}},
	{types.InsurerRGCL, []string{"reliance", "general"}},
	{types.InsurerIFFCO, []string{"iffco", "tokio"}},
	{types.InsurerROYAL, []string{"royal", "sundaram"}},
	{types.InsurerCHOLA, []string{"chola", "ms"}},
	{types.InsurerMAGMA, []string{"magma", "hdi"}},
	{types.InsurerUSGI, []string{"universal", "sompo"}},
	{types.InsurerZurichKotak, []string{"zurich", "kotak"}},
	{types.InsurerZurichKotak, []string{"zurich"}},
	{types.InsurerZurichKotak, []string{"kotak", "general"}},
	{types.InsurerKTKM, []string{"kotak", "mahindra"}},
	{types.InsurerZUNO, []string{"zuno"}},
	{types.InsurerZUNO, []string{"edelweiss"}},
	{types.InsurerRahejaQBE, []string{"raheja", "qbe"}},
	{types.InsurerRahejaQBE, []string{"qbe"}},
	{types.InsurerSBI, []string{"sbi", "general"}},
	{types.InsurerGO, []string{"digit"}},
	{types.InsurerACKO, []string{"acko"}},
	{types.InsurerNAVI, []string{"navi"}},
	{types.InsurerSHRIRAM, []string{"shriram"}},
	{types.InsurerUIIC, []string{"united", "india"}},
	{types.InsurerNIC, []string{"national", "insurance"}},
	{types.InsurerTNI, []string{"new", "india"}},
	{types.InsurerOR, []string{"oriental"}},
	{types.InsurerFUTURE, []string{"future", "generali"}},
	{types.InsurerGeneraliCentral, []string{"generali"}},
	{types.InsurerLIB, []string{"liberty"}},
}

// Single-keyword fallbacks, also order-sensitive.
var insurerFallbacks = []insurerRule{
	{types.InsurerBAJAJ, []string{"bajaj"}},
	{types.InsurerTATA, []string{"tata"}},
	{types.InsurerICICI, []string{"icici"}},
	{types.InsurerHDFC, []string{"hdfc"}},
	{types.InsurerRGCL, []string{"reliance"}},
	{types.InsurerIFFCO, []string{"iffco"}},
	{types.InsurerROYAL, []string{"sundaram"}},
	{types.InsurerCHOLA, []string{"chola"}},
	{types.InsurerLIB, []string{"liberty"}},
	{types.InsurerUSGI, []string{"sompo"}},
	{types.InsurerGO, []string{"digit"}},
	{types.InsurerSHRIRAM, []string{"shriram"}},
	{types.InsurerSBI, []string{"sbi"}},
	{types.InsurerACKO, []string{"acko"}},
	{types.InsurerNAVI, []string{"navi"}},
	{types.InsurerZUNO, []string{"zuno"}},
	{types.InsurerZUNO, []string{"edelweiss"}},
	{types.InsurerRahejaQBE, []string{"qbe"}},
	{types.InsurerGeneraliCentral, []string{"generali"}},
	{types.InsurerZurichKotak, []string{"kotak"}},
	{types.InsurerOR, []string{"oriental"}},
	{types.InsurerUIIC, []string{"united india"}},
	{types.InsurerNIC, []string{"national"}},
	{types.InsurerTNI, []string{"new india"}},
}

func normalizeInsurerName(s string) string {
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		folded = s
	}
	var ascii strings.Builder
	for _, ch := range folded {
		if ch < 128 {
			ascii.WriteRune(ch)
		}
	}
	t := strings.ReplaceAll(ascii.String(), "&", " and ")
	t = insurerNonAlnumRe.ReplaceAllString(t, " ")
	t = strings.ToLower(strings.TrimSpace(t))
	return insurerWsRe.ReplaceAllString(t, " ")
}

func matchRule(rule insurerRule, t, tight string) bool {
	allLoose, allTight := true, true
	for _, tok := range rule.tokens {
		if !strings.Contains(t, tok) {
			allLoose = false
		}
		if !strings.Contains(tight, strings.ReplaceAll(tok, " ", "")) {
			allTight = false
		}
	}
	return allLoose || allTight
}

// CleanInsurer resolves a free-text insurer name to its canonical code: exact
// code match first, then the ordered multi-token rules, then single-keyword
// fallbacks. First matching rule wins. Returns "" when nothing matches.
func CleanInsurer(s string) types.Insurer {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if code, ok := types.InsurerFromCode(strings.ToUpper(s)); ok {
		return code
	}

	t := normalizeInsurerName(s)
	tight := strings.ReplaceAll(t, " ", "")

	for _, rule := range insurerRules {
		if matchRule(rule, t, tight) {
			return rule.code
		}
	}
	for _, rule := range insurerFallbacks {
		if matchRule(rule, t, tight) {
			return rule.code
		}
	}
	return ""
}
