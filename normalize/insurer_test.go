package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MotorDesk/policy-extraction-backend/types"
)

func TestCleanInsurer_ExactCode(t *testing.T) {
	assert.Equal(t, types.InsurerICICI, CleanInsurer("ICICI"))
	assert.Equal(t, types.InsurerHDFC, CleanInsurer("hdfc"))
	assert.Equal(t, types.InsurerGO, CleanInsurer("GO"))
}

func TestCleanInsurer_FullNames(t *testing.T) {
	cases := []struct {
		in   string
		want types.Insurer
	}{
		{"Bajaj Allianz General Insurance Co. Ltd.", types.InsurerBAJAJ},
		{"TATA AIG General Insurance Company Limited", types.InsurerTATA},
		{"ICICI Lombard General Insurance", types.InsurerICICI},
		{"HDFC ERGO General Insurance", types.InsurerHDFC},
		{"Reliance General Insurance Co. Ltd.", types.InsurerRGCL},
		{"IFFCO Tokio General Insurance", types.InsurerIFFCO},
		{"Royal Sundaram General Insurance", types.InsurerROYAL},
		{"Cholamandalam MS General Insurance", types.InsurerCHOLA},
		{"Magma HDI General Insurance", types.InsurerMAGMA},
		{"Universal Sompo General Insurance", types.InsurerUSGI},
		{"Zurich Kotak General Insurance", types.InsurerZurichKotak},
		{"Kotak Mahindra Insurance", types.InsurerKTKM},
		{"SBI General Insurance", types.InsurerSBI},
		{"Go Digit General Insurance", types.InsurerGO},
		{"Acko General Insurance Ltd", types.InsurerACKO},
		{"Shriram General Insurance", types.InsurerSHRIRAM},
		{"United India Insurance Co Ltd", types.InsurerUIIC},
		{"The New India Assurance Co. Ltd.", types.InsurerTNI},
		{"The Oriental Insurance Company", types.InsurerOR},
		{"Liberty General Insurance", types.InsurerLIB},
		{"Future Generali India Insurance", types.InsurerFUTURE},
		{"Raheja QBE General Insurance", types.InsurerRahejaQBE},
		{"Zuno General Insurance", types.InsurerZUNO},
		{"Edelweiss General Insurance", types.InsurerZUNO},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CleanInsurer(tc.in), "input %q", tc.in)
	}
}

func TestCleanInsurer_RulePrecedence(t *testing.T) {
	// Bare "Zurich" resolves to the merged entity, and "kotak"+"general"
	// outranks "kotak"+"mahindra", so only a name without "general" keeps
	// the legacy code.
	assert.Equal(t, types.InsurerZurichKotak, CleanInsurer("Zurich Insurance"))
	assert.Equal(t, types.InsurerZurichKotak, CleanInsurer("Kotak Mahindra General Insurance Ltd"))
	assert.Equal(t, types.InsurerKTKM, CleanInsurer("Kotak Mahindra Bank Insurance Arm"))
	assert.Equal(t, types.InsurerZurichKotak, CleanInsurer("Kotak General Insurance"))

	// "Generali" alone is the renamed entity; with "Future" it stays legacy.
	assert.Equal(t, types.InsurerGeneraliCentral, CleanInsurer("Generali Central Insurance"))
	assert.Equal(t, types.InsurerFUTURE, CleanInsurer("Future Generali"))

	// "New India" must not be swallowed by the "United India" rule.
	assert.Equal(t, types.InsurerTNI, CleanInsurer("New India Assurance"))
}

func TestCleanInsurer_NoisyInput(t *testing.T) {
	assert.Equal(t, types.InsurerBAJAJ, CleanInsurer("BAJAJ  ALLIANZ"))
	assert.Equal(t, types.InsurerHDFC, CleanInsurer("HDFC-ERGO"))
	assert.Equal(t, types.InsurerICICI, CleanInsurer("icicilombard"))
}

func TestCleanInsurer_SingleKeywordFallback(t *testing.T) {
	assert.Equal(t, types.InsurerBAJAJ, CleanInsurer("Bajaj Insurance"))
	assert.Equal(t, types.InsurerTATA, CleanInsurer("Tata Insurance"))
	assert.Equal(t, types.InsurerRGCL, CleanInsurer("Reliance"))
}

func TestCleanInsurer_Unknown(t *testing.T) {
	assert.Empty(t, CleanInsurer(""))
	assert.Empty(t, CleanInsurer("Some Unknown Insurer"))
}
