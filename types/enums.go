package types

// FuelType is the canonical fuel classification of an insured vehicle.
type FuelType string

const (
	FuelPetrol         FuelType = "Petrol"
	FuelDiesel         FuelType = "Diesel"
	FuelCNG            FuelType = "CNG"
	FuelLPG            FuelType = "LPG"
	FuelElectric       FuelType = "Electric"
	FuelHybridElectric FuelType = "Hybrid Electric"
	FuelHydrogen       FuelType = "Hydrogen"
)

// FuelTypes lists every canonical fuel type, in declaration order.
var FuelTypes = []FuelType{
	FuelPetrol,
	FuelDiesel,
	FuelCNG,
	FuelLPG,
	FuelElectric,
	FuelHybridElectric,
	FuelHydrogen,
}

// Insurer is the canonical short code of an Indian general insurer.
type Insurer string

const (
	// Public sector
	InsurerUIIC Insurer = "UIIC" // United India Insurance
	InsurerNIC  Insurer = "NIC"  // National Insurance
	InsurerTNI  Insurer = "TNI"  // The New India Assurance
	InsurerOR   Insurer = "OR"   // The Oriental Insurance

	// Large private
	InsurerSBI   Insurer = "SBI"
	InsurerHDFC  Insurer = "HDFC"
	InsurerICICI Insurer = "ICICI"
	InsurerBAJAJ Insurer = "BAJAJ"
	InsurerRGCL  Insurer = "RGCL"
	InsurerTATA  Insurer = "TATA"

	InsurerKTKM        Insurer = "KTKM" // Kotak Mahindra General - legacy code
	InsurerZurichKotak Insurer = "ZURICHKOTAK"
	InsurerIFFCO       Insurer = "IFFCO"
	InsurerROYAL       Insurer = "ROYAL"
	InsurerCHOLA       Insurer = "CHOLA"
	InsurerMAGMA       Insurer = "MAGMA"
	InsurerLIB         Insurer = "LIB"
	InsurerUSGI        Insurer = "USGI"
	InsurerGO          Insurer = "GO" // Go Digit
	InsurerSHRIRAM     Insurer = "SHRIRAM"

	// Private - digital and newer
	InsurerACKO      Insurer = "ACKO"
	InsurerNAVI      Insurer = "NAVI"
	InsurerZUNO      Insurer = "ZUNO" // formerly Edelweiss General
	InsurerRahejaQBE Insurer = "RAHEJAQBE"
	InsurerKSHEMA    Insurer = "KSHEMA"

	// Brand update for Future Generali
	InsurerFUTURE          Insurer = "FUTURE" // legacy alias
	InsurerGeneraliCentral Insurer = "GENERALI_CENTRAL"
)

var insurerFullNames = map[Insurer]string{
	InsurerUIIC: "United India Insurance Co. Ltd.",
	InsurerNIC:  "National Insurance Co. Ltd.",
	InsurerTNI:  "The New India Assurance Co. Ltd.",
	InsurerOR:   "The Oriental Insurance Co. Ltd.",

	InsurerSBI:   "SBI General Insurance Co. Ltd.",
	InsurerHDFC:  "HDFC ERGO General Insurance Co. Ltd.",
	InsurerICICI: "ICICI Lombard General Insurance Co. Ltd.",
	InsurerBAJAJ: "Bajaj Allianz General Insurance Co. Ltd.",
	InsurerRGCL:  "Reliance General Insurance Co. Ltd.",
	InsurerTATA:  "Tata AIG General Insurance Co. Ltd.",

	InsurerKTKM:        "Kotak Mahindra General Insurance Co. Ltd.",
	InsurerZurichKotak: "Zurich Kotak General Insurance Co. Ltd.",
	InsurerIFFCO:       "IFFCO Tokio General Insurance Co. Ltd.",
	InsurerROYAL:       "Royal Sundaram General Insurance Co. Ltd.",
	InsurerCHOLA:       "Cholamandalam MS General Insurance Co. Ltd.",
	InsurerMAGMA:       "Magma HDI General Insurance Co. Ltd.",
	InsurerLIB:         "Liberty General Insurance Ltd.",
	InsurerUSGI:        "Universal Sompo General Insurance Co. Ltd.",
	InsurerGO:          "Go Digit General Insurance Ltd.",
	InsurerSHRIRAM:     "Shriram General Insurance Co. Ltd.",

	InsurerACKO:      "Acko General Insurance Ltd.",
	InsurerNAVI:      "Navi General Insurance Ltd.",
	InsurerZUNO:      "Zuno General Insurance Ltd.",
	InsurerRahejaQBE: "Raheja QBE General Insurance Co. Ltd.",
	InsurerKSHEMA:    "Kshema General Insurance Ltd.",

	InsurerFUTURE:          "Future Generali India Insurance Co. Ltd.",
	InsurerGeneraliCentral: "Generali Central Insurance Co. Ltd.",
}

// FullName returns the registered company name for the insurer code,
// or the code itself when no mapping exists.
func (i Insurer) FullName() string {
	if name, ok := insurerFullNames[i]; ok {
		return name
	}
	return string(i)
}

// InsurerFromCode resolves an exact (case-sensitive after upcasing) insurer code.
func InsurerFromCode(code string) (Insurer, bool) {
	i := Insurer(code)
	_, ok := insurerFullNames[i]
	return i, ok
}

// Product is the top-level insurance line.
type Product string

const (
	ProductMotor            Product = "Motor"
	ProductHealth           Product = "Health"
	ProductLife             Product = "Life"
	ProductNonMotor         Product = "Non-Motor"
	ProductPersonalAccident Product = "Personal Accident"
	ProductTravel           Product = "Travel"
)

// ProductType distinguishes private from commercial motor products.
type ProductType string

const (
	ProductTypePrivate    ProductType = "Private"
	ProductTypeCommercial ProductType = "Commercial"
)

// ProductSubType is the vehicle-class segment of a motor product.
type ProductSubType string

const (
	SubTypePC   ProductSubType = "PC"   // private car
	SubTypeTW   ProductSubType = "TW"   // two-wheeler
	SubTypeGCV  ProductSubType = "GCV"  // goods carrying vehicle
	SubTypePCV  ProductSubType = "PCV"  // passenger carrying vehicle
	SubTypeMisc ProductSubType = "MISC"
)

// ProductCategory is the wheeler class of the insured vehicle.
type ProductCategory string

const (
	CategoryTwoWheeler   ProductCategory = "2W"
	CategoryThreeWheeler ProductCategory = "3W"
	CategoryFourWheeler  ProductCategory = "4W"
	CategorySixWheeler   ProductCategory = "6W"
)

// PolicyType is the coverage composition of a motor policy.
type PolicyType string

const (
	PolicyPackage PolicyType = "Package"
	PolicyOD      PolicyType = "OD"
	PolicyTP      PolicyType = "TP"
	PolicyBundled PolicyType = "Bundled"
)

// PolicyCategory encodes the (OD, TP) coverage-duration pairing of a policy.
type PolicyCategory string

const (
	Package11 PolicyCategory = "1+1"
	Package13 PolicyCategory = "1+3"
	Package15 PolicyCategory = "1+5"
	Package33 PolicyCategory = "3+3"
	Package55 PolicyCategory = "5+5"
	SAOD1     PolicyCategory = "1+0" // standalone own damage
	SAOD2     PolicyCategory = "2+0"
	SAOD3     PolicyCategory = "3+0"
	SATP1     PolicyCategory = "0+1" // standalone third party
	SATP3     PolicyCategory = "0+3"
)

// InsuredType distinguishes individual from corporate policyholders.
type InsuredType string

const (
	InsuredIndividual InsuredType = "Individual"
	InsuredCorporate  InsuredType = "Corporate"
)
