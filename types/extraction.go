package types

// PolicyExtractionObject is the canonical, fully normalized policy record
// assembled from one successful extraction attempt. It is constructed once by
// the extraction adapter and never mutated afterwards; persistence is handled
// by the external record store.
//
// Monetary fields are nil or non-negative, rounded to 2 decimals. NCB and tax
// rate are nil or integers in [0, 100]. The four registration-number parts are
// either all empty or all set.
type PolicyExtractionObject struct {
	// Core policy fields
	PolicyNumber string   `json:"policy_number,omitempty"`
	IssueDate    *Date    `json:"issue_date,omitempty"`
	ODStartDate  *Date    `json:"od_start_date,omitempty"`
	ODEndDate    *Date    `json:"od_end_date,omitempty"`
	TPStartDate  *Date    `json:"tp_start_date,omitempty"`
	TPEndDate    *Date    `json:"tp_end_date,omitempty"`
	SumInsured   *float64 `json:"sum_insured,omitempty"`

	// Premium fields (INR)
	BasicODPremium      *float64 `json:"basic_od_premium,omitempty"`
	TotalODPremium      *float64 `json:"total_od_premium,omitempty"`
	TotalODAddOnPremium *float64 `json:"total_od_add_on_premium,omitempty"`
	BasicTPPremium      *float64 `json:"basic_tp_premium,omitempty"`
	TotalTPPremium      *float64 `json:"total_tp_premium,omitempty"`
	TotalTPAddOnPremium *float64 `json:"total_tp_add_on_premium,omitempty"`
	NetPremium          *float64 `json:"net_premium,omitempty"`
	Taxes               *float64 `json:"taxes,omitempty"`
	TaxesRate           *int     `json:"taxes_rate,omitempty"`
	GrossDiscount       *float64 `json:"gross_discount,omitempty"`
	TotalPremium        *float64 `json:"total_premium,omitempty"`
	NCB                 *int     `json:"ncb,omitempty"`

	// Broker fields
	BrokerName  string `json:"broker_name,omitempty"`
	BrokerEmail string `json:"broker_email,omitempty"`
	BrokerCode  string `json:"broker_code,omitempty"`

	// Vehicle fields
	Make                    string   `json:"make,omitempty"`
	Model                   string   `json:"model,omitempty"`
	Variant                 string   `json:"variant,omitempty"`
	VehicleRegistrationDate *Date    `json:"vehicle_registration_date,omitempty"`
	MakeYear                *int     `json:"make_year,omitempty"`
	VehicleFuelType         FuelType `json:"vehicle_fuel_type,omitempty"`
	VehicleEngineNumber     string   `json:"vehicle_engine_number,omitempty"`
	VehicleChassisNumber    string   `json:"vehicle_chassis_number,omitempty"`
	VehicleSeatingCapacity  *int     `json:"vehicle_seating_capacity,omitempty"`
	VehicleCC               *int     `json:"vehicle_cc,omitempty"`
	VehicleIDV              *float64 `json:"vehicle_idv,omitempty"`
	VehicleGVW              *int     `json:"vehicle_gvw,omitempty"`

	// Registration fields: state code, RTO code, series, serial.
	// Bharat-series plates store "BH" as RegistrationNumber2.
	RegistrationNumber1      string `json:"registration_number_1,omitempty"`
	RegistrationNumber2      string `json:"registration_number_2,omitempty"`
	RegistrationNumber3      string `json:"registration_number_3,omitempty"`
	RegistrationNumber4      string `json:"registration_number_4,omitempty"`
	VehicleRegistrationState string `json:"vehicle_registration_state,omitempty"`
	VehicleRTA               string `json:"vehicle_rta,omitempty"`

	// Insured fields
	InsuredName    string `json:"insured_name,omitempty"`
	InsuredAddress string `json:"insured_address,omitempty"`
	InsuredMobile  string `json:"insured_mobile,omitempty"`
	InsuredEmail   string `json:"insured_email,omitempty"`

	// Classification fields
	Insurer         Insurer         `json:"insurer,omitempty"`
	Product         Product         `json:"product,omitempty"`
	ProductType     ProductType     `json:"product_type,omitempty"`
	ProductSubType  ProductSubType  `json:"product_sub_type,omitempty"`
	ProductCategory ProductCategory `json:"product_category,omitempty"`
	PolicyCategory  PolicyCategory  `json:"policy_category,omitempty"`
	PolicyType      PolicyType      `json:"policy_type,omitempty"`
	InsuredType     InsuredType     `json:"insured_type,omitempty"`

	// Previous policy fields
	LastPolicyAvailable  bool    `json:"last_policy_available"`
	LastInsurer          Insurer `json:"last_insurer,omitempty"`
	LastPolicyNumber     string  `json:"last_policy_number,omitempty"`
	LastPolicyTo         *Date   `json:"last_policy_to,omitempty"`
	LastPolicyNCBPercent *int    `json:"last_policy_ncb_percent,omitempty"`
}

// ExtractionResult is the per-file outcome of one extraction attempt.
// A failed attempt carries the error text verbatim and a nil record.
type ExtractionResult struct {
	Success bool                    `json:"success"`
	Data    *PolicyExtractionObject `json:"data,omitempty"`
	Error   string                  `json:"error,omitempty"`
}
