package types

// ProviderID is the opaque classification id issued by the extraction provider
// for a recognized document template.
type ProviderID string

// ProviderInfo is the static classification block mapped from a ProviderID.
// Any field may be unset.
type ProviderInfo struct {
	Insurer        Insurer
	Product        Product
	ProductType    ProductType
	ProductSubType ProductSubType
	PolicyType     PolicyType
}

// ProviderExtraction is the raw envelope returned by the extraction provider.
type ProviderExtraction struct {
	ProviderID    ProviderID       `json:"providerID"`
	ExtractedData NovoupExtraction `json:"extractedData"`
}

// NovoupExtraction is the Novoup provider's raw field schema. Free-text fields
// are carried untouched; normalization happens in the extraction adapter.
type NovoupExtraction struct {
	PolicyNumber    string         `json:"policy_number,omitempty"`
	BusinessType    string         `json:"business_type,omitempty"`
	PolicyType      string         `json:"policy_type,omitempty"`
	SeatingCapacity *int           `json:"seating_capacity,omitempty"`
	SumInsured      StringOrNumber `json:"sum_insured,omitempty"`

	RegistrationDate *Date `json:"registration_date,omitempty"`
	StartDate        *Date `json:"start_date,omitempty"`
	EndDate          *Date `json:"end_date,omitempty"`
	IssueDate        *Date `json:"issue_date,omitempty"`
	ODStartDate      *Date `json:"od_start_date,omitempty"`
	ODEndDate        *Date `json:"od_end_date,omitempty"`
	TPStartDate      *Date `json:"tp_start_date,omitempty"`
	TPEndDate        *Date `json:"tp_end_date,omitempty"`

	CustomerName    string `json:"customer_name,omitempty"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	CustomerAddress string `json:"customer_address,omitempty"`

	Make              string         `json:"make,omitempty"`
	Model             string         `json:"model,omitempty"`
	ManufacturingYear *int           `json:"manufacturing_year,omitempty"`
	VehicleNumber     string         `json:"vehicle_number,omitempty"`
	VehicleIDV        StringOrNumber `json:"vehicle_idv,omitempty"`
	EngineNumber      string         `json:"engine_number,omitempty"`
	ChassisNumber     string         `json:"chassis_number,omitempty"`
	RTOCode           string         `json:"rto_code,omitempty"`
	FuelType          string         `json:"fuel_type,omitempty"`
	GrossVehicleWght  StringOrNumber `json:"gross_vehicle_weight,omitempty"`
	EngineCapacityCC  *int           `json:"engine_capacity_cc,omitempty"`

	BasicODPremium      StringOrNumber `json:"basic_od_premium,omitempty"`
	TotalODPremium      StringOrNumber `json:"total_od_premium,omitempty"`
	TotalODAddOnPremium StringOrNumber `json:"total_od_add_on_premium,omitempty"`
	BasicTPPremium      StringOrNumber `json:"basic_tp_premium,omitempty"`
	TotalTPPremium      StringOrNumber `json:"total_tp_premium,omitempty"`
	TotalTPAddOnPremium StringOrNumber `json:"total_tp_add_on_premium,omitempty"`
	NetPremium          StringOrNumber `json:"net_premium,omitempty"`
	Taxes               StringOrNumber `json:"taxes,omitempty"`
	TaxesRate           StringOrNumber `json:"taxes_rate,omitempty"`
	NCB                 StringOrNumber `json:"ncb,omitempty"`
	GrossDiscount       StringOrNumber `json:"gross_discount,omitempty"`
	TotalPremium        StringOrNumber `json:"total_premium,omitempty"`

	PreviousNCB           StringOrNumber `json:"previous_ncb,omitempty"`
	PrevPolicyExpiry      *Date          `json:"prev_policy_expiry,omitempty"`
	PreviousInsurerName   string         `json:"previous_insurer_name,omitempty"`
	PreviousPolicyNumber  string         `json:"previous_policy_number,omitempty"`
	PreviousPolicyEndDate *Date          `json:"previous_policy_end_date,omitempty"`

	BrokerName  string `json:"broker_name,omitempty"`
	BrokerEmail string `json:"broker_email,omitempty"`
	BrokerCode  string `json:"broker_code,omitempty"`
}
