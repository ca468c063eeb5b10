package normalize

import "strings"

// Two-letter registration codes and full-name aliases (including deprecated
// names like Orissa) to current official state names.
var stateCodeMap = map[string]string{
	"ANDHRA PRADESH": "Andhra Pradesh", "AP": "Andhra Pradesh",
	"ARUNACHAL PRADESH": "Arunachal Pradesh", "AR": "Arunachal Pradesh",
	"ASSAM": "Assam", "AS": "Assam",
	"BIHAR": "Bihar", "BR": "Bihar",
	"CHHATTISGARH": "Chhattisgarh", "CG": "Chhattisgarh",
	"GOA": "Goa", "GA": "Goa",
	"GUJARAT": "Gujarat", "GJ": "Gujarat",
	"HARYANA": "Haryana", "HR": "Haryana",
	"HIMACHAL PRADESH": "Himachal Pradesh", "HP": "Himachal Pradesh",
	"JHARKHAND": "Jharkhand", "JH": "Jharkhand",
	"KARNATAKA": "Karnataka", "KA": "Karnataka",
	"KERALA": "Kerala", "KL": "Kerala",
	"MADHYA PRADESH": "Madhya Pradesh", "MP": "Madhya Pradesh",
	"MAHARASHTRA": "Maharashtra", "MH": "Maharashtra",
	"MANIPUR": "Manipur", "MN": "Manipur",
	"MEGHALAYA": "Meghalaya", "ML": "Meghalaya",
	"MIZORAM": "Mizoram", "MZ": "Mizoram",
	"NAGALAND": "Nagaland", "NL": "Nagaland",
	"ODISHA": "Odisha", "OR": "Odisha", "ORISSA": "Odisha",
	"PUNJAB": "Punjab", "PB": "Punjab",
	"RAJASTHAN": "Rajasthan", "RJ": "Rajasthan",
	"SIKKIM": "Sikkim", "SK": "Sikkim",
	"TAMIL NADU": "Tamil Nadu", "TN": "Tamil Nadu",
	"TELANGANA": "Telangana", "TS": "Telangana", "TG": "Telangana",
	"TRIPURA": "Tripura", "TR": "Tripura",
	"UTTAR PRADESH": "Uttar Pradesh", "UP": "Uttar Pradesh",
	"UTTARAKHAND": "Uttarakhand", "UR": "Uttarakhand", "UK": "Uttarakhand",
	"WEST BENGAL": "West Bengal", "WB": "West Bengal",
	// Union territories
	"ANDAMAN AND NICOBAR ISLANDS": "Andaman and Nicobar Islands", "AN": "Andaman and Nicobar Islands",
	"CHANDIGARH": "Chandigarh", "CH": "Chandigarh",
	"DADRA AND NAGAR HAVELI AND DAMAN AND DIU": "Dadra and Nagar Haveli and Daman and Diu",
	"DADRA AND NAGAR HAVELI":                   "Dadra and Nagar Haveli and Daman and Diu",
	"DAMAN AND DIU":                            "Dadra and Nagar Haveli and Daman and Diu",
	"DN": "Dadra and Nagar Haveli and Daman and Diu", "DD": "Dadra and Nagar Haveli and Daman and Diu",
	"DELHI": "Delhi", "DL": "Delhi",
	"JAMMU AND KASHMIR": "Jammu and Kashmir", "JK": "Jammu and Kashmir",
	"LADAKH": "Ladakh", "LA": "Ladakh",
	"LAKSHADWEEP": "Lakshadweep", "LD": "Lakshadweep",
	"PUDUCHERRY": "Puducherry", "PONDICHERRY": "Puducherry", "PY": "Puducherry",
}

// StateCodeToState resolves a registration state code or state-name alias to
// the official state name, or "" when unknown.
func StateCodeToState(code string) string {
	return stateCodeMap[strings.ToUpper(strings.TrimSpace(code))]
}
