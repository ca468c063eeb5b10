package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MotorDesk/policy-extraction-backend/config"
	"github.com/MotorDesk/policy-extraction-backend/types"
)

type stubFetcher struct {
	doc *Document
	err error
}

func (f *stubFetcher) Fetch(ctx context.Context, fileURL string) (*Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

func newTestExtractionService(t *testing.T, providerURL string, fetcher DocumentFetcher) *ExtractionService {
	t.Helper()
	table, err := NewProviderTable()
	require.NoError(t, err)
	metrics := NewPipelineMetricsWithRegistry(prometheus.NewRegistry())
	provider := NewNovoupProvider(&config.ExtractionConfig{ProviderURL: providerURL, TimeoutSeconds: 5})
	return NewExtractionService(fetcher, provider, table, metrics)
}

func providerResponse(providerID string, extracted map[string]any) []byte {
	payload, _ := json.Marshal(map[string]any{
		"providerID":    providerID,
		"extractedData": extracted,
	})
	return payload
}

func TestExtractionService_FullPipeline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		file, header, err := r.FormFile("pdf")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "policy.pdf", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(providerResponse("68678a4bdf5a5abb9e50455b", map[string]any{
			"policy_number":     "3001/XX/123456",
			"business_type":     "Individual",
			"seating_capacity":  5,
			"od_start_date":     "2024-06-01",
			"od_end_date":       "2025-05-31",
			"tp_start_date":     "2024-06-01",
			"tp_end_date":       "2025-05-31",
			"basic_od_premium":  "Rs. 4,500",
			"basic_tp_premium":  2094.0,
			"total_premium":     "₹ 7,500.506",
			"ncb":               "twenty five percent",
			"vehicle_number":    "MH12AB1234",
			"vehicle_idv":       "IDV 3.2 lakh",
			"fuel_type":         "petrol",
			"customer_name":     "Asha Patil",
			"customer_phone":    "091-98765 43210",
			"customer_email":    "Asha (at) Example.com",
			"previous_insurer_name": "HDFC Ergo General Insurance",
			"previous_ncb":          0.35,
			"prev_policy_expiry":    "2024-05-31",
		}))
	}))
	defer srv.Close()

	svc := newTestExtractionService(t, srv.URL, &stubFetcher{
		doc: &Document{Bytes: []byte("%PDF-1.7 test"), ContentType: "application/pdf"},
	})

	result := svc.ExtractPolicyData(context.Background(), "https://docs.example.com/p.pdf", "policy.pdf")
	require.True(t, result.Success, result.Error)
	require.NotNil(t, result.Data)
	rec := result.Data

	// Template classification
	assert.Equal(t, types.InsurerICICI, rec.Insurer)
	assert.Equal(t, types.ProductMotor, rec.Product)
	assert.Equal(t, types.ProductTypePrivate, rec.ProductType)
	assert.Equal(t, types.SubTypePC, rec.ProductSubType)

	// Policy classification from dates and premiums
	assert.Equal(t, types.PolicyPackage, rec.PolicyType)
	assert.Equal(t, types.Package11, rec.PolicyCategory)
	assert.Equal(t, types.CategoryFourWheeler, rec.ProductCategory)

	// Normalized amounts
	require.NotNil(t, rec.BasicODPremium)
	assert.Equal(t, 4500.0, *rec.BasicODPremium)
	require.NotNil(t, rec.BasicTPPremium)
	assert.Equal(t, 2094.0, *rec.BasicTPPremium)
	require.NotNil(t, rec.TotalPremium)
	assert.Equal(t, 7500.51, *rec.TotalPremium)
	require.NotNil(t, rec.VehicleIDV)
	assert.Equal(t, 320000.0, *rec.VehicleIDV)
	require.NotNil(t, rec.NCB)
	assert.Equal(t, 25, *rec.NCB)

	// Vehicle normalization
	assert.Equal(t, "MH", rec.RegistrationNumber1)
	assert.Equal(t, "12", rec.RegistrationNumber2)
	assert.Equal(t, "AB", rec.RegistrationNumber3)
	assert.Equal(t, "1234", rec.RegistrationNumber4)
	assert.Equal(t, "Maharashtra", rec.VehicleRegistrationState)
	assert.Equal(t, "MH 12", rec.VehicleRTA)
	assert.Equal(t, types.FuelPetrol, rec.VehicleFuelType)

	// Insured normalization
	assert.Equal(t, types.InsuredIndividual, rec.InsuredType)
	assert.Equal(t, "+91 9876543210", rec.InsuredMobile)
	assert.Equal(t, "Asha@example.com", rec.InsuredEmail)

	// Previous policy supplement fields
	assert.True(t, rec.LastPolicyAvailable)
	assert.Equal(t, types.InsurerHDFC, rec.LastInsurer)
	require.NotNil(t, rec.LastPolicyNCBPercent)
	assert.Equal(t, 35, *rec.LastPolicyNCBPercent)
	require.NotNil(t, rec.LastPolicyTo)
	assert.Equal(t, "2024-05-31", rec.LastPolicyTo.String())
}

func TestExtractionService_UnknownTemplateStillExtracts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(providerResponse("no-such-template", map[string]any{
			"policy_number":    "PN-1",
			"od_start_date":    "2023-01-01",
			"od_end_date":      "2025-01-01",
			"basic_od_premium": 1500.0,
		}))
	}))
	defer srv.Close()

	svc := newTestExtractionService(t, srv.URL, &stubFetcher{
		doc: &Document{Bytes: []byte("%PDF-1.7"), ContentType: "application/pdf"},
	})

	result := svc.ExtractPolicyData(context.Background(), "https://docs.example.com/p.pdf", "p.pdf")
	require.True(t, result.Success)
	rec := result.Data

	assert.Empty(t, rec.Insurer)
	// OD premium only, two calendar years of cover.
	assert.Equal(t, types.PolicyOD, rec.PolicyType)
	assert.Equal(t, types.SAOD2, rec.PolicyCategory)
	// No template sub type makes the heuristic pick commercial.
	assert.Equal(t, types.ProductTypeCommercial, rec.ProductType)
}

func TestExtractionService_ProviderFailureIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := newTestExtractionService(t, srv.URL, &stubFetcher{
		doc: &Document{Bytes: []byte("%PDF-1.7"), ContentType: "application/pdf"},
	})

	result := svc.ExtractPolicyData(context.Background(), "https://docs.example.com/p.pdf", "p.pdf")
	assert.False(t, result.Success)
	assert.Nil(t, result.Data)
	assert.Contains(t, result.Error, "policy data extraction failed")
}

func TestExtractionService_DownloadFailureIsReported(t *testing.T) {
	svc := newTestExtractionService(t, "http://127.0.0.1:0", &stubFetcher{
		err: context.DeadlineExceeded,
	})

	result := svc.ExtractPolicyData(context.Background(), "https://docs.example.com/p.pdf", "p.pdf")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "policy data extraction failed")
}

func TestResolveProductType(t *testing.T) {
	assert.Equal(t, types.ProductTypeCommercial,
		resolveProductType(types.ProviderInfo{ProductType: types.ProductTypeCommercial, ProductSubType: types.SubTypePC}))
	assert.Equal(t, types.ProductTypePrivate,
		resolveProductType(types.ProviderInfo{ProductSubType: types.SubTypeTW}))
	assert.Equal(t, types.ProductTypeCommercial,
		resolveProductType(types.ProviderInfo{ProductSubType: types.SubTypeGCV}))
	assert.Equal(t, types.ProductTypeCommercial, resolveProductType(types.ProviderInfo{}))
}

func TestInferInsuredType(t *testing.T) {
	assert.Equal(t, types.InsuredIndividual, inferInsuredType(" Individual "))
	assert.Equal(t, types.InsuredCorporate, inferInsuredType("Corporate"))
	assert.Equal(t, types.InsuredCorporate, inferInsuredType("company"))
	assert.Empty(t, inferInsuredType("partnership"))
	assert.Empty(t, inferInsuredType(""))
}
