package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/MotorDesk/policy-extraction-backend/classify"
	"github.com/MotorDesk/policy-extraction-backend/config"
	apperrors "github.com/MotorDesk/policy-extraction-backend/errors"
	"github.com/MotorDesk/policy-extraction-backend/logger"
	"github.com/MotorDesk/policy-extraction-backend/normalize"
	"github.com/MotorDesk/policy-extraction-backend/types"
)

// PolicyExtractionProvider sends a document to an external OCR/LLM service
// and returns the raw template ID plus extracted fields.
type PolicyExtractionProvider interface {
	Extract(ctx context.Context, doc *Document, fileName string) (*types.ProviderExtraction, error)
}

// NovoupProvider is the Novoup extraction API implementation. It uploads the
// document as a multipart form with a single "pdf" part.
type NovoupProvider struct {
	url        string
	httpClient *http.Client
}

func NewNovoupProvider(cfg *config.ExtractionConfig) *NovoupProvider {
	return &NovoupProvider{
		url:        cfg.ProviderURL,
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

func (p *NovoupProvider) Extract(ctx context.Context, doc *Document, fileName string) (*types.ProviderExtraction, error) {
	if fileName == "" {
		fileName = "policy.pdf"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="pdf"; filename=%q`, fileName))
	header.Set("Content-Type", doc.ContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, apperrors.InternalServerError(fmt.Sprintf("building upload form: %v", err))
	}
	if _, err := part.Write(doc.Bytes); err != nil {
		return nil, apperrors.InternalServerError(fmt.Sprintf("writing upload form: %v", err))
	}
	if err := writer.Close(); err != nil {
		return nil, apperrors.InternalServerError(fmt.Sprintf("closing upload form: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, &body)
	if err != nil {
		return nil, apperrors.InternalServerError(fmt.Sprintf("building extraction request: %v", err))
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.UpstreamFailed(err, "extraction provider")
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.GetLogger().Warnw("Failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.UpstreamFailed(
			fmt.Errorf("extract returned %d: %s", resp.StatusCode, string(msg)), "extraction provider")
	}

	var extraction types.ProviderExtraction
	if err := json.NewDecoder(resp.Body).Decode(&extraction); err != nil {
		return nil, apperrors.UpstreamFailed(fmt.Errorf("decoding extraction: %w", err), "extraction provider")
	}
	return &extraction, nil
}

// ExtractionService runs the full per-document pipeline: fetch the file, call
// the extraction provider and normalize the raw fields into a canonical
// policy record.
type ExtractionService struct {
	fetcher  DocumentFetcher
	provider PolicyExtractionProvider
	table    *ProviderTable
	metrics  *PipelineMetrics
}

func NewExtractionService(fetcher DocumentFetcher, provider PolicyExtractionProvider, table *ProviderTable, metrics *PipelineMetrics) *ExtractionService {
	return &ExtractionService{
		fetcher:  fetcher,
		provider: provider,
		table:    table,
		metrics:  metrics,
	}
}

// ExtractPolicyData processes one document end to end. Failures never
// propagate as errors; they are folded into the result so the caller can
// report them to the record store.
func (s *ExtractionService) ExtractPolicyData(ctx context.Context, fileURL, fileName string) types.ExtractionResult {
	log := logger.GetLogger()
	start := time.Now()
	defer func() {
		s.metrics.ObserveExtractDuration(time.Since(start).Seconds())
	}()

	doc, err := s.fetcher.Fetch(ctx, fileURL)
	if err != nil {
		log.Errorw("Document download failed", "file_url", fileURL, "error", err)
		s.metrics.ExtractionError()
		return types.ExtractionResult{Error: fmt.Sprintf("policy data extraction failed: %v", err)}
	}

	extraction, err := s.provider.Extract(ctx, doc, fileName)
	if err != nil {
		log.Errorw("Provider extraction failed", "file_url", fileURL, "error", err)
		s.metrics.ExtractionError()
		return types.ExtractionResult{Error: fmt.Sprintf("policy data extraction failed: %v", err)}
	}

	record := s.assemble(extraction)
	return types.ExtractionResult{Success: true, Data: record}
}

// assemble turns the provider's raw extraction into the canonical record,
// applying every normalization and classification rule.
func (s *ExtractionService) assemble(extraction *types.ProviderExtraction) *types.PolicyExtractionObject {
	log := logger.GetLogger()
	extract := extraction.ExtractedData

	info, known := s.table.Lookup(extraction.ProviderID)
	if !known {
		log.Warnw("Unknown provider template, classification left to document fields",
			"provider_id", extraction.ProviderID)
	}

	basicOD := normalize.CleanAmountValue(extract.BasicODPremium)
	totalOD := normalize.CleanAmountValue(extract.TotalODPremium)
	odAddOn := normalize.CleanAmountValue(extract.TotalODAddOnPremium)
	basicTP := normalize.CleanAmountValue(extract.BasicTPPremium)
	totalTP := normalize.CleanAmountValue(extract.TotalTPPremium)
	tpAddOn := normalize.CleanAmountValue(extract.TotalTPAddOnPremium)

	odYears := classify.DurationYears(extract.ODStartDate, extract.ODEndDate)
	tpYears := classify.DurationYears(extract.TPStartDate, extract.TPEndDate)

	policyType := classify.CalcPolicyType(classify.Inputs{
		ODDurationYears: odYears,
		TPDurationYears: tpYears,
		RawPolicyType:   extract.PolicyType,
		HasODPremium:    classify.AnyPresent(basicOD, totalOD, odAddOn),
		HasTPPremium:    classify.AnyPresent(basicTP, totalTP, tpAddOn),
		Fallback:        info.PolicyType,
	})

	productCategory := classify.ProductCategoryFromSeating(extract.SeatingCapacity)
	if productCategory == "" {
		productCategory = classify.ProductCategoryFromSubType(info.ProductSubType)
	}

	parts, ok := normalize.BreakVehicleNumber(extract.VehicleNumber)
	if !ok {
		parts = normalize.RegistrationParts{}
	}

	record := &types.PolicyExtractionObject{
		PolicyNumber: extract.PolicyNumber,
		IssueDate:    extract.IssueDate,
		ODStartDate:  extract.ODStartDate,
		ODEndDate:    extract.ODEndDate,
		TPStartDate:  extract.TPStartDate,
		TPEndDate:    extract.TPEndDate,
		SumInsured:   normalize.CleanAmountValue(extract.SumInsured),

		BasicODPremium:      basicOD,
		TotalODPremium:      totalOD,
		TotalODAddOnPremium: odAddOn,
		BasicTPPremium:      basicTP,
		TotalTPPremium:      totalTP,
		TotalTPAddOnPremium: tpAddOn,
		NetPremium:          normalize.CleanAmountValue(extract.NetPremium),
		Taxes:               normalize.CleanAmountValue(extract.Taxes),
		TaxesRate:           normalize.CleanNCBValue(extract.TaxesRate),
		GrossDiscount:       normalize.CleanAmountValue(extract.GrossDiscount),
		TotalPremium:        normalize.CleanAmountValue(extract.TotalPremium),
		NCB:                 normalize.CleanNCBValue(extract.NCB),

		BrokerName:  extract.BrokerName,
		BrokerEmail: normalize.CleanEmail(extract.BrokerEmail),
		BrokerCode:  extract.BrokerCode,

		Make:                    extract.Make,
		Model:                   extract.Model,
		VehicleRegistrationDate: extract.RegistrationDate,
		MakeYear:                extract.ManufacturingYear,
		VehicleFuelType:         normalize.CleanFuelType(extract.FuelType),
		VehicleEngineNumber:     extract.EngineNumber,
		VehicleChassisNumber:    extract.ChassisNumber,
		VehicleSeatingCapacity:  extract.SeatingCapacity,
		VehicleCC:               extract.EngineCapacityCC,
		VehicleIDV:              normalize.CleanAmountValue(extract.VehicleIDV),
		VehicleGVW:              normalize.CleanGVWValue(extract.GrossVehicleWght),

		RegistrationNumber1:      parts[0],
		RegistrationNumber2:      parts[1],
		RegistrationNumber3:      parts[2],
		RegistrationNumber4:      parts[3],
		VehicleRegistrationState: normalize.VehicleNumberToState(extract.VehicleNumber),
		VehicleRTA:               normalize.VehicleNumberToRTA(extract.VehicleNumber, extract.RTOCode),

		InsuredName:    extract.CustomerName,
		InsuredAddress: extract.CustomerAddress,
		InsuredMobile:  normalize.CleanPhone(extract.CustomerPhone),
		InsuredEmail:   normalize.CleanEmail(extract.CustomerEmail),
		InsuredType:    inferInsuredType(extract.BusinessType),

		Insurer:         info.Insurer,
		Product:         info.Product,
		ProductType:     resolveProductType(info),
		ProductSubType:  info.ProductSubType,
		ProductCategory: productCategory,
		PolicyCategory:  classify.CalcPolicyCategory(policyType, odYears, tpYears),
		PolicyType:      policyType,

		LastPolicyAvailable:  extract.PreviousInsurerName != "" || extract.PreviousPolicyNumber != "",
		LastInsurer:          normalize.CleanInsurer(extract.PreviousInsurerName),
		LastPolicyNumber:     extract.PreviousPolicyNumber,
		LastPolicyTo:         firstDate(extract.PreviousPolicyEndDate, extract.PrevPolicyExpiry),
		LastPolicyNCBPercent: normalize.CleanNCBValue(extract.PreviousNCB),
	}

	return record
}

// resolveProductType keeps an explicit template classification and otherwise
// falls back to the vehicle-class heuristic: private cars and two-wheelers are
// private lines, everything else commercial.
func resolveProductType(info types.ProviderInfo) types.ProductType {
	if info.ProductType != "" {
		return info.ProductType
	}
	if info.ProductSubType == types.SubTypePC || info.ProductSubType == types.SubTypeTW {
		return types.ProductTypePrivate
	}
	return types.ProductTypeCommercial
}

func inferInsuredType(businessType string) types.InsuredType {
	switch strings.ToLower(strings.TrimSpace(businessType)) {
	case "individual":
		return types.InsuredIndividual
	case "corporate", "company", "organisation", "organization":
		return types.InsuredCorporate
	}
	return ""
}

func firstDate(dates ...*types.Date) *types.Date {
	for _, d := range dates {
		if d != nil {
			return d
		}
	}
	return nil
}
