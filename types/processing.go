package types

// PendingFile is one unit of work claimed from the external queue. It is
// read-only to the pipeline; a file yields at most one extraction attempt per
// drain iteration.
type PendingFile struct {
	ID       string `json:"id"`
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
	TenantID string `json:"tenant_id,omitempty"`
}

// UpdateFileStatusRequest reports the outcome of one extraction attempt to the
// external record store.
type UpdateFileStatusRequest struct {
	FileID        string                  `json:"id"`
	Success       bool                    `json:"success"`
	ExtractedData *PolicyExtractionObject `json:"extracted_data,omitempty"`
	Error         string                  `json:"error,omitempty"`
}

// StartProcessingRequest triggers a drain run for one company. The token is an
// opaque credential forwarded to the policy API on every call.
type StartProcessingRequest struct {
	CompanyID string `json:"company_id" binding:"required"`
	Token     string `json:"jwt_token,omitempty"`
}

// Drain-trigger outcomes surfaced by the processing endpoint.
const (
	ProcessingStarted = "started"
	ProcessingAlready = "already_processing"
)

// StartProcessingResponse is returned by the trigger endpoint.
type StartProcessingResponse struct {
	Status    string `json:"status"`
	CompanyID string `json:"company_id"`
	Message   string `json:"message,omitempty"`
}

// ProcessingStatusResponse reports whether a company drain run is in flight.
type ProcessingStatusResponse struct {
	CompanyID    string `json:"company_id"`
	IsProcessing bool   `json:"is_processing"`
}
