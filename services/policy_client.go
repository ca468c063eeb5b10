package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/MotorDesk/policy-extraction-backend/config"
	apperrors "github.com/MotorDesk/policy-extraction-backend/errors"
	"github.com/MotorDesk/policy-extraction-backend/logger"
	"github.com/MotorDesk/policy-extraction-backend/types"
)

// PendingFileSource pulls the next unprocessed document for a company from
// the record store.
type PendingFileSource interface {
	NextPendingFile(ctx context.Context, companyID, token string) (*types.PendingFile, error)
}

// StatusSink reports a finished extraction back to the record store.
type StatusSink interface {
	UpdateFileStatus(ctx context.Context, update types.UpdateFileStatusRequest, token string) error
}

// PolicyAPIClient talks to the external record store that owns pending-file
// records. It implements PendingFileSource and StatusSink.
type PolicyAPIClient struct {
	baseURL    string
	pullHTTP   *http.Client
	reportHTTP *http.Client
}

func NewPolicyAPIClient(cfg *config.PolicyAPIConfig) *PolicyAPIClient {
	return &PolicyAPIClient{
		baseURL:    cfg.BaseURL,
		pullHTTP:   &http.Client{Timeout: time.Duration(cfg.PullTimeoutS) * time.Second},
		reportHTTP: &http.Client{Timeout: time.Duration(cfg.ReportTimeoutS) * time.Second},
	}
}

// NextPendingFile fetches the next pending document for companyID.
// It returns (nil, nil) when the queue is empty.
func (c *PolicyAPIClient) NextPendingFile(ctx context.Context, companyID, token string) (*types.PendingFile, error) {
	endpoint := fmt.Sprintf("%s/motor-policy/policy/next-pending-file/?%s",
		c.baseURL, url.Values{"company_id": {companyID}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.InternalServerError(fmt.Sprintf("building pending-file request: %v", err))
	}
	c.setHeaders(req, token)

	resp, err := c.pullHTTP.Do(req)
	if err != nil {
		return nil, apperrors.UpstreamFailed(err, "record store")
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.GetLogger().Warnw("Failed to close response body", "error", err)
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		var pf types.PendingFile
		if err := json.NewDecoder(resp.Body).Decode(&pf); err != nil {
			return nil, apperrors.UpstreamFailed(fmt.Errorf("decoding pending file: %w", err), "record store")
		}
		return &pf, nil
	case http.StatusNotFound:
		// Queue drained for this company.
		return nil, nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.UpstreamFailed(
			fmt.Errorf("next-pending-file returned %d: %s", resp.StatusCode, string(body)), "record store")
	}
}

// UpdateFileStatus posts the outcome of one extraction to the record store.
func (c *PolicyAPIClient) UpdateFileStatus(ctx context.Context, update types.UpdateFileStatusRequest, token string) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return apperrors.InternalServerError(fmt.Sprintf("encoding status update: %v", err))
	}

	endpoint := c.baseURL + "/motor-policy/policy/update-file-status/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return apperrors.InternalServerError(fmt.Sprintf("building status-update request: %v", err))
	}
	c.setHeaders(req, token)

	resp, err := c.reportHTTP.Do(req)
	if err != nil {
		return apperrors.UpstreamFailed(err, "record store")
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.GetLogger().Warnw("Failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return apperrors.UpstreamFailed(
			fmt.Errorf("update-file-status returned %d: %s", resp.StatusCode, string(body)), "record store")
	}
	return nil
}

func (c *PolicyAPIClient) setHeaders(req *http.Request, token string) {
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
