package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"

	"github.com/MotorDesk/policy-extraction-backend/config"
	apperrors "github.com/MotorDesk/policy-extraction-backend/errors"
	"github.com/MotorDesk/policy-extraction-backend/logger"
)

const maxDocumentBytes = 50 << 20 // 50 MiB

// Document is a fetched policy file ready to be handed to the extraction
// provider.
type Document struct {
	Bytes       []byte
	ContentType string
}

// DocumentFetcher retrieves policy documents addressed by https:// or s3://
// URLs.
type DocumentFetcher interface {
	Fetch(ctx context.Context, fileURL string) (*Document, error)
}

// StorageFetcher fetches documents over HTTP, with optional S3-compatible
// object storage support for s3://bucket/key URLs.
type StorageFetcher struct {
	httpClient *http.Client
	s3Client   *s3.Client
}

func NewStorageFetcher(storageCfg *config.StorageConfig, downloadTimeoutSeconds int) *StorageFetcher {
	f := &StorageFetcher{
		httpClient: &http.Client{Timeout: time.Duration(downloadTimeoutSeconds) * time.Second},
	}

	if storageCfg.AccessKeyID != "" && storageCfg.SecretAccessKey != "" {
		opts := s3.Options{
			Region:      storageCfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(storageCfg.AccessKeyID, storageCfg.SecretAccessKey, ""),
		}
		if storageCfg.Endpoint != "" {
			opts.BaseEndpoint = aws.String(storageCfg.Endpoint)
			opts.UsePathStyle = true
		}
		f.s3Client = s3.New(opts)
	}

	return f
}

// Fetch downloads the document at fileURL and sniffs its content type.
// The reported Content-Type header is trusted when present; otherwise the
// type is detected from the bytes, defaulting to application/pdf.
func (f *StorageFetcher) Fetch(ctx context.Context, fileURL string) (*Document, error) {
	if strings.HasPrefix(fileURL, "s3://") {
		return f.fetchS3(ctx, fileURL)
	}
	return f.fetchHTTP(ctx, fileURL)
}

func (f *StorageFetcher) fetchHTTP(ctx context.Context, fileURL string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, apperrors.ValidationFailed("invalid file URL", err.Error())
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.UpstreamFailed(err, "document storage")
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.GetLogger().Warnw("Failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.UpstreamFailed(
			fmt.Errorf("download returned %d for %s", resp.StatusCode, fileURL), "document storage")
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, apperrors.UpstreamFailed(err, "document storage")
	}
	if len(data) > maxDocumentBytes {
		return nil, apperrors.ValidationFailed("document too large", fileURL)
	}

	return &Document{
		Bytes:       data,
		ContentType: resolveContentType(resp.Header.Get("Content-Type"), data),
	}, nil
}

func (f *StorageFetcher) fetchS3(ctx context.Context, fileURL string) (*Document, error) {
	if f.s3Client == nil {
		return nil, apperrors.ValidationFailed("s3 URL given but object storage is not configured", fileURL)
	}

	u, err := url.Parse(fileURL)
	if err != nil || u.Host == "" {
		return nil, apperrors.ValidationFailed("invalid s3 URL", fileURL)
	}
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return nil, apperrors.ValidationFailed("s3 URL missing object key", fileURL)
	}

	out, err := f.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, apperrors.UpstreamFailed(err, "object storage")
	}
	defer func() {
		if err := out.Body.Close(); err != nil {
			logger.GetLogger().Warnw("Failed to close object body", "error", err)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, apperrors.UpstreamFailed(err, "object storage")
	}
	if len(data) > maxDocumentBytes {
		return nil, apperrors.ValidationFailed("document too large", fileURL)
	}

	contentType := ""
	if out.ContentType != nil {
		contentType = *out.ContentType
	}
	return &Document{
		Bytes:       data,
		ContentType: resolveContentType(contentType, data),
	}, nil
}

func resolveContentType(reported string, data []byte) string {
	reported = strings.TrimSpace(reported)
	if reported != "" && reported != "application/octet-stream" && reported != "binary/octet-stream" {
		return reported
	}
	if detected := mimetype.Detect(data); detected.String() != "application/octet-stream" {
		return detected.String()
	}
	return "application/pdf"
}
