package services

import (
	"context"
	"time"

	"github.com/MotorDesk/policy-extraction-backend/logger"
	"github.com/MotorDesk/policy-extraction-backend/types"
)

// DrainNotifier is told when a drain run finishes. Implementations must not
// block the drain goroutine for long.
type DrainNotifier interface {
	NotifyDrainComplete(ctx context.Context, summary DrainSummary)
}

// DrainSummary describes one finished drain run.
type DrainSummary struct {
	CompanyID string
	Processed int
	Failed    int
	Duration  time.Duration
}

// Extractor runs the per-document extraction pipeline.
type Extractor interface {
	ExtractPolicyData(ctx context.Context, fileURL, fileName string) types.ExtractionResult
}

// DrainService pulls pending documents for a company one at a time until the
// queue is empty, extracting each and reporting the outcome back to the
// record store.
type DrainService struct {
	source    PendingFileSource
	sink      StatusSink
	extractor Extractor
	notifier  DrainNotifier
	metrics   *PipelineMetrics
	maxFiles  int // 0 means drain until empty
}

func NewDrainService(source PendingFileSource, sink StatusSink, extractor Extractor, metrics *PipelineMetrics, maxFiles int) *DrainService {
	return &DrainService{
		source:    source,
		sink:      sink,
		extractor: extractor,
		metrics:   metrics,
		maxFiles:  maxFiles,
	}
}

// WithNotifier attaches a completion notifier.
func (s *DrainService) WithNotifier(n DrainNotifier) *DrainService {
	s.notifier = n
	return s
}

// DrainWithLock runs the pull loop for the company held by handle. The lock
// is released when the loop exits, on every path including panics. A file
// counts as processed only after its status report was accepted by the record
// store.
func (s *DrainService) DrainWithLock(ctx context.Context, req types.StartProcessingRequest, handle *LockHandle) int {
	log := logger.GetLogger()
	start := time.Now()
	processed := 0
	failed := 0

	defer handle.Release()
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("Drain loop panicked", "company_id", req.CompanyID, "panic", r)
		}
	}()

	s.metrics.DrainStarted()
	log.Infow("Starting pull-based processing", "company_id", req.CompanyID)

	for {
		if err := ctx.Err(); err != nil {
			log.Warnw("Drain cancelled", "company_id", req.CompanyID, "error", err)
			break
		}
		if s.maxFiles > 0 && processed+failed >= s.maxFiles {
			log.Infow("Drain file cap reached", "company_id", req.CompanyID, "cap", s.maxFiles)
			break
		}

		pending, err := s.source.NextPendingFile(ctx, req.CompanyID, req.Token)
		if err != nil {
			log.Errorw("Failed to pull next pending file", "company_id", req.CompanyID, "error", err)
			break
		}
		if pending == nil {
			log.Infow("No more pending files", "company_id", req.CompanyID)
			break
		}

		log.Infow("Processing file", "file_id", pending.ID, "company_id", req.CompanyID)
		result := s.extractor.ExtractPolicyData(ctx, pending.FileURL, pending.FileName)

		update := types.UpdateFileStatusRequest{
			FileID:  pending.ID,
			Success: result.Success,
		}
		if result.Success {
			update.ExtractedData = result.Data
		} else {
			update.Error = result.Error
		}

		if err := s.sink.UpdateFileStatus(ctx, update, req.Token); err != nil {
			log.Errorw("Failed to report file status", "file_id", pending.ID, "error", err)
			s.metrics.ReportError()
			failed++
			continue
		}

		processed++
		s.metrics.ObserveFile(result.Success)
		log.Infow("File processed", "file_id", pending.ID, "success", result.Success)
	}

	duration := time.Since(start)
	s.metrics.ObserveDrainDuration(duration.Seconds())
	log.Infow("Completed processing",
		"company_id", req.CompanyID,
		"processed", processed,
		"report_failures", failed,
		"duration", duration)

	if s.notifier != nil {
		s.notifier.NotifyDrainComplete(ctx, DrainSummary{
			CompanyID: req.CompanyID,
			Processed: processed,
			Failed:    failed,
			Duration:  duration,
		})
	}

	return processed
}
