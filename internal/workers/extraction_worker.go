package workers

import (
	"context"
	"time"

	"github.com/Paths06/TalentNetwork/internal/services"
	"github.com/Paths06/TalentNetwork/internal/store"
	"github.com/Paths06/TalentNetwork/pkg/logger"
)

// ExtractionJob is one queued newsletter to process
type ExtractionJob struct {
	WorkspaceID string
	FileName    string
	Text        string
}

// ExtractionWorker consumes newsletter jobs from the queue, runs entity
// extraction and publishes the result to the owning workspace. A failed
// extraction is logged and leaves the workspace's previous suggestions intact.
type ExtractionWorker struct {
	*BaseWorker
	jobs       <-chan ExtractionJob
	extraction *services.ExtractionService
	registry   *store.WorkspaceRegistry
}

// NewExtractionWorker creates a new extraction worker
func NewExtractionWorker(workerID string, jobs <-chan ExtractionJob, extraction *services.ExtractionService, registry *store.WorkspaceRegistry) *ExtractionWorker {
	return &ExtractionWorker{
		BaseWorker: NewBaseWorker(workerID),
		jobs:       jobs,
		extraction: extraction,
		registry:   registry,
	}
}

// Start begins the extraction worker loop
func (w *ExtractionWorker) Start(ctx context.Context) error {
	w.Running = true
	logger.WithField("worker", w.WorkerID).Info("Extraction worker started")

	for {
		select {
		case <-ctx.Done():
			logger.WithField("worker", w.WorkerID).Info("Extraction worker stopping due to context cancellation")
			return ctx.Err()
		case <-w.StopChan:
			logger.WithField("worker", w.WorkerID).Info("Extraction worker stopping")
			return nil
		case job := <-w.jobs:
			w.processJob(ctx, job)
		}
	}
}

// processJob runs one extraction and stores the result
func (w *ExtractionWorker) processJob(ctx context.Context, job ExtractionJob) {
	start := time.Now()

	jobCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	result, err := w.extraction.Process(jobCtx, job.FileName, job.Text)
	if err != nil {
		logger.WithError(err).WithField("file", job.FileName).Error("Newsletter extraction failed")
		return
	}

	w.registry.SetExtraction(job.WorkspaceID, result)

	logger.WithFields(map[string]interface{}{
		"worker":   w.WorkerID,
		"file":     job.FileName,
		"people":   len(result.People),
		"firms":    len(result.Firms),
		"duration": time.Since(start).String(),
	}).Info("Newsletter extraction completed")
}
