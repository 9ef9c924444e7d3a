package workers

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/Paths06/TalentNetwork/internal/services"
	"github.com/Paths06/TalentNetwork/internal/store"
	"github.com/Paths06/TalentNetwork/pkg/logger"
)

// extractionQueueSize bounds how many newsletters can wait for processing
const extractionQueueSize = 32

// WorkerManager owns the extraction queue and the workers draining it
type WorkerManager struct {
	workers []Worker
	jobs    chan ExtractionJob
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc

	extraction *services.ExtractionService
	registry   *store.WorkspaceRegistry
}

// NewWorkerManager creates a new worker manager
func NewWorkerManager(extraction *services.ExtractionService, registry *store.WorkspaceRegistry) *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		workers:    make([]Worker, 0),
		jobs:       make(chan ExtractionJob, extractionQueueSize),
		ctx:        ctx,
		cancel:     cancel,
		extraction: extraction,
		registry:   registry,
	}
}

// StartAll starts all workers based on environment configuration
func (wm *WorkerManager) StartAll() error {
	extractionWorkers := wm.getWorkerCount("EXTRACTION_WORKERS", 1)

	logger.Infof("Starting workers - Extraction: %d", extractionWorkers)

	for i := 0; i < extractionWorkers; i++ {
		worker := NewExtractionWorker(fmt.Sprintf("extraction-%d", i+1), wm.jobs, wm.extraction, wm.registry)
		wm.workers = append(wm.workers, worker)
		wm.startWorker(worker)
	}

	logger.Infof("Started %d total workers", len(wm.workers))
	return nil
}

// Enqueue queues a newsletter for extraction. Returns false when the queue is
// full; the caller surfaces that to the user instead of blocking a request.
func (wm *WorkerManager) Enqueue(job ExtractionJob) bool {
	select {
	case wm.jobs <- job:
		return true
	default:
		return false
	}
}

// StopAll gracefully stops all workers
func (wm *WorkerManager) StopAll() error {
	logger.Info("Stopping all workers...")

	// Cancel the context to signal all workers to stop
	wm.cancel()

	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			logger.WithError(err).Errorf("Error stopping worker %s", worker.GetWorkerID())
		}
	}

	wm.wg.Wait()

	logger.Info("All workers stopped")
	return nil
}

// getWorkerCount reads a worker count from an environment variable with fallback
func (wm *WorkerManager) getWorkerCount(envVar string, defaultValue int) int {
	if value := os.Getenv(envVar); value != "" {
		if count, err := strconv.Atoi(value); err == nil && count > 0 {
			return count
		}
		logger.Warnf("Invalid value for %s, using default: %d", envVar, defaultValue)
	}
	return defaultValue
}

// startWorker starts a single worker in a goroutine
func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil && err != context.Canceled {
			logger.WithError(err).Errorf("Worker %s stopped with error", worker.GetWorkerID())
		}
	}()
}
