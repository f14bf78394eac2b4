package searchlog

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"apartment-availability-backend/internal/model"
)

// Recorder persists a search record.
type Recorder interface {
	RecordSearch(ctx context.Context, rec *model.SearchRecord) error
}

// WorkerPool writes search records in the background so the request path never
// waits on the database.
type WorkerPool struct {
	size     int
	jobs     chan model.SearchRecord
	recorder Recorder
	wg       sync.WaitGroup
}

// NewWorkerPool creates a new worker pool with a queue of queueSize records.
func NewWorkerPool(size, queueSize int, recorder Recorder) *WorkerPool {
	return &WorkerPool{
		size:     size,
		jobs:     make(chan model.SearchRecord, queueSize),
		recorder: recorder,
	}
}

// Start launches the worker goroutines. They stop when ctx is cancelled.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i)
	}
}

// Wait blocks until every worker has returned.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()
	log.Debug().Int("worker", id).Msg("search log worker started")
	for {
		select {
		case rec := <-wp.jobs:
			if err := wp.recorder.RecordSearch(ctx, &rec); err != nil {
				log.Error().Err(err).Int("worker", id).Str("search_id", rec.ID).Msg("failed to record search")
			}
		case <-ctx.Done():
			log.Debug().Int("worker", id).Msg("search log worker shutting down")
			return
		}
	}
}

// Dispatch queues rec without blocking. It reports false when the queue is full
// and the record was dropped.
func (wp *WorkerPool) Dispatch(rec model.SearchRecord) bool {
	select {
	case wp.jobs <- rec:
		return true
	default:
		log.Warn().Str("search_id", rec.ID).Msg("search log queue full, dropping record")
		return false
	}
}
