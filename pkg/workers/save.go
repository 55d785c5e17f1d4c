package workers

import (
	"context"
	"time"

	"github.com/Quelsed/azngameahun/pkg/log"
	"github.com/Quelsed/azngameahun/pkg/repositories"
	"github.com/Quelsed/azngameahun/pkg/repositories/models"
)

const DefaultSaveInterval = 5 * time.Second

type SaveRequestType int

const (
	SaveRequestHighScore SaveRequestType = iota
	SaveRequestRun
)

type SaveRequest struct {
	Type SaveRequestType
	// Slot and Score are used by SaveRequestHighScore
	Slot  string
	Score int
	// Run is used by SaveRequestRun
	Run *models.Run
}

type SaveWorker struct {
	repository      repositories.Repository
	saveRequestChan <-chan SaveRequest
	interval        time.Duration
	pendingRuns     []*models.Run
}

type NewSaveWorkerOptions struct {
	Repository      repositories.Repository
	SaveRequestChan <-chan SaveRequest
	Interval        time.Duration
}

// NewSaveWorker creates a new SaveWorker.
// High scores are written as soon as they arrive. Finished runs are
// buffered and flushed to the repository on every interval.
func NewSaveWorker(opts NewSaveWorkerOptions) *SaveWorker {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultSaveInterval
	}
	return &SaveWorker{
		repository:      opts.Repository,
		saveRequestChan: opts.SaveRequestChan,
		interval:        interval,
	}
}

// Start processes save requests until ctx is done, then flushes any buffered runs.
func (w *SaveWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.drain(context.WithoutCancel(ctx))
			return
		case saveRequest := <-w.saveRequestChan:
			w.handle(ctx, saveRequest)
		case <-ticker.C:
			w.flushRuns(ctx)
		}
	}
}

// drain handles requests still sitting in the channel and flushes buffered runs.
func (w *SaveWorker) drain(ctx context.Context) {
	for {
		select {
		case saveRequest := <-w.saveRequestChan:
			w.handle(ctx, saveRequest)
		default:
			w.flushRuns(ctx)
			return
		}
	}
}

func (w *SaveWorker) handle(ctx context.Context, saveRequest SaveRequest) {
	switch saveRequest.Type {
	case SaveRequestHighScore:
		w.saveHighScore(ctx, saveRequest.Slot, saveRequest.Score)
	case SaveRequestRun:
		if saveRequest.Run == nil {
			log.Warn("Ignoring run save request without a run")
			return
		}
		w.pendingRuns = append(w.pendingRuns, saveRequest.Run)
	default:
		log.Warn("Unknown save request type: %d", saveRequest.Type)
	}
}

func (w *SaveWorker) saveHighScore(ctx context.Context, slot string, score int) {
	if slot == "" {
		slot = repositories.DefaultHighScoreSlot
	}
	if err := w.repository.SetHighScore(ctx, slot, score); err != nil {
		log.Error("Failed to save high score: %v", err)
	}
}

func (w *SaveWorker) flushRuns(ctx context.Context) {
	if len(w.pendingRuns) == 0 {
		return
	}
	remaining := w.pendingRuns[:0]
	for _, run := range w.pendingRuns {
		if err := w.repository.SaveRun(ctx, run); err != nil {
			log.Error("Failed to save run %s: %v", run.ID, err)
			remaining = append(remaining, run)
		}
	}
	w.pendingRuns = remaining
	log.Trace("Flushed runs, %d still pending", len(w.pendingRuns))
}
