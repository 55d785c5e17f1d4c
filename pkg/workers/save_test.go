package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	mocks "github.com/Quelsed/azngameahun/mocks/github.com/Quelsed/azngameahun/pkg/repositories"
	"github.com/Quelsed/azngameahun/pkg/repositories"
	"github.com/Quelsed/azngameahun/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSaveWorker_handle(t *testing.T) {
	run := &models.Run{ID: "run-1", Score: 4, Reason: "collision", EndedAt: 10}

	tests := []struct {
		name        string
		request     SaveRequest
		setup       func(repository *mocks.Repository)
		wantPending int
	}{
		{
			name:    "high score is written immediately",
			request: SaveRequest{Type: SaveRequestHighScore, Slot: "custom", Score: 7},
			setup: func(repository *mocks.Repository) {
				repository.EXPECT().SetHighScore(mock.Anything, "custom", 7).Return(nil).Once()
			},
		},
		{
			name:    "empty slot uses the default slot",
			request: SaveRequest{Type: SaveRequestHighScore, Score: 3},
			setup: func(repository *mocks.Repository) {
				repository.EXPECT().SetHighScore(mock.Anything, repositories.DefaultHighScoreSlot, 3).Return(nil).Once()
			},
		},
		{
			name:    "high score errors are logged",
			request: SaveRequest{Type: SaveRequestHighScore, Slot: "custom", Score: 1},
			setup: func(repository *mocks.Repository) {
				repository.EXPECT().SetHighScore(mock.Anything, "custom", 1).Return(errors.New("boom")).Once()
			},
		},
		{
			name:        "runs are buffered",
			request:     SaveRequest{Type: SaveRequestRun, Run: run},
			wantPending: 1,
		},
		{
			name:    "run request without a run is ignored",
			request: SaveRequest{Type: SaveRequestRun},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := mocks.NewRepository(t)
			if tt.setup != nil {
				tt.setup(repository)
			}
			w := NewSaveWorker(NewSaveWorkerOptions{Repository: repository})
			w.handle(context.Background(), tt.request)
			assert.Len(t, w.pendingRuns, tt.wantPending)
		})
	}
}

func TestSaveWorker_flushRuns(t *testing.T) {
	ok := &models.Run{ID: "run-ok", Score: 2}
	failing := &models.Run{ID: "run-failing", Score: 5}

	repository := mocks.NewRepository(t)
	repository.EXPECT().SaveRun(mock.Anything, ok).Return(nil).Once()
	repository.EXPECT().SaveRun(mock.Anything, failing).Return(errors.New("boom")).Once()

	w := NewSaveWorker(NewSaveWorkerOptions{Repository: repository})
	w.pendingRuns = []*models.Run{ok, failing}
	w.flushRuns(context.Background())

	// failed runs stay buffered for the next flush
	assert.Equal(t, []*models.Run{failing}, w.pendingRuns)
}

func TestSaveWorker_StartFlushesOnShutdown(t *testing.T) {
	run := &models.Run{ID: "run-1", Score: 9}

	repository := mocks.NewRepository(t)
	repository.EXPECT().SetHighScore(mock.Anything, repositories.DefaultHighScoreSlot, 9).Return(nil).Once()
	repository.EXPECT().SaveRun(mock.Anything, run).Return(nil).Once()

	saveRequestChan := make(chan SaveRequest, 2)
	saveRequestChan <- SaveRequest{Type: SaveRequestHighScore, Score: 9}
	saveRequestChan <- SaveRequest{Type: SaveRequestRun, Run: run}

	w := NewSaveWorker(NewSaveWorkerOptions{
		Repository:      repository,
		SaveRequestChan: saveRequestChan,
		Interval:        time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("save worker did not stop")
	}
	assert.Empty(t, w.pendingRuns)
}
