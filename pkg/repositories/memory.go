package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Quelsed/azngameahun/pkg/repositories/models"
)

// InMemoryRepository keeps high scores and runs for the lifetime of the process.
type InMemoryRepository struct {
	lock       sync.RWMutex
	highScores map[string]*models.HighScore
	runs       map[string]*models.Run
}

func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		highScores: make(map[string]*models.HighScore),
		runs:       make(map[string]*models.Run),
	}
}

func (r *InMemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *InMemoryRepository) GetHighScore(ctx context.Context, slot string) (*models.HighScore, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	highScore, ok := r.highScores[slot]
	if !ok {
		return nil, &ErrNotFound{}
	}
	copied := *highScore
	return &copied, nil
}

func (r *InMemoryRepository) SetHighScore(ctx context.Context, slot string, score int) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if existing, ok := r.highScores[slot]; ok && existing.Score >= score {
		return nil
	}
	r.highScores[slot] = &models.HighScore{
		Slot:      slot,
		Score:     score,
		UpdatedAt: time.Now().UnixMilli(),
	}
	return nil
}

func (r *InMemoryRepository) SaveRun(ctx context.Context, run *models.Run) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	copied := *run
	r.runs[run.ID] = &copied
	return nil
}

func (r *InMemoryRepository) ListRuns(ctx context.Context, limit int) ([]*models.Run, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if limit <= 0 {
		limit = DefaultRunsLimit
	}
	runs := make([]*models.Run, 0, len(r.runs))
	for _, run := range r.runs {
		copied := *run
		runs = append(runs, &copied)
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].EndedAt != runs[j].EndedAt {
			return runs[i].EndedAt > runs[j].EndedAt
		}
		return runs[i].ID < runs[j].ID
	})
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}
