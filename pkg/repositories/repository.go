package repositories

import (
	"context"

	"github.com/Quelsed/azngameahun/pkg/repositories/models"
)

const (
	// DefaultHighScoreSlot is the slot the game reads and writes its high score under
	DefaultHighScoreSlot = "highScore"
	// DefaultRunsLimit is the number of runs listed when no limit is given
	DefaultRunsLimit = 20
)

type Repository interface {
	Close(ctx context.Context) error
	// GetHighScore returns ErrNotFound when nothing was stored under the slot.
	GetHighScore(ctx context.Context, slot string) (*models.HighScore, error)
	// SetHighScore stores score under the slot unless a higher score is already there.
	SetHighScore(ctx context.Context, slot string, score int) error
	SaveRun(ctx context.Context, run *models.Run) error
	// ListRuns returns the most recent runs first.
	ListRuns(ctx context.Context, limit int) ([]*models.Run, error)
}
