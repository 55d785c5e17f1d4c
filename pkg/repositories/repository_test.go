package repositories

import (
	"context"
	"testing"

	"github.com/Quelsed/azngameahun/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepositories(t *testing.T) map[string]Repository {
	t.Helper()
	ctx := context.Background()

	sqliteRepository, err := NewSQLiteRepository(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqliteRepository.Close(ctx) })

	return map[string]Repository{
		"sqlite": sqliteRepository,
		"memory": NewInMemoryRepository(),
	}
}

func TestRepository_HighScore(t *testing.T) {
	ctx := context.Background()
	for name, repository := range newTestRepositories(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repository.GetHighScore(ctx, DefaultHighScoreSlot)
			assert.True(t, IsNotFound(err))

			require.NoError(t, repository.SetHighScore(ctx, DefaultHighScoreSlot, 12))
			highScore, err := repository.GetHighScore(ctx, DefaultHighScoreSlot)
			require.NoError(t, err)
			assert.Equal(t, 12, highScore.Score)
			assert.Equal(t, DefaultHighScoreSlot, highScore.Slot)

			// a lower score never replaces a higher one
			require.NoError(t, repository.SetHighScore(ctx, DefaultHighScoreSlot, 5))
			highScore, err = repository.GetHighScore(ctx, DefaultHighScoreSlot)
			require.NoError(t, err)
			assert.Equal(t, 12, highScore.Score)

			require.NoError(t, repository.SetHighScore(ctx, DefaultHighScoreSlot, 30))
			highScore, err = repository.GetHighScore(ctx, DefaultHighScoreSlot)
			require.NoError(t, err)
			assert.Equal(t, 30, highScore.Score)

			_, err = repository.GetHighScore(ctx, "other")
			assert.True(t, IsNotFound(err))
		})
	}
}

func TestRepository_Runs(t *testing.T) {
	ctx := context.Background()
	runs := []*models.Run{
		{ID: "6f1c6a52-4a3e-4c55-9a51-1d4f0b6f6c01", Score: 3, Reason: "collision", EndedAt: 100},
		{ID: "6f1c6a52-4a3e-4c55-9a51-1d4f0b6f6c02", Score: 9, Reason: "timeout", EndedAt: 300},
		{ID: "6f1c6a52-4a3e-4c55-9a51-1d4f0b6f6c03", Score: 1, Reason: "collision", EndedAt: 200},
	}

	for name, repository := range newTestRepositories(t) {
		t.Run(name, func(t *testing.T) {
			empty, err := repository.ListRuns(ctx, 0)
			require.NoError(t, err)
			assert.Empty(t, empty)

			for _, run := range runs {
				require.NoError(t, repository.SaveRun(ctx, run))
			}

			listed, err := repository.ListRuns(ctx, 0)
			require.NoError(t, err)
			require.Len(t, listed, 3)
			assert.Equal(t, runs[1], listed[0])
			assert.Equal(t, runs[2], listed[1])
			assert.Equal(t, runs[0], listed[2])

			limited, err := repository.ListRuns(ctx, 2)
			require.NoError(t, err)
			require.Len(t, limited, 2)
			assert.Equal(t, runs[1].ID, limited[0].ID)
		})
	}
}

func TestNewRepositoryFromURL(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		url      string
		wantType Repository
		wantErr  bool
	}{
		{name: "empty", url: "", wantType: &InMemoryRepository{}},
		{name: "memory", url: "memory://", wantType: &InMemoryRepository{}},
		{name: "sqlite", url: "sqlite://:memory:", wantType: &SQLiteRepository{}},
		{name: "sqlite without path", url: "sqlite://", wantErr: true},
		{name: "unknown scheme", url: "mysql://localhost/db", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository, err := NewRepositoryFromURL(ctx, tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer repository.Close(ctx)
			assert.IsType(t, tt.wantType, repository)
		})
	}
}
