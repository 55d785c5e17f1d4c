package repositories

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"time"

	"github.com/Quelsed/azngameahun/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations
var migrations embed.FS

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at dsn and applies the embedded migrations.
// Use ":memory:" for a throwaway database.
func NewSQLiteRepository(ctx context.Context, dsn string) (Repository, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// a single connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)

	if err := applyMigrations(ctx, "migrations/sqlite", func(ctx context.Context, migration string) error {
		_, err := db.ExecContext(ctx, migration)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

// applyMigrations executes every .sql file of dir in lexical order.
func applyMigrations(ctx context.Context, dir string, exec func(ctx context.Context, migration string) error) error {
	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %v", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".sql" {
			continue
		}

		migrationPath := path.Join(dir, entry.Name())
		migration, err := fs.ReadFile(migrations, migrationPath)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}

		if err := exec(ctx, string(migration)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) GetHighScore(ctx context.Context, slot string) (*models.HighScore, error) {
	q := `
	SELECT score, updated_at FROM high_scores WHERE slot = ?;
	`
	highScore := &models.HighScore{Slot: slot}
	if err := r.db.QueryRowContext(ctx, q, slot).Scan(&highScore.Score, &highScore.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan high score: %v", err)
	}

	return highScore, nil
}

func (r *SQLiteRepository) SetHighScore(ctx context.Context, slot string, score int) error {
	q := `
	INSERT INTO high_scores (slot, score, updated_at) VALUES (?, ?, ?)
	ON CONFLICT (slot) DO UPDATE SET
		score = MAX(high_scores.score, excluded.score),
		updated_at = CASE WHEN excluded.score > high_scores.score THEN excluded.updated_at ELSE high_scores.updated_at END;
	`
	_, err := r.db.ExecContext(ctx, q, slot, score, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to upsert high score: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) SaveRun(ctx context.Context, run *models.Run) error {
	q := `
	INSERT OR REPLACE INTO runs (run_id, score, reason, ended_at)
	VALUES (?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, run.ID, run.Score, run.Reason, run.EndedAt)
	if err != nil {
		return fmt.Errorf("failed to insert run: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) ListRuns(ctx context.Context, limit int) ([]*models.Run, error) {
	if limit <= 0 {
		limit = DefaultRunsLimit
	}
	q := `
	SELECT run_id, score, reason, ended_at FROM runs ORDER BY ended_at DESC, run_id LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %v", err)
	}
	defer rows.Close()

	runs := []*models.Run{}
	for rows.Next() {
		run := &models.Run{}
		if err := rows.Scan(&run.ID, &run.Score, &run.Reason, &run.EndedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %v", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %v", err)
	}

	return runs, nil
}
