package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Quelsed/azngameahun/pkg/log"
	"github.com/Quelsed/azngameahun/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	// pgx.Conn is not safe for concurrent use
	lock sync.Mutex
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and applies the embedded migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	if err := applyMigrations(ctx, "migrations/postgres", func(ctx context.Context, migration string) error {
		// no arguments, so pgx runs the script over the simple protocol
		_, err := conn.Exec(ctx, migration)
		return err
	}); err != nil {
		conn.Close(ctx)
		return nil, err
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) GetHighScore(ctx context.Context, slot string) (*models.HighScore, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	SELECT score, updated_at FROM high_scores WHERE slot = $1;
	`
	highScore := &models.HighScore{Slot: slot}
	if err := r.conn.QueryRow(ctx, q, slot).Scan(&highScore.Score, &highScore.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan high score: %v", err)
	}

	return highScore, nil
}

func (r *PostgresRepository) SetHighScore(ctx context.Context, slot string, score int) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	INSERT INTO high_scores (slot, score, updated_at) VALUES ($1, $2, $3)
	ON CONFLICT (slot) DO UPDATE SET
		score = GREATEST(high_scores.score, EXCLUDED.score),
		updated_at = CASE WHEN EXCLUDED.score > high_scores.score THEN EXCLUDED.updated_at ELSE high_scores.updated_at END;
	`
	_, err := r.conn.Exec(ctx, q, slot, score, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to upsert high score: %v", err)
	}

	return nil
}

func (r *PostgresRepository) SaveRun(ctx context.Context, run *models.Run) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	INSERT INTO runs (run_id, score, reason, ended_at) VALUES ($1::uuid, $2, $3, $4)
	ON CONFLICT (run_id) DO UPDATE SET score = $2, reason = $3, ended_at = $4;
	`
	_, err := r.conn.Exec(ctx, q, run.ID, run.Score, run.Reason, run.EndedAt)
	if err != nil {
		return fmt.Errorf("failed to insert run: %v", err)
	}

	return nil
}

func (r *PostgresRepository) ListRuns(ctx context.Context, limit int) ([]*models.Run, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if limit <= 0 {
		limit = DefaultRunsLimit
	}
	q := `
	SELECT run_id::text, score, reason, ended_at FROM runs ORDER BY ended_at DESC, run_id LIMIT $1;
	`
	rows, err := r.conn.Query(ctx, q, limit)
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
