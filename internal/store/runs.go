package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one recorded invocation of the generator.
type Run struct {
	RunID           string
	Reference       string
	StartedAt       time.Time
	FinishedAt      *time.Time
	MaxDepthReached *int
	FillCount       *int
	OutputPath      *string
	Status          string
	ErrorMessage    *string
}

// RunRepository provides CRUD access to generation_runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository constructs a RunRepository backed by db.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Start records the beginning of a new generation run and returns its ID.
func (r *RunRepository) Start(reference string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO generation_runs (run_id, reference, started_at, status)
		VALUES (?, ?, ?, 'running')
	`, id, reference, startedAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("store: start run: %w", err)
	}
	return id, nil
}

// Finish records a successful completion of run runID.
func (r *RunRepository) Finish(runID string, maxDepth, fillCount int, outputPath string) error {
	_, err := r.db.Exec(`
		UPDATE generation_runs
		SET finished_at = ?, max_depth_reached = ?, fill_count = ?, output_path = ?, status = 'complete'
		WHERE run_id = ?
	`, time.Now().UTC().Format(time.RFC3339), maxDepth, fillCount, outputPath, runID)
	if err != nil {
		return fmt.Errorf("store: finish run %s: %w", runID, err)
	}
	return nil
}

// Fail records that run runID ended in failure with the given message.
func (r *RunRepository) Fail(runID string, errMsg string) error {
	_, err := r.db.Exec(`
		UPDATE generation_runs
		SET finished_at = ?, status = 'failed', error_message = ?
		WHERE run_id = ?
	`, time.Now().UTC().Format(time.RFC3339), errMsg, runID)
	if err != nil {
		return fmt.Errorf("store: fail run %s: %w", runID, err)
	}
	return nil
}

// List returns all recorded runs, most recent first.
func (r *RunRepository) List() ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT run_id, reference, started_at, finished_at, max_depth_reached,
		       fill_count, output_path, status, error_message
		FROM generation_runs
		ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			startedAt  string
			finishedAt sql.NullString
			maxDepth   sql.NullInt64
			fillCount  sql.NullInt64
			outputPath sql.NullString
			errMessage sql.NullString
		)
		if err := rows.Scan(&run.RunID, &run.Reference, &startedAt, &finishedAt,
			&maxDepth, &fillCount, &outputPath, &run.Status, &errMessage); err != nil {
			return nil, fmt.Errorf("store: scan run row: %w", err)
		}

		run.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("store: parse started_at: %w", err)
		}
		if finishedAt.Valid {
			t, err := time.Parse(time.RFC3339, finishedAt.String)
			if err != nil {
				return nil, fmt.Errorf("store: parse finished_at: %w", err)
			}
			run.FinishedAt = &t
		}
		if maxDepth.Valid {
			v := int(maxDepth.Int64)
			run.MaxDepthReached = &v
		}
		if fillCount.Valid {
			v := int(fillCount.Int64)
			run.FillCount = &v
		}
		if outputPath.Valid {
			run.OutputPath = &outputPath.String
		}
		if errMessage.Valid {
			run.ErrorMessage = &errMessage.String
		}

		runs = append(runs, run)
	}
	return runs, rows.Err()
}
