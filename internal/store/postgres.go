package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// Postgres is a Store backed by PostgreSQL
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// Save implements Store. Saving the same analysis id again replaces the stored result.
func (p *Postgres) Save(ctx context.Context, result *types.AnalysisResult) error {
	if result.AnalysisID == "" {
		result.AnalysisID = uuid.NewString()
	}
	id, err := uuid.Parse(result.AnalysisID)
	if err != nil {
		return fmt.Errorf("invalid analysis id %q: %w", result.AnalysisID, err)
	}

	content, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	var overall float64
	var grade string
	if result.Score != nil {
		overall = result.Score.OverallScore
		grade = string(result.Score.ScoreGrade)
	}
	var matchLevel *string
	if result.JobCompatibility != nil {
		matchLevel = &result.JobCompatibility.MatchLevel
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO analyses (id, batch_id, filename, status, overall_score, score_grade, match_level, result, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE SET
		   status = $4, overall_score = $5, score_grade = $6, match_level = $7, result = $8`,
		id, nullableUUID(batchIDFrom(ctx)), result.Filename, string(result.Status),
		overall, grade, matchLevel, content, result.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// SaveFailure implements Store
func (p *Postgres) SaveFailure(ctx context.Context, failure *types.FailureRecord) (string, error) {
	var id uuid.UUID
	err := p.pool.QueryRow(ctx,
		`INSERT INTO analysis_failures (id, batch_id, filename, error_kind, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		uuid.New(), nullableUUID(batchIDFrom(ctx)), failure.Filename, string(failure.ErrorKind), failure.Message,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to save failure: %w", err)
	}
	return id.String(), nil
}

// Get implements Store
func (p *Postgres) Get(ctx context.Context, id string) (*types.AnalysisResult, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	var content []byte
	err = p.pool.QueryRow(ctx, `SELECT result FROM analyses WHERE id = $1`, parsed).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	result.AnalysisID = parsed.String()
	return &result, nil
}

// ScoreDistribution implements Store. A non-positive limit returns every score.
func (p *Postgres) ScoreDistribution(ctx context.Context, limit int) ([]float64, error) {
	query := `SELECT overall_score FROM analyses WHERE status = 'completed' ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query score distribution: %w", err)
	}
	scores, err := pgx.CollectRows(rows, pgx.RowTo[float64])
	if err != nil {
		return nil, fmt.Errorf("failed to read score distribution: %w", err)
	}
	return scores, nil
}

func nullableUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
