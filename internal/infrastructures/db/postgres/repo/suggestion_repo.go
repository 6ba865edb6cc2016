package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ozzus/bet-tracker/internal/domain/models"
)

const defaultRecentLimit = 20

type Repository struct {
	db *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Repository, error) {
	poolCfg, err := buildPoolConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Repository{db: pool}, nil
}

func buildPoolConfig(dsn string) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx pool config: %w", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.StatementCacheCapacity = 0
	poolCfg.ConnConfig.DescriptionCacheCapacity = 0

	return poolCfg, nil
}

func (r *Repository) Close() {
	r.db.Close()
}

func (r *Repository) Save(ctx context.Context, record models.SuggestionRecord) error {
	const query = `
		INSERT INTO suggestion_history (
			sport,
			team_id,
			team_name,
			suggestion,
			win_rate,
			games,
			wins,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, now()))
	`

	var createdAt any
	if !record.CreatedAt.IsZero() {
		createdAt = record.CreatedAt.UTC()
	}

	_, err := r.db.Exec(ctx, query,
		string(record.Sport),
		record.TeamID,
		record.TeamName,
		record.Suggestion.Text,
		record.Suggestion.WinRate,
		record.Suggestion.Games,
		record.Suggestion.Wins,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert suggestion: %w", err)
	}

	return nil
}

func (r *Repository) Recent(ctx context.Context, limit int) ([]models.SuggestionRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	const query = `
		SELECT
			id,
			sport,
			team_id,
			team_name,
			suggestion,
			win_rate,
			games,
			wins,
			created_at
		FROM suggestion_history
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent suggestions: %w", err)
	}
	defer rows.Close()

	records := make([]models.SuggestionRecord, 0, limit)
	for rows.Next() {
		var (
			record models.SuggestionRecord
			sport  string
		)

		if err := rows.Scan(
			&record.ID,
			&sport,
			&record.TeamID,
			&record.TeamName,
			&record.Suggestion.Text,
			&record.Suggestion.WinRate,
			&record.Suggestion.Games,
			&record.Suggestion.Wins,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}

		record.Sport = models.Sport(sport)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate suggestions: %w", err)
	}

	return records, nil
}
