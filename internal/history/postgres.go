package history

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/draft-refinery/internal/types"
)

// PostgresStore reads employment records from the system of record. All
// access is SELECT-only; this service never writes history.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the history database.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// GetWorkHistory returns the user's verified employment records ordered by
// experience ID. A user with no records resolves to an empty history.
func (s *PostgresStore) GetWorkHistory(ctx context.Context, userID string) ([]types.WorkHistoryRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT experience_id, employer, title, COALESCE(location, ''), start_date, end_date
		 FROM work_history
		 WHERE user_id = $1
		 ORDER BY experience_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query work history: %w", err)
	}
	defer rows.Close()

	var records []types.WorkHistoryRecord
	for rows.Next() {
		var r types.WorkHistoryRecord
		if err := rows.Scan(&r.ExperienceID, &r.Employer, &r.Title, &r.Location, &r.StartDate, &r.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan work history row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read work history rows: %w", err)
	}

	return records, nil
}
