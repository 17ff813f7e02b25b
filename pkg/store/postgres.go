package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/holdem"
)

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

// PostgresStore keeps game snapshots in the holdem_games table
type PostgresStore struct {
	logger logrus.FieldLogger
	db     *sql.DB
}

// NewPostgresStore returns a PostgresStore
// The migrations in sql/ must have been run against db.
func NewPostgresStore(logger logrus.FieldLogger, db *sql.DB) *PostgresStore {
	return &PostgresStore{
		logger: logger,
		db:     db,
	}
}

// Create inserts a new game
func (p *PostgresStore) Create(ctx context.Context, game *holdem.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO holdem_games (id, data)
VALUES ($1, $2)`

	if _, err := p.db.ExecContext(ctx, query, game.ID(), data); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqDuplicateKeyErrorCode {
			return ErrGameExists
		}

		return fmt.Errorf("could not create game %s: %w", game.ID(), err)
	}

	return nil
}

// Load returns the stored game
func (p *PostgresStore) Load(ctx context.Context, id uuid.UUID) (*holdem.Game, error) {
	const query = `
SELECT data
FROM holdem_games
WHERE id = $1`

	var data []byte
	row := p.db.QueryRowContext(ctx, query, id)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}

		return nil, fmt.Errorf("could not load game %s: %w", id, err)
	}

	return holdem.UnmarshalGame(p.logger, data)
}

// Save replaces the stored game
func (p *PostgresStore) Save(ctx context.Context, game *holdem.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	const query = `
UPDATE holdem_games
SET data = $1, updated = (NOW() AT TIME ZONE 'UTC')
WHERE id = $2`

	res, err := p.db.ExecContext(ctx, query, data, game.ID())
	if err != nil {
		return fmt.Errorf("could not save game %s: %w", game.ID(), err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrGameNotFound
	}

	return nil
}
