package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"holdem-server/pkg/holdem"
)

var cbg = context.Background()

func newGame(t *testing.T) *holdem.Game {
	t.Helper()

	rules, err := holdem.NewRules(holdem.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	game, err := holdem.NewGame(logrus.StandardLogger(), uuid.New(), rules)
	if err != nil {
		t.Fatal(err)
	}

	return game
}

type repository interface {
	Create(ctx context.Context, game *holdem.Game) error
	Load(ctx context.Context, id uuid.UUID) (*holdem.Game, error)
	Save(ctx context.Context, game *holdem.Game) error
}

// exerciseRepository runs the behavior shared by every store
func exerciseRepository(t *testing.T, repo repository) {
	t.Helper()

	a := assert.New(t)
	game := newGame(t)

	_, err := repo.Load(cbg, game.ID())
	a.Equal(ErrGameNotFound, err)
	a.Equal(ErrGameNotFound, repo.Save(cbg, game))

	a.NoError(repo.Create(cbg, game))
	a.Equal(ErrGameExists, repo.Create(cbg, game))

	playerID := uuid.New()
	a.NoError(game.Join(playerID, 3, "Alice", 500))

	// nothing changes until the game is saved
	loaded, err := repo.Load(cbg, game.ID())
	if a.NoError(err) {
		a.Equal(game.ID(), loaded.ID())
		a.False(loaded.Table().IsPlayerSeated(playerID))
	}

	a.NoError(repo.Save(cbg, game))
	loaded, err = repo.Load(cbg, game.ID())
	if !a.NoError(err) {
		return
	}

	p, err := loaded.Player(playerID)
	if !a.NoError(err) {
		return
	}

	a.Equal("Alice", p.Name())
	a.Equal(500, p.Balance())

	seat, err := loaded.Table().SeatOf(p)
	a.NoError(err)
	a.Equal(3, seat)
}
